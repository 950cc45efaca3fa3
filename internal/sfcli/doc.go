// Package sfcli builds and runs Salesforce CLI (sfdx) invocations: source
// deployment, org authentication, the sfdx-git-delta plugin, and the
// extraction of requested Apex tests from a commit message.
//
// Commands are argument vectors, never shell strings. ExecRunner runs them;
// DryRunner prints them shell-quoted so a pipeline can be debugged without
// touching an org.
package sfcli
