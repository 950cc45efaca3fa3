package taxonomy

// registry maps source-format container directories to metadata type names,
// in declared order. Classification scans it front to back and the first
// directory key found in a path wins, so parents precede keys that can also
// appear nested beneath them (objects before webLinks).
var registry = []Entry{
	{"applications", "CustomApplication"},
	{"appMenus", "AppMenu"},
	{"approvalProcesses", "ApprovalProcess"},
	{"assignmentRules", "AssignmentRules"},
	{"audience", "Audience"},
	{"aura", "AuraDefinitionBundle"},
	{"authproviders", "AuthProvider"},
	{"autoResponseRules", "AutoResponseRules"},
	{"bots", "Bot"},
	{"brandingSets", "BrandingSet"},
	{"certs", "Certificate"},
	{"classes", "ApexClass"},
	{"cleanDataServices", "CleanDataService"},
	{"communities", "Community"},
	{"components", "ApexComponent"},
	{"connectedApps", "ConnectedApp"},
	{"contentassets", "ContentAsset"},
	{"corsWhitelistOrigins", "CorsWhitelistOrigin"},
	{"cspTrustedSites", "CspTrustedSite"},
	{"customApplicationComponents", "CustomApplicationComponent"},
	{"customMetadata", "CustomMetadata"},
	{"customPermissions", "CustomPermission"},
	{"dashboards", "Dashboard"},
	{"delegateGroups", "DelegateGroup"},
	{"documents", "Document"},
	{"duplicateRules", "DuplicateRule"},
	{"email", "EmailTemplate"},
	{"emailservices", "EmailServicesFunction"},
	{"escalationrules", "EscalationRules"},
	{"experiences", "ExperienceBundle"},
	{"externalCredentials", "ExternalCredential"},
	{"feedFilters", "CustomFeedFilter"},
	{"flexipages", "FlexiPage"},
	{"flowDefinitions", "FlowDefinition"},
	{"flows", "Flow"},
	{"globalValueSets", "GlobalValueSet"},
	{"globalValueSetTranslations", "GlobalValueSetTranslation"},
	{"groups", "Group"},
	{"homePageComponents", "HomePageComponent"},
	{"homePageLayouts", "HomePageLayout"},
	{"installedPackages", "InstalledPackage"},
	{"labels", "CustomLabels"},
	{"layouts", "Layout"},
	{"LeadConvertSettings", "LeadConvertSettings"},
	{"letterhead", "Letterhead"},
	{"lightningExperienceThemes", "LightningExperienceTheme"},
	{"liveChatAgentConfigs", "LiveChatAgentConfig"},
	{"liveChatDeployments", "LiveChatDeployment"},
	{"lwc", "LightningComponentBundle"},
	{"matchingRules", "MatchingRule"},
	{"messageChannels", "LightningMessageChannel"},
	{"namedCredentials", "NamedCredential"},
	{"navigationMenus", "NavigationMenu"},
	{"networkBranding", "NetworkBranding"},
	{"networks", "Network"},
	{"notificationtypes", "CustomNotificationType"},
	{"objectTranslations", "CustomObjectTranslation"},
	{"objects", "CustomObject"},
	{"pages", "ApexPage"},
	{"pathAssistants", "PathAssistant"},
	{"permissionsetgroups", "PermissionSetGroup"},
	{"permissionsets", "PermissionSet"},
	{"platformEventChannelMembers", "PlatformEventChannelMember"},
	{"presenceUserConfigs", "PresenceUserConfig"},
	{"profilePasswordPolicies", "ProfilePasswordPolicy"},
	{"profileSessionSettings", "ProfileSessionSetting"},
	{"profiles", "Profile"},
	{"queueRoutingConfigs", "QueueRoutingConfig"},
	{"queues", "Queue"},
	{"quickActions", "QuickAction"},
	{"reportTypes", "ReportType"},
	{"reports", "Report"},
	{"remoteSiteSettings", "RemoteSiteSetting"},
	{"prompts", "Prompt"},
	{"roles", "Role"},
	{"samlssoconfigs", "SamlSsoConfig"},
	{"scontrols", "Scontrol"},
	{"settings", "Settings"},
	{"sharingRules", "SharingRules"},
	{"sharingSets", "SharingSet"},
	{"siteDotComSites", "SiteDotCom"},
	{"sites", "CustomSite"},
	{"skills", "Skill"},
	{"standardValueSets", "StandardValueSet"},
	{"staticresources", "StaticResource"},
	{"tabs", "CustomTab"},
	{"territory2Models", "Territory2Model"},
	{"territory2Types", "Territory2Type"},
	{"topicsForObjects", "TopicsForObjects"},
	{"triggers", "ApexTrigger"},
	{"wave", "wave"},
	{"webLinks", "WebLink"},
	{"workflows", "Workflow"},
}

// folderScoped lists types whose members are named <folder>/<name>.
var folderScoped = map[string]struct{}{
	"Dashboard":     {},
	"Document":      {},
	"EmailTemplate": {},
	"Report":        {},
}

// inFile lists types whose members are read from the file contents.
var inFile = map[string]struct{}{
	"CustomLabels": {},
}

// bundles lists types stored as a directory per member.
var bundles = map[string]struct{}{
	"AuraDefinitionBundle":     {},
	"ExperienceBundle":         {},
	"LightningComponentBundle": {},
	"StaticResource":           {},
}

// childItems lists, per parent type, the nested directories holding
// independently deployable child metadata.
var childItems = map[string][]ChildType{
	"CustomObject": {
		{"fields", "CustomField"},
		{"compactLayouts", "CompactLayout"},
		{"webLinks", "WebLink"},
		{"validationRules", "ValidationRule"},
		{"recordTypes", "RecordType"},
		{"listViews", "ListView"},
		{"fieldSets", "FieldSet"},
		{"businessProcesses", "BusinessProcess"},
		{"indexes", "Index"},
		{"sharingReasons", "SharingReason"},
	},
}
