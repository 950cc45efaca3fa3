// Package metadata provides the XML wire types shared by Salesforce package
// descriptors and label bundles, and decodes them with structured errors.
//
// # Package Descriptor
//
// A package descriptor (package.xml) enumerates metadata types and members:
//
//	<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
//	<Package xmlns="http://soap.sforce.com/2006/04/metadata">
//	    <types>
//	        <members>AccountService</members>
//	        <name>ApexClass</name>
//	    </types>
//	    <version>58.0</version>
//	</Package>
//
// # Label Bundle
//
// A label bundle (CustomLabels.labels-meta.xml) declares many labels in one file:
//
//	<CustomLabels xmlns="http://soap.sforce.com/2006/04/metadata">
//	    <labels>
//	        <fullName>Greeting</fullName>
//	        <language>en_US</language>
//	        <protected>false</protected>
//	        <shortDescription>Greeting</shortDescription>
//	        <value>Hello</value>
//	    </labels>
//	</CustomLabels>
//
// Decoding matches element local names and ignores namespaces, so documents
// without the metadata namespace are accepted.
//
// Malformed documents are reported as *XMLError, which wraps
// sfdelta.ErrMalformedXML and carries the line number when known.
package metadata
