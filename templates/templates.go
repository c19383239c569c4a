// Package templates holds the document templates compiled into the binary.
package templates

import _ "embed"

// Readme is the profile README template. Values are substituted verbatim.
//
//go:embed readme.md.tmpl
var Readme string
