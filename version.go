// Package mccluskey is the module root: it holds only the version
// string, mirroring the teacher's root-level version.go.
package mccluskey

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version returns the embedded version string from VERSION.
func Version() string {
	return strings.TrimSpace(versionRaw)
}
