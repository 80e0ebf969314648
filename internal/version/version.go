// Package version holds the istudio binary's build fingerprint. The plain
// fields are overridable at build time via -ldflags; the colored Sprint is
// assembled from them for terminal-attached output.
package version

import "github.com/fatih/color"

const Product = "IStudio"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Major, Minor, Patch make up the plain semantic version.
	Major = "0"
	Minor = "1"
	Patch = "0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain renders the colorless "major.minor.patch" version string, used
// wherever the output isn't a color-capable terminal: LSP server info,
// JSON output, golden-file tests.
func Plain() string {
	return Major + "." + Minor + "." + Patch
}

// Colored renders the version with each component in its own ANSI color,
// for terminal-attached CLI output.
func Colored() string {
	return versionMajorColor.Sprint(Major) + "." + versionMinorColor.Sprint(Minor) + "." + versionPatchColor.Sprint(Patch)
}
