package version

import (
	"strings"
	"testing"
)

func TestPlainJoinsComponents(t *testing.T) {
	origMajor, origMinor, origPatch := Major, Minor, Patch
	defer func() { Major, Minor, Patch = origMajor, origMinor, origPatch }()

	Major, Minor, Patch = "1", "2", "3"
	if got, want := Plain(), "1.2.3"; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestPlainPreservesPrereleaseSuffix(t *testing.T) {
	origMajor, origMinor, origPatch := Major, Minor, Patch
	defer func() { Major, Minor, Patch = origMajor, origMinor, origPatch }()

	Major, Minor, Patch = "0", "1", "0-dev"
	if got, want := Plain(), "0.1.0-dev"; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
}

func TestColoredContainsEachComponent(t *testing.T) {
	origMajor, origMinor, origPatch := Major, Minor, Patch
	defer func() { Major, Minor, Patch = origMajor, origMinor, origPatch }()

	Major, Minor, Patch = "1", "2", "3"
	colored := Colored()
	for _, part := range []string{"1", "2", "3"} {
		if !strings.Contains(colored, part) {
			t.Errorf("Colored() = %q, missing component %q", colored, part)
		}
	}
}

func TestOptionalBuildMetadataCanBeEmpty(t *testing.T) {
	origCommit, origMessage, origDate := GitCommit, GitMessage, BuildDate
	defer func() { GitCommit, GitMessage, BuildDate = origCommit, origMessage, origDate }()

	GitCommit, GitMessage, BuildDate = "", "", ""
	if GitCommit != "" || GitMessage != "" || BuildDate != "" {
		t.Errorf("expected optional build metadata to accept empty strings")
	}
}

