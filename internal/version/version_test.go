package version_test

import (
	"strings"
	"testing"

	"jstyle/internal/version"
)

func TestVersionNotEmpty(t *testing.T) {
	if strings.TrimSpace(version.Version) == "" {
		t.Fatal("Version must not be empty")
	}
}

func TestPrettyKeepsDigits(t *testing.T) {
	pretty := version.Pretty()
	for _, part := range strings.Split(strings.TrimSuffix(version.Version, "-dev"), ".") {
		if part == "" {
			continue
		}
		if !strings.Contains(pretty, part) {
			t.Errorf("Pretty() = %q, missing segment %q", pretty, part)
		}
	}
}
