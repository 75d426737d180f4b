package build_version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "hx version "+GetVersion()) {
		t.Errorf("Expected version prefix, got %q", s)
	}
	if !strings.Contains(s, "(git: "+GetGitHash()+")") {
		t.Errorf("Expected git hash in %q", s)
	}
}
