package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	info := fromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.21.0",
		Path:      "github.com/carbocation/rsidloci/cmd/rsid2hs37d5",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	if got, expected := info.Version(), "0123456789ab-dirty"; got != expected {
		t.Errorf("Version() = %q, expected %q", got, expected)
	}

	if s := info.String(); !strings.Contains(s, "rsid2hs37d5") || !strings.Contains(s, "modified") {
		t.Errorf("Unexpected description %q", s)
	}
}

func TestVersionWithoutVCS(t *testing.T) {
	if got := (CompileInfo{}).Version(); got != "devel" {
		t.Errorf("Version() = %q, expected devel", got)
	}
}
