package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, c string) {
	t.Helper()
	oldV, oldC := Version, Commit
	Version, Commit = v, c
	t.Cleanup(func() { Version, Commit = oldV, oldC })
}

func TestResolve_TaggedModule(t *testing.T) {
	withVersion(t, "", "")
	resolve(&debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, true)
	assert.Equal(t, "v1.4.0", Version)
	assert.Equal(t, "", Commit)
}

func TestResolve_VCSSettings(t *testing.T) {
	withVersion(t, "", "")
	resolve(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-03-14T09:30:00Z"},
		},
	}, true)
	assert.Equal(t, "dev-20260314", Version)
	assert.Equal(t, "0123456-dirty", Commit)
}

func TestResolve_KeepsLdflags(t *testing.T) {
	withVersion(t, "v2.0.0", "abc1234")
	resolve(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
	}, true)
	assert.Equal(t, "v2.0.0", Version)
	assert.Equal(t, "abc1234", Commit)
	assert.Equal(t, "v2.0.0 (commit: abc1234)", Full())
}

func TestResolve_NoBuildInfo(t *testing.T) {
	withVersion(t, "", "")
	resolve(nil, false)
	assert.Empty(t, Version)
}

func TestGet(t *testing.T) {
	withVersion(t, "v1.0.0", "abc")
	info := Get()
	assert.Equal(t, "v1.0.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
