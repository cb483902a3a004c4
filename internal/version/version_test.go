package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_Semver(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		wantErr   bool
		isRelease bool
	}{
		{"release", "1.2.3", false, true},
		{"v prefix", "v1.2.3", false, true},
		{"prerelease", "0.1.0-dev", false, false},
		{"garbage", "dev", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Info{Version: tt.version}
			_, err := info.Semver()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.isRelease, info.IsRelease())
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Full(), info.Platform)
}

func TestInfo_Report(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantSemver  string
		wantRelease bool
		wantChannel string
	}{
		{"release with v prefix", "v1.2.3", "1.2.3", true, "release"},
		{"prerelease", "0.1.0-dev", "0.1.0-dev", false, "prerelease"},
		{"unparseable", "dev", "", false, "unversioned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Info{Version: tt.version}.Report()
			assert.Equal(t, tt.version, r.Version)
			assert.Equal(t, tt.wantSemver, r.Semver)
			assert.Equal(t, tt.wantRelease, r.Release)
			assert.Equal(t, tt.wantChannel, r.Channel())
		})
	}
}
