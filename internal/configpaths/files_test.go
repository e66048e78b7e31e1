package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG paths are unix only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "ctrlbind"), dir)

	p, err := DefaultControlsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "ctrlbind", "controls.toml"), p)

	p, err = DefaultNamedConfigPath("ctrlbind", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "ctrlbind", "ctrlbind.yaml"), p)
}

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		path  string
		group int
	}{
		{"mine.json", 0},
		{"mine.cfg", 0},
		{"mine.yml", 1},
		{"mine.toml", 2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tt.path)
			groups := [][]string{j, y, tm}
			assert.Equal(t, tt.path, groups[tt.group][0])
			for i, g := range groups {
				if i != tt.group {
					assert.NotContains(t, g, tt.path)
				}
			}
		})
	}
}
