package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKeys_ListsCatalog(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")

	out, err := runCmd(t, "keys", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "option+1")
	assert.Contains(t, out, "toggle-light-theme")
	assert.Contains(t, out, "cmd+/")
	assert.Contains(t, out, "ctrl+_")
}

func TestKeys_AppliesOverrides(t *testing.T) {
	path := writeConfig(t, "keybindings:\n  open-public-repos: option+u\n")

	out, err := runCmd(t, "keys", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "option+u")
}

func TestKeysCheck(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:   "defaults",
			config: "",
		},
		{
			name:    "clash",
			config:  "keybindings:\n  open-settings: option+1\n",
			wantErr: "toggle-light-theme",
		},
		{
			name:    "unknown action",
			config:  "keybindings:\n  launch-rockets: cmd+r\n",
			wantErr: "unknown action",
		},
		{
			name:    "bad chord",
			config:  "keybindings:\n  open-settings: option+shift\n",
			wantErr: "no terminal key",
		},
		{
			name:    "bad theme",
			config:  "theme: sepia\n",
			wantErr: "unknown theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.config)

			out, err := runCmd(t, "keys", "--check", "--config", path)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Contains(t, out, "17 shortcuts OK")
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKeys_ThemeFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "theme: dark\n")

	_, err := runCmd(t, "keys", "--check", "--config", path, "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")
}

func TestKeys_MissingConfigUsesDefaults(t *testing.T) {
	_, err := runCmd(t, "keys", "--check", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.NoError(t, err)
}
