package cliconfig

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	zero := 0
	three := 3

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all config values",
			fileConfig: FileConfig{
				DateStyle:         "ordinal-long",
				TimeStyle:         "short",
				TimeZoneStyle:     "long",
				FractionSeparator: "dot",
				FractionDigits:    &three,
				Output:            "yaml",
				Verbose:           &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				DateStyle:         "ordinal-long",
				TimeStyle:         "short",
				TimeZoneStyle:     "long",
				FractionSeparator: "dot",
				FractionDigits:    3,
				Output:            "yaml",
				Verbose:           true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				DateStyle: "week-long",
				TimeStyle: "none",
			},
			changed: map[string]bool{"date-style": true},
			initial: Config{
				DateStyle: "calendar-short",
				TimeStyle: "long",
			},
			expected: Config{
				DateStyle: "calendar-short", // unchanged because flag was set
				TimeStyle: "none",
			},
		},
		{
			name:       "zero fraction digits are applied",
			fileConfig: FileConfig{FractionDigits: &zero},
			changed:    map[string]bool{},
			initial:    Config{FractionDigits: 6},
			expected:   Config{FractionDigits: 0},
		},
		{
			name:       "empty file leaves config unchanged",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		`date_style = "week-long"`,
		`time_zone_style = "short"`,
		`fraction_digits = 0`,
		`verbose = true`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err, "LoadFileConfig should parse a valid TOML file")

	assert.Equal(t, "week-long", fc.DateStyle)
	assert.Equal(t, "short", fc.TimeZoneStyle)
	assert.Empty(t, fc.TimeStyle, "absent keys should be left empty")
	require.NotNil(t, fc.FractionDigits, "a zero value in the file should still be present")
	assert.Equal(t, 0, *fc.FractionDigits)
	require.NotNil(t, fc.Verbose)
	assert.True(t, *fc.Verbose)
}

func TestLoadFileConfig_Errors(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "LoadFileConfig should fail for a missing file")

	path := filepath.Join(t.TempDir(), "invalid.toml")
	require.NoError(t, os.WriteFile(path, []byte("date_style = ["), 0o600))

	_, err = LoadFileConfig(path)
	assert.Error(t, err, "LoadFileConfig should fail for invalid TOML")
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".iso8601", "config.toml"), DefaultConfigPath())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	assert.True(t, FileExists(path))
}
