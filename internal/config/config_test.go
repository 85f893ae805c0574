package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/armor-abi/armor/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExclusionsParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclusions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exclusions:\n  - Legacy.internalHelper\n  - Device.debugField\n"), 0o644))

	names, err := config.LoadExclusions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Legacy.internalHelper", "Device.debugField"}, names)
}

func TestLoadExclusionsEmptyPath(t *testing.T) {
	names, err := config.LoadExclusions("")
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestLoadExclusionsMissingFile(t *testing.T) {
	_, err := config.LoadExclusions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromViperReadsBoundValues(t *testing.T) {
	v := viper.New()
	v.Set("base", "old/api.h")
	v.Set("head", "new/api.h")
	v.Set("report", "html")
	v.Set("include", []string{"/usr/include"})
	v.Set("workers", 4)

	opts := config.FromViper(v)
	assert.Equal(t, "old/api.h", opts.BaseHeader)
	assert.Equal(t, "new/api.h", opts.HeadHeader)
	assert.Equal(t, "html", opts.ReportFormat)
	assert.Equal(t, []string{"/usr/include"}, opts.IncludeDirs)
	assert.Equal(t, 4, opts.Workers)
}
