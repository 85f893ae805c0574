// Package config resolves the CLI's flag surface into a typed Options value
// (via viper, bound in cmd/armor) and loads the YAML exclusion-list file
// spec.md §6 lets a run pass with --exclusions (O2).
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Options is the fully resolved set of run parameters, independent of how
// they were supplied (flag, config file, or default).
type Options struct {
	BaseHeader     string
	HeadHeader     string
	HeaderDir      string
	ReportFormat   string
	ResourcePath   string
	IncludeDirs    []string
	Macros         []string
	ExclusionsFile string
	DumpASTDiff    bool
	LogLevel       string
	Workers        int
}

// Default report/log settings, used as the defaults of the --report and
// --log-level flags. FromViper applies no fallback of its own: an empty
// bound value stays empty.
const (
	DefaultReportFormat = "html"
	DefaultLogLevel     = "log"
)

// FromViper reads every bound key back out of v into an Options value.
func FromViper(v *viper.Viper) Options {
	return Options{
		BaseHeader:     v.GetString("base"),
		HeadHeader:     v.GetString("head"),
		HeaderDir:      v.GetString("header-dir"),
		ReportFormat:   v.GetString("report"),
		ResourcePath:   v.GetString("resource-path"),
		IncludeDirs:    v.GetStringSlice("include"),
		Macros:         v.GetStringSlice("define"),
		ExclusionsFile: v.GetString("exclusions"),
		DumpASTDiff:    v.GetBool("dump-ast-diff"),
		LogLevel:       v.GetString("log-level"),
		Workers:        v.GetInt("workers"),
	}
}

// exclusionsFile is the on-disk shape of an exclusion list:
//
//	exclusions:
//	  - Legacy.internalHelper
//	  - Device.debugField
type exclusionsFile struct {
	Exclusions []string `yaml:"exclusions"`
}

// LoadExclusions reads and parses a YAML exclusion-list file. An empty path
// is not an error — it means the run has no exclusions.
func LoadExclusions(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading exclusions file %s: %w", path, err)
	}

	var parsed exclusionsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: parsing exclusions file %s: %w", path, err)
	}
	return parsed.Exclusions, nil
}
