// Command armor compares a base and head revision of a C header (or a
// directory of headers) and reports the backward-compatibility impact of
// every declaration that changed between them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/armor-abi/armor/internal/armorlog"
	"github.com/armor-abi/armor/internal/config"
	"github.com/armor-abi/armor/internal/frontend"
	"github.com/armor-abi/armor/internal/orchestrate"
	"github.com/armor-abi/armor/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "armor <base-header> <head-header>",
		Short: "Compare two revisions of a C header for backward compatibility",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments and flags are valid by now; run logs its own errors,
			// so cobra prints neither the usage nor the error again.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			v.Set("base", args[0])
			v.Set("head", args[1])
			return run(cmd, config.FromViper(v))
		},
	}

	flags := cmd.Flags()
	flags.String("header-dir", "", "directory holding the base and head header directories; every header in the base directory is compared with its same-named head counterpart")
	flags.StringP("report", "r", config.DefaultReportFormat, "report format: html or json (json implies both HTML and JSON outputs)")
	flags.StringP("resource-path", "p", "", "resource path forwarded to the parsing front end")
	flags.StringSliceP("include", "I", nil, "additional include directory (repeatable)")
	flags.StringSliceP("define", "m", nil, "additional macro definition (repeatable)")
	flags.String("exclusions", "", "YAML file listing qualified names excluded from the report")
	flags.Bool("dump-ast-diff", false, "additionally write the raw diff tree to ast_diff_output_<header>.json")
	flags.String("log-level", config.DefaultLogLevel, "log level: error, log, info, or debug")
	flags.Int("workers", runtime.NumCPU(), "number of headers to compare concurrently")

	_ = v.BindPFlag("header-dir", flags.Lookup("header-dir"))
	_ = v.BindPFlag("report", flags.Lookup("report"))
	_ = v.BindPFlag("resource-path", flags.Lookup("resource-path"))
	_ = v.BindPFlag("include", flags.Lookup("include"))
	_ = v.BindPFlag("define", flags.Lookup("define"))
	_ = v.BindPFlag("exclusions", flags.Lookup("exclusions"))
	_ = v.BindPFlag("dump-ast-diff", flags.Lookup("dump-ast-diff"))
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = v.BindPFlag("workers", flags.Lookup("workers"))

	return cmd
}

func run(cmd *cobra.Command, opts config.Options) error {
	log := armorlog.New(cmd.ErrOrStderr(), opts.LogLevel)

	excluded, err := config.LoadExclusions(opts.ExclusionsFile)
	if err != nil {
		log.Error("failed to load exclusions", "error", err)
		return err
	}

	jobs, err := buildJobs(opts)
	if err != nil {
		log.Error("failed to resolve header jobs", "error", err)
		return err
	}

	results := orchestrate.Run(cmd.Context(), jobs, orchestrate.Options{
		Workers: opts.Workers,
		Excluded: excluded,
		Frontend: frontend.Options{
			IncludeDirs:  opts.IncludeDirs,
			Macros:       opts.Macros,
			ResourcePath: opts.ResourcePath,
		},
		Log: log,
	})

	for _, r := range results {
		if r.Err != nil {
			// A header pair that fails to parse is skipped; it does not
			// fail the run.
			log.Log("skipping header: comparison failed", "header", r.Job.Name, "error", r.Err)
			continue
		}
		if err := writeJobReports(r, opts); err != nil {
			log.Error("failed to write report", "header", r.Job.Name, "error", err)
			return err
		}
	}
	return nil
}

// writeJobReports writes one header job's output files to the working
// directory, per spec.md §6's "Output files" table: api_diff_report_<header>
// .html is always written, the .json sibling is written when --report json
// was requested (json implies both HTML and JSON), and ast_diff_output_
// <header>.json carries the raw diff tree when --dump-ast-diff is set.
func writeJobReports(r orchestrate.Result, opts config.Options) error {
	rows := report.GroupChanges(r.Changes)

	htmlPath := fmt.Sprintf("api_diff_report_%s.html", r.Job.Name)
	htmlFile, err := os.Create(htmlPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", htmlPath, err)
	}
	defer htmlFile.Close()
	if err := report.WriteHTML(htmlFile, rows); err != nil {
		return err
	}

	if opts.ReportFormat == "json" {
		jsonPath := fmt.Sprintf("api_diff_report_%s.json", r.Job.Name)
		jsonFile, err := os.Create(jsonPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", jsonPath, err)
		}
		defer jsonFile.Close()
		if err := report.WriteJSON(jsonFile, rows); err != nil {
			return err
		}
	}

	if opts.DumpASTDiff {
		astPath := fmt.Sprintf("ast_diff_output_%s.json", r.Job.Name)
		astFile, err := os.Create(astPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", astPath, err)
		}
		defer astFile.Close()
		enc := json.NewEncoder(astFile)
		enc.SetIndent("", "    ")
		if err := enc.Encode(r.Records); err != nil {
			return fmt.Errorf("encoding %s: %w", astPath, err)
		}
	}

	return nil
}

// buildJobs turns the resolved CLI arguments into one HeaderJob per header
// under comparison. A single base/head header pair is the common case; when
// --header-dir is set, base and head name directories and every header
// found under the base directory is paired by filename.
func buildJobs(opts config.Options) ([]orchestrate.HeaderJob, error) {
	if opts.HeaderDir == "" {
		name := filepath.Base(opts.BaseHeader)
		return []orchestrate.HeaderJob{{
			Name:           name,
			BaseHeaderPath: opts.BaseHeader,
			HeadHeaderPath: opts.HeadHeader,
		}}, nil
	}

	baseDir := filepath.Join(opts.HeaderDir, opts.BaseHeader)
	headDir := filepath.Join(opts.HeaderDir, opts.HeadHeader)

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("reading header directory %s: %w", baseDir, err)
	}

	var jobs []orchestrate.HeaderJob
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		jobs = append(jobs, orchestrate.HeaderJob{
			Name:           entry.Name(),
			BaseHeaderPath: filepath.Join(baseDir, entry.Name()),
			HeadHeaderPath: filepath.Join(headDir, entry.Name()),
		})
	}
	return jobs, nil
}
