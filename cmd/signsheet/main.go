// Package main provides the CLI entry point for signsheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/signsheet-go/pkg/signsheet"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/config"
)

// flags holds the command-line values.
type flags struct {
	input      string
	event      string
	date       string
	titleFont  float64
	cellFont   float64
	nonMember  int
	outputDir  string
	sortBy     string
	filter     string
	xlsx       bool
	configPath string
	logLevel   string
	logFormat  string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	defaults := signsheet.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "signsheet -i attendees.csv",
		Short: "Create sign-in sheets for chapter events",
		Long: `signsheet turns a CSV attendee list into a printable sign-in PDF.
Attendees are sorted and listed with a signature column, followed by
blank pages for walk-ins who are not on the list.`,
		Example: `  signsheet -i members.csv -e "Fall Social" -d 2026-10-16
  signsheet -i members.csv -o out --xlsx --filter 'record["Member Status"] == "Active"'
  signsheet -i members.csv -c signsheet.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd, &f)
		},
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Path to the attendee CSV file")
	fl.StringVarP(&f.event, "event", "e", defaults.Event, "Name of the event")
	fl.StringVarP(&f.date, "date", "d", defaults.Date, "Date of the event")
	fl.Float64Var(&f.titleFont, "title-font", defaults.Style.TitleFontSize, "Title font size")
	fl.Float64Var(&f.cellFont, "cell-font", defaults.Style.CellFontSize, "Cell font size")
	fl.IntVarP(&f.nonMember, "non-member", "n", defaults.SupplementalPages, "Number of blank walk-in pages")
	fl.StringVarP(&f.outputDir, "output", "o", defaults.OutputDir, "Output directory of the sign-in sheet")
	fl.StringVarP(&f.sortBy, "sort-by", "s", defaults.SortBy, "Column to sort attendees by")
	fl.StringVar(&f.filter, "filter", "", "Only list attendees matching this expression")
	fl.BoolVar(&f.xlsx, "xlsx", false, "Also write a spreadsheet copy of the sheet")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", config.FormatConsole, "Log format: console or json")
	fl.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	_ = rootCmd.MarkFlagRequired("input")

	return rootCmd
}

func run(cmd *cobra.Command, f *flags) error {
	opts := signsheet.DefaultOptions()
	logLevel, logFormat := f.logLevel, f.logFormat

	// Config file first; explicitly set flags override it.
	if f.configPath != "" {
		file, err := config.Load(f.configPath)
		if err != nil {
			return err
		}
		file.Apply(&opts)
		if file.Logging.Level != "" && !cmd.Flags().Changed("log-level") {
			logLevel = file.Logging.Level
		}
		if file.Logging.Format != "" && !cmd.Flags().Changed("log-format") {
			logFormat = file.Logging.Format
		}
	}
	if err := applyFlags(cmd, f, &opts); err != nil {
		return err
	}
	if f.debug {
		logLevel = "debug"
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	opts.Logger = &logger

	result, err := signsheet.Generate(f.input, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.PDFPath)
	if result.XLSXPath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.XLSXPath)
	}
	return nil
}

// applyFlags copies flags the user set onto opts.
func applyFlags(cmd *cobra.Command, f *flags, opts *signsheet.Options) error {
	changed := cmd.Flags().Changed

	if changed("event") {
		opts.Event = f.event
	}
	if changed("date") {
		opts.Date = f.date
	}
	if changed("title-font") {
		if f.titleFont <= 0 {
			return fmt.Errorf("title-font must be > 0, got %g", f.titleFont)
		}
		opts.Style.TitleFontSize = f.titleFont
	}
	if changed("cell-font") {
		if f.cellFont <= 0 {
			return fmt.Errorf("cell-font must be > 0, got %g", f.cellFont)
		}
		opts.Style.CellFontSize = f.cellFont
	}
	if changed("non-member") {
		if f.nonMember < 0 {
			return fmt.Errorf("non-member must be >= 0, got %d", f.nonMember)
		}
		opts.SupplementalPages = f.nonMember
	}
	if changed("output") {
		opts.OutputDir = f.outputDir
	}
	if changed("sort-by") {
		opts.SortBy = f.sortBy
	}
	if changed("filter") {
		opts.Filter = f.filter
	}
	if changed("xlsx") {
		opts.XLSX = f.xlsx
	}
	return nil
}
