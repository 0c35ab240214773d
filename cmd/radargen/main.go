// Package main provides the CLI entry point for radargen.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radargen/radargen/internal/config"
	"github.com/radargen/radargen/internal/logging"
	"github.com/radargen/radargen/pkg/radar"
	"github.com/radargen/radargen/pkg/radar/models"
	"github.com/radargen/radargen/pkg/radar/output"
	"github.com/radargen/radargen/pkg/radar/source"
)

var (
	sheetName   string
	apiKey      string
	credentials string
	outputPath  string
	pretty      bool
	height      int
	pickSheet   bool
	verbose     bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radargen [source]",
		Short: "Build technology radar JSON from spreadsheet data",
		Long: `radargen ingests technology radar rows from a Google Sheets document,
a CSV or JSON file, or a local Excel workbook, validates them against the
radar format and emits the assembled radar as JSON for the plot renderer.

The source argument is a Google Sheets URL or id, or a path or URL ending
in .csv, .json or .xlsx. When omitted, source.reference from the
configuration file is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet tab to read (default: first tab)")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Google Sheets API key for public documents")
	rootCmd.Flags().StringVar(&credentials, "credentials", "", "Service account key file for protected documents")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&height, "height", 0, "Viewport height in pixels for the canvas size hint")
	rootCmd.Flags().BoolVar(&pickSheet, "pick-sheet", false, "Pick the sheet tab interactively when the document has several")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newInitCmd())

	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			printError("%v", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	ref := cfg.Source.Reference
	if len(args) > 0 {
		ref = args[0]
	}
	if ref == "" {
		return errors.New("no source given: pass a sheet URL or id, or a .csv/.json/.xlsx path")
	}
	if sheetName == "" {
		sheetName = cfg.Source.SheetName
	}
	if !cmd.Flags().Changed("pretty") {
		pretty = cfg.Output.Pretty
	}
	if !cmd.Flags().Changed("height") {
		height = cfg.Output.ViewportHeight
	}

	srcCfg, err := buildSourceConfig(ctx, cfg)
	if err != nil {
		return err
	}

	desc := source.Resolve(ref, sheetName, srcCfg.TokenSource != nil)
	src, err := source.New(desc, srcCfg)
	if err != nil {
		return err
	}

	opts := radar.Options{Logger: logger}
	r, err := radar.Build(ctx, src, opts)
	if err != nil {
		return presentError(err)
	}

	// Offer the other tabs of a multi-tab document and rebuild on a switch.
	if pickSheet && len(r.AlternativeSheetNames) > 1 {
		choice, err := pickSheetTab(r.CurrentSheetName, r.AlternativeSheetNames)
		if err != nil {
			return err
		}
		if choice != r.CurrentSheetName {
			desc.SheetName = choice
			src, err = source.New(desc, srcCfg)
			if err != nil {
				return err
			}
			r, err = radar.Build(ctx, src, opts)
			if err != nil {
				return presentError(err)
			}
		}
	} else if pickSheet {
		printWarning("source has no other sheet tabs; nothing to pick")
	}

	w := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	renderer := &output.JSONRenderer{W: w, Pretty: pretty}
	if err := renderer.Render(output.CanvasSize(height), r); err != nil {
		return fmt.Errorf("failed to write radar: %w", err)
	}

	entries := 0
	for _, q := range r.Quadrants {
		entries += len(q.Entries)
	}
	printSuccess("radar %q built: %d entries, %d quadrants, %d rings",
		r.Title, entries, len(r.Quadrants), len(r.Rings))
	if len(r.AlternativeSheetNames) > 1 && !pickSheet {
		printInfo("document has %d sheet tabs; pass --sheet or --pick-sheet to read another",
			len(r.AlternativeSheetNames))
	}
	return nil
}

// buildSourceConfig assembles the adapter dependencies from flags and
// configuration, loading service account credentials when configured.
func buildSourceConfig(ctx context.Context, cfg *config.Config) (source.Config, error) {
	key := apiKey
	if key == "" {
		key = cfg.Google.APIKey
	}
	credsFile := credentials
	if credsFile == "" {
		credsFile = cfg.Google.CredentialsFile
	}

	srcCfg := source.Config{APIKey: key}
	if credsFile != "" {
		ts, account, err := source.CredentialsFromFile(ctx, credsFile)
		if err != nil {
			return source.Config{}, err
		}
		srcCfg.TokenSource = ts
		srcCfg.Account = account
	}
	return srcCfg, nil
}

// presentError shows a classified build failure and marks it reported.
func presentError(err error) error {
	cls := models.Classify(err)
	switch cls.Kind {
	case models.KindUnauthorized:
		printError("%s", cls.Message)
		if cls.Account != "" {
			printInfo("denied account: %s", cls.Account)
		}
		printInfo("pass --credentials with an account that can read the document to re-authorize")
	case models.KindUnknown:
		logger.Error("radar build failed", zap.Error(err))
		printError("%s", cls.Message)
	default:
		printError("%s", cls.Message)
	}
	return &reportedError{err: err}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  `init creates .radargen/config.yaml in the current directory with defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.SaveDefault(".")
			if err != nil {
				return err
			}
			printSuccess("wrote %s", path)
			return nil
		},
	}
}
