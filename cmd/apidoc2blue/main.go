package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"apidoc2blue/internal/app"
	"apidoc2blue/internal/config"
	"apidoc2blue/internal/exporter"
	"apidoc2blue/internal/logger"
)

const (
	appName = "apidoc2blue"
	appDesc = "Convert apiDoc JSON output into an API Blueprint document"
	logName = "apidoc2blue.log"
)

// These variables are set at build time through ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	inputDir   string
	outputDir  string
	formats    string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: appDesc,
		Long: `apidoc2blue reads the api_data.json and api_project.json files written by
apiDoc and renders them as an API Blueprint (FORMAT: 1A) document. The same
data can also be exported as an Excel workbook, an HTML report or a Word file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, out)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Disable progress bars")
	rootCmd.Flags().StringVarP(&opts.inputDir, "input", "i", "", "Override apiDoc input directory from config")
	rootCmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Override output directory from config")
	rootCmd.Flags().StringVarP(&opts.formats, "format", "f", "", "Comma-separated output formats (blueprint,excel,html,word)")

	rootCmd.AddCommand(newVersionCmd(out), newInitCmd(out))
	return rootCmd
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apidoc2blue",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "%s version %s\n", appName, version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built at: %s\n", date)
		},
	}
}

func newInitCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote default configuration to %s\n", path)
			return nil
		},
	}
}

func run(cmd *cobra.Command, opts *rootOptions, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Failed to load configuration: %v\n", err)
		return err
	}

	if opts.inputDir != "" {
		if cfg.Input.Dir, err = filepath.Abs(opts.inputDir); err != nil {
			return err
		}
	}
	if opts.outputDir != "" {
		if cfg.Output.Dir, err = filepath.Abs(opts.outputDir); err != nil {
			return err
		}
	}
	if opts.formats != "" {
		cfg.Output.Formats = exporter.SplitFormats(opts.formats)
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return err
	}

	logPath := filepath.Join(cfg.Output.Dir, logName)
	if err := logger.Init(out, logPath, opts.verbose); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Failed to initialize logger: %v\n", err)
		return err
	}
	defer logger.Close()

	if opts.verbose {
		cfg.Print(out)
	}

	if err := app.Run(cfg, app.Options{Quiet: opts.quiet, Progress: out}); err != nil {
		logger.Error("Conversion failed: %v", err)
		return err
	}

	logger.Info("✅ Conversion complete. Check [%s] directory.", cfg.Output.Dir)
	return nil
}
