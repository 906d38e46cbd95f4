// Package app runs the apidoc2blue pipeline: load the apiDoc JSON files,
// then hand the document to every configured exporter.
package app

import (
	"fmt"
	"io"
	"os"

	"apidoc2blue/internal/config"
	"apidoc2blue/internal/exporter"
	"apidoc2blue/internal/logger"
	"apidoc2blue/internal/source"
	"apidoc2blue/internal/ui"
)

// Options controls the console side of a run
type Options struct {
	// Quiet disables the progress bars
	Quiet bool

	// Progress receives the progress bars, os.Stdout when nil
	Progress io.Writer
}

// Run converts the configured inputs and writes every requested format.
// Exporters run independently; the first load error aborts the run.
func Run(cfg *config.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}

	exporters := exporter.GetExporters(cfg.Output.Formats)
	if len(exporters) == 0 {
		return fmt.Errorf("no known output format in %v", cfg.Output.Formats)
	}

	output := opts.Progress
	if output == nil {
		output = os.Stdout
	}
	pipeline := ui.NewPipelineWithOutput([]ui.Phase{ui.PhaseLoading, ui.PhaseWriting}, output)
	if opts.Quiet {
		pipeline.Disable()
	}

	// --- Phase 1: Loading ---
	logger.Info("Phase 1: Loading apiDoc files...")
	loadBar := pipeline.NextPhase(1)

	doc, err := source.LoadDocument(cfg.DataPath(), cfg.ProjectPath(), cfg.Input.Encoding)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	loadBar.Increment()
	logger.Info("Loaded %s", doc)

	// --- Phase 2: Writing ---
	logger.Info("Phase 2: Writing %d format(s)...", len(exporters))
	writeBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		writeBar.Describe(exp.Name())
		if err := exp.Export(doc, cfg); err != nil {
			logger.Error("Export %s failed: %v", exp.Name(), err)
			exportErrors = append(exportErrors, err)
		} else {
			logger.Debug("Export %s done", exp.Name())
		}
		writeBar.Increment()
	}
	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}
