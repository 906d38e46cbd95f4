package apib

import (
	"fmt"
	"os"

	"apidoc2blue/internal/blueprint"
	"apidoc2blue/internal/config"
	"apidoc2blue/internal/logger"
	"apidoc2blue/internal/model"
)

// Extension of API Blueprint files
const Extension = ".apib"

// BlueprintExporter writes the converted document as an API Blueprint file
type BlueprintExporter struct{}

func NewBlueprintExporter() *BlueprintExporter {
	return &BlueprintExporter{}
}

func (e *BlueprintExporter) Name() string {
	return "blueprint"
}

func (e *BlueprintExporter) Export(doc *model.Document, cfg *config.Config) error {
	opts := blueprint.Options{LegacyUndefined: cfg.Convert.LegacyUndefined}
	text := blueprint.ConvertDocument(doc, opts)

	outputFile := cfg.GetOutputPath(Extension)
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write blueprint: %w", err)
	}

	logger.Debug("Wrote %d bytes to %s", len(text), outputFile)
	return nil
}
