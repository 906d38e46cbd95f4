package exporter

import (
	"apidoc2blue/internal/config"
	"apidoc2blue/internal/model"
)

// Exporter is the unified interface for all output formats
type Exporter interface {
	// Name identifies the exporter in logs
	Name() string
	Export(doc *model.Document, cfg *config.Config) error
}
