package word

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"apidoc2blue/internal/blueprint"
	"apidoc2blue/internal/config"
	"apidoc2blue/internal/model"

	"github.com/nguyenthenguyen/docx"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Name() string {
	return "word"
}

func (e *WordExporter) Export(doc *model.Document, cfg *config.Config) error {
	templatePath, err := writeTemplate()
	if err != nil {
		return err
	}
	defer os.Remove(templatePath)

	r, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	editable := r.Editable()

	title, host := "", ""
	endpointCount := 0
	if doc != nil {
		if doc.Project != nil {
			title, host = doc.Project.Title, doc.Project.URL
		}
		endpointCount = len(doc.Endpoints)
	}
	if title == "" {
		title = "API Specification"
	}

	// The docx library handles the XML encoding
	editable.Replace(placeholderTitle, title, -1)
	editable.Replace(placeholderHost, host, -1)
	editable.Replace(placeholderDate, time.Now().Format("2006-01-02"), -1)
	editable.Replace(placeholderEndpoints, strconv.Itoa(endpointCount), -1)

	content := blueprint.ConvertDocument(doc, blueprint.Options{LegacyUndefined: cfg.Convert.LegacyUndefined})
	editable.Replace(placeholderContent, content, -1)

	outFile := cfg.GetOutputPath(".docx")
	if err := editable.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}
