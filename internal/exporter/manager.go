package exporter

import (
	"strings"

	"apidoc2blue/internal/exporter/apib"
	"apidoc2blue/internal/exporter/html"
	"apidoc2blue/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats.
// Unknown names are skipped and duplicates (including aliases) collapse.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		name := canonicalFormat(fmtStr)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case "blueprint":
			exporters = append(exporters, apib.NewBlueprintExporter())
		case "excel":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word":
			exporters = append(exporters, word.NewWordExporter())
		}
	}

	return exporters
}

// SplitFormats parses a comma-separated format list ("blueprint, excel")
func SplitFormats(list string) []string {
	var formats []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func canonicalFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "blueprint", "apib", "md", "markdown":
		return "blueprint"
	case "excel", "xlsx":
		return "excel"
	case "html":
		return "html"
	case "word", "docx":
		return "word"
	}
	return ""
}
