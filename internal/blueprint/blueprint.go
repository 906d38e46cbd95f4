// Package blueprint renders apiDoc project metadata and endpoint descriptions
// as an API Blueprint (FORMAT: 1A) markdown document.
//
// Every renderer is a pure function over the model types: no state is kept
// between calls and the same input always produces the same text.
package blueprint

import (
	"strings"

	"apidoc2blue/internal/model"
)

const formatHeader = "FORMAT: 1A\n\n"

// undefinedValue is what the legacy renderer prints for missing values
const undefinedValue = "undefined"

// Options controls rendering details that differ from the plain conversion
type Options struct {
	// LegacyUndefined prints "undefined" for missing project values and
	// missing field descriptions, as apidoc2blue 1.x did.
	LegacyUndefined bool
}

// value returns s, or the legacy placeholder when s is empty and the option is set
func (o Options) value(s string) string {
	if s == "" && o.LegacyUndefined {
		return undefinedValue
	}
	return s
}

// Convert renders a complete Blueprint document with default options.
// project may be nil and endpoints may be empty.
func Convert(project *model.Project, endpoints []model.Endpoint) string {
	return ConvertWithOptions(project, endpoints, Options{})
}

// ConvertWithOptions renders a complete Blueprint document
func ConvertWithOptions(project *model.Project, endpoints []model.Endpoint, opts Options) string {
	var sb strings.Builder

	sb.WriteString(formatHeader)
	sb.WriteString(RenderProject(project, opts))
	sb.WriteString("\n\n")

	for i := range endpoints {
		sb.WriteString(RenderEndpoint(&endpoints[i], opts))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// ConvertDocument is a convenience wrapper over ConvertWithOptions
func ConvertDocument(doc *model.Document, opts Options) string {
	if doc == nil {
		return ConvertWithOptions(nil, nil, opts)
	}
	return ConvertWithOptions(doc.Project, doc.Endpoints, opts)
}

// RenderProject renders the preamble: host, title, description and the
// optional header/footer sections, separated by blank lines.
func RenderProject(project *model.Project, opts Options) string {
	if project == nil {
		return ""
	}

	host := "HOST: " + opts.value(project.URL)
	title := "# " + opts.value(project.Title)
	description := opts.value(project.Description)
	header := renderSection(project.Header, opts)
	footer := renderSection(project.Footer, opts)

	return strings.Join([]string{host, title, description, header, footer}, "\n\n")
}

func renderSection(section *model.Section, opts Options) string {
	if section == nil {
		return ""
	}
	return "## " + opts.value(section.Title) + "\n\n" + opts.value(section.Content)
}
