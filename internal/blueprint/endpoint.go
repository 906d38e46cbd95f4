package blueprint

import (
	"regexp"
	"strings"

	"apidoc2blue/internal/model"
)

// trailingParamRegex matches a final ":name" path segment
var trailingParamRegex = regexp.MustCompile(`:(\w+)$`)

// defaultValueLabel is the fixed label shown before a parameter default
const defaultValueLabel = " 默认值是："

// RenderEndpoint renders the title, parameters and responses of one endpoint
func RenderEndpoint(endpoint *model.Endpoint, opts Options) string {
	return strings.Join([]string{
		RenderTitle(endpoint),
		RenderParameters(endpoint, opts),
		RenderResponses(endpoint, opts),
	}, "\n\n")
}

// RenderTitle renders "# METHOD /path" followed by the title and description
func RenderTitle(endpoint *model.Endpoint) string {
	method := strings.ToUpper(endpoint.Type)
	path := NormalizePath(endpoint.URL)

	return "# " + method + " " + path + "\n\n" + endpoint.Title + endpoint.Description
}

// NormalizePath ensures a leading slash and converts a trailing ":name"
// segment to the Blueprint "{name}" form. Interior segments are left as is.
func NormalizePath(url string) string {
	path := url
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return trailingParamRegex.ReplaceAllString(path, "{${1}}")
}

// RenderParameters renders the "+ Parameters" list. The header line is
// always present, even without parameters.
func RenderParameters(endpoint *model.Endpoint, opts Options) string {
	lines := []string{"+ Parameters\n"}

	for _, param := range endpoint.Params() {
		lines = append(lines, renderParameter(param, opts))
	}

	return strings.Join(lines, "\n")
}

func renderParameter(param model.ParameterField, opts Options) string {
	var sb strings.Builder

	sb.WriteString("    + ")
	sb.WriteString(strings.Replace(param.Field, ":", "", 1))
	sb.WriteString(" (")
	sb.WriteString(strings.ToLower(param.Type))
	if param.Optional {
		sb.WriteString(", optional")
	}
	sb.WriteString(") ... ")
	sb.WriteString(opts.value(param.Description))

	if param.DefaultValue != "" {
		sb.WriteString("\n")
		sb.WriteString(defaultValueLabel)
		sb.WriteString("<code>" + param.DefaultValue + "</code>")
	}

	return sb.String()
}
