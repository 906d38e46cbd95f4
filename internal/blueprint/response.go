package blueprint

import (
	"regexp"
	"strings"

	"apidoc2blue/internal/model"
)

// labelWordRegex matches every "word + whitespace" run of a response group label
var labelWordRegex = regexp.MustCompile(`\w+\s+`)

const (
	attributeIndent = "    "
	exampleIndent   = "        "
)

// typeMap maps apiDoc type tokens to Blueprint/JSON schema types
var typeMap = map[string]string{
	"integer":  "number",
	"bigint":   "number",
	"int":      "number",
	"bool":     "boolean",
	"datetime": "string",
	"date":     "string",
	"xlsx":     "string",
	"file":     "string",
}

// RenderResponses renders the success and error definitions of an endpoint.
// Absent definitions contribute nothing.
func RenderResponses(endpoint *model.Endpoint, opts Options) string {
	var parts []string

	if endpoint.Success != nil {
		parts = append(parts, RenderResponseItem(endpoint.Success, opts))
	}
	if endpoint.Error != nil {
		parts = append(parts, RenderResponseItem(endpoint.Error, opts))
	}

	return strings.Join(parts, "\n\n")
}

// RenderResponseItem renders every response group of a definition followed by its body examples
func RenderResponseItem(spec *model.ResponseSpec, opts Options) string {
	var entries []string

	if spec.Fields != nil {
		for pair := spec.Fields.Oldest(); pair != nil; pair = pair.Next() {
			entries = append(entries, "+ Response "+StripLabel(pair.Key)+"\n")
			entries = append(entries, attributeIndent+"+ Attributes (object)\n\n"+RenderAttributes(pair.Value, opts))
		}
	}

	return strings.Join(entries, "\n") + "\n\n" + RenderExamples(spec.Examples)
}

// StripLabel removes every "word + whitespace" run from a group label ("200 OK" becomes "OK")
func StripLabel(label string) string {
	return labelWordRegex.ReplaceAllString(label, "")
}

// RenderAttributes renders dotted-path fields as an indented attribute tree.
// Depth comes from the number of path segments only; fields keep input order.
func RenderAttributes(fields []model.AttributeField, opts Options) string {
	lines := make([]string, 0, len(fields))

	for _, field := range fields {
		segments := strings.Split(field.Field, ".")
		name := segments[len(segments)-1]
		indent := strings.Repeat(attributeIndent, len(segments)+1)

		lines = append(lines, indent+"+ "+name+" ("+NormalizeType(field.Type)+") - "+opts.value(field.Description))
	}

	return strings.Join(lines, "\n")
}

// NormalizeType lower-cases an apiDoc type and maps it to its Blueprint equivalent.
// Unknown types pass through lower-cased.
func NormalizeType(typ string) string {
	lower := strings.ToLower(typ)
	if mapped, ok := typeMap[lower]; ok {
		return mapped
	}
	return lower
}

// RenderExamples renders the "+ Body" block. The header is emitted even without examples.
func RenderExamples(examples []model.Example) string {
	blocks := []string{attributeIndent + "+ Body\n"}

	for _, example := range examples {
		blocks = append(blocks, indentLines(example.Content, exampleIndent))
	}

	return strings.Join(blocks, "\n")
}

func indentLines(content, indent string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
