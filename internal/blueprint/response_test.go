package blueprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"apidoc2blue/internal/model"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Integer", "number"},
		{"bigint", "number"},
		{"INT", "number"},
		{"Bool", "boolean"},
		{"DateTime", "string"},
		{"date", "string"},
		{"xlsx", "string"},
		{"File", "string"},
		{"String", "string"},
		{"Object[]", "object[]"},
		{"Number", "number"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeType(tt.in), "NormalizeType(%q)", tt.in)
	}
}

func TestStripLabel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"200 OK", "OK"},
		{"Success 200", "200"},
		{"Error 4xx", "4xx"},
		{"OK", "OK"},
		{"a b c", "c"},
		{"Created 201 ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripLabel(tt.in), "StripLabel(%q)", tt.in)
	}
}

func TestRenderAttributes(t *testing.T) {
	fields := []model.AttributeField{
		{Field: "code", Type: "Number", Description: "status"},
		{Field: "data.user.id", Type: "Integer", Description: "id"},
		{Field: "data.list", Type: "Object[]", Description: "items"},
	}

	expected := strings.Join([]string{
		strings.Repeat(" ", 8) + "+ code (number) - status",
		strings.Repeat(" ", 16) + "+ id (number) - id",
		strings.Repeat(" ", 12) + "+ list (object[]) - items",
	}, "\n")

	assert.Equal(t, expected, RenderAttributes(fields, Options{}))
	assert.Equal(t, "", RenderAttributes(nil, Options{}))
}

func TestRenderAttributesDepthIgnoresMissingParents(t *testing.T) {
	// "data" and "data.user" are not listed; depth still follows the path
	out := RenderAttributes([]model.AttributeField{{Field: "data.user.id", Type: "Integer", Description: "id"}}, Options{})
	assert.Equal(t, strings.Repeat("    ", 4)+"+ id (number) - id", out)
}

func TestRenderAttributesLegacyDescription(t *testing.T) {
	out := RenderAttributes([]model.AttributeField{{Field: "id"}}, Options{LegacyUndefined: true})
	assert.Equal(t, "        + id () - undefined", out)
}

func TestRenderExamples(t *testing.T) {
	assert.Equal(t, "    + Body\n", RenderExamples(nil))
	assert.Equal(t, "    + Body\n", RenderExamples([]model.Example{}))

	examples := []model.Example{{Content: "a\nb"}, {Content: "c"}}
	assert.Equal(t, "    + Body\n\n        a\n        b\n        c", RenderExamples(examples))
}

func TestRenderResponseItem(t *testing.T) {
	spec := model.NewResponseSpec().
		AddGroup("200 OK", []model.AttributeField{{Field: "code", Type: "Number", Description: "c"}})
	spec.Examples = []model.Example{{Content: "{\n}"}}

	expected := "+ Response OK\n" +
		"\n    + Attributes (object)\n\n        + code (number) - c" +
		"\n\n    + Body\n\n        {\n        }"

	assert.Equal(t, expected, RenderResponseItem(spec, Options{}))
}

func TestRenderResponseItemGroupOrder(t *testing.T) {
	spec := model.NewResponseSpec().
		AddGroup("Success 200", nil).
		AddGroup("Accepted 202", nil)

	expected := "+ Response 200\n" +
		"\n    + Attributes (object)\n\n" +
		"\n+ Response 202\n" +
		"\n    + Attributes (object)\n\n" +
		"\n\n    + Body\n"

	assert.Equal(t, expected, RenderResponseItem(spec, Options{}))
}

func TestRenderResponseItemWithoutFields(t *testing.T) {
	assert.Equal(t, "\n\n    + Body\n", RenderResponseItem(&model.ResponseSpec{}, Options{}))
	assert.Equal(t, "\n\n    + Body\n", RenderResponseItem(model.NewResponseSpec(), Options{}))
}

func TestRenderResponses(t *testing.T) {
	success := model.NewResponseSpec().AddGroup("200 OK", nil)
	failure := model.NewResponseSpec().AddGroup("Error 4xx", nil)

	successOut := RenderResponseItem(success, Options{})
	failureOut := RenderResponseItem(failure, Options{})

	tests := []struct {
		name     string
		endpoint model.Endpoint
		expected string
	}{
		{"none", model.Endpoint{}, ""},
		{"success only", model.Endpoint{Success: success}, successOut},
		{"error only", model.Endpoint{Error: failure}, failureOut},
		{"both", model.Endpoint{Success: success, Error: failure}, successOut + "\n\n" + failureOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderResponses(&tt.endpoint, Options{}))
		})
	}

	assert.Contains(t, failureOut, "+ Response 4xx\n")
}
