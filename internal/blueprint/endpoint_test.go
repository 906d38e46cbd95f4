package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apidoc2blue/internal/model"
)

func paramsOf(fields ...model.ParameterField) *model.ParameterSection {
	return &model.ParameterSection{
		Fields: map[string][]model.ParameterField{model.DefaultParameterGroup: fields},
	}
}

func TestRenderTitle(t *testing.T) {
	tests := []struct {
		name     string
		endpoint model.Endpoint
		expected string
	}{
		{"relative path with param", model.Endpoint{Type: "get", URL: "user/:id"}, "# GET /user/{id}\n\n"},
		{"absolute path", model.Endpoint{Type: "Post", URL: "/user"}, "# POST /user\n\n"},
		{"title only", model.Endpoint{Type: "get", URL: "/a", Title: "List"}, "# GET /a\n\nList"},
		{"title and description concatenated", model.Endpoint{Type: "get", URL: "/a", Title: "List", Description: "<p>All</p>"}, "# GET /a\n\nList<p>All</p>"},
		{"description only", model.Endpoint{Type: "delete", URL: "/a", Description: "Gone"}, "# DELETE /a\n\nGone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderTitle(&tt.endpoint))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"user/:id", "/user/{id}"},
		{"/user/:id", "/user/{id}"},
		{"/user/:id/posts", "/user/:id/posts"},
		{"/user/:id/posts/:post_id", "/user/:id/posts/{post_id}"},
		{"/user", "/user"},
		{"user", "/user"},
		{"", "/"},
		{"/", "/"},
		{"/user/:", "/user/:"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizePath(tt.in), "NormalizePath(%q)", tt.in)
	}
}

func TestRenderParameters(t *testing.T) {
	tests := []struct {
		name     string
		endpoint model.Endpoint
		opts     Options
		expected string
	}{
		{
			name:     "no parameter section",
			endpoint: model.Endpoint{},
			expected: "+ Parameters\n",
		},
		{
			name:     "section without default group",
			endpoint: model.Endpoint{Parameter: &model.ParameterSection{Fields: map[string][]model.ParameterField{"Header": {{Field: "token"}}}}},
			expected: "+ Parameters\n",
		},
		{
			name:     "optional path parameter",
			endpoint: model.Endpoint{Parameter: paramsOf(model.ParameterField{Field: ":id", Type: "Number", Optional: true, Description: "user id"})},
			expected: "+ Parameters\n\n    + id (number, optional) ... user id",
		},
		{
			name:     "default value",
			endpoint: model.Endpoint{Parameter: paramsOf(model.ParameterField{Field: "size", Type: "Number", DefaultValue: "10", Description: "page size"})},
			expected: "+ Parameters\n\n    + size (number) ... page size\n 默认值是：<code>10</code>",
		},
		{
			name: "several parameters keep order",
			endpoint: model.Endpoint{Parameter: paramsOf(
				model.ParameterField{Field: "b", Type: "String", Description: "second"},
				model.ParameterField{Field: "a", Description: "first"},
			)},
			expected: "+ Parameters\n\n    + b (string) ... second\n    + a () ... first",
		},
		{
			name:     "only the first colon is removed",
			endpoint: model.Endpoint{Parameter: paramsOf(model.ParameterField{Field: "a:b:c", Type: "String", Description: "d"})},
			expected: "+ Parameters\n\n    + ab:c (string) ... d",
		},
		{
			name:     "missing description in legacy mode",
			endpoint: model.Endpoint{Parameter: paramsOf(model.ParameterField{Field: "q"})},
			opts:     Options{LegacyUndefined: true},
			expected: "+ Parameters\n\n    + q () ... undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderParameters(&tt.endpoint, tt.opts))
		})
	}
}

func TestRenderEndpoint(t *testing.T) {
	endpoint := model.Endpoint{
		Type:      "get",
		URL:       "/user/:id",
		Title:     "Read user",
		Parameter: paramsOf(model.ParameterField{Field: ":id", Type: "Number", Description: "user id"}),
		Success: &model.ResponseSpec{
			Examples: []model.Example{{Content: "{}"}},
		},
	}

	expected := "# GET /user/{id}\n\nRead user" +
		"\n\n" +
		"+ Parameters\n\n    + id (number) ... user id" +
		"\n\n" +
		"\n\n    + Body\n\n        {}"

	assert.Equal(t, expected, RenderEndpoint(&endpoint, Options{}))
}
