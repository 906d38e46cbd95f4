package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSpecKeepsGroupOrder(t *testing.T) {
	raw := `{"fields": {"Zeta 200": [], "Alpha 400": [{"field": "a"}], "Mid 500": []}}`

	var spec ResponseSpec
	require.NoError(t, json.Unmarshal([]byte(raw), &spec))

	var labels []string
	for pair := spec.Fields.Oldest(); pair != nil; pair = pair.Next() {
		labels = append(labels, pair.Key)
	}
	assert.Equal(t, []string{"Zeta 200", "Alpha 400", "Mid 500"}, labels)
	assert.Equal(t, 3, spec.Groups())
}

func TestGroupsNil(t *testing.T) {
	var spec *ResponseSpec
	assert.Equal(t, 0, spec.Groups())
	assert.Equal(t, 0, (&ResponseSpec{}).Groups())
}

func TestParams(t *testing.T) {
	ep := Endpoint{}
	assert.Nil(t, ep.Params())

	ep.Parameter = &ParameterSection{Fields: map[string][]ParameterField{
		"Header":              {{Field: "token"}},
		DefaultParameterGroup: {{Field: ":id"}},
	}}
	require.Len(t, ep.Params(), 1)
	assert.Equal(t, ":id", ep.Params()[0].Field)
}

func TestAddGroup(t *testing.T) {
	spec := (&ResponseSpec{}).
		AddGroup("200 OK", []AttributeField{{Field: "id"}}).
		AddGroup("201 Created", nil)

	assert.Equal(t, 2, spec.Groups())
	assert.Equal(t, "200 OK", spec.Fields.Oldest().Key)
}

func TestNewSummary(t *testing.T) {
	doc := &Document{
		Endpoints: []Endpoint{
			{Type: "get", Group: "User", Parameter: &ParameterSection{Fields: map[string][]ParameterField{
				DefaultParameterGroup: {{Field: "id"}, {Field: "name"}},
			}}},
			{Type: "post", Group: "Auth", Success: NewResponseSpec().AddGroup("200 OK", nil)},
			{Type: "GET", Group: "User", Error: &ResponseSpec{Examples: []Example{{Content: "{}"}}}},
		},
	}

	s := NewSummary(doc)

	assert.Equal(t, 3, s.TotalEndpoints)
	assert.Equal(t, 2, s.TotalParameters)
	assert.Equal(t, 1, s.TotalResponses)
	assert.Equal(t, 1, s.TotalExamples)

	require.Len(t, s.GroupStats, 2)
	assert.Equal(t, "User", s.GroupStats[0].Name)
	assert.Equal(t, 2, s.GroupStats[0].EndpointCount)
	assert.Equal(t, "GET 2", s.GroupStats[0].MethodList())
	assert.Equal(t, "Auth", s.GroupStats[1].Name)
}

func TestNewSummaryNil(t *testing.T) {
	s := NewSummary(nil)
	assert.Equal(t, 0, s.TotalEndpoints)
	assert.Empty(t, s.GroupStats)
}

func TestMethodList(t *testing.T) {
	g := GroupStat{Methods: map[string]int{"POST": 1, "GET": 2, "DELETE": 1}}
	assert.Equal(t, "DELETE 1, GET 2, POST 1", g.MethodList())
}

func TestDocumentString(t *testing.T) {
	doc := &Document{Project: &Project{Title: "Demo"}, Endpoints: make([]Endpoint, 2)}
	assert.Equal(t, "[Demo] 2 endpoints", doc.String())
}
