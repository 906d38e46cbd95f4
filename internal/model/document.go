package model

import (
	"fmt"
	"sort"
	"strings"
)

// Project represents the apiDoc project metadata (api_project.json)
type Project struct {
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Base URL written as the Blueprint HOST
	URL string `json:"url,omitempty"`

	// Optional free-form sections rendered before/after the endpoints
	Header *Section `json:"header,omitempty"`
	Footer *Section `json:"footer,omitempty"`
}

// Section is a titled markdown block of the project preamble
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Document is the complete conversion input handed to exporters
type Document struct {
	Project   *Project
	Endpoints []Endpoint
}

// String returns a human-readable representation of the document
func (d *Document) String() string {
	title := ""
	if d.Project != nil {
		title = d.Project.Title
	}
	return fmt.Sprintf("[%s] %d endpoints", title, len(d.Endpoints))
}

// Summary represents the document-level statistics for the Overview sheet
type Summary struct {
	TotalEndpoints  int
	TotalParameters int
	TotalResponses  int
	TotalExamples   int
	GeneratedDate   string

	GroupStats []GroupStat
}

// GroupStat represents statistics for a single apiDoc group
type GroupStat struct {
	Name          string         // apiDoc group (@apiGroup)
	EndpointCount int            // Endpoints in this group
	Methods       map[string]int // Endpoint count per upper-cased method
}

// NewSummary collects statistics from a document, keeping groups in first-seen order
func NewSummary(doc *Document) *Summary {
	s := &Summary{
		GroupStats: make([]GroupStat, 0),
	}
	if doc == nil {
		return s
	}

	index := make(map[string]int)
	for i := range doc.Endpoints {
		ep := &doc.Endpoints[i]
		s.TotalEndpoints++
		s.TotalParameters += len(ep.Params())

		for _, spec := range []*ResponseSpec{ep.Success, ep.Error} {
			if spec == nil {
				continue
			}
			s.TotalResponses += spec.Groups()
			s.TotalExamples += len(spec.Examples)
		}

		pos, ok := index[ep.Group]
		if !ok {
			pos = len(s.GroupStats)
			index[ep.Group] = pos
			s.GroupStats = append(s.GroupStats, GroupStat{Name: ep.Group, Methods: make(map[string]int)})
		}
		s.GroupStats[pos].EndpointCount++
		s.GroupStats[pos].Methods[strings.ToUpper(ep.Type)]++
	}

	return s
}

// MethodList renders the per-method counts as "GET 2, POST 1", sorted by method
func (g GroupStat) MethodList() string {
	methods := make([]string, 0, len(g.Methods))
	for m := range g.Methods {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	parts := make([]string, 0, len(methods))
	for _, m := range methods {
		parts = append(parts, fmt.Sprintf("%s %d", m, g.Methods[m]))
	}
	return strings.Join(parts, ", ")
}
