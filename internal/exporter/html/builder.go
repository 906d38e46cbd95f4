package html

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"apidoc2blue/internal/blueprint"
	"apidoc2blue/internal/config"
	"apidoc2blue/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

func (e *HTMLExporter) Name() string {
	return "html"
}

// Data structures for API Documentation Template
type APIReportData struct {
	Title          string
	Host           string
	Description    string
	GeneratedDate  string
	TotalEndpoints int
	TotalGroups    int
	Endpoints      []EndpointView
}

type EndpointView struct {
	Method      string
	Path        string
	Group       string
	Title       string
	Description string
	Params      []ParamView
	Responses   []ResponseView
	Examples    []string
}

type ParamView struct {
	Name        string
	Type        string
	Optional    bool
	Default     string
	Description string
}

type ResponseView struct {
	Label   string
	IsError bool
	Fields  []FieldView
}

// FieldView is a response attribute; Depth 0 is a top-level field
type FieldView struct {
	Name        string
	Type        string
	Depth       int
	Description string
}

func (e *HTMLExporter) Export(doc *model.Document, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath(".html")
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Render(f, doc); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

// Render writes the HTML report for doc to w
func Render(w io.Writer, doc *model.Document) error {
	tmpl, err := template.New("api-report").Funcs(template.FuncMap{
		"methodColor": getMethodColor,
		"methodBadge": getMethodBadge,
		"mul": func(a, b int) int {
			return a * b
		},
	}).Parse(APIReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, buildReportData(doc))
}

func buildReportData(doc *model.Document) APIReportData {
	data := APIReportData{
		Title:         "API Specification",
		GeneratedDate: time.Now().Format("2006-01-02"),
	}
	if doc == nil {
		return data
	}

	if p := doc.Project; p != nil {
		if p.Title != "" {
			data.Title = p.Title
		}
		data.Host = p.URL
		data.Description = p.Description
	}

	summary := model.NewSummary(doc)
	data.TotalEndpoints = summary.TotalEndpoints
	data.TotalGroups = len(summary.GroupStats)

	for i := range doc.Endpoints {
		data.Endpoints = append(data.Endpoints, buildEndpointView(&doc.Endpoints[i]))
	}

	return data
}

func buildEndpointView(ep *model.Endpoint) EndpointView {
	view := EndpointView{
		Method:      ep.Type,
		Path:        blueprint.NormalizePath(ep.URL),
		Group:       ep.Group,
		Title:       ep.Title,
		Description: ep.Description,
	}

	for _, p := range ep.Params() {
		view.Params = append(view.Params, ParamView{
			Name:        strings.Replace(p.Field, ":", "", 1),
			Type:        strings.ToLower(p.Type),
			Optional:    p.Optional,
			Default:     p.DefaultValue,
			Description: p.Description,
		})
	}

	for _, spec := range []struct {
		resp    *model.ResponseSpec
		isError bool
	}{{ep.Success, false}, {ep.Error, true}} {
		if spec.resp == nil {
			continue
		}
		view.Responses = append(view.Responses, buildResponseViews(spec.resp, spec.isError)...)
		for _, ex := range spec.resp.Examples {
			view.Examples = append(view.Examples, ex.Content)
		}
	}

	return view
}

func buildResponseViews(spec *model.ResponseSpec, isError bool) []ResponseView {
	if spec.Fields == nil {
		return nil
	}

	var views []ResponseView
	for pair := spec.Fields.Oldest(); pair != nil; pair = pair.Next() {
		rv := ResponseView{Label: pair.Key, IsError: isError}
		for _, attr := range pair.Value {
			segments := strings.Split(attr.Field, ".")
			rv.Fields = append(rv.Fields, FieldView{
				Name:        segments[len(segments)-1],
				Type:        blueprint.NormalizeType(attr.Type),
				Depth:       len(segments) - 1,
				Description: attr.Description,
			})
		}
		views = append(views, rv)
	}
	return views
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}

// getMethodBadge returns badge text for HTTP method
func getMethodBadge(method string) string {
	return strings.ToUpper(method)
}
