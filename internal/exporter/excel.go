package exporter

import (
	"fmt"
	"strings"
	"time"

	"apidoc2blue/internal/blueprint"
	"apidoc2blue/internal/config"
	"apidoc2blue/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	overviewSheet  = "Overview"
	endpointsSheet = "Endpoints"
)

// Row kinds written in column D of the Endpoints sheet
const (
	kindEndpoint = "[API]"
	kindParam    = "[PARAM]"
	kindSuccess  = "[SUCCESS]"
	kindError    = "[ERROR]"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Name() string {
	return "excel"
}

// Export generates the Excel report
func (e *ExcelExporter) Export(doc *model.Document, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath(".xlsx")
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	summary := model.NewSummary(doc)
	summary.GeneratedDate = time.Now().Format("2006-01-02")

	if err := e.writeOverview(f, styler, doc, summary); err != nil {
		return err
	}

	if err := e.writeEndpoints(f, styler, doc); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, doc *model.Document, summary *model.Summary) error {
	if _, err := f.NewSheet(overviewSheet); err != nil {
		return err
	}

	row := 1

	// Section A: Project
	if doc != nil && doc.Project != nil {
		project := doc.Project
		e.writeRow(f, overviewSheet, row, []string{"Project", ""}, s.HeaderStyle)
		row++
		for _, kv := range [][2]string{
			{"Title", project.Title},
			{"Name", project.Name},
			{"Version", project.Version},
			{"Host", project.URL},
		} {
			e.writeRow(f, overviewSheet, row, kv[:], s.DefaultStyle)
			row++
		}
		row++ // Spacer
	}

	// Section B: Metrics
	e.writeRow(f, overviewSheet, row, []string{"Metric", "Count"}, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val int
	}{
		{"Total Endpoints", summary.TotalEndpoints},
		{"Total Parameters", summary.TotalParameters},
		{"Total Response Groups", summary.TotalResponses},
		{"Total Examples", summary.TotalExamples},
	}

	for _, m := range metrics {
		f.SetCellValue(overviewSheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(overviewSheet, fmt.Sprintf("B%d", row), m.Val)
		row++
	}

	f.SetCellValue(overviewSheet, fmt.Sprintf("A%d", row), "Generated")
	f.SetCellValue(overviewSheet, fmt.Sprintf("B%d", row), summary.GeneratedDate)
	row += 2 // Spacer

	// Section C: Groups
	e.writeRow(f, overviewSheet, row, []string{"No", "Group", "Endpoints", "Methods"}, s.HeaderStyle)
	row++

	for i, g := range summary.GroupStats {
		name := g.Name
		if name == "" {
			name = "(none)"
		}
		f.SetCellValue(overviewSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(overviewSheet, fmt.Sprintf("B%d", row), name)
		f.SetCellValue(overviewSheet, fmt.Sprintf("C%d", row), g.EndpointCount)
		f.SetCellValue(overviewSheet, fmt.Sprintf("D%d", row), g.MethodList())
		row++
	}

	f.SetColWidth(overviewSheet, "A", "A", 24)
	f.SetColWidth(overviewSheet, "B", "B", 40)
	f.SetColWidth(overviewSheet, "D", "D", 30)

	return nil
}

// --- Endpoints Sheet Logic ---

func (e *ExcelExporter) writeEndpoints(f *excelize.File, s *Styler, doc *model.Document) error {
	if _, err := f.NewSheet(endpointsSheet); err != nil {
		return err
	}

	headers := []string{"Method", "Path", "Title", "Kind", "Field", "Type", "Description"}
	e.writeRow(f, endpointsSheet, 1, headers, s.HeaderStyle)

	f.SetPanes(endpointsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if doc == nil {
		return nil
	}

	row := 2
	for i := range doc.Endpoints {
		ep := &doc.Endpoints[i]

		e.writeRow(f, endpointsSheet, row, []string{
			strings.ToUpper(ep.Type),
			blueprint.NormalizePath(ep.URL),
			ep.Title,
			kindEndpoint,
			"",
			"",
			ep.Description,
		}, s.EndpointStyle)
		row++

		for _, param := range ep.Params() {
			typ := strings.ToLower(param.Type)
			if param.Optional {
				typ += ", optional"
			}
			desc := param.Description
			if param.DefaultValue != "" {
				desc += fmt.Sprintf(" (default: %s)", param.DefaultValue)
			}
			e.writeRow(f, endpointsSheet, row, []string{"", "", "", kindParam, strings.Replace(param.Field, ":", "", 1), typ, desc}, s.ParamStyle)
			row++
		}

		row = e.writeResponse(f, s, row, ep.Success, kindSuccess, s.SuccessStyle)
		row = e.writeResponse(f, s, row, ep.Error, kindError, s.ErrorStyle)
	}

	f.SetColWidth(endpointsSheet, "A", "A", 10)
	f.SetColWidth(endpointsSheet, "B", "B", 40)
	f.SetColWidth(endpointsSheet, "C", "C", 30)
	f.SetColWidth(endpointsSheet, "E", "E", 30)
	f.SetColWidth(endpointsSheet, "F", "F", 15)
	f.SetColWidth(endpointsSheet, "G", "G", 50)

	return nil
}

// writeResponse writes one row per attribute, indenting the field name by path depth
func (e *ExcelExporter) writeResponse(f *excelize.File, s *Styler, row int, spec *model.ResponseSpec, kind string, style int) int {
	if spec == nil || spec.Fields == nil {
		return row
	}

	for pair := spec.Fields.Oldest(); pair != nil; pair = pair.Next() {
		label := kind + " " + blueprint.StripLabel(pair.Key)
		for _, attr := range pair.Value {
			segments := strings.Split(attr.Field, ".")
			name := strings.Repeat("  ", len(segments)-1) + segments[len(segments)-1]
			e.writeRow(f, endpointsSheet, row, []string{"", "", "", label, name, blueprint.NormalizeType(attr.Type), attr.Description}, style)
			row++
		}
	}

	return row
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
