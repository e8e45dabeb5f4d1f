package report

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"seriesreport/internal/catalog"
	"seriesreport/internal/config"
)

// gridStyle boxes every cell with light box-drawing rules.
func gridStyle() table.Style {
	style := table.StyleLight
	style.Name = "Grid"
	style.Options.SeparateRows = true
	return style
}

func styleFor(name string) table.Style {
	var style table.Style
	switch name {
	case config.StyleRounded:
		style = table.StyleRounded
	case config.StyleASCII:
		style = table.StyleDefault
	default:
		style = gridStyle()
	}
	style.Format.Header = text.FormatDefault
	return style
}

// Table renders rows under headers in the named style. A column is
// right-aligned when every non-NULL cell in it is an int64 or float64.
func Table(headers []string, rows [][]any, styleName string) string {
	if len(headers) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(styleFor(styleName))

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	numeric := make([]bool, len(headers))
	for i := range numeric {
		numeric[i] = len(rows) > 0
	}
	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			var value any
			if i < len(row) {
				value = row[i]
			}
			if value != nil && !isNumber(value) {
				numeric[i] = false
			}
			r[i] = formatValue(value)
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
		if numeric[i] {
			configs[i].Align = text.AlignRight
		}
	}
	tw.SetColumnConfigs(configs)

	if styleName == config.StyleMarkdown {
		return tw.RenderMarkdown()
	}
	return tw.Render()
}

// renderTable prefixes each result row with its 1-based position.
func renderTable(res *catalog.Result, styleName string) string {
	headers := append([]string{""}, res.Columns...)
	rows := make([][]any, len(res.Rows))
	for n, row := range res.Rows {
		rows[n] = append([]any{strconv.Itoa(n + 1)}, row...)
	}
	return Table(headers, rows, styleName)
}

func isNumber(v any) bool {
	switch v.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}

// formatValue prints floats with the fewest digits that round-trip and
// NULL as an empty cell.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(value, 10)
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
