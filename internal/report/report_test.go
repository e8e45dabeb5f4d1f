package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"seriesreport/internal/catalog"
	"seriesreport/internal/config"
	"seriesreport/internal/queries"
	"seriesreport/internal/report"
)

func sampleResult() *catalog.Result {
	return &catalog.Result{
		Columns: []string{"code", "title", "rating"},
		Rows: [][]any{
			{"A", "Alpha", 4.5},
			{"B", "Bravo", nil},
		},
	}
}

func TestRenderEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	res := &catalog.Result{Columns: []string{"code"}}
	if err := report.Render(&buf, "Nothing here", res); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\n Nothing here\nNo results found.\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q, want %q", buf.String(), want)
	}
}

func TestRenderTableNumbersRows(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Render(&buf, "Low shows", sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\n Low shows\n") {
		t.Fatalf("expected blank line and title first, got %q", out)
	}
	if strings.Contains(out, report.NoResults) {
		t.Fatalf("did not expect empty notice in %q", out)
	}
	for _, want := range []string{"code", "title", "rating", "Alpha", "4.5", "┌"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	var numbered []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Alpha") || strings.Contains(line, "Bravo") {
			fields := strings.Fields(strings.Trim(line, "│ "))
			numbered = append(numbered, fields[0])
		}
	}
	if len(numbered) != 2 || numbered[0] != "1" || numbered[1] != "2" {
		t.Fatalf("expected rows numbered from 1, got %v", numbered)
	}
}

func TestRenderStyles(t *testing.T) {
	cases := []struct {
		style   string
		want    string
		notWant string
	}{
		{config.StyleGrid, "├", "+-"},
		{config.StyleRounded, "╭", "┌"},
		{config.StyleASCII, "+-", "│"},
		{config.StyleMarkdown, "---", "+-"},
	}
	for _, tc := range cases {
		t.Run(tc.style, func(t *testing.T) {
			var buf bytes.Buffer
			r := report.New(&buf, report.Options{Format: config.FormatTable, Style: tc.style})
			if err := r.Render("Styled", sampleResult()); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Fatalf("expected %q in %s output:\n%s", tc.want, tc.style, buf.String())
			}
			if strings.Contains(buf.String(), tc.notWant) {
				t.Fatalf("did not expect %q in %s output:\n%s", tc.notWant, tc.style, buf.String())
			}
		})
	}
}

func TestColorIgnoredForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.Options{Color: true})
	if err := r.Render("Plain", sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected no escape codes when writing to a buffer")
	}
}

func TestWriteTableIsImmediate(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.Options{})
	outcome := queries.Outcome{Query: queries.Query{ID: "x", Title: "Immediate"}, Result: sampleResult()}
	if err := r.Write(outcome); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "Immediate") {
		t.Fatalf("expected table output before Close, got %q", buf.String())
	}
	before := buf.Len()
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.Len() != before {
		t.Fatalf("Close wrote extra output for tables")
	}
}

func TestJSONDocument(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.Options{Format: config.FormatJSON})

	outcomes := []queries.Outcome{
		{Query: queries.Query{ID: "low", Title: "Low"}, Result: sampleResult()},
		{Query: queries.Query{ID: "none", Title: "None"}, Result: &catalog.Result{Columns: []string{"code"}}},
	}
	for _, o := range outcomes {
		if err := r.Write(o); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("expected JSON to be buffered until Close, got %q", buf.String())
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var doc struct {
		Reports []struct {
			ID      string           `json:"id"`
			Title   string           `json:"title"`
			Columns []string         `json:"columns"`
			Count   int              `json:"count"`
			Rows    []map[string]any `json:"rows"`
		} `json:"reports"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(doc.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(doc.Reports))
	}
	low := doc.Reports[0]
	if low.ID != "low" || low.Count != 2 || len(low.Rows) != 2 {
		t.Fatalf("unexpected first report %+v", low)
	}
	if low.Rows[0]["rating"] != 4.5 || low.Rows[1]["rating"] != nil {
		t.Fatalf("unexpected row values %+v", low.Rows)
	}
	none := doc.Reports[1]
	if none.Count != 0 || none.Rows == nil || len(none.Rows) != 0 {
		t.Fatalf("expected empty rows array, got %+v", none)
	}
}

func TestJSONWithoutOutcomes(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.Options{Format: config.FormatJSON})
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.Contains(buf.String(), `"reports": []`) {
		t.Fatalf("expected empty reports array, got %q", buf.String())
	}
}

func TestTableAlignsNumericColumns(t *testing.T) {
	out := report.Table([]string{"#", "ID"}, [][]any{
		{int64(1), "a"},
		{int64(12), "bb"},
		{int64(3)},
	}, config.StyleASCII)

	for _, want := range []string{"| #  | ID |", "|  1 | a  |", "| 12 | bb |", "|  3 |    |"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if got := report.Table(nil, nil, config.StyleASCII); got != "" {
		t.Fatalf("expected empty output without headers, got %q", got)
	}
}

func TestWriteJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, map[string]int{"count": 2}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if buf.String() != "{\n  \"count\": 2\n}\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
