package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"seriesreport/internal/catalog"
	"seriesreport/internal/config"
	"seriesreport/internal/failure"
	"seriesreport/internal/queries"
)

// NoResults is printed in place of a table for an empty relation.
const NoResults = "No results found."

// Options selects output format and table style.
type Options struct {
	Format string
	Style  string
	Color  bool
}

// OptionsFromConfig reads the report section of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{Format: config.FormatTable, Style: config.StyleGrid}
	}
	return Options{
		Format: cfg.Report.Format,
		Style:  cfg.Report.Style,
		Color:  cfg.Report.Color,
	}
}

// Reporter writes query outcomes to an output stream.
type Reporter struct {
	out      io.Writer
	opts     Options
	colorize bool
	sections []section
}

type section struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Columns []string         `json:"columns"`
	Count   int              `json:"count"`
	Rows    []map[string]any `json:"rows"`
}

type document struct {
	Reports []section `json:"reports"`
}

// New constructs a Reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	if opts.Format == "" {
		opts.Format = config.FormatTable
	}
	if opts.Style == "" {
		opts.Style = config.StyleGrid
	}
	return &Reporter{
		out:      out,
		opts:     opts,
		colorize: opts.Color && isTerminal(out),
	}
}

// Render writes one titled result as a table using the default style.
func Render(out io.Writer, title string, res *catalog.Result) error {
	return New(out, Options{}).Render(title, res)
}

// Write reports a single outcome. Table output is written immediately; JSON
// output is held until Close.
func (r *Reporter) Write(o queries.Outcome) error {
	if r.opts.Format == config.FormatJSON {
		r.sections = append(r.sections, newSection(o))
		return nil
	}
	return r.Render(o.Query.Title, o.Result)
}

// Render writes a blank line, the title, then the table or the empty notice.
func (r *Reporter) Render(title string, res *catalog.Result) error {
	heading := " " + strings.TrimSpace(title)
	if r.colorize {
		heading = text.Bold.Sprint(heading)
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString("\n")
	if res.Empty() {
		b.WriteString(NoResults)
		b.WriteString("\n\n")
	} else {
		b.WriteString(renderTable(res, r.opts.Style))
		b.WriteString("\n")
	}
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return failure.Wrap(failure.ErrIO, "report", "write", "", err)
	}
	return nil
}

// Close flushes buffered JSON output. It is a no-op for tables.
func (r *Reporter) Close() error {
	if r.opts.Format != config.FormatJSON {
		return nil
	}
	doc := document{Reports: r.sections}
	if doc.Reports == nil {
		doc.Reports = []section{}
	}
	r.sections = nil
	return WriteJSON(r.out, doc)
}

// WriteJSON encodes v to out as two-space indented JSON.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return failure.Wrap(failure.ErrIO, "report", "encode json", "", err)
	}
	return nil
}

func newSection(o queries.Outcome) section {
	s := section{ID: o.Query.ID, Title: o.Query.Title, Columns: []string{}, Rows: []map[string]any{}}
	if o.Result == nil {
		return s
	}
	if o.Result.Columns != nil {
		s.Columns = o.Result.Columns
	}
	s.Count = o.Result.Len()
	if rows := o.Result.Maps(); rows != nil {
		s.Rows = rows
	}
	return s
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// String describes the options for logging.
func (o Options) String() string {
	return fmt.Sprintf("format=%s style=%s color=%t", o.Format, o.Style, o.Color)
}
