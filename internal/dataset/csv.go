package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seriesreport/internal/failure"
)

// readRecords streams the data rows of a comma-delimited input with a header
// row. Every row must carry exactly fields columns. fn receives the 1-based
// line number of the row within the file.
func readRecords(r io.Reader, name string, fields int, fn func(line int, record []string) error) error {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = fields
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.Wrap(failure.ErrParse, "dataset", "read header", name, errors.New("missing header row"))
		}
		return csvError(name, err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return csvError(name, err)
		}
		line, _ := reader.FieldPos(0)
		if err := fn(line, record); err != nil {
			return err
		}
	}
}

func csvError(name string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return failure.Wrap(failure.ErrParse, "dataset", "read", fmt.Sprintf("%s:%d", name, parseErr.Line), parseErr.Err)
	}
	return failure.Wrap(failure.ErrIO, "dataset", "read", name, err)
}

// fieldParser coerces the columns of one record and keeps the first failure.
type fieldParser struct {
	name   string
	line   int
	record []string
	err    error
}

func newFieldParser(name string, line int, record []string) *fieldParser {
	return &fieldParser{name: name, line: line, record: record}
}

func (p *fieldParser) text(idx int) string {
	return strings.TrimSpace(p.record[idx])
}

func (p *fieldParser) float(idx int, column string) float64 {
	raw := p.text(idx)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		p.fail(column, raw, "number")
		return 0
	}
	return value
}

// integer accepts unsigned digits, optionally followed by a zero fraction
// such as "3.0". Signs and exponents are rejected.
func (p *fieldParser) integer(idx int, column string) int64 {
	return p.parseInteger(p.text(idx), column)
}

// count is integer with thousands separators stripped ("12,345").
func (p *fieldParser) count(idx int, column string) int64 {
	return p.parseInteger(strings.ReplaceAll(p.text(idx), ",", ""), column)
}

func (p *fieldParser) parseInteger(raw, column string) int64 {
	digits, ok := integralDigits(raw)
	if !ok {
		p.fail(column, raw, "integer")
		return 0
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		p.fail(column, raw, "integer")
		return 0
	}
	return value
}

// integralDigits returns the whole part of raw when raw is digits with an
// optional all-zero fraction.
func integralDigits(raw string) (string, bool) {
	whole, frac, hasFrac := strings.Cut(raw, ".")
	if !isDigits(whole) {
		return "", false
	}
	if hasFrac && (frac == "" || strings.Trim(frac, "0") != "") {
		return "", false
	}
	return whole, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p *fieldParser) fail(column, raw, kind string) {
	if p.err != nil {
		return
	}
	p.err = failure.Wrap(
		failure.ErrParse,
		"dataset",
		fmt.Sprintf("%s:%d", p.name, p.line),
		fmt.Sprintf("column %s: invalid %s %q", column, kind, raw),
		nil,
	)
}
