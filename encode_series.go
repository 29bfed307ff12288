package safehaven

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/safehaven/date"
	"github.com/shopspring/decimal"
)

// This file persists the annual series as a semicolon-separated CSV so
// the study survives offline, stays human-readable, and diffs cleanly.

// csvHeader is the fixed column layout of the series file.
var csvHeader = []string{"Date", "Value", "Return", "DividendYield", "TotalReturn", "ReturnRange"}

// EncodeSeries writes the series as semicolon-separated CSV.
func EncodeSeries(w io.Writer, s *Series) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for r := range s.Returns() {
		record := []string{
			date.New(r.Year, 1, 1).String(),
			r.Price.String(),
			formatFraction(r.Return),
			formatFraction(r.DividendYield),
			formatFraction(r.TotalReturn),
			r.Range.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeSeries reads a series back from its CSV form. filename is used
// for error messages only.
func DecodeSeries(filename string, r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("format error in %q: missing header", filename)
	}
	for i, col := range csvHeader {
		if records[0][i] != col {
			return nil, fmt.Errorf("format error in %q: header column %d is %q, want %q", filename, i, records[0][i], col)
		}
	}

	var returns []AnnualReturn
	for i, record := range records[1:] {
		line := i + 2 // header is line 1
		on, err := date.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		price, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: invalid price %q: %w", filename, line, record[1], err)
		}
		ret, err := parseFraction(record[2])
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		dy, err := parseFraction(record[3])
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		total, err := parseFraction(record[4])
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		rng, err := ParseReturnRange(record[5])
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		returns = append(returns, AnnualReturn{
			Year:          on.Year(),
			Price:         price,
			Return:        ret,
			DividendYield: dy,
			TotalReturn:   total,
			Range:         rng,
		})
	}
	return NewSeries(returns...)
}

// SaveSeries writes the series to a file, creating parent directories.
func SaveSeries(path string, s *Series) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeSeries(f, s)
}

// LoadSeries reads the series from a file.
func LoadSeries(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSeries(path, f)
}

func formatFraction(p Percent) string {
	return strconv.FormatFloat(float64(p), 'f', 6, 64)
}

func parseFraction(s string) (Percent, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction %q: %w", s, err)
	}
	return Percent(v), nil
}
