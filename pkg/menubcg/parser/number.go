// Package parser turns spreadsheet cells and headers into canonical values.
package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// thousandsPattern matches dot-grouped thousands with an optional comma decimal
// tail, e.g. "1.234" or "12.345.678,9". Only the end is anchored.
var thousandsPattern = regexp.MustCompile(`\d{1,3}(?:\.\d{3})+(?:,\d+)?$`)

// ParseNumber converts a raw cell into a float.
// It returns false for empty, non-numeric, or non-finite input.
//
// Text is accepted in both "1234.56" and "1.234,56" conventions; percent signs
// and whitespace are ignored.
func ParseNumber(v models.RawCell) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		return parseText(n)
	case fmt.Stringer:
		return parseText(n.String())
	default:
		return parseText(fmt.Sprint(n))
	}
}

func parseText(orig string) (float64, bool) {
	if orig == "" {
		return 0, false
	}

	s := strings.Map(func(r rune) rune {
		if r == '%' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, orig)
	if s == "" {
		return 0, false
	}

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	if commas > 0 && dots == 0 {
		s = strings.ReplaceAll(s, ",", ".")
	}
	if thousandsPattern.MatchString(orig) {
		s = strings.ReplaceAll(s, ".", "")
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CellText renders a raw cell as trimmed text.
// Numbers are printed in their shortest form, so 1001.0 becomes "1001".
func CellText(v models.RawCell) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
