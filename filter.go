package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Predicate decides whether a row stays in the working table.
type Predicate struct {
	Column string
	Desc   string
	keep   func(cell string, kind Kind) bool
}

// Equals keeps rows whose cell equals value. Numeric columns compare by value,
// text columns compare the trimmed strings.
func Equals(column, value string) Predicate {
	return Predicate{
		Column: column,
		Desc:   fmt.Sprintf("%s == %q", column, value),
		keep: func(cell string, kind Kind) bool {
			cell = strings.TrimSpace(cell)
			if kind == Text {
				return cell == value
			}
			a, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return false
			}
			b, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false
			}
			return a == b
		},
	}
}

// AtLeast keeps rows whose cell parses as a number >= threshold.
// Cells that do not parse are dropped.
func AtLeast(column string, threshold float64) Predicate {
	return Predicate{
		Column: column,
		Desc:   fmt.Sprintf("%s >= %v", column, threshold),
		keep: func(cell string, _ Kind) bool {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return false
			}
			return v >= threshold
		},
	}
}

// FilterTable returns a new Table holding the rows of t that satisfy every
// predicate, in their original order. t is left untouched.
func FilterTable(t *Table, preds ...Predicate) (*Table, error) {
	idx := make([]int, len(preds))
	kinds := make([]Kind, len(preds))
	for i, p := range preds {
		k, err := t.Kind(p.Column)
		if err != nil {
			return nil, fmt.Errorf("error filtering on %s: %w", p.Desc, err)
		}
		idx[i], kinds[i] = t.Index(p.Column), k
	}
	out := &Table{
		Header: append([]string(nil), t.Header...),
		Kinds:  append([]Kind(nil), t.Kinds...),
	}
rows:
	for _, r := range t.Rows {
		for i, p := range preds {
			if !p.keep(r[idx[i]], kinds[i]) {
				continue rows
			}
		}
		out.Rows = append(out.Rows, append([]string(nil), r...))
	}
	return out, nil
}
