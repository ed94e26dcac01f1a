package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a nullable monetary amount. The zero value means no amount was reported.
type Money struct {
	Value float64
	Valid bool
}

func Amount(v float64) Money { return Money{Value: v, Valid: true} }

// ParseMoney reads amounts such as "$12,345.67" or "-$250". Every rune other
// than digits, the decimal point and the minus sign is dropped before parsing.
// Empty or unparsable input gives an invalid Money, never an error.
func ParseMoney(s string) Money {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return Money{}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) {
		return Money{}
	}
	return Amount(v)
}

// String renders the amount in the plain form ParseMoney reads back unchanged.
// Invalid amounts render as the empty string.
func (m Money) String() string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (m *Money) UnmarshalCSV(s string) error {
	*m = ParseMoney(s)
	return nil
}

func (m Money) MarshalCSV() (string, error) {
	if !m.Valid {
		return "", nil
	}
	return strconv.FormatFloat(m.Value, 'f', 2, 64), nil
}

func (m Money) Ptr() *float64 {
	if !m.Valid {
		return nil
	}
	v := m.Value
	return &v
}

// NormalizeCurrency rewrites the given monetary columns of t in place to plain
// numeric text and marks them as Float. It returns how many non-empty cells
// could not be parsed and were turned into missing values.
func NormalizeCurrency(t *Table, columns ...string) (int, error) {
	dropped := 0
	for _, c := range columns {
		i := t.Index(c)
		if i < 0 {
			return dropped, fmt.Errorf("currency column %q not found", c)
		}
		for _, r := range t.Rows {
			m := ParseMoney(r[i])
			if !m.Valid && strings.TrimSpace(r[i]) != "" {
				dropped++
			}
			r[i] = m.String()
		}
		t.Kinds[i] = Float
	}
	return dropped, nil
}
