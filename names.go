package main

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type NameCollisionError struct {
	First, Second string
	Name          string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("columns %q and %q both normalize to %q", e.First, e.Second, e.Name)
}

// NormalizeName lowercases a column name, removes accents and replaces each
// run of non alphanumeric characters with a single underscore.
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(unicode.ToLower))
	result, _, _ := transform.String(t, strings.TrimSpace(name))

	var b strings.Builder
	sep := false
	for _, r := range result {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
			continue
		}
		sep = true
	}
	return b.String()
}

// NormalizeHeader rewrites every column name of t with NormalizeName.
// On a collision t keeps its original header and a *NameCollisionError is returned.
func NormalizeHeader(t *Table) error {
	seen := make(map[string]string, len(t.Header))
	names := make([]string, len(t.Header))
	for i, h := range t.Header {
		n := NormalizeName(h)
		if n == "" {
			return fmt.Errorf("column %d (%q) has no usable characters", i, h)
		}
		if prev, ok := seen[n]; ok {
			return &NameCollisionError{First: prev, Second: h, Name: n}
		}
		seen[n] = h
		names[i] = n
	}
	copy(t.Header, names)
	return nil
}
