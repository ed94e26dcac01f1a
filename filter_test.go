package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTable(t *testing.T) {
	table, err := LoadTable("testdata/reports.csv", fixtureOptions)
	require.NoError(t, err)
	before := table.clone()

	got, err := FilterTable(table, Equals(colAllegationNature, "1"), AtLeast(colOriginYear, 2010))
	require.NoError(t, err)

	seq, _ := got.Column("SEQNO")
	assert.Equal(t, []string{"1", "3", "5", "6", "7", "8", "9", "10"}, seq)

	nature, _ := got.Column(colAllegationNature)
	years, _ := got.Column(colOriginYear)
	for i := range nature {
		assert.Equal(t, "1", nature[i])
		y, err := strconv.Atoi(years[i])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, y, 2010)
	}

	assert.Equal(t, before, table, "input table must not change")
}

func TestFilterTableDeterministic(t *testing.T) {
	table, err := LoadTable("testdata/reports.csv", fixtureOptions)
	require.NoError(t, err)

	a, err := FilterTable(table, Equals(colAllegationNature, "1"), AtLeast(colOriginYear, 2010))
	require.NoError(t, err)
	b, err := FilterTable(table, AtLeast(colOriginYear, 2010), Equals(colAllegationNature, "1"))
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
}

func TestFilterTableUnknownColumn(t *testing.T) {
	table := &Table{Header: []string{"a"}, Kinds: []Kind{Text}}
	_, err := FilterTable(table, Equals("b", "1"))
	assert.Error(t, err)
}

func TestPredicates(t *testing.T) {
	table := &Table{
		Header: []string{"code", "num"},
		Kinds:  []Kind{Text, Integer},
		Rows:   [][]string{{"01", "1"}, {"1", "01"}, {"1", "x"}, {" 1 ", ""}},
	}

	text, err := FilterTable(table, Equals("code", "1"))
	require.NoError(t, err)
	assert.Len(t, text.Rows, 3)

	numeric, err := FilterTable(table, Equals("num", "1"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"01", "1"}, {"1", "01"}}, numeric.Rows)

	atLeast, err := FilterTable(table, AtLeast("num", 1))
	require.NoError(t, err)
	assert.Len(t, atLeast.Rows, 2, "unparsable cells are dropped")
}
