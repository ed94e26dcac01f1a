package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanByIgnoresMissing(t *testing.T) {
	reports := []*Report{
		{PayType: "Settlement", Payment: Amount(10)},
		{PayType: "Settlement"},
		{PayType: "Settlement", Payment: Amount(30)},
	}
	groups := MeanBy(reports, byPayType, payment)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "Settlement", g.Key)
	assert.Equal(t, 3, g.Count)
	assert.Equal(t, 2, g.Observed)
	assert.True(t, g.Mean.Valid)
	assert.InDelta(t, 20.0, g.Mean.Value, 1e-9)
}

func TestMeanByEmptyGroup(t *testing.T) {
	reports := []*Report{
		{PayType: "Settlement", Payment: Amount(10)},
		{PayType: "Other"},
	}
	groups := MeanBy(reports, byPayType, payment, "Before", "Other")
	require.Len(t, groups, 3)

	assert.Equal(t, "Before", groups[0].Key)
	assert.Equal(t, 0, groups[0].Count)
	assert.False(t, groups[0].Mean.Valid, "no reports at all")

	assert.Equal(t, "Other", groups[1].Key)
	assert.Equal(t, 1, groups[1].Count)
	assert.False(t, groups[1].Mean.Valid, "reports without amount")

	assert.Equal(t, "Settlement", groups[2].Key)
	assert.Equal(t, Amount(10), groups[2].Mean)
}

func TestCountBy(t *testing.T) {
	reports := []*Report{
		{PayType: "Settlement"},
		{PayType: "Judgment"},
		{PayType: "Settlement"},
		{PayType: "Other"},
	}
	groups := CountBy(reports, byPayType)
	assert.Equal(t, []Group{
		{Key: "Settlement", Count: 2},
		{Key: "Judgment", Count: 1},
		{Key: "Other", Count: 1},
	}, groups)
	assert.Equal(t, len(reports), Total(groups))

	seeded := CountBy(reports, byPayType, "Before", "Judgment", "Before")
	assert.Equal(t, []string{"Before", "Judgment", "Settlement", "Other"}, keys(seeded))
	assert.Equal(t, len(reports), Total(seeded))

	SortByKey(seeded)
	assert.Equal(t, []string{"Before", "Judgment", "Other", "Settlement"}, keys(seeded))
}

func TestCountByEmpty(t *testing.T) {
	assert.Empty(t, CountBy(nil, byPayType))
	assert.Empty(t, MeanBy(nil, byPayType, payment))
}

func keys(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}
