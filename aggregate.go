package main

import (
	"golang.org/x/exp/slices"
)

// Group is one row of an aggregate.
type Group struct {
	Key      string `csv:"group"`
	Count    int    `csv:"count"`
	Observed int    `csv:"observed"`
	Mean     Money  `csv:"mean"`
}

type KeyFunc func(*Report) string

type ValueFunc func(*Report) Money

// CountBy counts reports per key. Groups appear in the order of seed followed
// by keys in the order they are first seen. Seeded keys without reports get a
// zero count.
func CountBy(reports []*Report, key KeyFunc, seed ...string) []Group {
	groups, index := seedGroups(seed)
	for _, r := range reports {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Count++
	}
	return groups
}

// MeanBy averages value per key over the reports where value is present.
// Missing values count neither in the sum nor in the divisor; a group with no
// present value has an invalid Mean.
func MeanBy(reports []*Report, key KeyFunc, value ValueFunc, seed ...string) []Group {
	groups, index := seedGroups(seed)
	sums := make([]float64, len(groups))
	for _, r := range reports {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
			sums = append(sums, 0)
		}
		groups[i].Count++
		if v := value(r); v.Valid {
			groups[i].Observed++
			sums[i] += v.Value
		}
	}
	for i := range groups {
		if groups[i].Observed > 0 {
			groups[i].Mean = Amount(sums[i] / float64(groups[i].Observed))
		}
	}
	return groups
}

func seedGroups(seed []string) ([]Group, map[string]int) {
	groups := make([]Group, 0, len(seed))
	index := make(map[string]int, len(seed))
	for _, k := range seed {
		if _, ok := index[k]; ok {
			continue
		}
		index[k] = len(groups)
		groups = append(groups, Group{Key: k})
	}
	return groups, index
}

func SortByKey(groups []Group) {
	slices.SortStableFunc(groups, func(a, b Group) bool { return a.Key < b.Key })
}

func Total(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += g.Count
	}
	return n
}

func byPayType(r *Report) string           { return r.PayType }
func byPayerRelationship(r *Report) string { return r.PayerRelationship }
func payment(r *Report) Money              { return r.Payment }
func totalPayment(r *Report) Money         { return r.TotalPayment }
