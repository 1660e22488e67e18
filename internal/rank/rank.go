package rank

import "math"

// Average computes the arithmetic mean of a set of 1-10 scores.
// An empty set yields 0 rather than dividing by zero.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// Round1 rounds a mean to one decimal for display. Classification always
// uses the unrounded mean.
func Round1(mean float64) float64 {
	return math.Round(mean*10) / 10
}

// Tier is a closed-closed rating band.
type Tier struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Tiers partitions [0,10] from best to worst. The gap (2.9,3) is unreachable
// for any mean of integer scores but Classify reports no match for it instead
// of forcing a band.
var Tiers = []Tier{
	{Name: "S", Min: 9, Max: 10},
	{Name: "A", Min: 8, Max: 8.9},
	{Name: "B", Min: 7, Max: 7.9},
	{Name: "C", Min: 6, Max: 6.9},
	{Name: "D", Min: 5, Max: 5.9},
	{Name: "E", Min: 3, Max: 4.9},
	{Name: "F", Min: 0, Max: 2.9},
}

// Classify returns the tier whose band contains mean, or ok=false when the
// mean falls outside every band.
func Classify(mean float64) (Tier, bool) {
	for _, t := range Tiers {
		if mean >= t.Min && mean <= t.Max {
			return t, true
		}
	}
	return Tier{}, false
}

// Rated is anything with a set of scores, typically an album with its ratings.
type Rated interface {
	Scores() []int
}

// Group is one tier bucket of a built tier list.
type Group[T Rated] struct {
	Tier
	Entries []Entry[T] `json:"entries"`
}

// Entry pairs a bucketed item with its computed mean.
type Entry[T Rated] struct {
	Item T       `json:"item"`
	Mean float64 `json:"mean"`
}

// BuildTierList buckets items into the fixed tiers by mean score. Items with
// no scores are excluded entirely; insertion order of the input is preserved
// within each bucket. Items whose mean misses every band (the (2.9,3) gap)
// land in no bucket.
func BuildTierList[T Rated](items []T) []Group[T] {
	groups := make([]Group[T], len(Tiers))
	for i, t := range Tiers {
		groups[i] = Group[T]{Tier: t, Entries: []Entry[T]{}}
	}

	index := make(map[string]int, len(Tiers))
	for i, t := range Tiers {
		index[t.Name] = i
	}

	for _, item := range items {
		scores := item.Scores()
		if len(scores) == 0 {
			continue
		}
		mean := Average(scores)
		tier, ok := Classify(mean)
		if !ok {
			continue
		}
		i := index[tier.Name]
		groups[i].Entries = append(groups[i].Entries, Entry[T]{Item: item, Mean: mean})
	}
	return groups
}
