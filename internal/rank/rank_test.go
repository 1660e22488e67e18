package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	t.Run("EmptyYieldsZero", func(t *testing.T) {
		assert.Equal(t, 0.0, Average(nil))
		assert.Equal(t, 0.0, Average([]int{}))
	})

	t.Run("SingleScoreIsExact", func(t *testing.T) {
		assert.Equal(t, 7.0, Average([]int{7}))
	})

	t.Run("MeanOfMany", func(t *testing.T) {
		assert.Equal(t, 9.0, Average([]int{8, 10}))
		assert.InDelta(t, 6.333333, Average([]int{5, 6, 8}), 1e-6)
	})
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 6.3, Round1(6.333333))
	assert.Equal(t, 8.7, Round1(8.666666))
	assert.Equal(t, 9.0, Round1(9.0))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		mean float64
		want string
	}{
		{10, "S"},
		{9.0, "S"},
		{8.9, "A"},
		{8.0, "A"},
		{7.5, "B"},
		{6.0, "C"},
		{5.9, "D"},
		{4.9, "E"},
		{3.0, "E"},
		{2.9, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		tier, ok := Classify(tc.mean)
		assert.True(t, ok, "mean %v should classify", tc.mean)
		assert.Equal(t, tc.want, tier.Name, "mean %v", tc.mean)
	}
}

func TestClassify_GapIsUnmatched(t *testing.T) {
	// (2.9, 3) falls between F and E; no tier claims it.
	_, ok := Classify(2.95)
	assert.False(t, ok)
}

type fakeAlbum struct {
	title  string
	scores []int
}

func (a fakeAlbum) Scores() []int { return a.scores }

func TestBuildTierList(t *testing.T) {
	albums := []fakeAlbum{
		{title: "first-s", scores: []int{8, 10}},  // mean 9.0 -> S
		{title: "a-tier", scores: []int{8}},       // 8.0 -> A
		{title: "unrated", scores: nil},           // excluded
		{title: "second-s", scores: []int{9, 9}},  // 9.0 -> S
		{title: "f-tier", scores: []int{1, 2, 3}}, // 2.0 -> F
	}

	groups := BuildTierList(albums)

	assert.Len(t, groups, 7)
	assert.Equal(t, "S", groups[0].Name)

	// Insertion order preserved within a bucket.
	s := groups[0].Entries
	assert.Len(t, s, 2)
	assert.Equal(t, "first-s", s[0].Item.title)
	assert.Equal(t, "second-s", s[1].Item.title)
	assert.Equal(t, 9.0, s[0].Mean)

	assert.Len(t, groups[1].Entries, 1) // A
	assert.Len(t, groups[6].Entries, 1) // F

	total := 0
	for _, g := range groups {
		total += len(g.Entries)
	}
	assert.Equal(t, 4, total, "unrated album excluded from every band")
}
