package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbpedia-vi/vikb/similarity"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hồ Chí Minh", "ho chi minh"},
		{"Nguyễn Trãi", "nguyen trai"},
		{"Đà Nẵng", "da nang"},
		{"  Hà   Nội  ", "ha noi"},
		{"Việt Nam!", "viet nam"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, similarity.Normalize(tc.in), tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hồ Chí Minh", "Thành phố Hồ Chí Minh", "Vịnh Hạ Long", "abc 123"}
	for _, in := range inputs {
		once := similarity.Normalize(in)
		assert.Equal(t, once, similarity.Normalize(once), in)
	}
}

func TestStripDiacriticsHandlesDStroke(t *testing.T) {
	assert.Equal(t, "Da Nang", similarity.StripDiacritics("Đà Nẵng"))
	assert.Equal(t, "dong", similarity.StripDiacritics("đồng"))
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, similarity.LevenshteinDistance("hanoi", "hanoi"))
	assert.Equal(t, 1, similarity.LevenshteinDistance("hanoi", "hanoy"))
	assert.Equal(t, 5, similarity.LevenshteinDistance("", "hanoi"))

	assert.Equal(t, 1.0, similarity.LevenshteinSimilarity("", ""))
	assert.Equal(t, 1.0, similarity.LevenshteinSimilarity("hue", "hue"))
	assert.InDelta(t, 0.8, similarity.LevenshteinSimilarity("hanoi", "hanoy"), 1e-9)
}

func TestRatioBounds(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Ratio("", ""))
	assert.Equal(t, 0.0, similarity.Ratio("", "hue"))
	assert.Equal(t, 1.0, similarity.Ratio("ho chi minh", "ho chi minh"))

	r := similarity.Ratio("ho chi minh", "ho chi min")
	assert.Greater(t, r, 0.9)
	assert.Less(t, r, 1.0)
}

func TestPartialRatioSubstring(t *testing.T) {
	// Exact substring scores 1.0 regardless of surrounding text.
	assert.Equal(t, 1.0, similarity.PartialRatio("hue", "hue city"))
	assert.Equal(t, 1.0, similarity.PartialRatio("hue city", "hue"))
	assert.Equal(t, 1.0, similarity.PartialRatio("", ""))
	assert.Equal(t, 0.0, similarity.PartialRatio("", "hue"))
}

func TestTokenSortRatioIgnoresOrder(t *testing.T) {
	assert.Equal(t, 1.0, similarity.TokenSortRatio("chi minh ho", "ho chi minh"))
}

func TestTokenSetRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarity.TokenSetRatio("ho chi minh", "ho chi minh city"))
	assert.Equal(t, 1.0, similarity.TokenSetRatio("", ""))
	assert.Equal(t, 0.0, similarity.TokenSetRatio("", "hue"))
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Jaccard("", ""))
	assert.Equal(t, 1.0, similarity.Jaccard("ho chi minh", "minh chi ho"))
	assert.InDelta(t, 0.5, similarity.Jaccard("ha noi", "ha"), 1e-9)
	assert.Equal(t, 0.0, similarity.Jaccard("hue", "hanoi"))
}

func TestSelfSimilarityIsOne(t *testing.T) {
	names := []string{"Hồ Chí Minh", "Đà Nẵng", "Trường Đại học Bách khoa Hà Nội"}
	for _, name := range names {
		scores, confidence := similarity.Compare(name, name)
		assert.Equal(t, 1.0, confidence, name)
		for metric, score := range scores {
			assert.Equal(t, 1.0, score, "%s/%s", name, metric)
		}
	}
}

func TestDiacriticVariantsScoreHigh(t *testing.T) {
	// The romanized form normalizes identically to the original.
	_, confidence := similarity.Compare("Hồ Chí Minh", "Ho Chi Minh")
	assert.Equal(t, 1.0, confidence)
}

func TestConfidenceMonotonicity(t *testing.T) {
	_, near := similarity.Compare("Nguyễn Trãi", "Nguyen Trai")
	_, far := similarity.Compare("Nguyễn Trãi", "Battle of Hastings")
	assert.Greater(t, near, far)
}

func TestConfidenceWeights(t *testing.T) {
	// Full-score breakdown aggregates to exactly 1.0.
	scores := map[string]float64{
		similarity.MetricLevenshtein:    1.0,
		similarity.MetricRatio:          1.0,
		similarity.MetricPartialRatio:   1.0,
		similarity.MetricTokenSortRatio: 1.0,
		similarity.MetricTokenSetRatio:  1.0,
		similarity.MetricJaccard:        1.0,
	}
	assert.InDelta(t, 1.0, similarity.Confidence(scores), 1e-9)

	// Unknown keys are ignored; missing keys renormalize.
	assert.InDelta(t, 1.0, similarity.Confidence(map[string]float64{
		similarity.MetricRatio: 1.0,
		"cosine":               0.0,
	}), 1e-9)

	assert.Equal(t, 0.0, similarity.Confidence(map[string]float64{"cosine": 1.0}))
	assert.Equal(t, 0.0, similarity.Confidence(nil))
}
