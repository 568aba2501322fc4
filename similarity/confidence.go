package similarity

// Metric keys as stored in score breakdowns.
const (
	MetricLevenshtein    = "levenshtein"
	MetricRatio          = "ratio"
	MetricPartialRatio   = "partial_ratio"
	MetricTokenSortRatio = "token_sort_ratio"
	MetricTokenSetRatio  = "token_set_ratio"
	MetricJaccard        = "jaccard"
)

// confidenceWeights is the fixed aggregation table. Unknown metric keys
// contribute nothing.
var confidenceWeights = map[string]float64{
	MetricLevenshtein:    0.20,
	MetricRatio:          0.25,
	MetricPartialRatio:   0.15,
	MetricTokenSortRatio: 0.20,
	MetricTokenSetRatio:  0.15,
	MetricJaccard:        0.05,
}

// Scores computes every metric between the normalized forms of a and b.
func Scores(a, b string) map[string]float64 {
	na, nb := Normalize(a), Normalize(b)
	return map[string]float64{
		MetricLevenshtein:    LevenshteinSimilarity(na, nb),
		MetricRatio:          Ratio(na, nb),
		MetricPartialRatio:   PartialRatio(na, nb),
		MetricTokenSortRatio: TokenSortRatio(na, nb),
		MetricTokenSetRatio:  TokenSetRatio(na, nb),
		MetricJaccard:        Jaccard(na, nb),
	}
}

// Confidence folds a metric breakdown into one score by weighted
// average over the recognized metrics. Returns 0 when the breakdown
// carries no recognized metric.
func Confidence(scores map[string]float64) float64 {
	var sum, totalWeight float64
	for key, score := range scores {
		weight, ok := confidenceWeights[key]
		if !ok {
			continue
		}
		sum += score * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0.0
	}
	return sum / totalWeight
}

// Compare is the common one-shot form: normalized metric breakdown plus
// aggregated confidence.
func Compare(a, b string) (map[string]float64, float64) {
	scores := Scores(a, b)
	return scores, Confidence(scores)
}
