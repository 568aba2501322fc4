// Package linker links Vietnamese entities to their English DBPedia
// counterparts. Four strategies run in a fixed order and their results
// are unioned, deduplicated, ranked by confidence, and truncated.
package linker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Match methods, in strategy order.
const (
	MethodDirectMapping = "direct_mapping"
	MethodLanguageLink  = "language_link"
	MethodSimilarity    = "similarity"
	MethodProperty      = "property_based"
)

// Match is one candidate link from a Vietnamese entity to an external
// English entity.
type Match struct {
	SourceEntity     string             `json:"vietnamese_entity"`
	TargetEntity     string             `json:"english_entity"`
	TargetURI        string             `json:"dbpedia_uri"`
	Confidence       float64            `json:"confidence_score"`
	SimilarityScores map[string]float64 `json:"similarity_scores"`
	Method           string             `json:"match_method"`
	Metadata         map[string]string  `json:"additional_info,omitempty"`
}

// Deduplicate keeps the highest-confidence match per target URI,
// preserving first-seen order of the survivors.
func Deduplicate(matches []Match) []Match {
	best := make(map[string]int)
	var out []Match
	for _, m := range matches {
		idx, seen := best[m.TargetURI]
		if !seen {
			best[m.TargetURI] = len(out)
			out = append(out, m)
			continue
		}
		if m.Confidence > out[idx].Confidence {
			out[idx] = m
		}
	}
	return out
}

// SaveResults writes a linking run as a JSON mapping of source entity
// to its ranked matches.
func SaveResults(path string, results map[string][]Match) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal linking results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadResults reads a file produced by SaveResults.
func LoadResults(path string) (map[string][]Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var results map[string][]Match
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return results, nil
}
