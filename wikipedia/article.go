// Package wikipedia collects Vietnamese Wikipedia articles through the
// MediaWiki API, with rate limiting and bounded retries.
package wikipedia

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Article is one collected Wikipedia article. Instances are immutable
// once collected and identified by title.
type Article struct {
	Title        string            `json:"title"`
	PageID       int64             `json:"page_id"`
	URL          string            `json:"url"`
	Abstract     string            `json:"abstract"`
	Content      string            `json:"content"`
	Infobox      map[string]string `json:"infobox"`
	Categories   []string          `json:"categories"`
	Templates    []string          `json:"templates"`
	Language     string            `json:"language"`
	LastModified string            `json:"last_modified"`
	RevisionID   int64             `json:"revision_id"`
}

// SaveArticles writes a collection run to a JSON file.
func SaveArticles(articles []*Article, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadArticles reads a collection file produced by SaveArticles.
func LoadArticles(path string) ([]*Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var articles []*Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return articles, nil
}
