package enrich

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordTable []byte

const (
	maxTags     = 5
	fallbackTag = "general"
)

// Rule maps one lowercase keyword to the tag label it emits.
type Rule struct {
	Keyword string `yaml:"keyword"`
	Tag     string `yaml:"tag"`
}

// Tagger derives topic tags from title and description text.
type Tagger struct {
	rules []Rule
}

// NewTagger parses the embedded keyword table.
func NewTagger() (*Tagger, error) {
	var rules []Rule
	if err := yaml.Unmarshal(keywordTable, &rules); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("keyword table is empty")
	}
	return &Tagger{rules: rules}, nil
}

// NewTaggerWithRules builds a tagger over an explicit rule set.
func NewTaggerWithRules(rules []Rule) *Tagger {
	return &Tagger{rules: rules}
}

// Tags collects the labels of every keyword contained in the lowercased
// title+description, in table order, capped at five. With no match it
// returns the single fallback tag.
func (t *Tagger) Tags(title, description string) []string {
	text := strings.ToLower(title + "\n" + description)

	var tags []string
	for _, rule := range t.rules {
		if !strings.Contains(text, rule.Keyword) {
			continue
		}
		tags = append(tags, rule.Tag)
		if len(tags) == maxTags {
			break
		}
	}

	if len(tags) == 0 {
		return []string{fallbackTag}
	}
	return tags
}
