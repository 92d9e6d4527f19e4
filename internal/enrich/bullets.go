package enrich

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxBullets     = 3
	minFragmentLen = 8

	// Leading/trailing characters stripped from each description line
	// before sentence splitting.
	bulletMarkers = " ・-•\t"
)

// One delimiter class covering both CJK and Latin sentence enders.
var sentenceDelims = regexp.MustCompile(`[。.!?・•\-]+`)

// Normalize trims s and collapses internal whitespace runs to single
// spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate normalizes s and bounds it to limit runes, appending an
// ellipsis when text was cut off.
func Truncate(s string, limit int) string {
	runes := []rune(Normalize(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "…"
}

// Bullets extracts up to three summary fragments from a description.
// Lines are split on sentence-ending punctuation; fragments shorter than
// eight runes after normalization are dropped as non-informative. Order
// follows the original scan, with no dedup across fragments.
func Bullets(description string) []string {
	if description == "" {
		return nil
	}

	var bullets []string
	for _, line := range strings.Split(strings.ReplaceAll(description, "\r", ""), "\n") {
		line = strings.Trim(line, bulletMarkers)
		if line == "" {
			continue
		}
		for _, fragment := range sentenceDelims.Split(line, -1) {
			fragment = Normalize(fragment)
			if utf8.RuneCountInString(fragment) < minFragmentLen {
				continue
			}
			bullets = append(bullets, fragment)
			if len(bullets) == maxBullets {
				return bullets
			}
		}
	}

	return bullets
}
