package render

import (
	"fmt"
	"sort"

	"TubeDigest/internal/domain"
	"TubeDigest/internal/enrich"
)

const (
	// Rune bound of the truncated-description fallback line.
	fallbackLimit = 100

	noDescription = "(no description)"
)

// Renderer turns one digest into an outbound webhook message.
type Renderer interface {
	Name() string
	Render(digest domain.Digest) domain.Message
}

// Registry keeps a mapping from style names to renderer implementations.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: map[string]Renderer{}}
}

// Register adds or replaces a renderer implementation.
func (r *Registry) Register(renderer Renderer) {
	if r.renderers == nil {
		r.renderers = map[string]Renderer{}
	}
	r.renderers[renderer.Name()] = renderer
}

// Resolve returns a renderer by style name or an error if it is absent.
func (r *Registry) Resolve(name string) (Renderer, error) {
	if renderer, ok := r.renderers[name]; ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("digest style %s is not registered", name)
}

// newestFirst returns a copy sorted descending by publish timestamp.
// The sort is stable, so ties keep fetch order. Z-form timestamps order
// lexically the same as their instants.
func newestFirst(videos []domain.EnrichedVideo) []domain.EnrichedVideo {
	sorted := make([]domain.EnrichedVideo, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt > sorted[j].PublishedAt
	})
	return sorted
}

// summaryLines picks the bullet block for one video: the enrichment
// bullets, a truncated description, or the empty-description placeholder.
func summaryLines(v domain.EnrichedVideo) []string {
	if len(v.Bullets) > 0 {
		return v.Bullets
	}
	if v.Description != "" {
		return []string{enrich.Truncate(v.Description, fallbackLimit)}
	}
	return []string{noDescription}
}

func hashTags(tags []string) []string {
	prefixed := make([]string, 0, len(tags))
	for _, tag := range tags {
		prefixed = append(prefixed, "#"+tag)
	}
	return prefixed
}

func emptyNotice(d domain.Digest) string {
	return fmt.Sprintf("Upload digest: no new videos in the last %dh (%s UTC+9)",
		d.WindowHours, domain.DisplayStamp(d.GeneratedAt))
}
