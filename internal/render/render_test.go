package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TubeDigest/internal/domain"
)

func sampleDigest() domain.Digest {
	return domain.Digest{
		WindowHours: 24,
		GeneratedAt: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Videos: []domain.EnrichedVideo{
			{
				VideoMeta: domain.VideoMeta{
					ID:          "vid-old",
					Title:       "Older upload",
					Description: "A longer description line for the older upload.",
					ChannelName: "Channel A",
					PublishedAt: "2026-03-01T08:00:00Z",
				},
				Tags:    []string{"agents"},
				Bullets: []string{"A longer description line for the older upload"},
			},
			{
				VideoMeta: domain.VideoMeta{
					ID:          "vid-new",
					Title:       "Newer upload",
					Description: "",
					ChannelName: "Channel B",
					PublishedAt: "2026-03-01T20:00:00Z",
				},
				Tags: []string{"general"},
			},
		},
	}
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(MinutesRenderer{})
	registry.Register(BlocksRenderer{})

	renderer, err := registry.Resolve("minutes")
	require.NoError(t, err)
	assert.Equal(t, "minutes", renderer.Name())

	_, err = registry.Resolve("carrier-pigeon")
	require.Error(t, err)
}

func TestNewestFirstStable(t *testing.T) {
	t.Parallel()

	videos := []domain.EnrichedVideo{
		{VideoMeta: domain.VideoMeta{ID: "a", PublishedAt: "2026-03-01T10:00:00Z"}},
		{VideoMeta: domain.VideoMeta{ID: "b", PublishedAt: "2026-03-01T12:00:00Z"}},
		{VideoMeta: domain.VideoMeta{ID: "c", PublishedAt: "2026-03-01T12:00:00Z"}},
	}

	sorted := newestFirst(videos)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "c", sorted[1].ID, "ties keep fetch order")
	assert.Equal(t, "a", sorted[2].ID)
	assert.Equal(t, "a", videos[2].ID, "input untouched")
}

func TestMinutesRenderOrderAndFields(t *testing.T) {
	t.Parallel()

	msg := MinutesRenderer{}.Render(sampleDigest())

	require.Empty(t, msg.Blocks)
	newer := strings.Index(msg.Text, "[1] Newer upload")
	older := strings.Index(msg.Text, "[2] Older upload")
	require.GreaterOrEqual(t, newer, 0)
	require.Greater(t, older, newer)

	assert.Contains(t, msg.Text, "https://www.youtube.com/watch?v=vid-new")
	assert.Contains(t, msg.Text, "- Channel: Channel B")
	assert.Contains(t, msg.Text, "- Published: 2026-03-02 05:00 (UTC+9)")
	assert.Contains(t, msg.Text, "- Tags: #agents")
	assert.Contains(t, msg.Text, minutesDivider)
}

func TestMinutesRenderSummaryFallbacks(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 150)
	d := domain.Digest{
		WindowHours: 24,
		GeneratedAt: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Videos: []domain.EnrichedVideo{
			{
				VideoMeta: domain.VideoMeta{ID: "v1", Title: "No bullets", Description: long, PublishedAt: "2026-03-01T10:00:00Z"},
				Tags:      []string{"general"},
			},
			{
				VideoMeta: domain.VideoMeta{ID: "v2", Title: "No description", PublishedAt: "2026-03-01T09:00:00Z"},
				Tags:      []string{"general"},
			},
		},
	}

	msg := MinutesRenderer{}.Render(d)

	assert.Contains(t, msg.Text, strings.Repeat("x", 100)+"…")
	assert.NotContains(t, msg.Text, strings.Repeat("x", 101))
	assert.Contains(t, msg.Text, "(no description)")
}

func TestMinutesRenderEmptyDigest(t *testing.T) {
	t.Parallel()

	d := domain.Digest{WindowHours: 24, GeneratedAt: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)}
	msg := MinutesRenderer{}.Render(d)

	assert.Equal(t, "Upload digest: no new videos in the last 24h (2026-03-02 09:00 UTC+9)", msg.Text)
}

func TestBlocksRenderStructure(t *testing.T) {
	t.Parallel()

	msg := BlocksRenderer{}.Render(sampleDigest())

	require.NotEmpty(t, msg.Blocks)
	assert.Equal(t, "header", msg.Blocks[0].Type)
	assert.Equal(t, "New uploads (last 24h)", msg.Text)

	// One section/context/divider group per video, after the header.
	require.Len(t, msg.Blocks, 1+3*2)

	first := msg.Blocks[1]
	assert.Equal(t, "section", first.Type)
	assert.Contains(t, first.Text.Text, "*<https://www.youtube.com/watch?v=vid-new|Newer upload>*")

	context := msg.Blocks[2]
	require.Len(t, context.Elements, 3)
	assert.Equal(t, "Channel B", context.Elements[0].Text)
	assert.Equal(t, "2026-03-02 05:00 UTC+9", context.Elements[1].Text)
	assert.Equal(t, "#general", context.Elements[2].Text)

	assert.Equal(t, "divider", msg.Blocks[3].Type)
}

func TestBlocksRenderEmptyDigest(t *testing.T) {
	t.Parallel()

	d := domain.Digest{WindowHours: 48, GeneratedAt: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)}
	msg := BlocksRenderer{}.Render(d)

	require.Len(t, msg.Blocks, 1)
	assert.Contains(t, msg.Text, "no new videos in the last 48h")
}

func TestSummaryLinesPrefersBullets(t *testing.T) {
	t.Parallel()

	v := domain.EnrichedVideo{
		VideoMeta: domain.VideoMeta{Description: "ignored when bullets exist"},
		Bullets:   []string{"bullet one kept", "bullet two kept"},
	}
	assert.Equal(t, []string{"bullet one kept", "bullet two kept"}, summaryLines(v))
}
