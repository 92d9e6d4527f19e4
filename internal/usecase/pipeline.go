package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"TubeDigest/internal/domain"
	"TubeDigest/internal/enrich"
	"TubeDigest/internal/ports"
	"TubeDigest/internal/render"
)

// PipelineDeps wires all driven adapters and run parameters into the
// aggregation pipeline.
type PipelineDeps struct {
	Directory ports.ChannelDirectory
	Feed      ports.FeedLister
	Catalog   ports.VideoCatalog
	Notifier  ports.Notifier
	Renderer  render.Renderer
	Tagger    *enrich.Tagger

	Channels      []string
	WindowHours   int
	MaxPerChannel int

	Logger *slog.Logger
}

// Pipeline implements the aggregation-and-digest workflow: window, per
// channel discovery, dedup, batched metadata retrieval, enrichment,
// rendering and delivery. Execution is strictly sequential.
type Pipeline struct {
	directory ports.ChannelDirectory
	feed      ports.FeedLister
	catalog   ports.VideoCatalog
	notifier  ports.Notifier
	renderer  render.Renderer
	tagger    *enrich.Tagger

	channels      []string
	windowHours   int
	maxPerChannel int

	logger *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		directory:     deps.Directory,
		feed:          deps.Feed,
		catalog:       deps.Catalog,
		notifier:      deps.Notifier,
		renderer:      deps.Renderer,
		tagger:        deps.Tagger,
		channels:      deps.Channels,
		windowHours:   deps.WindowHours,
		maxPerChannel: deps.MaxPerChannel,
		logger:        deps.Logger,
	}
}

// Run executes one aggregation pass anchored at now. Every upstream or
// delivery failure aborts the run; only an unresolvable channel is
// skipped. No partial digest is ever delivered.
func (p *Pipeline) Run(ctx context.Context, now time.Time) error {
	cutoff := domain.Cutoff(now, p.windowHours)
	p.debug("run started", "cutoff", cutoff, "channels", len(p.channels))

	seen := map[string]struct{}{}
	var ids []string

	for _, channel := range p.channels {
		playlistID, err := p.directory.ResolveUploads(ctx, channel)
		if errors.Is(err, domain.ErrNoUploads) {
			p.warn("channel skipped", "channel", channel, "reason", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("resolve channel %s: %w", channel, err)
		}

		refs, err := p.feed.ListRecent(ctx, playlistID, p.maxPerChannel)
		if err != nil {
			return fmt.Errorf("list uploads for %s: %w", channel, err)
		}

		recent := filterRecent(refs, cutoff)
		p.debug("channel processed", "channel", channel, "listed", len(refs), "recent", len(recent))

		for _, ref := range recent {
			if _, ok := seen[ref.ID]; ok {
				continue
			}
			seen[ref.ID] = struct{}{}
			ids = append(ids, ref.ID)
		}
	}

	digest := domain.Digest{WindowHours: p.windowHours, GeneratedAt: now}

	if len(ids) > 0 {
		metas, err := p.catalog.FetchMeta(ctx, ids)
		if err != nil {
			return fmt.Errorf("fetch video metadata: %w", err)
		}

		digest.Videos = make([]domain.EnrichedVideo, 0, len(metas))
		for _, meta := range metas {
			digest.Videos = append(digest.Videos, domain.EnrichedVideo{
				VideoMeta: meta,
				Tags:      p.tagger.Tags(meta.Title, meta.Description),
				Bullets:   enrich.Bullets(meta.Description),
			})
		}
	}

	if err := p.notifier.Publish(ctx, p.renderer.Render(digest)); err != nil {
		return fmt.Errorf("deliver digest: %w", err)
	}

	p.info("run finished", "videos", len(digest.Videos), "style", p.renderer.Name())
	return nil
}

// filterRecent keeps refs published at or after the cutoff. The
// comparison is lexical, which matches instant order for Z-form
// timestamps; refs without a timestamp are dropped.
func filterRecent(refs []domain.VideoRef, cutoff string) []domain.VideoRef {
	var recent []domain.VideoRef
	for _, ref := range refs {
		if ref.PublishedAt == "" || ref.PublishedAt < cutoff {
			continue
		}
		recent = append(recent, ref)
	}
	return recent
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
