package ports

import (
	"context"

	"TubeDigest/internal/domain"
)

// ChannelDirectory resolves a channel identifier to its canonical
// uploads playlist. A channel without one yields domain.ErrNoUploads.
type ChannelDirectory interface {
	ResolveUploads(ctx context.Context, channelID string) (string, error)
}

// FeedLister returns up to max of the most recent playlist entries,
// newest first as guaranteed by the upstream API.
type FeedLister interface {
	ListRecent(ctx context.Context, playlistID string, max int) ([]domain.VideoRef, error)
}

// VideoCatalog retrieves full metadata for a set of video identifiers.
// Result order is fetch order, not input order.
type VideoCatalog interface {
	FetchMeta(ctx context.Context, ids []string) ([]domain.VideoMeta, error)
}

// Notifier delivers a rendered digest to the configured destination.
type Notifier interface {
	Publish(ctx context.Context, msg domain.Message) error
}
