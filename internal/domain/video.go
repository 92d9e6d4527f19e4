package domain

import (
	"errors"
	"time"
)

const watchBaseURL = "https://www.youtube.com/watch?v="

// ErrNoUploads marks a channel without a resolvable uploads playlist.
// Callers skip such channels instead of aborting the run.
var ErrNoUploads = errors.New("channel has no uploads playlist")

// VideoRef is a feed entry discovered before metadata retrieval.
// PublishedAt stays in the API's Z-form RFC3339 text; entries the feed
// returns without a timestamp carry an empty string.
type VideoRef struct {
	ID          string
	PublishedAt string
}

// Statistics carries the counters returned with video metadata. The
// pipeline never reads them; they ride along for downstream consumers.
type Statistics struct {
	ViewCount string
	LikeCount string
}

// VideoMeta is the full metadata snapshot for one video.
type VideoMeta struct {
	ID          string
	Title       string
	Description string
	ChannelName string
	PublishedAt string
	Stats       Statistics
}

// WatchURL builds the permalink for the video.
func (v VideoMeta) WatchURL() string {
	return watchBaseURL + v.ID
}

// EnrichedVideo is VideoMeta plus derived topic tags and summary bullets.
type EnrichedVideo struct {
	VideoMeta
	Tags    []string
	Bullets []string
}

// Digest is the material for one delivery: every enriched video found in
// the window, plus the instant the run was generated.
type Digest struct {
	Videos      []EnrichedVideo
	WindowHours int
	GeneratedAt time.Time
}
