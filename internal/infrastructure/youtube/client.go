package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"TubeDigest/internal/domain"
	"TubeDigest/internal/ports"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// Upstream limits: page size of playlistItems.list and id-batch size
	// of videos.list.
	maxPageSize  = 50
	maxBatchSize = 50
)

// Client talks to the YouTube Data API v3. It backs all three upstream
// capabilities the pipeline consumes.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ ports.ChannelDirectory = (*Client)(nil)
var _ ports.FeedLister = (*Client)(nil)
var _ ports.VideoCatalog = (*Client)(nil)

// NewClient wires an HTTP client; baseURL defaults to the public API.
func NewClient(baseURL, apiKey string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, client: client}
}

// ResolveUploads looks up the channel's uploads playlist via
// channels.list. A channel the API does not know is a soft skip.
func (c *Client) ResolveUploads(ctx context.Context, channelID string) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return "", err
	}

	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel %s: %w", channelID, domain.ErrNoUploads)
	}
	uploads := resp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("channel %s: %w", channelID, domain.ErrNoUploads)
	}
	return uploads, nil
}

// ListRecent fetches one page of the playlist via playlistItems.list.
// The API returns entries in reverse-chronological order.
func (c *Client) ListRecent(ctx context.Context, playlistID string, max int) ([]domain.VideoRef, error) {
	if max < 1 || max > maxPageSize {
		max = maxPageSize
	}

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(max))

	var resp playlistItemsResponse
	if err := c.get(ctx, "playlistItems", params, &resp); err != nil {
		return nil, err
	}

	refs := make([]domain.VideoRef, 0, len(resp.Items))
	for _, item := range resp.Items {
		refs = append(refs, domain.VideoRef{
			ID:          item.ContentDetails.VideoID,
			PublishedAt: item.ContentDetails.VideoPublishedAt,
		})
	}
	return refs, nil
}

// FetchMeta retrieves metadata via videos.list, one call per batch of at
// most fifty identifiers. Results concatenate in fetch order.
func (c *Client) FetchMeta(ctx context.Context, ids []string) ([]domain.VideoMeta, error) {
	var metas []domain.VideoMeta
	for _, batch := range chunk(ids, maxBatchSize) {
		params := url.Values{}
		params.Set("part", "snippet,statistics")
		params.Set("id", strings.Join(batch, ","))

		var resp videoListResponse
		if err := c.get(ctx, "videos", params, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			metas = append(metas, domain.VideoMeta{
				ID:          item.ID,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				ChannelName: item.Snippet.ChannelTitle,
				PublishedAt: item.Snippet.PublishedAt,
				Stats: domain.Statistics{
					ViewCount: item.Statistics.ViewCount,
					LikeCount: item.Statistics.LikeCount,
				},
			})
		}
	}
	return metas, nil
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, v any) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/" + resource + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube %s returned %s", resource, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

func chunk(ids []string, size int) [][]string {
	var batches [][]string
	for len(ids) > size {
		batches = append(batches, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		batches = append(batches, ids)
	}
	return batches
}
