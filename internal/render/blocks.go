package render

import (
	"fmt"
	"strings"

	"TubeDigest/internal/domain"
	"TubeDigest/internal/enrich"
)

// Rune bound for descriptions inside section blocks; longer than the
// plain-text fallback since blocks carry the description directly.
const blockDescLimit = 180

// BlocksRenderer emits a structured block list for destinations that
// support rich layout (Slack Block Kit shape).
type BlocksRenderer struct{}

var _ Renderer = BlocksRenderer{}

// Name identifies the style inside the registry.
func (BlocksRenderer) Name() string {
	return "blocks"
}

// Render produces header, section and context blocks, one group per
// video, separated by divider blocks. Text carries the fallback line
// for clients without block support.
func (BlocksRenderer) Render(d domain.Digest) domain.Message {
	if len(d.Videos) == 0 {
		notice := emptyNotice(d)
		return domain.Message{
			Text:   notice,
			Blocks: []domain.Block{{Type: "section", Text: domain.Markdown(notice)}},
		}
	}

	header := fmt.Sprintf("New uploads (last %dh)", d.WindowHours)
	blocks := []domain.Block{{Type: "header", Text: domain.PlainText(header)}}

	for _, v := range newestFirst(d.Videos) {
		desc := noDescription
		if v.Description != "" {
			desc = enrich.Truncate(v.Description, blockDescLimit)
		}

		blocks = append(blocks,
			domain.Block{
				Type: "section",
				Text: domain.Markdown(fmt.Sprintf("*<%s|%s>*\n%s", v.WatchURL(), v.Title, desc)),
			},
			domain.Block{
				Type: "context",
				Elements: []domain.TextObject{
					{Type: "mrkdwn", Text: v.ChannelName},
					{Type: "mrkdwn", Text: domain.DisplayTime(v.PublishedAt) + " UTC+9"},
					{Type: "mrkdwn", Text: strings.Join(hashTags(v.Tags), " ")},
				},
			},
			domain.Block{Type: "divider"},
		)
	}

	return domain.Message{Text: header, Blocks: blocks}
}
