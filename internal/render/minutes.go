package render

import (
	"fmt"
	"strings"

	"TubeDigest/internal/domain"
)

const minutesDivider = "────────────────────────"

// MinutesRenderer formats the digest as a plain-text briefing note, one
// numbered record per video.
type MinutesRenderer struct{}

var _ Renderer = MinutesRenderer{}

// Name identifies the style inside the registry.
func (MinutesRenderer) Name() string {
	return "minutes"
}

// Render produces the text message. An empty digest yields the
// no-new-videos notice instead of an empty body.
func (MinutesRenderer) Render(d domain.Digest) domain.Message {
	if len(d.Videos) == 0 {
		return domain.Message{Text: emptyNotice(d)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Upload digest (%s)\n\n", domain.DisplayDate(d.GeneratedAt))

	for i, v := range newestFirst(d.Videos) {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, v.Title)
		fmt.Fprintf(&b, "- Published: %s (UTC+9)\n", domain.DisplayTime(v.PublishedAt))
		fmt.Fprintf(&b, "- Channel: %s\n", v.ChannelName)
		b.WriteString("- Summary:\n")
		for _, line := range summaryLines(v) {
			fmt.Fprintf(&b, "    - %s\n", line)
		}
		fmt.Fprintf(&b, "- URL: %s\n", v.WatchURL())
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(hashTags(v.Tags), " "))
		b.WriteString(minutesDivider + "\n\n")
	}

	return domain.Message{Text: strings.TrimRight(b.String(), "\n")}
}
