package dispatch

import (
	"time"

	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

// DeliveryEvent is the wire-level delivery instruction for one feed. The
// consumer must drop it once expired rather than act on since-changed state.
type DeliveryEvent struct {
	Timestamp int64        `json:"timestamp"`
	Data      DeliveryData `json:"data"`
}

// DeliveryData bundles feed metadata, the projected mediums and the day limit
type DeliveryData struct {
	ArticleDayLimit int          `json:"articleDayLimit"`
	Feed            DeliveryFeed `json:"feed"`
	Mediums         []Medium     `json:"mediums"`
}

// DeliveryFeed is the feed-level metadata the delivery worker needs
type DeliveryFeed struct {
	ID                  string               `json:"id"`
	URL                 string               `json:"url"`
	PassingComparisons  []string             `json:"passingComparisons"`
	BlockingComparisons []string             `json:"blockingComparisons"`
	FormatOptions       domain.FormatOptions `json:"formatOptions"`
	DateChecks          *DateChecks          `json:"dateChecks,omitempty"`
}

// DateChecks carries the article date-age threshold when one is configured
type DateChecks struct {
	OldArticleThresholdMs int64 `json:"oldArticleThresholdMs"`
}

// Medium is one kind-tagged delivery target descriptor. Filters is null when
// the destination carries no filter expression.
type Medium struct {
	ID      string         `json:"id"`
	Kind    string         `json:"kind"`
	Filters *MediumFilters `json:"filters"`
	Details MediumDetails  `json:"details"`
}

// MediumFilters wraps the destination's filter expression
type MediumFilters struct {
	Expression string `json:"expression"`
}

// MediumDetails holds the kind-specific target plus formatting options
type MediumDetails struct {
	Channel                   *domain.ChannelTarget     `json:"channel,omitempty"`
	Webhook                   *domain.WebhookTarget     `json:"webhook,omitempty"`
	Content                   string                    `json:"content,omitempty"`
	Embeds                    []domain.Embed            `json:"embeds,omitempty"`
	Formatter                 domain.FormatterOptions   `json:"formatter"`
	Mentions                  []domain.MentionTarget    `json:"mentions,omitempty"`
	SplitOptions              *domain.SplitOptions      `json:"splitOptions,omitempty"`
	PlaceholderLimits         []domain.PlaceholderLimit `json:"placeholderLimits,omitempty"`
	EnablePlaceholderFallback bool                      `json:"enablePlaceholderFallback"`
}

// BuildDeliveryEvent projects every enabled destination of the feed into a
// medium descriptor. Disabled destinations are silently excluded; split
// options appear only when explicitly enabled.
func BuildDeliveryEvent(feed *domain.Feed, maxDailyArticles int) DeliveryEvent {
	mediums := make([]Medium, 0, len(feed.Destinations))
	for i := range feed.Destinations {
		dest := &feed.Destinations[i]
		if !dest.Enabled() {
			continue
		}
		mediums = append(mediums, buildMedium(dest))
	}

	var dateChecks *DateChecks
	if feed.MaxArticleAge > 0 {
		dateChecks = &DateChecks{OldArticleThresholdMs: feed.MaxArticleAge.Milliseconds()}
	}

	return DeliveryEvent{
		Timestamp: time.Now().Unix(),
		Data: DeliveryData{
			ArticleDayLimit: maxDailyArticles,
			Feed: DeliveryFeed{
				ID:                  feed.ID,
				URL:                 feed.URL,
				PassingComparisons:  feed.PassingComparisons,
				BlockingComparisons: feed.BlockingComparisons,
				FormatOptions:       feed.Format,
				DateChecks:          dateChecks,
			},
			Mediums: mediums,
		},
	}
}

func buildMedium(dest *domain.Destination) Medium {
	m := Medium{
		ID:   dest.ID,
		Kind: string(dest.Kind),
		Details: MediumDetails{
			Channel:                   dest.Channel,
			Webhook:                   dest.Webhook,
			Content:                   dest.Content,
			Embeds:                    dest.Embeds,
			Formatter:                 dest.Formatter,
			Mentions:                  dest.Mentions,
			PlaceholderLimits:         dest.PlaceholderLimits,
			EnablePlaceholderFallback: dest.EnablePlaceholderFallback,
		},
	}
	if dest.Filter != "" {
		m.Filters = &MediumFilters{Expression: dest.Filter}
	}
	if dest.Split != nil && dest.Split.Enabled {
		m.Details.SplitOptions = dest.Split
	}
	return m
}
