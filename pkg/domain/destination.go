package domain

// DestinationKind tags the delivery medium variant of a destination
type DestinationKind string

// known destination kinds, more may be added
const (
	KindChannel DestinationKind = "channel"
	KindWebhook DestinationKind = "webhook"
)

// ChannelTarget holds delivery details for a channel destination
type ChannelTarget struct {
	ChannelID string `bson:"channel_id" json:"channelID"`
}

// WebhookTarget holds delivery details for a webhook destination
type WebhookTarget struct {
	WebhookID string `bson:"webhook_id" json:"webhookID"`
	Token     string `bson:"token" json:"token"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	IconURL   string `bson:"icon_url,omitempty" json:"iconURL,omitempty"`
}

// Embed is a rich-content block attached to delivered articles
type Embed struct {
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	URL         string `bson:"url,omitempty" json:"url,omitempty"`
	Color       int    `bson:"color,omitempty" json:"color,omitempty"`
	ImageURL    string `bson:"image_url,omitempty" json:"imageURL,omitempty"`
}

// MentionTarget names a role or user to mention on delivery, optionally gated
// by a filter expression
type MentionTarget struct {
	ID     string `bson:"id" json:"id"`
	Type   string `bson:"type" json:"type"` // role or user
	Filter string `bson:"filter,omitempty" json:"filter,omitempty"`
}

// SplitOptions controls splitting of long content into multiple messages
type SplitOptions struct {
	Enabled     bool   `bson:"enabled" json:"enabled"`
	Limit       int    `bson:"limit,omitempty" json:"limit,omitempty"`
	AppendChar  string `bson:"append_char,omitempty" json:"appendChar,omitempty"`
	PrependChar string `bson:"prepend_char,omitempty" json:"prependChar,omitempty"`
}

// PlaceholderLimit caps the rendered length of a single placeholder
type PlaceholderLimit struct {
	Placeholder    string `bson:"placeholder" json:"placeholder"`
	CharacterCount int    `bson:"character_count" json:"characterCount"`
	AppendString   string `bson:"append_string,omitempty" json:"appendString,omitempty"`
}

// FormatterOptions holds medium-level formatting sub-options
type FormatterOptions struct {
	FormatTables             bool `bson:"format_tables" json:"formatTables"`
	StripImages              bool `bson:"strip_images" json:"stripImages"`
	DisableImageLinkPreviews bool `bson:"disable_image_link_previews" json:"disableImageLinkPreviews"`
}

// Destination is one configured delivery target of a feed. Destinations of all
// kinds live in a single ordered list on the feed; Kind selects which target
// details apply. Position in the list is part of the addressing scheme for
// targeted updates, together with the id re-check.
type Destination struct {
	ID                        string             `bson:"id" json:"id"`
	Kind                      DestinationKind    `bson:"kind" json:"kind"`
	DisabledCode              string             `bson:"disabled_code,omitempty" json:"disabledCode,omitempty"`
	Filter                    string             `bson:"filter,omitempty" json:"filter,omitempty"`
	Channel                   *ChannelTarget     `bson:"channel,omitempty" json:"channel,omitempty"`
	Webhook                   *WebhookTarget     `bson:"webhook,omitempty" json:"webhook,omitempty"`
	Content                   string             `bson:"content,omitempty" json:"content,omitempty"`
	Embeds                    []Embed            `bson:"embeds,omitempty" json:"embeds,omitempty"`
	Formatter                 FormatterOptions   `bson:"formatter" json:"formatter"`
	Mentions                  []MentionTarget    `bson:"mentions,omitempty" json:"mentions,omitempty"`
	Split                     *SplitOptions      `bson:"split,omitempty" json:"split,omitempty"`
	PlaceholderLimits         []PlaceholderLimit `bson:"placeholder_limits,omitempty" json:"placeholderLimits,omitempty"`
	EnablePlaceholderFallback bool               `bson:"enable_placeholder_fallback,omitempty" json:"enablePlaceholderFallback,omitempty"`
}

// Enabled reports whether the destination has no disabled code set
func (d *Destination) Enabled() bool { return d.DisabledCode == "" }
