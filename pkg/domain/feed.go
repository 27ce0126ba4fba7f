package domain

import "time"

// HealthStatus reflects the last known outcome of fetch work for a feed
type HealthStatus string

// health statuses set by the outcome-event path
const (
	HealthOk      HealthStatus = "ok"
	HealthPending HealthStatus = "pending"
	HealthFailed  HealthStatus = "failed"
)

// disabled codes recorded when a feed or destination is automatically turned off.
// A code is sticky: it is set only when the field is currently absent and cleared
// only by an explicit re-enable in the admin layer.
const (
	DisabledCodeFetchFailures      = "fetch failures"
	DisabledCodeBadFormat          = "bad format"
	DisabledCodeMissingChannel     = "missing channel"
	DisabledCodeMissingPermissions = "missing permissions"
	DisabledCodeDeliveryForbidden  = "delivery forbidden"
	DisabledCodeDeliveryRejected   = "delivery rejected"
	DisabledCodeExceededFeedLimit  = "exceeded feed limit"
)

// FormatOptions holds feed-level article formatting settings
type FormatOptions struct {
	DateFormat   string `bson:"date_format,omitempty" json:"dateFormat,omitempty"`
	DateTimezone string `bson:"date_timezone,omitempty" json:"dateTimezone,omitempty"`
}

// Feed is a tracked content source with an assigned refresh cadence and an
// ordered list of delivery destinations
type Feed struct {
	ID                  string        `bson:"_id" json:"id"`
	URL                 string        `bson:"url" json:"url"`
	AccountID           string        `bson:"account_id" json:"accountID"`
	RefreshRate         int           `bson:"refresh_rate" json:"refreshRateSeconds"` // seconds
	DisabledCode        string        `bson:"disabled_code,omitempty" json:"disabledCode,omitempty"`
	HealthStatus        HealthStatus  `bson:"health_status" json:"healthStatus"`
	PassingComparisons  []string      `bson:"passing_comparisons,omitempty" json:"passingComparisons,omitempty"`
	BlockingComparisons []string      `bson:"blocking_comparisons,omitempty" json:"blockingComparisons,omitempty"`
	Format              FormatOptions `bson:"format" json:"format"`
	MaxArticleAge       time.Duration `bson:"max_article_age,omitempty" json:"maxArticleAge,omitempty"`
	Destinations        []Destination `bson:"destinations" json:"destinations"`
	CreatedAt           time.Time     `bson:"created_at" json:"createdAt"`
}

// Enabled reports whether the feed has no disabled code set
func (f *Feed) Enabled() bool { return f.DisabledCode == "" }

// HasEnabledDestination reports whether at least one destination can still receive deliveries
func (f *Feed) HasEnabledDestination() bool {
	for i := range f.Destinations {
		if f.Destinations[i].Enabled() {
			return true
		}
	}
	return false
}

// AccountLimit is the per-account feed-count cap supplied to the enforcement collaborator
type AccountLimit struct {
	AccountID string
	MaxFeeds  int
}
