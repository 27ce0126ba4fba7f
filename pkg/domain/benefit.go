package domain

import "time"

// Benefit is the resolved entitlement record for an account, produced by the
// external entitlement service. A zero value in any cap means the account has
// no entitlement for it and the system default applies.
type Benefit struct {
	AccountID        string     `json:"accountID"`
	RefreshRate      int        `json:"refreshRateSeconds"` // seconds, 0 = no rate entitlement
	MaxFeeds         int        `json:"maxFeeds"`
	MaxDailyArticles int        `json:"maxDailyArticles"`
	IsSupporter      bool       `json:"isSupporter"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"` // nil = does not expire
}

// ActiveAt reports whether the benefit qualifies at the given moment
func (b Benefit) ActiveAt(now time.Time) bool {
	if !b.IsSupporter {
		return false
	}
	if b.ExpiresAt != nil && !b.ExpiresAt.After(now) {
		return false
	}
	return true
}
