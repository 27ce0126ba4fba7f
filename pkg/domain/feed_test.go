package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeed_Enabled(t *testing.T) {
	f := Feed{ID: "f1"}
	assert.True(t, f.Enabled())

	f.DisabledCode = DisabledCodeFetchFailures
	assert.False(t, f.Enabled())
}

func TestFeed_HasEnabledDestination(t *testing.T) {
	tests := []struct {
		name         string
		destinations []Destination
		want         bool
	}{
		{name: "no destinations", destinations: nil, want: false},
		{
			name:         "single enabled",
			destinations: []Destination{{ID: "d1", Kind: KindChannel}},
			want:         true,
		},
		{
			name: "all disabled",
			destinations: []Destination{
				{ID: "d1", Kind: KindChannel, DisabledCode: DisabledCodeMissingChannel},
				{ID: "d2", Kind: KindWebhook, DisabledCode: DisabledCodeDeliveryForbidden},
			},
			want: false,
		},
		{
			name: "one of two enabled",
			destinations: []Destination{
				{ID: "d1", Kind: KindChannel, DisabledCode: DisabledCodeMissingPermissions},
				{ID: "d2", Kind: KindWebhook},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Feed{ID: "f1", Destinations: tt.destinations}
			assert.Equal(t, tt.want, f.HasEnabledDestination())
		})
	}
}

func TestBenefit_ActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		benefit Benefit
		want    bool
	}{
		{name: "not a supporter", benefit: Benefit{}, want: false},
		{name: "supporter without expiry", benefit: Benefit{IsSupporter: true}, want: true},
		{name: "supporter not yet expired", benefit: Benefit{IsSupporter: true, ExpiresAt: &future}, want: true},
		{name: "supporter expired", benefit: Benefit{IsSupporter: true, ExpiresAt: &past}, want: false},
		{name: "supporter expiring right now", benefit: Benefit{IsSupporter: true, ExpiresAt: &now}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.benefit.ActiveAt(now))
		})
	}
}
