package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpirationMs(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"five minutes", 5 * time.Minute, "300000"},
		{"one hour", time.Hour, "3600000"},
		{"sub-millisecond rounds down", 500 * time.Microsecond, "0"},
		{"zero means no expiration", 0, ""},
		{"negative means no expiration", -time.Second, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expirationMs(tt.duration))
		})
	}
}
