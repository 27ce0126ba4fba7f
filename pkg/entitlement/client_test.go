package entitlement

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AllBenefits(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/benefits", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"data":[
			{"accountID":"u1","refreshRateSeconds":300,"maxFeeds":35,"maxDailyArticles":100,"isSupporter":true},
			{"accountID":"u2","refreshRateSeconds":0,"maxFeeds":5,"maxDailyArticles":50,"isSupporter":false}
		]}`))
		require.NoError(t, err)
	}))
	defer ts.Close()

	client := New(ts.URL, time.Second)
	benefits, err := client.AllBenefits(context.Background())
	require.NoError(t, err)
	require.Len(t, benefits, 2)

	assert.Equal(t, "u1", benefits[0].AccountID)
	assert.Equal(t, 300, benefits[0].RefreshRate)
	assert.True(t, benefits[0].IsSupporter)
	assert.Equal(t, "u2", benefits[1].AccountID)
	assert.False(t, benefits[1].IsSupporter)
}

func TestClient_AllBenefits_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := New(ts.URL, time.Second)
	_, err := client.AllBenefits(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestClient_AllBenefits_BreakerOpens(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := New(ts.URL, time.Second)
	for i := 0; i < 3; i++ {
		_, err := client.AllBenefits(context.Background())
		require.Error(t, err)
	}

	// breaker is open now, the backend must not be hit again
	_, err := client.AllBenefits(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}
