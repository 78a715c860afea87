package bref

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shotcharts-backend/lib/telemetry"
	"shotcharts-backend/lib/zonestats"

	_ "embed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

//go:embed testdata/shooting.html
var shootingFixture []byte

//go:embed testdata/search.html
var searchFixture []byte

func setupClient(t testing.TB, handler http.Handler, limiter *rate.Limiter) *Client {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/bref")
	t.Cleanup(cleanup)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	client, err := NewClient(ClientOptions{
		BaseUrl: server.URL,
		Limiter: limiter,
	})
	require.NoError(t, err)
	return client
}

func TestSearchPlayers(t *testing.T) {
	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/search.fcgi", r.URL.Path)
		require.Equal(t, "James", r.URL.Query().Get("search"))
		w.Write(searchFixture)
	}), nil)

	entries, err := client.SearchPlayers(context.Background(), "James")
	require.NoError(t, err)

	// coach links and duplicates are dropped, page order kept
	expected := []IndexEntry{
		{Name: "LeBron James", ID: "jamesle01"},
		{Name: "Mike James", ID: "jamesmi01"},
	}
	diff := cmp.Diff(expected, entries)
	require.Empty(t, diff)
}

func TestGetShooting(t *testing.T) {
	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/players/j/jamesle01/shooting/2024", r.URL.Path)
		w.Write(shootingFixture)
	}), nil)

	profile, err := client.GetShooting(context.Background(), "jamesle01", "2024")
	require.NoError(t, err)
	require.Equal(t, "LeBron James", profile.Name)
	require.Equal(t, "2024", profile.Season)

	expected := map[zonestats.Zone]zonestats.ZoneStats{
		zonestats.RestrictedArea: {Attempts: 250, Makes: 180},
		zonestats.Paint:          {Attempts: 150, Makes: 80},
		zonestats.MidRange:       {Attempts: 120, Makes: 60},
		zonestats.RightCorner3:   {Attempts: 14, Makes: 0},
		zonestats.AboveBreak3:    {Attempts: 150, Makes: 45},
		zonestats.FreeThrow:      {Attempts: 280, Makes: 200},
	}
	diff := cmp.Diff(expected, profile.Zones)
	require.Empty(t, diff)

	// an empty row means absent, not zero
	_, ok := profile.Zones[zonestats.LeftCorner3]
	require.False(t, ok)

	// 0-for-14 is present with a real 0% percentage
	pct, ok := profile.Zones[zonestats.RightCorner3].Pct()
	require.True(t, ok)
	require.Equal(t, 0.0, pct)
}

func TestGetShootingMissingTable(t *testing.T) {
	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><h1>LeBron James</h1></body></html>"))
	}), nil)

	_, err := client.GetShooting(context.Background(), "jamesle01", "2024")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestGetShootingNetworkError(t *testing.T) {
	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}), nil)

	_, err := client.GetShooting(context.Background(), "jamesle01", "2024")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestGetShootingNoInternalRetry(t *testing.T) {
	requests := 0
	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}), nil)

	_, err := client.GetShooting(context.Background(), "jamesle01", "2024")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, 1, requests)
}

func TestRateLimitGap(t *testing.T) {
	const gap = 200 * time.Millisecond

	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(shootingFixture)
	}), rate.NewLimiter(rate.Every(gap), 1))

	start := time.Now()
	_, err := client.GetShooting(context.Background(), "jamesle01", "2024")
	require.NoError(t, err)
	_, err = client.GetShooting(context.Background(), "curryst01", "2024")
	require.NoError(t, err)

	elapsed := time.Since(start)
	require.GreaterOrEqual(t, elapsed, gap-20*time.Millisecond,
		"consecutive fetches must respect the minimum request gap")
}

func TestRateLimitHonorsContext(t *testing.T) {
	client := setupClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(shootingFixture)
	}), rate.NewLimiter(rate.Every(time.Hour), 1))

	ctx := context.Background()
	_, err := client.GetShooting(ctx, "jamesle01", "2024")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = client.GetShooting(ctx, "curryst01", "2024")
	require.Error(t, err)
}
