package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := New()

	r.PlaybackRequested("after_ad")
	r.PlaybackRequested("after_ad")
	r.PlaybackRequested("direct")
	r.AdFinished("skipped")
	r.UpgradeFinished("activated")
	r.PreferenceToggled("blocked", true)
	r.PreferenceToggled("blocked", false)
	r.SessionStarted()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"after_ad", testutil.ToFloat64(r.playbackRequests.WithLabelValues("after_ad")), 2},
		{"direct", testutil.ToFloat64(r.playbackRequests.WithLabelValues("direct")), 1},
		{"skipped", testutil.ToFloat64(r.adsFinished.WithLabelValues("skipped")), 1},
		{"activated", testutil.ToFloat64(r.upgrades.WithLabelValues("activated")), 1},
		{"blocked on", testutil.ToFloat64(r.preferenceToggles.WithLabelValues("blocked", "on")), 1},
		{"blocked off", testutil.ToFloat64(r.preferenceToggles.WithLabelValues("blocked", "off")), 1},
		{"sessions", testutil.ToFloat64(r.sessions), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	// Must not panic.
	r.PlaybackRequested("direct")
	r.AdFinished("completed")
	r.UpgradeFinished("cancelled")
	r.PreferenceToggled("favorite", true)
	r.SessionStarted()
}

func TestHandler(t *testing.T) {
	r := New()
	r.SessionStarted()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "streamvault_sessions_total 1") {
		t.Errorf("scrape missing sessions counter:\n%s", rec.Body.String())
	}
}

func TestSeparateRegistries(t *testing.T) {
	// Two recorders must not collide.
	a, b := New(), New()
	a.SessionStarted()
	if got := testutil.ToFloat64(b.sessions); got != 0 {
		t.Errorf("second recorder sessions = %v", got)
	}
}
