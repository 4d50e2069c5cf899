package culler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/vodmarks/internal/culler"
	"github.com/nikbrunner/vodmarks/internal/model"
)

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	mux.HandleFunc("/missing", http.NotFound)
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/get-only", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_Statuses(t *testing.T) {
	srv := newSite(t)

	entries := []model.Bookmark{
		{ID: "1", URL: srv.URL + "/ok"},
		{ID: "2", URL: srv.URL + "/gone"},
		{ID: "3", URL: srv.URL + "/missing"},
		{ID: "4", URL: srv.URL + "/broken"},
		{ID: "5", URL: srv.URL + "/get-only"},
		{ID: "6", URL: srv.URL + "/moved"},
		{ID: "7", EntryType: model.EntryMedia, Title: "Dune"},
		{ID: "8", URL: "ftp://nowhere"},
	}

	results := culler.Check(context.Background(), entries, culler.Options{Concurrency: 3})
	assert.Assert(t, is.Len(results, 7), "media entry without URL is skipped")

	want := []struct {
		id     model.ID
		status culler.Status
		code   int
	}{
		{"1", culler.Healthy, 200},
		{"2", culler.Dead, 410},
		{"3", culler.Dead, 404},
		{"4", culler.Unreachable, 500},
		{"5", culler.Healthy, 200},
		{"6", culler.Healthy, 200},
		{"8", culler.Unreachable, 0},
	}
	for i, w := range want {
		assert.Equal(t, results[i].Entry.ID, w.id)
		assert.Equal(t, results[i].Status, w.status, "entry %s", w.id)
		assert.Equal(t, results[i].StatusCode, w.code, "entry %s", w.id)
	}
	assert.Equal(t, results[3].Error, "Internal Server Error")
	assert.Equal(t, results[6].Error, "Invalid URL")

	assert.DeepEqual(t, culler.Summarize(results), culler.Summary{Healthy: 3, Dead: 2, Unreachable: 2})
}

func TestCheck_ExcludedDomain(t *testing.T) {
	srv := newSite(t)

	entries := []model.Bookmark{{ID: "1", URL: srv.URL + "/missing"}}
	results := culler.Check(context.Background(), entries, culler.Options{
		ExcludeDomains: []string{"127.0.0.1"},
	})

	assert.Assert(t, is.Len(results, 1))
	assert.Equal(t, results[0].Status, culler.Unreachable)
	assert.Equal(t, results[0].Error, "Possibly private (auth required)")
}

func TestCheck_Timeout(t *testing.T) {
	srv := newSite(t)

	entries := []model.Bookmark{{ID: "1", URL: srv.URL + "/slow"}}
	results := culler.Check(context.Background(), entries, culler.Options{Timeout: 20 * time.Millisecond})

	assert.Assert(t, is.Len(results, 1))
	assert.Equal(t, results[0].Status, culler.Unreachable)
	assert.Equal(t, results[0].Error, "Timeout")
}

func TestCheck_Progress(t *testing.T) {
	srv := newSite(t)

	var entries []model.Bookmark
	for i := 0; i < 12; i++ {
		entries = append(entries, model.Bookmark{URL: srv.URL + "/ok"})
	}

	var calls, last, badTotal atomic.Int64
	culler.Check(context.Background(), entries, culler.Options{
		Concurrency: 4,
		OnProgress: func(completed, total int) {
			calls.Add(1)
			last.Store(int64(completed))
			if total != 12 {
				badTotal.Add(1)
			}
		},
	})

	assert.Equal(t, calls.Load(), int64(12))
	assert.Equal(t, last.Load(), int64(12))
	assert.Equal(t, badTotal.Load(), int64(0))
}

func TestCheck_Empty(t *testing.T) {
	results := culler.Check(context.Background(), []model.Bookmark{{EntryType: model.EntryMedia}}, culler.Options{})
	assert.Assert(t, is.Nil(results))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, culler.Healthy.String(), "healthy")
	assert.Equal(t, culler.Dead.String(), "dead")
	assert.Equal(t, culler.Unreachable.String(), "unreachable")
}
