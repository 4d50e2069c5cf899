package culler

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// Status represents the health status of an entry's URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Dead                      // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, connection refused, etc.
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Dead:
		return "dead"
	default:
		return "unreachable"
	}
}

// Result holds the check result for a single entry.
type Result struct {
	Entry      *model.Bookmark
	Status     Status
	StatusCode int    // 0 if the connection failed
	Error      string // readable reason for unreachable URLs
}

// ProgressFunc is called after each URL is checked.
type ProgressFunc func(completed, total int)

// Options tune a check run. Zero values fall back to defaults.
type Options struct {
	Concurrency    int
	Timeout        time.Duration
	ExcludeDomains []string // 404s here mean "possibly private", not dead
	Client         *http.Client
	OnProgress     ProgressFunc
}

const (
	defaultConcurrency = 10
	defaultTimeout     = 10 * time.Second
	maxRedirects       = 10
)

// Summary counts results per status.
type Summary struct {
	Healthy     int
	Dead        int
	Unreachable int
}

// Summarize counts results per status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case Healthy:
			s.Healthy++
		case Dead:
			s.Dead++
		default:
			s.Unreachable++
		}
	}
	return s
}

// Check checks every entry that has a URL and returns one result per such
// entry, in input order. Manual media entries are skipped.
// Cancelling ctx marks the remaining entries unreachable.
func Check(ctx context.Context, entries []model.Bookmark, opts Options) []Result {
	var targets []*model.Bookmark
	for i := range entries {
		if entries[i].URL != "" {
			targets = append(targets, &entries[i])
		}
	}
	if len(targets) == 0 {
		return nil
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if concurrency > len(targets) {
		concurrency = len(targets)
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses, etc.)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	excluded := make(map[string]bool, len(opts.ExcludeDomains))
	for _, domain := range opts.ExcludeDomains {
		excluded[strings.ToLower(strings.TrimSpace(domain))] = true
	}

	results := make([]Result, len(targets))
	jobs := make(chan int)
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkEntry(ctx, client, targets[idx], excluded)

				if opts.OnProgress != nil {
					progressMu.Lock()
					completed++
					opts.OnProgress(completed, len(targets))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range targets {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// checkEntry checks a single URL, trying HEAD before GET.
func checkEntry(ctx context.Context, client *http.Client, entry *model.Bookmark, excluded map[string]bool) Result {
	result := Result{Entry: entry}

	resp, err := request(ctx, client, http.MethodHead, entry.URL)
	if err != nil || resp.StatusCode == http.StatusMethodNotAllowed {
		if resp != nil {
			resp.Body.Close()
		}
		// Some servers don't support HEAD
		resp, err = request(ctx, client, http.MethodGet, entry.URL)
		if err != nil {
			result.Status = Unreachable
			result.Error = normalizeError(err.Error())
			return result
		}
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		result.Status = Healthy
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		if isExcludedDomain(entry.URL, excluded) {
			result.Status = Unreachable
			result.Error = "Possibly private (auth required)"
		} else {
			result.Status = Dead
		}
	default:
		// 5xx, 403 and friends may be temporary or need auth
		result.Status = Unreachable
		result.Error = http.StatusText(resp.StatusCode)
	}

	return result
}

func request(ctx context.Context, client *http.Client, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

// isExcludedDomain checks the URL's host and its parent domains against the exclude list.
func isExcludedDomain(rawURL string, excluded map[string]bool) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if excluded[host] {
		return true
	}
	for domain := range excluded {
		if domain != "" && strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "context canceled"):
		return "Cancelled"
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	case strings.Contains(lower, "tls:"):
		return "TLS error"
	case strings.Contains(lower, "unsupported protocol scheme"):
		return "Invalid URL"
	default:
		return errStr
	}
}
