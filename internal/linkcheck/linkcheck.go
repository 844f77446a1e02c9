// Package linkcheck verifies the resource and video links shipped in the
// roadmap templates.
package linkcheck

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-mentor/internal/career"
	"github.com/jonathan/career-mentor/internal/fetch"
	"github.com/jonathan/career-mentor/internal/types"
)

// DefaultConcurrency bounds simultaneous fetches.
const DefaultConcurrency = 8

// Kind says where in a phase a link was found.
type Kind string

const (
	KindFreeResource Kind = "free_resource"
	KindPaidResource Kind = "paid_resource"
	KindVideo        Kind = "youtube_video"
)

// Link is one linked entry of a template.
type Link struct {
	Domain   string         `json:"domain"`
	Phase    string         `json:"phase"`
	Kind     Kind           `json:"kind"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Platform fetch.Platform `json:"platform"`
}

// Result is the outcome of checking one link.
type Result struct {
	Link
	StatusCode int    `json:"statusCode,omitempty"`
	Title      string `json:"title,omitempty"`
	OK         bool   `json:"ok"`
	Cached     bool   `json:"cached,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Report summarizes a run.
type Report struct {
	Results []Result `json:"results"`
	// Checked counts distinct URLs.
	Checked int `json:"checked"`
	Broken  int `json:"broken"`
}

// Fetcher resolves a URL to a page summary.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.CachedResult, error)
}

// Options configures Check.
type Options struct {
	Concurrency int
	// Domains restricts the run to these templates. Empty means all.
	Domains []string
	// Fetcher defaults to an uncached fetch.CachedFetcher.
	Fetcher Fetcher
}

// CollectLinks lists every linked resource and video of the catalog's templates in
// template, phase and field order. Bare labels are skipped.
func CollectLinks(catalog *career.Catalog, domains ...string) []Link {
	var links []Link
	for _, roadmap := range catalog.AllTemplates() {
		if len(domains) > 0 && !slices.Contains(domains, roadmap.Domain) {
			continue
		}
		for _, phase := range roadmap.Roadmap {
			links = appendResources(links, roadmap.Domain, phase.Phase, KindFreeResource, phase.FreeResources)
			links = appendResources(links, roadmap.Domain, phase.Phase, KindPaidResource, phase.PaidResources)
			for _, v := range phase.YouTubeVideos {
				if v.URL == "" {
					continue
				}
				links = append(links, Link{
					Domain:   roadmap.Domain,
					Phase:    phase.Phase,
					Kind:     KindVideo,
					Name:     v.Title,
					URL:      v.URL,
					Platform: fetch.DetectPlatform(v.URL),
				})
			}
		}
	}
	return links
}

func appendResources(links []Link, domain, phase string, kind Kind, resources []string) []Link {
	for _, raw := range resources {
		r := types.ParseResource(raw)
		if !r.HasLink() {
			continue
		}
		links = append(links, Link{
			Domain:   domain,
			Phase:    phase,
			Kind:     kind,
			Name:     r.Name,
			URL:      r.URL,
			Platform: fetch.DetectPlatform(r.URL),
		})
	}
	return links
}

type outcome struct {
	page *fetch.CachedResult
	err  error
}

// Check fetches each distinct link URL once, with bounded concurrency, and
// reports one Result per link. Fetch failures are recorded in the report;
// only cancellation of ctx is returned as an error.
func Check(ctx context.Context, catalog *career.Catalog, opts Options) (*Report, error) {
	links := CollectLinks(catalog, opts.Domains...)

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil, nil)
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var urls []string
	seen := make(map[string]bool, len(links))
	for _, l := range links {
		if !seen[l.URL] {
			seen[l.URL] = true
			urls = append(urls, l.URL)
		}
	}

	var mu sync.Mutex
	outcomes := make(map[string]outcome, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, u := range urls {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			page, err := fetcher.Fetch(gCtx, u)
			if err != nil {
				slog.Debug("link check failed", slog.String("url", u), slog.Any("error", err))
			}
			mu.Lock()
			outcomes[u] = outcome{page: page, err: err}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Results: make([]Result, 0, len(links)), Checked: len(urls)}
	broken := make(map[string]bool)
	for _, l := range links {
		o := outcomes[l.URL]
		res := Result{Link: l}
		if o.err != nil {
			res.Error = o.err.Error()
			broken[l.URL] = true
		} else {
			res.OK = true
			res.StatusCode = o.page.StatusCode
			res.Title = o.page.Title
			res.Cached = o.page.FromCache
		}
		report.Results = append(report.Results, res)
	}
	report.Broken = len(broken)

	slog.Info("link check complete",
		slog.Int("links", len(links)),
		slog.Int("checked", report.Checked),
		slog.Int("broken", report.Broken),
	)
	return report, nil
}

// BrokenResults returns only the failed results.
func (r *Report) BrokenResults() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK {
			out = append(out, res)
		}
	}
	return out
}
