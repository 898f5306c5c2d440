package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"scorefind/internal/catalog"
	"scorefind/internal/imslp"
	"scorefind/internal/logging"
	"scorefind/internal/match"
	"scorefind/internal/report"
	"scorefind/internal/scorecache"
	"scorefind/internal/worklist"
)

const defaultWorkers = 4

// Cache is the subset of the score cache the pipeline needs. A nil Cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, url string) (*scorecache.Entry, bool, error)
	Put(ctx context.Context, entry scorecache.Entry) error
}

// Downloader fetches one score file and returns its local path. A nil
// Downloader disables downloads.
type Downloader interface {
	Download(ctx context.Context, score imslp.Score) (string, error)
}

// Result is the outcome for a single worklist row.
type Result struct {
	Entry     worklist.Entry
	Match     match.Result
	Verified  bool
	Scores    []imslp.Score
	Downloads []string
	Err       error
}

// Pipeline wires the matcher, the IMSLP client, and the cache together for
// one run.
type Pipeline struct {
	Catalog    *catalog.Catalog
	Fetcher    imslp.Fetcher
	Cache      Cache
	Downloader Downloader
	Logger     *slog.Logger
	Workers    int
}

// Run processes entries and returns one result per entry, in input order.
func (p *Pipeline) Run(ctx context.Context, entries []worklist.Entry) []Result {
	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, "pipeline")

	results := make([]Result, len(entries))

	// Matching is pure and fast; do it up front so the fetch stage only
	// sees rows with a URL to visit.
	var pending []int
	for i, entry := range entries {
		results[i] = Result{
			Entry: entry,
			Match: match.Match(entry.Composer, entry.Title, p.Catalog),
		}
		if results[i].Match.Matched() {
			pending = append(pending, i)
		} else {
			logger.Debug("no catalog match",
				logging.Int("row", entry.Row),
				logging.String("composer", entry.Composer),
				logging.String("title", entry.Title))
		}
	}

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(pending) && len(pending) > 0 {
		workers = len(pending)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p.fetchRow(ctx, logger, &results[i])
			}
		}()
	}

	for _, i := range pending {
		select {
		case <-ctx.Done():
			// Remaining rows keep their match result and get the
			// cancellation error.
		case jobs <- i:
			continue
		}
		results[i].Err = ctx.Err()
	}
	close(jobs)
	wg.Wait()

	return results
}

// fetchRow verifies and scrapes the matched page for one row, consulting the
// cache first. Failures land in res.Err.
func (p *Pipeline) fetchRow(ctx context.Context, logger *slog.Logger, res *Result) {
	pageURL := res.Match.Work.URL

	if p.Cache != nil {
		cached, hit, err := p.Cache.Get(ctx, pageURL)
		if err != nil {
			logger.Warn("cache read failed", logging.String("url", pageURL), logging.Error(err))
		} else if hit {
			logger.Debug("cache hit", logging.String("url", pageURL))
			res.Verified = cached.Exists
			res.Scores = cached.Scores
			p.downloadScores(ctx, logger, res)
			return
		}
	}

	exists, err := p.Fetcher.VerifyWork(ctx, pageURL)
	if err != nil {
		res.Err = err
		logger.Warn("verify failed",
			logging.Int("row", res.Entry.Row),
			logging.String("url", pageURL),
			logging.Error(err))
		return
	}
	res.Verified = exists

	if exists {
		scores, err := p.Fetcher.FetchScores(ctx, pageURL)
		if err != nil {
			// The page exists, so keep the verification and report the
			// scrape failure alongside it.
			res.Err = err
			logger.Warn("scrape failed",
				logging.Int("row", res.Entry.Row),
				logging.String("url", pageURL),
				logging.Error(err))
		} else {
			res.Scores = scores
			logger.Info("work verified",
				logging.Int("row", res.Entry.Row),
				logging.String("url", pageURL),
				logging.Int("scores", len(scores)))
		}
	} else {
		logger.Warn("work page missing",
			logging.Int("row", res.Entry.Row),
			logging.String("url", pageURL))
	}

	if p.Cache != nil && res.Err == nil {
		if err := p.Cache.Put(ctx, scorecache.Entry{
			URL:    pageURL,
			Exists: res.Verified,
			Scores: res.Scores,
		}); err != nil {
			logger.Warn("cache write failed", logging.String("url", pageURL), logging.Error(err))
		}
	}

	p.downloadScores(ctx, logger, res)
}

func (p *Pipeline) downloadScores(ctx context.Context, logger *slog.Logger, res *Result) {
	if p.Downloader == nil || !res.Verified {
		return
	}
	for _, score := range res.Scores {
		path, err := p.Downloader.Download(ctx, score)
		if err != nil {
			logger.Warn("download failed",
				logging.String("url", score.URL),
				logging.Error(err))
			continue
		}
		res.Downloads = append(res.Downloads, path)
	}
}

// Rows converts pipeline results to report rows.
func Rows(results []Result) []report.Row {
	rows := make([]report.Row, 0, len(results))
	for _, res := range results {
		row := report.Row{
			Row:       res.Entry.Row,
			Composer:  res.Entry.Composer,
			Title:     res.Entry.Title,
			Matched:   res.Match.Matched(),
			MatchKey:  res.Match.Key,
			Work:      res.Match.Work,
			Verified:  res.Verified,
			Scores:    res.Scores,
			Downloads: res.Downloads,
		}
		if res.Err != nil {
			row.Err = res.Err.Error()
		}
		rows = append(rows, row)
	}
	return rows
}
