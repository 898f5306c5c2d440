package imslp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"scorefind/internal/logging"
	"scorefind/internal/textutil"
)

// Downloader fetches score PDFs into a directory with bounded retries.
type Downloader struct {
	client     *Client
	dir        string
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

// NewDownloader wraps client for PDF retrieval into dir. maxRetries counts
// additional attempts after the first.
func NewDownloader(client *Client, dir string, maxRetries int, logger *slog.Logger) (*Downloader, error) {
	if client == nil {
		return nil, errors.New("downloader requires a client")
	}
	if dir == "" {
		return nil, errors.New("downloader requires a directory")
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Downloader{
		client:     client,
		dir:        dir,
		maxRetries: maxRetries,
		backoff:    initialBackoff,
		logger:     logging.WithComponent(logger, "download"),
	}, nil
}

// Download fetches score into the download directory and returns the local
// path. An already present file is reused without a network request.
func (d *Downloader) Download(ctx context.Context, score Score) (string, error) {
	name := textutil.SanitizeFileName(score.Title)
	target := filepath.Join(d.dir, name+".pdf")

	if _, err := os.Stat(target); err == nil {
		d.logger.Debug("already downloaded", logging.String("path", target))
		return target, nil
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	backoff := d.backoff
	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			d.logger.Warn("retrying download",
				logging.String("url", score.URL),
				logging.Int("attempt", attempt),
				logging.Error(lastErr))
			if err := sleepWithContext(ctx, backoff); err != nil {
				return "", err
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		lastErr = d.fetchTo(ctx, score.URL, target)
		if lastErr == nil {
			d.logger.Info("downloaded score",
				logging.String("title", score.Title),
				logging.String("path", target))
			return target, nil
		}
		if !isRetriable(lastErr) {
			break
		}
	}
	return "", fmt.Errorf("download %s: %w", score.URL, lastErr)
}

func (d *Downloader) fetchTo(ctx context.Context, fileURL, target string) error {
	resp, err := d.client.do(ctx, http.MethodGet, fileURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Write to a partial file and rename so an interrupted fetch never
	// leaves a truncated PDF behind.
	partial := target + ".partial"
	out, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("create %s: %w", partial, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(partial)
		return fmt.Errorf("write %s: %w", partial, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(partial)
		return fmt.Errorf("close %s: %w", partial, err)
	}
	if err := os.Rename(partial, target); err != nil {
		os.Remove(partial)
		return fmt.Errorf("finalize %s: %w", target, err)
	}
	return nil
}
