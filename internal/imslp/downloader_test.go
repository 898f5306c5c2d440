package imslp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDownloadWritesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	dir := t.TempDir()
	dl, err := NewDownloader(testClient(t, server.URL), dir, 0, nil)
	if err != nil {
		t.Fatalf("NewDownloader: %v", err)
	}

	path, err := dl.Download(context.Background(), Score{
		Title: "Symphony No.40: Complete Score",
		URL:   server.URL + "/files/sym40.pdf",
	})
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, want inside %q", path, dir)
	}
	// Unsafe filename characters are sanitized away.
	if filepath.Base(path) != "Symphony No.40- Complete Score.pdf" {
		t.Errorf("filename = %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read download: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("content = %q", data)
	}
	if _, err := os.Stat(path + ".partial"); !os.IsNotExist(err) {
		t.Error("partial file left behind")
	}
}

func TestDownloadSkipsExisting(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("pdf"))
	}))
	defer server.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Etude.pdf"), []byte("cached"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	dl, err := NewDownloader(testClient(t, server.URL), dir, 0, nil)
	if err != nil {
		t.Fatalf("NewDownloader: %v", err)
	}
	path, err := dl.Download(context.Background(), Score{Title: "Etude", URL: server.URL + "/e.pdf"})
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("existing file should short-circuit, server saw %d requests", hits.Load())
	}
	data, _ := os.ReadFile(path)
	if string(data) != "cached" {
		t.Errorf("existing file overwritten: %q", data)
	}
}

func TestDownloadRetriesTransientFailure(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("pdf"))
	}))
	defer server.Close()

	dl, err := NewDownloader(testClient(t, server.URL), t.TempDir(), 2, nil)
	if err != nil {
		t.Fatalf("NewDownloader: %v", err)
	}
	dl.backoff = time.Millisecond
	if _, err := dl.Download(context.Background(), Score{Title: "Trio", URL: server.URL + "/t.pdf"}); err != nil {
		t.Fatalf("Download should succeed on retry: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server saw %d requests, want 2", hits.Load())
	}
}

func TestDownloadGivesUpOnPermanentFailure(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dl, err := NewDownloader(testClient(t, server.URL), t.TempDir(), 5, nil)
	if err != nil {
		t.Fatalf("NewDownloader: %v", err)
	}
	if _, err := dl.Download(context.Background(), Score{Title: "Gone", URL: server.URL + "/g.pdf"}); err == nil {
		t.Fatal("expected error")
	}
	if hits.Load() != 1 {
		t.Errorf("404 should not retry, server saw %d requests", hits.Load())
	}
}
