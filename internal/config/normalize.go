package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeIMSLP()
	c.normalizeCache()
	c.normalizeDownloads()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportFile) == "" {
		c.Paths.ReportFile = defaultReportFile
	}
	if c.Paths.ReportFile, err = expandPath(c.Paths.ReportFile); err != nil {
		return fmt.Errorf("paths.report_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.DownloadDir) == "" {
		c.Paths.DownloadDir = defaultDownloadDir
	}
	if c.Paths.DownloadDir, err = expandPath(c.Paths.DownloadDir); err != nil {
		return fmt.Errorf("paths.download_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	if c.Catalog.Path == "" {
		return nil
	}
	var err error
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeIMSLP() {
	c.IMSLP.BaseURL = strings.TrimRight(strings.TrimSpace(c.IMSLP.BaseURL), "/")
	if c.IMSLP.BaseURL == "" {
		c.IMSLP.BaseURL = defaultIMSLPBaseURL
	}
	c.IMSLP.UserAgent = strings.TrimSpace(c.IMSLP.UserAgent)
	if c.IMSLP.UserAgent == "" {
		c.IMSLP.UserAgent = defaultIMSLPUserAgent
	}
	if c.IMSLP.TimeoutSeconds <= 0 {
		c.IMSLP.TimeoutSeconds = defaultIMSLPTimeout
	}
	if c.IMSLP.RequestsPerMinute <= 0 {
		c.IMSLP.RequestsPerMinute = defaultRequestsPerMinute
	}
	if c.IMSLP.MaxScoresPerWork <= 0 {
		c.IMSLP.MaxScoresPerWork = defaultMaxScoresPerWork
	}
}

func (c *Config) normalizeCache() {
	if c.Cache.TTLHours <= 0 {
		c.Cache.TTLHours = defaultCacheTTLHours
	}
}

func (c *Config) normalizeDownloads() {
	if c.Downloads.MaxRetries <= 0 {
		c.Downloads.MaxRetries = defaultDownloadMaxRetries
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
