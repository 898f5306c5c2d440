package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIMSLP(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateDownloads(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIMSLP() error {
	parsed, err := url.Parse(c.IMSLP.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("imslp.base_url must be an http(s) URL, got %q", c.IMSLP.BaseURL)
	}
	if err := ensurePositiveMap(map[string]int{
		"imslp.timeout_seconds":     c.IMSLP.TimeoutSeconds,
		"imslp.requests_per_minute": c.IMSLP.RequestsPerMinute,
		"imslp.max_scores_per_work": c.IMSLP.MaxScoresPerWork,
	}); err != nil {
		return err
	}
	if strings.TrimSpace(c.IMSLP.UserAgent) == "" {
		return errors.New("imslp.user_agent must be set")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTLHours <= 0 {
		return errors.New("cache.ttl_hours must be positive when cache.enabled is true")
	}
	return nil
}

func (c *Config) validateDownloads() error {
	if !c.Downloads.Enabled {
		return nil
	}
	if strings.TrimSpace(c.Paths.DownloadDir) == "" {
		return errors.New("paths.download_dir must be set when downloads.enabled is true")
	}
	if c.Downloads.MaxRetries <= 0 {
		return errors.New("downloads.max_retries must be positive when downloads.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
