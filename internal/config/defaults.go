package config

const (
	defaultDataDir            = "~/.local/share/scorefind"
	defaultReportFile         = "~/.local/share/scorefind/report.html"
	defaultDownloadDir        = "~/.local/share/scorefind/scores"
	defaultIMSLPBaseURL       = "https://imslp.org"
	defaultIMSLPUserAgent     = "scorefind/dev"
	defaultIMSLPTimeout       = 30
	defaultRequestsPerMinute  = 20
	defaultMaxScoresPerWork   = 10
	defaultCacheTTLHours      = 24 * 7
	defaultDownloadMaxRetries = 3
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			ReportFile:  defaultReportFile,
			DownloadDir: defaultDownloadDir,
		},
		IMSLP: IMSLP{
			BaseURL:           defaultIMSLPBaseURL,
			UserAgent:         defaultIMSLPUserAgent,
			TimeoutSeconds:    defaultIMSLPTimeout,
			RequestsPerMinute: defaultRequestsPerMinute,
			MaxScoresPerWork:  defaultMaxScoresPerWork,
		},
		Cache: Cache{
			Enabled:  true,
			TTLHours: defaultCacheTTLHours,
		},
		Downloads: Downloads{
			Enabled:    false,
			MaxRetries: defaultDownloadMaxRetries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
