package config

const (
	defaultStoreBaseURL        = "https://store.steampowered.com"
	defaultStoreRequestTimeout = 10
	defaultClipName            = "clip"
	defaultFFmpegBinary        = "ffmpeg"
	defaultTempDir             = "~/.cache/steamclipexporter/work"
	defaultLedgerPath          = "~/.local/share/steamclipexporter/ledger.db"
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Steam: Steam{
			StoreBaseURL:   defaultStoreBaseURL,
			RequestTimeout: defaultStoreRequestTimeout,
			DefaultName:    defaultClipName,
		},
		FFmpeg: FFmpeg{
			Binary: defaultFFmpegBinary,
		},
		Export: Export{
			TempDir: defaultTempDir,
		},
		Ledger: Ledger{
			Enabled: true,
			Path:    defaultLedgerPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
