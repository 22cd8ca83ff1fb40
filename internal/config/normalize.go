package config

import "strings"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSteam()
	c.normalizeFFmpeg()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Export.TempDir, err = expandPath(valueOr(c.Export.TempDir, defaultTempDir)); err != nil {
		return err
	}
	if c.Ledger.Path, err = expandPath(valueOr(c.Ledger.Path, defaultLedgerPath)); err != nil {
		return err
	}
	if c.Logging.Dir != "" {
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) normalizeSteam() {
	c.Steam.StoreBaseURL = strings.TrimRight(strings.TrimSpace(c.Steam.StoreBaseURL), "/")
	if c.Steam.StoreBaseURL == "" {
		c.Steam.StoreBaseURL = defaultStoreBaseURL
	}
	if c.Steam.RequestTimeout <= 0 {
		c.Steam.RequestTimeout = defaultStoreRequestTimeout
	}
	c.Steam.DefaultName = strings.TrimSpace(c.Steam.DefaultName)
	if c.Steam.DefaultName == "" {
		c.Steam.DefaultName = defaultClipName
	}
}

func (c *Config) normalizeFFmpeg() {
	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = defaultFFmpegBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
