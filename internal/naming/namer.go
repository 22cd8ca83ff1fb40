package naming

import (
	"context"
	"log/slog"

	"github.com/bapplebo/steamclipexporter/internal/clips"
	"github.com/bapplebo/steamclipexporter/internal/logging"
	"github.com/bapplebo/steamclipexporter/internal/steam"
)

// TitleLookup resolves an application id to storefront details.
type TitleLookup interface {
	Lookup(ctx context.Context, appID uint64) (steam.AppDetails, error)
}

// Namer derives output names for clips. The storefront lookup is
// best-effort: every failure falls back to the configured default name and
// never aborts clip processing.
type Namer struct {
	lookup      TitleLookup
	defaultName string
	logger      *slog.Logger
}

// NewNamer constructs a Namer. lookup may be nil, in which case every clip
// gets the default name.
func NewNamer(lookup TitleLookup, defaultName string, logger *slog.Logger) *Namer {
	if defaultName == "" {
		defaultName = "clip"
	}
	return &Namer{
		lookup:      lookup,
		defaultName: defaultName,
		logger:      logging.WithComponent(logger, "namer"),
	}
}

// Name resolves the output name for a clip: "<title> <date> <time>", with
// the default name substituted when the lookup fails.
func (n *Namer) Name(ctx context.Context, clip clips.Clip) string {
	title := n.defaultName
	if n.lookup != nil {
		details, err := n.lookup.Lookup(ctx, clip.AppID)
		if err != nil {
			n.logger.Warn("title lookup failed, using default name",
				slog.Uint64("app_id", clip.AppID),
				logging.Error(err))
		} else {
			title = details.Name
		}
	}
	return OutputName(title, clip.Date, clip.Time)
}
