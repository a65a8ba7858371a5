// Package app owns the long-lived subsystems behind the TUI and manages
// their lifecycle.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zappabad/trendtape/internal/config"
	"github.com/zappabad/trendtape/internal/cookie"
	"github.com/zappabad/trendtape/internal/feed"
	feedservice "github.com/zappabad/trendtape/internal/feed/service"
)

// App owns the feed, its file watcher and the cookie jar.
type App struct {
	Feed    *feedservice.FeedService
	Watcher *feed.Watcher // nil without a content file
	Jar     *cookie.Store // nil when the jar could not be opened

	cfg *config.Config
	log *zap.Logger
	mu  sync.Mutex
}

// New starts the subsystems described by cfg. The topics come from the
// content file when one is set, and from cfg.Feed.Topics otherwise. A jar
// that fails to open is logged and left nil; a content file that cannot be
// read is an error.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{cfg: cfg, log: log}

	a.Feed = feedservice.NewFeedService(cfg.FeedServiceConfig(), log.Named("feed"))

	if cfg.Feed.ContentFile != "" {
		a.Watcher = feed.NewWatcher(cfg.Feed.ContentFile, a.Feed, log.Named("watch"))
		if err := a.Watcher.Load(); err != nil {
			a.Close()
			return nil, fmt.Errorf("load topics: %w", err)
		}
		if err := a.Watcher.Start(ctx); err != nil {
			log.Warn("topics file will not be reloaded", zap.Error(err))
		}
	} else {
		a.Feed.Replace(cfg.Feed.Topics)
	}

	jar, err := cookie.Open(cfg.CookieConfig())
	if err != nil {
		log.Warn("cookie jar unavailable, nothing will be remembered", zap.Error(err))
		return a, nil
	}
	if n, err := jar.Purge(ctx); err != nil {
		log.Warn("purge expired cookies", zap.Error(err))
	} else if n > 0 {
		log.Debug("purged expired cookies", zap.Int64("count", n))
	}
	a.Jar = jar

	return a, nil
}

// Close shuts down all subsystems in reverse dependency order.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Stop the watcher first so nothing feeds a closed service
	if a.Watcher != nil {
		a.Watcher.Stop()
	}

	if a.Feed != nil {
		a.Feed.Close()
	}

	if a.Jar != nil {
		if err := a.Jar.Close(); err != nil {
			a.log.Warn("close cookie jar", zap.Error(err))
		}
	}
}
