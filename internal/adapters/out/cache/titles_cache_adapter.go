package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pastoraldigital/mass-schedule-manager/internal/config"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// TitlesCacheAdapter caches extracted title maps per document source. The
// source document is static for the process lifetime, so entries never
// expire or invalidate; LRU only bounds memory when the configured document
// path changes across requests.
type TitlesCacheAdapter struct {
	cache  *lru.Cache[string, map[time.Time]string]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewTitlesCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*TitlesCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "titles cache is disabled",
		})
		return nil, nil
	}

	cache, err := lru.New[string, map[time.Time]string](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &TitlesCacheAdapter{
		cache:  cache,
		logger: logger.WithModule("TitlesCacheAdapter"),
	}, nil
}

func (c *TitlesCacheAdapter) GetTitles(ctx context.Context, source string) (map[time.Time]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	titles, exists := c.cache.Get(source)
	if !exists {
		c.logger.Debug("cache.titles.miss", out.LogFields{
			"source": source,
		})
		return nil, false
	}

	c.logger.Debug("cache.titles.hit", out.LogFields{
		"source": source,
		"titles": len(titles),
	})
	return titles, true
}

func (c *TitlesCacheAdapter) StoreTitles(ctx context.Context, source string, titles map[time.Time]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(source, titles)
	c.logger.Debug("cache.titles.stored", out.LogFields{
		"source": source,
		"titles": len(titles),
	})
}
