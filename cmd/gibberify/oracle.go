package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ZaguanLabs/gibberify"
	"github.com/ZaguanLabs/gibberify/cache"
	"github.com/ZaguanLabs/gibberify/internal/config"
	"github.com/ZaguanLabs/gibberify/provider"
)

// oracle is the configured hyphenator plus whatever must be flushed or
// closed when the command ends.
type oracle struct {
	gibberify.Hyphenator
	closers []func() error
}

func (o *oracle) Close() error {
	var errs []error
	for _, c := range o.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// newOracle builds the hyphenation oracle. The pattern oracle is local and
// used as is. The OpenAI oracle is rate limited, retried and cached.
func newOracle(cfg *config.Config, log *slog.Logger) (*oracle, error) {
	if cfg.Hyphenator.Kind == config.HyphenatorPatterns {
		return &oracle{Hyphenator: gibberify.DefaultHyphenator()}, nil
	}

	var h gibberify.Hyphenator = provider.NewOpenAIHyphenator(provider.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	h = gibberify.NewRateLimitedHyphenator(h, gibberify.RateLimitConfig{
		RequestsPerMinute: cfg.Hyphenator.RequestsPerMinute,
	})
	retry := gibberify.DefaultRetryConfig()
	retry.MaxRetries = cfg.Hyphenator.MaxRetries
	h = gibberify.NewRetryableHyphenator(h, retry)

	o := &oracle{}
	syllableCache, err := newCache(cfg, log, o)
	if err != nil {
		return nil, err
	}

	o.Hyphenator = gibberify.NewCachedHyphenator(h, syllableCache,
		gibberify.WithOracleName("openai:"+cfg.OpenAI.Model),
		gibberify.WithCacheLogger(log))
	return o, nil
}

// newCache returns a Redis cache when configured and an in-memory one
// otherwise. The in-memory cache is loaded from and saved to the cache
// file, if one is set.
func newCache(cfg *config.Config, log *slog.Logger, o *oracle) (gibberify.SyllableCache, error) {
	if cfg.Cache.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.Cache.RedisURL,
			TTL: cfg.Cache.TTL,
		})
		if err != nil {
			return nil, &gibberify.CacheError{Message: "connecting to redis", Cause: err}
		}
		o.closers = append(o.closers, rc.Close)
		return rc, nil
	}

	mc := cache.NewInMemoryCache(cfg.Cache.TTL)
	if cfg.Cache.File == "" {
		return mc, nil
	}

	if _, err := os.Stat(cfg.Cache.File); err == nil {
		res, err := cache.NewImporter(mc).ImportFromFile(cfg.Cache.File)
		if err != nil {
			return nil, &gibberify.CacheError{Message: "importing " + cfg.Cache.File, Cause: err}
		}
		log.Debug("syllable cache imported",
			slog.String("file", cfg.Cache.File),
			slog.Int("imported", res.Imported),
			slog.Int("failed", res.Failed))
	}

	o.closers = append(o.closers, func() error {
		err := cache.NewExporter(mc).ExportToFile(cfg.Cache.File, map[string]string{
			"oracle":  "openai:" + cfg.OpenAI.Model,
			"version": gibberify.FullVersion(),
		})
		if err != nil {
			return fmt.Errorf("saving syllable cache: %w", err)
		}
		return nil
	})
	return mc, nil
}
