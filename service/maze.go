package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/infrastruture/mazefile"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/metrics"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
)

// MazeService generates mazes on demand, caching them by configuration and
// persisting every maze it hands out.
type MazeService struct {
	repo    i.MazeRepo
	cache   i.MazeCache
	metrics i.MetricsRecorder
	logger  i.Logger
	newID   func() uuid.UUID
}

// MazeServiceConfig holds the collaborators of a MazeService. Cache and
// Metrics are optional.
type MazeServiceConfig struct {
	Repo    i.MazeRepo
	Cache   i.MazeCache
	Metrics i.MetricsRecorder
	Logger  i.Logger
}

// NewMazeService creates a MazeService.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil {
		return nil, errors.New("maze service: repo is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("maze service: logger is required")
	}
	return &MazeService{
		repo:    cfg.Repo,
		cache:   cfg.Cache,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
		newID:   uuid.New,
	}, nil
}

// Generate returns the maze for opts. Equal options yield the cached maze
// when one is available; otherwise a new maze is generated and stored.
// Validation failures are returned as joined *maze.FieldError values.
func (s *MazeService) Generate(ctx context.Context, opts maze.Options) (*dmn.MazeRecord, error) {
	g, err := maze.New(opts)
	if err != nil {
		return nil, err
	}
	key := dmn.OptionsKey(opts)

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("locking %s: %w", key, err)
		}
		defer unlock()

		rec, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.cacheResult(metrics.CacheHit)
			return rec, nil
		case errors.Is(err, i.ErrCacheMiss):
			s.cacheResult(metrics.CacheMiss)
		default:
			s.cacheResult(metrics.CacheErr)
			s.logger.Error("maze cache lookup failed", "key", key, "err", err)
		}
	}

	start := time.Now()
	if err := g.Generate(); err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveGenerate(time.Since(start), opts.Perfect, len(g.Directions()))
	}

	var file bytes.Buffer
	if err := mazefile.Encode(&file, mazefile.FromSource(g)); err != nil {
		return nil, fmt.Errorf("encoding maze file: %w", err)
	}
	rec := dmn.NewMazeRecord(s.newID(), key, g, file.String())

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rec); err != nil {
			s.logger.Error("maze cache store failed", "key", key, "err", err)
		}
	}
	s.logger.Info("maze generated", "id", rec.ID, "key", key, "steps", len(rec.Directions))
	return rec, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Delete removes a stored maze and forgets its cache entry.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, rec.Key); err != nil {
			s.logger.Error("maze cache eviction failed", "key", rec.Key, "err", err)
		}
	}
	return nil
}

func (s *MazeService) cacheResult(result string) {
	if s.metrics != nil {
		s.metrics.IncCacheResult(result)
	}
}
