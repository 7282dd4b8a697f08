package dataset

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/config"
)

// Service owns the current snapshot. Reads are served from memory until the
// TTL lapses; concurrent reloads collapse into a single load.
type Service struct {
	dataDir   string
	dataURL   string
	yearsBack int
	ttl       time.Duration

	mu      sync.RWMutex
	snap    *Snapshot
	expires time.Time

	group singleflight.Group
}

// NewService builds a snapshot service from the application configuration.
func NewService(cfg *config.Config) *Service {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{
		dataDir:   cfg.DataDir,
		dataURL:   cfg.DataURL,
		yearsBack: cfg.YearsBack,
		ttl:       ttl,
	}
}

// Load returns the current snapshot, reloading it when the TTL has lapsed.
// A snapshot is always returned; an unavailable dataset yields an empty one.
func (s *Service) Load(ctx context.Context) *Snapshot {
	s.mu.RLock()
	snap, fresh := s.snap, time.Now().Before(s.expires)
	s.mu.RUnlock()
	if snap != nil && fresh {
		return snap
	}

	v, _, _ := s.group.Do("load", func() (interface{}, error) {
		// Another caller may have refreshed while this one queued.
		s.mu.RLock()
		snap, fresh := s.snap, time.Now().Before(s.expires)
		s.mu.RUnlock()
		if snap != nil && fresh {
			return snap, nil
		}
		return s.swap(ctx), nil
	})
	return v.(*Snapshot)
}

// Refresh forces a reload regardless of TTL.
func (s *Service) Refresh(ctx context.Context) *Snapshot {
	v, _, _ := s.group.Do("refresh", func() (interface{}, error) {
		return s.swap(ctx), nil
	})
	return v.(*Snapshot)
}

func (s *Service) swap(ctx context.Context) *Snapshot {
	snap := s.reload(ctx)

	s.mu.Lock()
	// Keep serving the previous rows when a reload comes back empty but an
	// older snapshot exists; a transiently missing file should not blank
	// the dashboard.
	if snap.Empty() && s.snap != nil && !s.snap.Empty() {
		snap = s.snap
	}
	s.snap = snap
	s.expires = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return snap
}
