package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
	"github.com/ridloal/dyfn-shop/internal/system/domain"
)

const probeTimeout = 10 * time.Second

// StoreHeartbeat periodically probes the store and logs the outcome.
type StoreHeartbeat struct {
	store     docstore.Store
	scheduler *cron.Cron
}

func NewStoreHeartbeat(store docstore.Store) *StoreHeartbeat {
	return &StoreHeartbeat{
		store:     store,
		scheduler: cron.New(cron.WithSeconds()),
	}
}

// Start schedules Probe with a six-field cron spec, e.g. "*/30 * * * * *".
func (h *StoreHeartbeat) Start(spec string) error {
	if _, err := h.scheduler.AddFunc(spec, func() {
		// Gunakan context.Background() karena ini adalah background job
		_ = h.Probe(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid heartbeat spec %q: %w", spec, err)
	}
	h.scheduler.Start()
	logger.Info("Store heartbeat scheduled", "spec", spec)
	return nil
}

// Stop waits for a running probe to finish.
func (h *StoreHeartbeat) Stop() {
	<-h.scheduler.Stop().Done()
}

func (h *StoreHeartbeat) Probe(ctx context.Context) error {
	if h.store == nil {
		return docstore.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	names, err := h.store.ListCollectionNames(ctx, domain.MaxCollections)
	if err != nil {
		logger.Warn("Store heartbeat failed", "database", h.store.Name(), "err", err)
		return err
	}
	logger.Info("Store heartbeat ok", "database", h.store.Name(), "collections", len(names), "latency", time.Since(start).Round(time.Millisecond))
	return nil
}
