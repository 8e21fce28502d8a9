// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs.
package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
)

// Workers is a set of workers started together.
type Workers struct {
	workers []Worker
}

// NewWorkers creates the workers enabled by cfg.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeper(services.SessionService, cfg.SweepInterval, log))
	}
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
