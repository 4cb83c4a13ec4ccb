// Package audit records administrative mutations. Emitting never fails the
// caller: entries are queued and written by a background worker, and every
// write failure is logged and dropped.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/creditodds/creditodds-api/internal/domain"
)

const writeTimeout = 5 * time.Second

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) (domain.AuditEntry, error)
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// Emitter is the audit sink. Run must be started for queued entries to be written.
type Emitter struct {
	repo  auditRepo
	queue chan domain.AuditEntry
	log   *slog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	done    chan struct{}
}

// NewEmitter creates an emitter with a queue of bufferSize entries.
func NewEmitter(log *slog.Logger, repo auditRepo, bufferSize int) *Emitter {
	return &Emitter{
		repo:  repo,
		queue: make(chan domain.AuditEntry, bufferSize),
		log:   log.With("service", "audit"),
		done:  make(chan struct{}),
	}
}

// Run writes queued entries until Close is called and the queue is drained.
// Cancelling ctx does not abort pending writes.
func (e *Emitter) Run(ctx context.Context) {
	defer close(e.done)

	e.mu.Lock()
	if e.closed {
		// Close already drained the queue itself.
		e.mu.Unlock()
		return
	}
	e.started = true
	e.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	for entry := range e.queue {
		e.write(ctx, entry)
	}
}

// Emit records entry. It never blocks on the store and never returns an
// error: a full queue or a closed emitter falls back to a synchronous write.
func (e *Emitter) Emit(ctx context.Context, entry domain.AuditEntry) {
	if _, err := json.Marshal(entry.Details); err != nil {
		e.log.ErrorContext(ctx, "audit details not serializable",
			slog.String("action", entry.Action.String()),
			slog.Int64("entity_id", entry.EntityID),
			slog.String("error", err.Error()),
		)
		entry.Details = nil
	}

	e.mu.RLock()
	if !e.closed {
		select {
		case e.queue <- entry:
			e.mu.RUnlock()
			return
		default:
		}
	}
	e.mu.RUnlock()

	e.log.WarnContext(ctx, "audit queue unavailable, writing inline",
		slog.String("action", entry.Action.String()))
	e.write(context.WithoutCancel(ctx), entry)
}

// Close stops accepting queued entries and waits for Run to drain the queue.
// Entries emitted afterwards are written inline.
func (e *Emitter) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	started := e.started
	e.mu.Unlock()

	if !started {
		for entry := range e.queue {
			e.write(context.Background(), entry)
		}
		return
	}
	<-e.done
}

// List returns audit entries newest first.
func (e *Emitter) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	return e.repo.List(ctx, f)
}

func (e *Emitter) write(ctx context.Context, entry domain.AuditEntry) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := e.repo.Create(ctx, entry); err != nil {
		e.log.ErrorContext(ctx, "audit write failed",
			slog.String("admin_id", entry.AdminID),
			slog.String("action", entry.Action.String()),
			slog.String("entity_type", entry.EntityType.String()),
			slog.Int64("entity_id", entry.EntityID),
			slog.String("error", err.Error()),
		)
	}
}
