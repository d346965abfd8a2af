package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the entry category, keeping per-category write ordering. Sink
// failures are logged and swallowed; a saturated worker drops the entry.
// The trail is best effort by contract.
type Dispatcher struct {
	workers []chan ports.AuditEntry
	sink    ports.AuditSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.AuditSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEntry, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for its category's worker. Never blocks: when
// the worker channel is full the entry is dropped and counted.
func (d *Dispatcher) Record(entry ports.AuditEntry) {
	select {
	case d.workers[d.shardIndex(entry.Category)] <- entry:
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Debug().Str("category", entry.Category).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps a category deterministically to a worker index.
func (d *Dispatcher) shardIndex(category string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(category))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Write(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("category", entry.Category).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
