package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/admin-scaffold/demo-backend/internal/api/metrics"
	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans store changes out to a fixed set of workers. Changes are
// sharded on their entity family (user, todo, session, store), so changes to
// the same family are recorded in the order they were applied.
type Dispatcher struct {
	workers []chan domain.Change
	service ports.ChangeService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ChangeService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Change, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Change, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a change to the worker owning its family. It never blocks:
// when that worker's buffer is full the change is dropped and logged.
func (d *Dispatcher) Enqueue(change domain.Change) {
	idx := d.shardIndex(change.Kind)
	select {
	case d.workers[idx] <- change:
		metrics.ChangeQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ChangesDroppedTotal.Inc()
		d.log.Warn().
			Str("kind", string(change.Kind)).
			Int("worker_id", idx).
			Msg("change queue full, dropping change")
	}
}

// Observe adapts Enqueue to the store observer signature.
func (d *Dispatcher) Observe() ports.Observer {
	return d.Enqueue
}

func (d *Dispatcher) shardIndex(kind domain.ChangeKind) int {
	family, _, _ := strings.Cut(string(kind), ".")
	h := fnv.New32a()
	_, _ = h.Write([]byte(family))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Change) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			metrics.ChangeQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.service.Record(ctx, change); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(change.Kind)).
					Int("worker_id", id).
					Msg("change recording failed")
			}
		}
	}
}
