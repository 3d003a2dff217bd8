package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/findly-app/lostfound-api/internal/api/metrics"
	"github.com/findly-app/lostfound-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes sighting reports to a fixed set of workers using
// consistent hashing on the item ID, guaranteeing per-item ordering.
type Dispatcher struct {
	workers []chan ports.SightingInput
	service ports.SightingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.SightingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SightingInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SightingInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a sighting to the worker responsible for its item. The
// call never blocks: when the shard's buffer is full it reports false
// and drops the sighting so the caller can shed load.
func (d *Dispatcher) Enqueue(in ports.SightingInput) bool {
	idx := d.shardIndex(in.ItemID)
	select {
	case d.workers[idx] <- in:
	default:
		metrics.SightingsErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("item_id", in.ItemID).
			Int("worker_id", idx).
			Msg("sighting queue full, rejecting")
		return false
	}
	metrics.SightingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return true
}

// shardIndex maps an item ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(itemID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(itemID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SightingInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.Process(ctx, in); err != nil {
				metrics.SightingsErrorsTotal.WithLabelValues("process_failed").Inc()
				metrics.SightingProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
				d.log.Error().Err(err).
					Str("item_id", in.ItemID).
					Int("worker_id", id).
					Msg("sighting processing failed")
			} else {
				metrics.SightingsProcessedTotal.Inc()
				metrics.SightingProcessingDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
			}
			metrics.SightingQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
