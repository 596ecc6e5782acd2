package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/events"
)

// Common errors returned by the dispatcher queue
var (
	ErrQueueClosed = errors.New("notification queue is closed")
	ErrQueueFull   = errors.New("notification queue is full")
)

// sendTimeout bounds a single Sender call.
const sendTimeout = 10 * time.Second

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "booking_notifications_total",
		Help: "Booking notifications by event type and outcome",
	},
	[]string{"type", "outcome"},
)

// Dispatcher queues booking events and sends their notifications from a pool
// of worker goroutines. It implements events.EventHandler.
type Dispatcher struct {
	queue          chan *events.BookingEvent
	sender         Sender
	adminRecipient string
	workerCount    int

	// mu guards closed against concurrent enqueue and Stop.
	mu      sync.RWMutex
	closed  bool
	started bool

	wg     sync.WaitGroup
	logger *slog.Logger
}

var _ events.EventHandler = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. Call Start before events arrive and
// Stop on shutdown.
func NewDispatcher(cfg config.NotifyConfig, sender Sender, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "notify_dispatcher"))

	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", cfg.WorkerCount,
			"default_count", 1)
		workerCount = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1
	}

	return &Dispatcher{
		queue:          make(chan *events.BookingEvent, queueSize),
		sender:         sender,
		adminRecipient: cfg.AdminEmail,
		workerCount:    workerCount,
		logger:         logger,
	}
}

// Start launches the workers. Calling it more than once has no effect.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	d.logger.Info("starting notification workers", "worker_count", d.workerCount)
	for i := 0; i < d.workerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
}

// HandleEvent enqueues the event without blocking.
// Returns ErrQueueFull or ErrQueueClosed when the event is dropped.
func (d *Dispatcher) HandleEvent(ctx context.Context, event *events.BookingEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrQueueClosed
	}

	select {
	case d.queue <- event:
		d.logger.Debug("notification event enqueued",
			"event_id", event.ID,
			"event_type", string(event.Type),
			"queue_len", len(d.queue))
		return nil
	default:
		notificationsTotal.WithLabelValues(string(event.Type), "dropped").Inc()
		d.logger.Warn("notification queue full, dropping event",
			"event_id", event.ID,
			"event_type", string(event.Type))
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(d.queue))
	}
}

// Stop closes the queue, lets the workers drain what is queued and waits for
// them. It returns ctx.Err() if ctx ends first.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification workers stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("timed out waiting for notification workers")
		return ctx.Err()
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	log := d.logger.With("worker_id", id)

	for event := range d.queue {
		d.process(log, event)
	}
}

func (d *Dispatcher) process(log *slog.Logger, event *events.BookingEvent) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("notification sender panicked",
				"event_id", event.ID,
				"panic", p)
		}
	}()

	for _, n := range Compose(event, d.adminRecipient) {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.sender.Send(ctx, n)
		cancel()
		if err != nil {
			notificationsTotal.WithLabelValues(string(event.Type), "failed").Inc()
			log.Error("failed to send notification",
				"error", err,
				"event_id", event.ID,
				"event_type", string(event.Type))
			continue
		}
		notificationsTotal.WithLabelValues(string(event.Type), "sent").Inc()
	}
}
