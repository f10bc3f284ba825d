package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher queues messages for a single background worker. Dispatch never
// blocks: when the queue is full the message is dropped and logged.
type Dispatcher struct {
	sender  Sender
	queue   chan Message
	timeout time.Duration
	logger  *zap.Logger

	wg       sync.WaitGroup
	startMu  sync.Mutex
	started  bool
	closed   bool
	closeMu  sync.RWMutex
	stopOnce sync.Once
}

func NewDispatcher(sender Sender, queueSize int, timeout time.Duration, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:  sender,
		queue:   make(chan Message, queueSize),
		timeout: timeout,
		logger:  l,
	}
}

// Start launches the worker. It drains the queue once ctx is cancelled or
// Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	d.startMu.Lock()
	defer d.startMu.Unlock()
	if d.started {
		return
	}
	d.started = true

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case msg, ok := <-d.queue:
				if !ok {
					return
				}
				d.deliver(msg)
			case <-ctx.Done():
				d.Stop()
				for msg := range d.queue {
					d.deliver(msg)
				}
				return
			}
		}
	}()
}

// Dispatch reports whether the message was queued.
func (d *Dispatcher) Dispatch(msg Message) bool {
	d.closeMu.RLock()
	defer d.closeMu.RUnlock()
	if d.closed {
		d.logger.Warn("notification dropped, dispatcher stopped", zap.String("kind", msg.Kind), zap.String("to", msg.To))
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.logger.Warn("notification dropped, queue full", zap.String("kind", msg.Kind), zap.String("to", msg.To))
		return false
	}
}

// Stop closes the queue; the worker finishes what is queued.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.closeMu.Lock()
		d.closed = true
		close(d.queue)
		d.closeMu.Unlock()
	})
}

// Wait blocks until the worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	start := time.Now()
	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.Warn("notification delivery failed",
			zap.String("kind", msg.Kind),
			zap.String("to", msg.To),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	d.logger.Info("notification delivered",
		zap.String("kind", msg.Kind),
		zap.String("to", msg.To),
	)
}
