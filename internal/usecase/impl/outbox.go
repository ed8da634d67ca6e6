package impl

import (
	"sync"

	"wander/internal/domain/entity"
)

// maxOutboxBacklog caps messages queued behind a full consumer channel; the oldest are dropped.
const maxOutboxBacklog = 256

// outbox is a FIFO between the coordinator and the UI consumer.
// push never blocks, so emitting while holding the coordinator lock keeps
// message order identical to state mutation order. While the consumer
// channel is full, a Loading message replaces a Loading message queued
// directly before it, since each carries the full result snapshot.
type outbox struct {
	mu      sync.Mutex
	queue   []entity.Message
	closed  bool
	dropped int

	wake chan struct{}
	quit chan struct{}
	out  chan entity.Message
}

func newOutbox(buffer int) *outbox {
	if buffer < 0 {
		buffer = 0
	}

	o := &outbox{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		out:  make(chan entity.Message, buffer),
	}
	go o.pump()

	return o
}

func (o *outbox) push(message entity.Message) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()

		return
	}
	if o.coalescesLocked(message) {
		o.queue[len(o.queue)-1] = message
	} else {
		o.queue = append(o.queue, message)
		if len(o.queue) > maxOutboxBacklog {
			o.queue[0] = entity.Message{}
			o.queue = o.queue[1:]
			o.dropped++
		}
	}
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
}

func (o *outbox) coalescesLocked(message entity.Message) bool {
	if message.Kind != entity.MessageLoading || len(o.queue) == 0 {
		return false
	}
	if o.queue[len(o.queue)-1].Kind != entity.MessageLoading {
		return false
	}

	return len(o.out) == cap(o.out)
}

// backlog reports queued and dropped message counts.
func (o *outbox) backlog() (queued, dropped int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.queue), o.dropped
}

// close stops accepting messages; queued messages are dropped once the consumer stops reading.
func (o *outbox) close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()

		return
	}
	o.closed = true
	o.mu.Unlock()

	close(o.quit)
}

func (o *outbox) messages() <-chan entity.Message {
	return o.out
}

func (o *outbox) pump() {
	defer close(o.out)

	for {
		o.mu.Lock()
		if len(o.queue) == 0 {
			closed := o.closed
			o.mu.Unlock()
			if closed {
				return
			}

			select {
			case <-o.wake:
			case <-o.quit:
			}

			continue
		}
		message := o.queue[0]
		o.queue[0] = entity.Message{}
		o.queue = o.queue[1:]
		o.mu.Unlock()

		select {
		case o.out <- message:
		case <-o.quit:
			return
		}
	}
}
