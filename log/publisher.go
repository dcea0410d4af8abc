package log

import (
	"bytes"
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 64

// Publisher is an [io.Writer] that splits its input into lines and fans each
// complete line out to subscribers.
//
// Line terminators are stripped; a trailing partial line is held back until
// its newline arrives or [Publisher.Flush] is called. Every [Subscription]
// has a buffered channel with ring-buffer semantics: when it is full the
// oldest line is dropped, so Write never blocks. Safe for concurrent use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subscribers []*Subscription
	partial     []byte
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		p.bufSize = max(n, 1)
	}
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 64.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Write publishes every complete line in b. It always returns len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return len(b), nil
	}

	p.partial = append(p.partial, b...)

	for {
		i := bytes.IndexByte(p.partial, '\n')
		if i < 0 {
			break
		}

		line := bytes.TrimSuffix(p.partial[:i], []byte{'\r'})
		p.publish(string(line))
		p.partial = p.partial[i+1:]
	}

	if len(p.partial) == 0 {
		p.partial = nil
	}

	return len(b), nil
}

// Flush publishes any buffered partial line.
func (p *Publisher) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || len(p.partial) == 0 {
		return
	}

	p.publish(string(p.partial))
	p.partial = nil
}

// publish delivers line and compacts closed subscriptions. Callers hold mu.
func (p *Publisher) publish(line string) {
	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}

		select {
		case sub.ch <- line:
		default:
			// Full: drop the oldest line. The subscriber may drain the
			// channel concurrently, so neither step may block.
			select {
			case <-sub.ch:
			default:
			}

			select {
			case sub.ch <- line:
			default:
			}
		}

		alive = append(alive, sub)
	}

	clear(p.subscribers[len(alive):])
	p.subscribers = alive
}

// Subscribe creates and registers a new [Subscription]. If the Publisher is
// already closed the returned subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan string, p.bufSize),
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close drops any partial line, closes all subscription channels and
// releases the subscriber list. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil
	p.partial = nil

	return nil
}

// Subscription receives lines from a [Publisher].
type Subscription struct {
	ch     chan string
	closed atomic.Bool
}

// C returns the channel that delivers lines.
func (s *Subscription) C() <-chan string {
	return s.ch
}

// Close marks the subscription as closed. The Publisher closes the channel
// on its next publish or Close. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
