package stream

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Options configures a Listener.
type Options struct {
	// PingInterval is how often a ping frame is sent. Default: 30s.
	PingInterval time.Duration
	// PongTimeout is how long to wait past a ping before declaring the
	// connection dead. Default: 10s.
	PongTimeout time.Duration
	// Buffer is the capacity of the message channel. Default: 16.
	Buffer int
}

func defaultOptions() Options {
	return Options{
		PingInterval: 30 * time.Second,
		PongTimeout:  10 * time.Second,
		Buffer:       16,
	}
}

// Listener reads a websocket event stream and delivers decoded envelopes on
// a channel. The caller supplies a ready-to-dial endpoint URL; this package
// does not construct API requests or handle credentials.
type Listener struct {
	ws       *websocket.Conn
	messages chan Message
	done     chan struct{}
	opts     Options

	mu     sync.Mutex
	err    error
	closed bool
}

// Dial connects to the stream endpoint and starts reading. The context
// bounds the dial and, once connected, cancels the listener.
func Dial(ctx context.Context, url string, opts ...Options) (*Listener, error) {
	options := defaultOptions()
	if len(opts) > 0 {
		opt := opts[0]
		if opt.PingInterval > 0 {
			options.PingInterval = opt.PingInterval
		}
		if opt.PongTimeout > 0 {
			options.PongTimeout = opt.PongTimeout
		}
		if opt.Buffer > 0 {
			options.Buffer = opt.Buffer
		}
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	l := &Listener{
		ws:       ws,
		messages: make(chan Message, options.Buffer),
		done:     make(chan struct{}),
		opts:     options,
	}

	stop := context.AfterFunc(ctx, func() { l.fail(ctx.Err()) })
	go func() {
		defer stop()
		l.readPump()
	}()
	go l.pingPump(ctx)
	return l, nil
}

// Messages returns the channel of decoded envelopes. It is closed when the
// stream ends; Err reports why.
func (l *Listener) Messages() <-chan Message {
	return l.messages
}

// Err returns the error that ended the stream, nil after a clean Close.
func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close tears the connection down. Messages is closed shortly after.
func (l *Listener) Close() error {
	l.fail(nil)
	return nil
}

// fail records the terminal error once and closes the socket, which unblocks
// the read pump.
func (l *Listener) fail(err error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.err = err
	l.mu.Unlock()
	close(l.done)
	l.ws.Close()
}

func (l *Listener) readPump() {
	defer close(l.messages)

	l.ws.SetPongHandler(func(string) error {
		return l.ws.SetReadDeadline(time.Now().Add(l.opts.PingInterval + l.opts.PongTimeout))
	})
	l.ws.SetReadDeadline(time.Now().Add(l.opts.PingInterval + l.opts.PongTimeout))

	for {
		_, data, err := l.ws.ReadMessage()
		if err != nil {
			l.fail(err)
			return
		}
		// A nop also proves liveness, not just pong frames.
		l.ws.SetReadDeadline(time.Now().Add(l.opts.PingInterval + l.opts.PongTimeout))

		msg, err := parseMessage(data)
		if err != nil {
			l.fail(err)
			return
		}
		select {
		case l.messages <- msg:
		case <-l.done:
			return
		}
	}
}

func (l *Listener) pingPump(ctx context.Context) {
	ticker := time.NewTicker(l.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(l.opts.PongTimeout)
			if err := l.ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				l.fail(err)
				return
			}
		}
	}
}
