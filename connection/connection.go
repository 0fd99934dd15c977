// Package connection owns the single reader and single writer that drive a
// Wayland socket: a writer goroutine draining a buffered channel (256
// entries) of outbound requests, and a reader goroutine that receives
// messages and decodes their headers, handing them over one at a time
// through NextEvent.
package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// ErrWriterStopped is returned by Send once the writer goroutine has exited,
// which happens after a send error or Close.
var ErrWriterStopped = errors.New("connection: writer stopped")

// ErrClosed is returned by NextEvent after Close.
var ErrClosed = errors.New("connection: closed")

// outbound is one request queued for the writer goroutine.
type outbound struct {
	id  wire.ObjectID
	req proxy.Request
}

// Socket is the minimal transport surface Connection needs; transport.Socket
// satisfies it.
type Socket interface {
	Send(data []byte, fds []int) error
	Recv(buf []byte) (n int, fds []int, err error)
	Close() error
}

// Event is one decoded message arriving from the compositor.
type Event struct {
	Header wire.Header
	Body   []byte
	FDs    []int
}

// Connection drives one socket: a writer goroutine that serializes and
// sends outbound requests in order, and a reader goroutine that receives
// messages and splits off their headers. The caller takes the messages via
// NextEvent, in wire order and one call at a time; the reader goroutine runs
// no handler code, so handler callbacks run only on the goroutine that calls
// NextEvent.
type Connection struct {
	sock Socket
	log  zerolog.Logger

	outCh  chan outbound
	stopCh chan struct{}

	writerMu  sync.Mutex
	writerErr error

	eventCh chan eventOrErr
}

// eventOrErr is what the single reader goroutine pushes to eventCh.
type eventOrErr struct {
	ev  Event
	err error
}

// New creates a Connection over an already-connected socket and starts its
// writer and reader goroutines. The reader goroutine is the only thing that
// ever calls sock.Recv, so events are always produced in wire order.
func New(sock Socket, log zerolog.Logger) *Connection {
	c := &Connection{
		sock:    sock,
		log:     log,
		outCh:   make(chan outbound, 256),
		stopCh:  make(chan struct{}),
		eventCh: make(chan eventOrErr),
	}
	go c.writeLoop()
	go c.readLoop()
	return c
}

func (c *Connection) readLoop() {
	var buf [1 << 16]byte
	for {
		n, fds, err := c.sock.Recv(buf[:])
		if err != nil {
			select {
			case c.eventCh <- eventOrErr{err: err}:
			case <-c.stopCh:
			}
			return
		}
		body := make([]byte, n)
		copy(body, buf[:n])
		h, err := wire.DecodeHeader(body)
		if err != nil {
			select {
			case c.eventCh <- eventOrErr{err: err}:
			case <-c.stopCh:
				return
			}
			continue
		}
		ev := Event{Header: h, Body: body[wire.HeaderSize:], FDs: fds}
		select {
		case c.eventCh <- eventOrErr{ev: ev}:
		case <-c.stopCh:
			return
		}
	}
}

// Send implements proxy.Sender by queuing req for the writer goroutine.
// The queue holds 256 requests: while it has room Send returns without
// waiting on the network; once it is full Send blocks until the writer has
// taken a request from it or the connection stops.
func (c *Connection) Send(id wire.ObjectID, req proxy.Request) error {
	select {
	case c.outCh <- outbound{id: id, req: req}:
		return nil
	case <-c.stopCh:
		return c.stoppedError()
	}
}

func (c *Connection) stoppedError() error {
	c.writerMu.Lock()
	defer c.writerMu.Unlock()
	if c.writerErr != nil {
		return fmt.Errorf("%w: %v", ErrWriterStopped, c.writerErr)
	}
	return ErrWriterStopped
}

func (c *Connection) writeLoop() {
	for {
		select {
		case out, ok := <-c.outCh:
			if !ok {
				return
			}
			buf, err := wire.EncodeMessage(out.id, out.req.Opcode, out.req.Args)
			if err != nil {
				c.fail(err)
				return
			}
			if err := c.sock.Send(buf, out.req.FDs); err != nil {
				c.fail(err)
				return
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *Connection) fail(err error) {
	c.writerMu.Lock()
	c.writerErr = err
	c.writerMu.Unlock()
	c.log.Error().Err(err).Msg("connection: write failed, stopping writer")
	close(c.stopCh)
}

// Outcome discriminates what NextEvent produced.
type Outcome int

const (
	// OutcomeEvent means the reader goroutine produced something: with a nil
	// error Event is populated with a decoded message; with a non-nil error
	// Event is empty and the error is the read or header-decode failure,
	// including the compositor closing the socket.
	OutcomeEvent Outcome = iota
	// OutcomeWriterStopped means the writer goroutine has terminated (after
	// a send failure or Close); the connection is no longer usable. The
	// error is ErrClosed after Close and wraps ErrWriterStopped otherwise.
	OutcomeWriterStopped
	// OutcomeCancelled means ctx was cancelled before a message arrived.
	OutcomeCancelled
)

// NextEvent blocks until one message has been read from the compositor,
// the writer goroutine has stopped, or ctx is cancelled — the three-way
// outcome a dispatch loop needs to distinguish a dead connection from a
// quiet one.
func (c *Connection) NextEvent(ctx context.Context) (Event, Outcome, error) {
	select {
	case r := <-c.eventCh:
		if r.err != nil {
			return Event{}, OutcomeEvent, r.err
		}
		return r.ev, OutcomeEvent, nil
	case <-c.stopCh:
		c.writerMu.Lock()
		closed := c.writerErr == nil
		c.writerMu.Unlock()
		if closed {
			return Event{}, OutcomeWriterStopped, ErrClosed
		}
		return Event{}, OutcomeWriterStopped, c.stoppedError()
	case <-ctx.Done():
		return Event{}, OutcomeCancelled, ctx.Err()
	}
}

// Close stops the writer goroutine and closes the underlying socket.
func (c *Connection) Close() error {
	select {
	case <-c.stopCh:
	default:
		close(c.stopCh)
	}
	return c.sock.Close()
}

// Registrar adapts an objectstore.Store to proxy.InterfaceRegistrar.
type Registrar struct {
	Store *objectstore.Store
}

// InsertInterface implements proxy.InterfaceRegistrar.
func (r Registrar) InsertInterface(id wire.ObjectID, iface string, version uint32) {
	r.Store.InsertInterface(id, iface, version)
}
