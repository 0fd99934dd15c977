package connection

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// fakeSocket is an in-memory Socket for testing the writer/reader loops
// without a real kernel socket.
type fakeSocket struct {
	mu      sync.Mutex
	sent    [][]byte
	inbox   chan []byte
	closed  bool
	sendErr error
}

func newFakeSocket() *fakeSocket {
	return &fakeSocket{inbox: make(chan []byte, 16)}
}

func (f *fakeSocket) Send(data []byte, fds []int) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.mu.Lock()
	f.sent = append(f.sent, cp)
	f.mu.Unlock()
	return nil
}

func (f *fakeSocket) Recv(buf []byte) (int, []int, error) {
	msg, ok := <-f.inbox
	if !ok {
		return 0, nil, io.EOF
	}
	n := copy(buf, msg)
	return n, nil, nil
}

func (f *fakeSocket) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.inbox)
	}
	return nil
}

func (f *fakeSocket) deliver(msg []byte) {
	f.inbox <- msg
}

func (f *fakeSocket) sentMessages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.sent))
	copy(out, f.sent)
	return out
}

func TestSendEncodesAndForwards(t *testing.T) {
	sock := newFakeSocket()
	c := New(sock, zerolog.Nop())
	defer c.Close()

	args := wire.NewEncoder(4)
	args.PutUint32(42)
	if err := c.Send(wire.ObjectID(3), proxy.Request{Opcode: wire.Opcode(1), Args: args.Bytes()}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		if len(sock.sentMessages()) > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for writer goroutine to send")
		case <-time.After(time.Millisecond):
		}
	}

	sent := sock.sentMessages()[0]
	h, err := wire.DecodeHeader(sent)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if h.ObjectID != 3 || h.Opcode != 1 {
		t.Errorf("header = %+v, want object=3 opcode=1", h)
	}
}

func TestNextEventDecodesHeader(t *testing.T) {
	sock := newFakeSocket()
	c := New(sock, zerolog.Nop())
	defer c.Close()

	msg, err := wire.EncodeMessage(wire.ObjectID(1), wire.Opcode(1), []byte{5, 0, 0, 0})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	sock.deliver(msg)

	ev, outcome, err := c.NextEvent(context.Background())
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if outcome != OutcomeEvent {
		t.Fatalf("outcome = %v, want OutcomeEvent", outcome)
	}
	if ev.Header.ObjectID != 1 || ev.Header.Opcode != 1 {
		t.Errorf("header = %+v", ev.Header)
	}
}

func TestNextEventCancelled(t *testing.T) {
	sock := newFakeSocket()
	c := New(sock, zerolog.Nop())
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, outcome, err := c.NextEvent(ctx)
	if outcome != OutcomeCancelled {
		t.Fatalf("outcome = %v, want OutcomeCancelled", outcome)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSendAfterWriterStopped(t *testing.T) {
	sock := newFakeSocket()
	sock.sendErr = errors.New("broken pipe")
	c := New(sock, zerolog.Nop())
	defer c.Close()

	_ = c.Send(wire.ObjectID(1), proxy.Request{Opcode: 0, Args: nil})

	deadline := time.After(time.Second)
	for {
		err := c.Send(wire.ObjectID(1), proxy.Request{Opcode: 0, Args: nil})
		if errors.Is(err, ErrWriterStopped) {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for writer to stop")
		case <-time.After(time.Millisecond):
		}
	}
}
