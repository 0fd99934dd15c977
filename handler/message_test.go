package handler

import (
	"errors"
	"testing"
)

type surfaceEvent struct {
	enter bool
}

func (e *surfaceEvent) TryDecode(iface string, opcode uint16, body []byte, fds []int) error {
	if iface != "wl_surface" {
		return ErrUnknownInterface
	}
	switch opcode {
	case 0:
		e.enter = true
		return nil
	default:
		return ErrUnknownOpcode
	}
}

type seatEvent struct {
	capabilities uint32
}

func (e *seatEvent) TryDecode(iface string, opcode uint16, body []byte, fds []int) error {
	if iface != "wl_seat" {
		return ErrUnknownInterface
	}
	switch opcode {
	case 0:
		e.capabilities = 7
		return nil
	default:
		return ErrUnknownOpcode
	}
}

func TestUnionFirstBranchMatches(t *testing.T) {
	u := &Union[*surfaceEvent, *seatEvent]{A: &surfaceEvent{}, B: &seatEvent{}}
	if err := u.TryDecode("wl_surface", 0, nil, nil); err != nil {
		t.Fatalf("TryDecode: %v", err)
	}
	if !u.A.enter {
		t.Errorf("expected surface enter event to be decoded")
	}
	if u.Matched() != 1 {
		t.Errorf("Matched() = %d, want 1", u.Matched())
	}
}

func TestUnionSecondBranchMatches(t *testing.T) {
	u := &Union[*surfaceEvent, *seatEvent]{A: &surfaceEvent{}, B: &seatEvent{}}
	if err := u.TryDecode("wl_seat", 0, nil, nil); err != nil {
		t.Fatalf("TryDecode: %v", err)
	}
	if u.B.capabilities != 7 {
		t.Errorf("expected seat capabilities event to be decoded")
	}
	if u.Matched() != 2 {
		t.Errorf("Matched() = %d, want 2", u.Matched())
	}
}

func TestUnionNeitherMatches(t *testing.T) {
	u := &Union[*surfaceEvent, *seatEvent]{A: &surfaceEvent{}, B: &seatEvent{}}
	err := u.TryDecode("wl_output", 0, nil, nil)
	if !errors.Is(err, ErrUnknownInterface) {
		t.Errorf("expected ErrUnknownInterface, got %v", err)
	}
	if u.Matched() != 0 {
		t.Errorf("Matched() = %d, want 0", u.Matched())
	}
}

func TestUnionUnknownOpcodePropagates(t *testing.T) {
	u := &Union[*surfaceEvent, *seatEvent]{A: &surfaceEvent{}, B: &seatEvent{}}
	err := u.TryDecode("wl_surface", 99, nil, nil)
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("expected ErrUnknownOpcode, got %v", err)
	}
}

func TestHandlerFunc(t *testing.T) {
	var got *surfaceEvent
	var h Handler[*surfaceEvent] = HandlerFunc[*surfaceEvent](func(msg *surfaceEvent) { got = msg })
	want := &surfaceEvent{enter: true}
	h.Handle(want)
	if got != want {
		t.Errorf("HandlerFunc did not forward the message")
	}
}
