// Package handler routes decoded event bytes to the generated event type
// they belong to. Every generated event type is a Message: something that
// knows how to try decoding itself from a wire message, refusing
// (UnknownInterface) when it isn't the right interface rather than
// guessing.
package handler

import (
	"errors"
	"fmt"
)

// ErrUnknownInterface means the interface name on the message doesn't match
// what this Message (or Union branch) decodes. It is not a protocol error;
// callers fall through to the next candidate.
var ErrUnknownInterface = errors.New("handler: unknown interface")

// ErrUnknownOpcode means the interface matched but no event with this
// opcode is defined. Per spec.md §7 this is logged and the message is
// dropped, not treated as fatal.
var ErrUnknownOpcode = errors.New("handler: unknown opcode")

// Message is implemented by every generated per-interface event type. A
// generated wl_surface event enum, for instance, implements Message by
// checking iface == "wl_surface" and switching on opcode.
type Message interface {
	TryDecode(iface string, opcode uint16, body []byte, fds []int) error
}

// DecodeError wraps a failure decoding a message body whose interface and
// opcode were both recognized, carrying the interface/opcode for logging.
type DecodeError struct {
	Interface string
	Opcode    uint16
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("handler: decode %s@%d: %v", e.Interface, e.Opcode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Union tries A first, then B, returning whichever succeeds. It implements
// Message itself, so Unions nest to combine any number of event types into
// one decode attempt — the Go generics stand-in for a coproduct type, since
// Go has no built-in sum types.
type Union[A, B Message] struct {
	A A
	B B

	matched int // 0 = none, 1 = A, 2 = B
}

// TryDecode attempts A, then B, returning ErrUnknownInterface only if
// neither matches.
func (u *Union[A, B]) TryDecode(iface string, opcode uint16, body []byte, fds []int) error {
	if err := u.A.TryDecode(iface, opcode, body, fds); !errors.Is(err, ErrUnknownInterface) {
		if err == nil {
			u.matched = 1
		}
		return err
	}
	if err := u.B.TryDecode(iface, opcode, body, fds); !errors.Is(err, ErrUnknownInterface) {
		if err == nil {
			u.matched = 2
		}
		return err
	}
	return ErrUnknownInterface
}

// Matched reports which branch last decoded successfully: 0 if neither has,
// 1 for A, 2 for B.
func (u *Union[A, B]) Matched() int { return u.matched }

// Handler receives a fully decoded message of type M.
type Handler[M Message] interface {
	Handle(msg M)
}

// HandlerFunc adapts a plain function to Handler[M].
type HandlerFunc[M Message] func(msg M)

// Handle calls f(msg).
func (f HandlerFunc[M]) Handle(msg M) { f(msg) }
