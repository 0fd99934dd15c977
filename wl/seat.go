package wl

import (
	"sync"

	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// Seat capability bitmask, from wl_seat.capability.
const (
	SeatCapabilityPointer  uint32 = 1
	SeatCapabilityKeyboard uint32 = 2
	SeatCapabilityTouch    uint32 = 4
)

// wl_seat request opcodes.
const (
	opSeatGetPointer  wire.Opcode = 0
	opSeatGetKeyboard wire.Opcode = 1
	opSeatGetTouch    wire.Opcode = 2
	opSeatRelease     wire.Opcode = 3
)

// wl_seat event opcodes.
const (
	opSeatEventCapabilities wire.Opcode = 0
	opSeatEventName         wire.Opcode = 1
)

// Seat is the wl_seat interface: a group of input devices (pointer,
// keyboard, touch) that belong together.
type Seat struct {
	p *proxy.Proxy

	mu           sync.Mutex
	capabilities uint32
	name         string

	onCapabilities func(uint32)
	onName         func(string)
}

// BindSeat binds the wl_seat global.
func BindSeat(registry *Registry, store *objectstore.Store, name, version uint32) (*Seat, error) {
	p, err := registry.Bind(name, InterfaceSeat, version)
	if err != nil {
		return nil, err
	}
	s := &Seat{p: p}
	store.Insert(p.ID, InterfaceSeat, p.Version, s)
	return s, nil
}

// ID returns the seat's object id.
func (s *Seat) ID() wire.ObjectID { return s.p.ID }

// Capabilities returns the most recently received capability bitmask.
func (s *Seat) Capabilities() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capabilities
}

// HasPointer reports whether the seat currently has a pointer device.
func (s *Seat) HasPointer() bool { return s.Capabilities()&SeatCapabilityPointer != 0 }

// HasKeyboard reports whether the seat currently has a keyboard device.
func (s *Seat) HasKeyboard() bool { return s.Capabilities()&SeatCapabilityKeyboard != 0 }

// HasTouch reports whether the seat currently has a touch device.
func (s *Seat) HasTouch() bool { return s.Capabilities()&SeatCapabilityTouch != 0 }

// Name returns the seat's human-readable name (empty until received, or
// on compositors advertising version < 2).
func (s *Seat) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// OnCapabilities registers a callback invoked whenever the capability
// bitmask changes.
func (s *Seat) OnCapabilities(f func(uint32)) { s.onCapabilities = f }

// OnName registers a callback invoked when the seat's name is received.
func (s *Seat) OnName(f func(string)) { s.onName = f }

// DispatchEvent decodes and routes one wl_seat event.
func (s *Seat) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opSeatEventCapabilities:
		caps, err := dec.Uint32()
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.capabilities = caps
		s.mu.Unlock()
		if s.onCapabilities != nil {
			s.onCapabilities(caps)
		}
		return nil
	case opSeatEventName:
		name, err := dec.String()
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.name = name
		s.mu.Unlock()
		if s.onName != nil {
			s.onName(name)
		}
		return nil
	default:
		return nil
	}
}

// GetPointer creates a wl_pointer for this seat's pointer device.
func (s *Seat) GetPointer() (*Pointer, error) {
	p, err := s.p.NewObject("wl_pointer", s.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := s.p.Send(proxy.Request{Opcode: opSeatGetPointer, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &Pointer{p: p}, nil
}

// GetKeyboard creates a wl_keyboard for this seat's keyboard device.
func (s *Seat) GetKeyboard() (*Keyboard, error) {
	p, err := s.p.NewObject("wl_keyboard", s.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := s.p.Send(proxy.Request{Opcode: opSeatGetKeyboard, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &Keyboard{p: p}, nil
}

// Release releases this seat object (version 5+). Does not affect the
// devices themselves.
func (s *Seat) Release() error {
	return s.p.Send(proxy.Request{Opcode: opSeatRelease})
}

// wl_pointer event opcodes.
const (
	opPointerEventEnter  wire.Opcode = 0
	opPointerEventLeave  wire.Opcode = 1
	opPointerEventMotion wire.Opcode = 2
	opPointerEventButton wire.Opcode = 3
	opPointerEventAxis   wire.Opcode = 4
)

// Pointer button state, from wl_pointer.button_state.
const (
	PointerButtonStateReleased uint32 = 0
	PointerButtonStatePressed  uint32 = 1
)

// Pointer is the wl_pointer interface.
type Pointer struct {
	p *proxy.Proxy

	onEnter  func(serial uint32, surface wire.ObjectID, x, y wire.Fixed)
	onLeave  func(serial uint32, surface wire.ObjectID)
	onMotion func(time uint32, x, y wire.Fixed)
	onButton func(serial, time, button, state uint32)
	onAxis   func(time, axis uint32, value wire.Fixed)
}

// ID returns the pointer's object id.
func (p *Pointer) ID() wire.ObjectID { return p.p.ID }

// OnEnter registers a callback for the enter event.
func (p *Pointer) OnEnter(f func(serial uint32, surface wire.ObjectID, x, y wire.Fixed)) {
	p.onEnter = f
}

// OnLeave registers a callback for the leave event.
func (p *Pointer) OnLeave(f func(serial uint32, surface wire.ObjectID)) { p.onLeave = f }

// OnMotion registers a callback for the motion event.
func (p *Pointer) OnMotion(f func(time uint32, x, y wire.Fixed)) { p.onMotion = f }

// OnButton registers a callback for the button event.
func (p *Pointer) OnButton(f func(serial, time, button, state uint32)) { p.onButton = f }

// OnAxis registers a callback for the axis (scroll) event.
func (p *Pointer) OnAxis(f func(time, axis uint32, value wire.Fixed)) { p.onAxis = f }

// DispatchEvent decodes and routes one wl_pointer event.
func (p *Pointer) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opPointerEventEnter:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		surface, err := dec.Object()
		if err != nil {
			return err
		}
		x, err := dec.Fixed()
		if err != nil {
			return err
		}
		y, err := dec.Fixed()
		if err != nil {
			return err
		}
		if p.onEnter != nil {
			p.onEnter(serial, surface, x, y)
		}
		return nil
	case opPointerEventLeave:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		surface, err := dec.Object()
		if err != nil {
			return err
		}
		if p.onLeave != nil {
			p.onLeave(serial, surface)
		}
		return nil
	case opPointerEventMotion:
		time, err := dec.Uint32()
		if err != nil {
			return err
		}
		x, err := dec.Fixed()
		if err != nil {
			return err
		}
		y, err := dec.Fixed()
		if err != nil {
			return err
		}
		if p.onMotion != nil {
			p.onMotion(time, x, y)
		}
		return nil
	case opPointerEventButton:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		time, err := dec.Uint32()
		if err != nil {
			return err
		}
		button, err := dec.Uint32()
		if err != nil {
			return err
		}
		state, err := dec.Uint32()
		if err != nil {
			return err
		}
		if p.onButton != nil {
			p.onButton(serial, time, button, state)
		}
		return nil
	case opPointerEventAxis:
		time, err := dec.Uint32()
		if err != nil {
			return err
		}
		axis, err := dec.Uint32()
		if err != nil {
			return err
		}
		value, err := dec.Fixed()
		if err != nil {
			return err
		}
		if p.onAxis != nil {
			p.onAxis(time, axis, value)
		}
		return nil
	default:
		return nil
	}
}

// wl_keyboard request opcodes.
const opKeyboardRelease wire.Opcode = 3

// wl_keyboard event opcodes.
const (
	opKeyboardEventKeymap     wire.Opcode = 0
	opKeyboardEventEnter      wire.Opcode = 1
	opKeyboardEventLeave      wire.Opcode = 2
	opKeyboardEventKey        wire.Opcode = 3
	opKeyboardEventModifiers  wire.Opcode = 4
	opKeyboardEventRepeatInfo wire.Opcode = 5
)

// Keyboard key state, from wl_keyboard.key_state.
const (
	KeyStateReleased uint32 = 0
	KeyStatePressed  uint32 = 1
)

// Keymap format, from wl_keyboard.keymap_format.
const KeymapFormatXkbV1 uint32 = 1

// Keyboard is the wl_keyboard interface.
type Keyboard struct {
	p *proxy.Proxy

	onKeymap     func(format uint32, fd int, size uint32)
	onEnter      func(serial uint32, surface wire.ObjectID, keys []byte)
	onLeave      func(serial uint32, surface wire.ObjectID)
	onKey        func(serial, time, key, state uint32)
	onModifiers  func(serial, modsDepressed, modsLatched, modsLocked, group uint32)
	onRepeatInfo func(rate, delay int32)
}

// ID returns the keyboard's object id.
func (k *Keyboard) ID() wire.ObjectID { return k.p.ID }

// OnKeymap registers a callback for the keymap event. fd is a memory-mapped
// file descriptor containing the XKB keymap; the callback owns it.
func (k *Keyboard) OnKeymap(f func(format uint32, fd int, size uint32)) { k.onKeymap = f }

// OnEnter registers a callback for the enter event.
func (k *Keyboard) OnEnter(f func(serial uint32, surface wire.ObjectID, keys []byte)) {
	k.onEnter = f
}

// OnLeave registers a callback for the leave event.
func (k *Keyboard) OnLeave(f func(serial uint32, surface wire.ObjectID)) { k.onLeave = f }

// OnKey registers a callback for the key event.
func (k *Keyboard) OnKey(f func(serial, time, key, state uint32)) { k.onKey = f }

// OnModifiers registers a callback for the modifiers event.
func (k *Keyboard) OnModifiers(f func(serial, modsDepressed, modsLatched, modsLocked, group uint32)) {
	k.onModifiers = f
}

// OnRepeatInfo registers a callback for the repeat_info event (version 4+).
func (k *Keyboard) OnRepeatInfo(f func(rate, delay int32)) { k.onRepeatInfo = f }

// Release releases this keyboard object (version 3+).
func (k *Keyboard) Release() error {
	return k.p.Send(proxy.Request{Opcode: opKeyboardRelease})
}

// DispatchEvent decodes and routes one wl_keyboard event.
func (k *Keyboard) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opKeyboardEventKeymap:
		format, err := dec.Uint32()
		if err != nil {
			return err
		}
		fd, err := dec.FD()
		if err != nil {
			return err
		}
		size, err := dec.Uint32()
		if err != nil {
			return err
		}
		if k.onKeymap != nil {
			k.onKeymap(format, fd, size)
		}
		return nil
	case opKeyboardEventEnter:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		surface, err := dec.Object()
		if err != nil {
			return err
		}
		keys, err := dec.Array()
		if err != nil {
			return err
		}
		if k.onEnter != nil {
			k.onEnter(serial, surface, keys)
		}
		return nil
	case opKeyboardEventLeave:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		surface, err := dec.Object()
		if err != nil {
			return err
		}
		if k.onLeave != nil {
			k.onLeave(serial, surface)
		}
		return nil
	case opKeyboardEventKey:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		time, err := dec.Uint32()
		if err != nil {
			return err
		}
		key, err := dec.Uint32()
		if err != nil {
			return err
		}
		state, err := dec.Uint32()
		if err != nil {
			return err
		}
		if k.onKey != nil {
			k.onKey(serial, time, key, state)
		}
		return nil
	case opKeyboardEventModifiers:
		serial, err := dec.Uint32()
		if err != nil {
			return err
		}
		depressed, err := dec.Uint32()
		if err != nil {
			return err
		}
		latched, err := dec.Uint32()
		if err != nil {
			return err
		}
		locked, err := dec.Uint32()
		if err != nil {
			return err
		}
		group, err := dec.Uint32()
		if err != nil {
			return err
		}
		if k.onModifiers != nil {
			k.onModifiers(serial, depressed, latched, locked, group)
		}
		return nil
	case opKeyboardEventRepeatInfo:
		rate, err := dec.Int32()
		if err != nil {
			return err
		}
		delay, err := dec.Int32()
		if err != nil {
			return err
		}
		if k.onRepeatInfo != nil {
			k.onRepeatInfo(rate, delay)
		}
		return nil
	default:
		return nil
	}
}
