package wl

import (
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// xdg_wm_base request opcodes.
const (
	opXdgWmBaseDestroy       wire.Opcode = 0
	opXdgWmBaseGetXdgSurface wire.Opcode = 2
	opXdgWmBasePong          wire.Opcode = 3
)

// xdg_wm_base event opcodes.
const opXdgWmBaseEventPing wire.Opcode = 0

// xdg_surface request opcodes.
const (
	opXdgSurfaceDestroy           wire.Opcode = 0
	opXdgSurfaceGetToplevel       wire.Opcode = 1
	opXdgSurfaceSetWindowGeometry wire.Opcode = 3
	opXdgSurfaceAckConfigure      wire.Opcode = 4
)

// xdg_surface event opcodes.
const opXdgSurfaceEventConfigure wire.Opcode = 0

// xdg_toplevel request opcodes.
const (
	opXdgToplevelDestroy         wire.Opcode = 0
	opXdgToplevelSetTitle        wire.Opcode = 2
	opXdgToplevelSetAppID        wire.Opcode = 3
	opXdgToplevelMove            wire.Opcode = 5
	opXdgToplevelResize          wire.Opcode = 6
	opXdgToplevelSetMaxSize      wire.Opcode = 7
	opXdgToplevelSetMinSize      wire.Opcode = 8
	opXdgToplevelSetMaximized    wire.Opcode = 9
	opXdgToplevelUnsetMaximized  wire.Opcode = 10
	opXdgToplevelSetFullscreen   wire.Opcode = 11
	opXdgToplevelUnsetFullscreen wire.Opcode = 12
	opXdgToplevelSetMinimized    wire.Opcode = 13
)

// xdg_toplevel event opcodes.
const (
	opXdgToplevelEventConfigure wire.Opcode = 0
	opXdgToplevelEventClose     wire.Opcode = 1
)

// Toplevel state flags, from xdg_toplevel.state, as they appear in the
// configure event's states array (each a little-endian uint32).
const (
	XdgToplevelStateMaximized  uint32 = 1
	XdgToplevelStateFullscreen uint32 = 2
	XdgToplevelStateResizing   uint32 = 3
	XdgToplevelStateActivated  uint32 = 4
)

// XdgWmBase is the xdg_wm_base global: the entry point for desktop-style
// (toplevel/popup) shell surfaces.
type XdgWmBase struct {
	p *proxy.Proxy

	onPing func(serial uint32)
}

// BindXdgWmBase binds the xdg_wm_base global.
func BindXdgWmBase(registry *Registry, store *objectstore.Store, name, version uint32) (*XdgWmBase, error) {
	p, err := registry.Bind(name, InterfaceXdgWmBase, version)
	if err != nil {
		return nil, err
	}
	b := &XdgWmBase{p: p}
	store.Insert(p.ID, InterfaceXdgWmBase, p.Version, b)
	return b, nil
}

// ID returns xdg_wm_base's object id.
func (b *XdgWmBase) ID() wire.ObjectID { return b.p.ID }

// OnPing registers a callback invoked when the compositor pings the
// client; callers must reply with Pong(serial) promptly or be killed as
// unresponsive.
func (b *XdgWmBase) OnPing(f func(serial uint32)) { b.onPing = f }

// Pong replies to a ping with the same serial.
func (b *XdgWmBase) Pong(serial uint32) error {
	args := wire.NewEncoder(4)
	args.PutUint32(serial)
	return b.p.Send(proxy.Request{Opcode: opXdgWmBasePong, Args: args.Bytes()})
}

// GetXdgSurface wraps an existing wl_surface in an xdg_surface, the first
// step in turning a plain surface into a desktop window.
func (b *XdgWmBase) GetXdgSurface(surface *Surface) (*XdgSurface, error) {
	p, err := b.p.NewObject("xdg_surface", b.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(8)
	args.PutNewID(p.ID)
	args.PutObject(surface.ID())
	if err := b.p.Send(proxy.Request{Opcode: opXdgWmBaseGetXdgSurface, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &XdgSurface{p: p}, nil
}

// DispatchEvent decodes and routes one xdg_wm_base event.
func (b *XdgWmBase) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	if opcode != opXdgWmBaseEventPing {
		return nil
	}
	dec := wire.NewDecoder(body, fds)
	serial, err := dec.Uint32()
	if err != nil {
		return err
	}
	if b.onPing != nil {
		b.onPing(serial)
	}
	return nil
}

// XdgSurface is the xdg_surface interface: the role-agnostic half of a
// desktop window, before it is specialized into a toplevel or popup.
type XdgSurface struct {
	p *proxy.Proxy

	onConfigure func(serial uint32)
}

// ID returns the xdg_surface's object id.
func (s *XdgSurface) ID() wire.ObjectID { return s.p.ID }

// OnConfigure registers a callback invoked when the compositor proposes a
// new configuration; the client must AckConfigure in response.
func (s *XdgSurface) OnConfigure(f func(serial uint32)) { s.onConfigure = f }

// GetToplevel turns this xdg_surface into a toplevel desktop window.
func (s *XdgSurface) GetToplevel() (*XdgToplevel, error) {
	p, err := s.p.NewObject("xdg_toplevel", s.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := s.p.Send(proxy.Request{Opcode: opXdgSurfaceGetToplevel, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &XdgToplevel{p: p}, nil
}

// SetWindowGeometry sets the surface's geometry, excluding drop shadows and
// other decoration not considered part of the window for the purposes of
// stacking and placement.
func (s *XdgSurface) SetWindowGeometry(x, y, width, height int32) error {
	args := wire.NewEncoder(16)
	args.PutInt32(x)
	args.PutInt32(y)
	args.PutInt32(width)
	args.PutInt32(height)
	return s.p.Send(proxy.Request{Opcode: opXdgSurfaceSetWindowGeometry, Args: args.Bytes()})
}

// AckConfigure acknowledges a configure event by serial.
func (s *XdgSurface) AckConfigure(serial uint32) error {
	args := wire.NewEncoder(4)
	args.PutUint32(serial)
	return s.p.Send(proxy.Request{Opcode: opXdgSurfaceAckConfigure, Args: args.Bytes()})
}

// Destroy destroys the xdg_surface. The id is released when the server's
// delete_id event for it arrives, not here.
func (s *XdgSurface) Destroy() error {
	return s.p.Send(proxy.Request{Opcode: opXdgSurfaceDestroy})
}

// DispatchEvent decodes and routes one xdg_surface event.
func (s *XdgSurface) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	if opcode != opXdgSurfaceEventConfigure {
		return nil
	}
	dec := wire.NewDecoder(body, fds)
	serial, err := dec.Uint32()
	if err != nil {
		return err
	}
	if s.onConfigure != nil {
		s.onConfigure(serial)
	}
	return nil
}

// XdgToplevel is the xdg_toplevel interface: a desktop window with a
// title, app id, and window-manager-style states (maximized, fullscreen,
// ...).
type XdgToplevel struct {
	p *proxy.Proxy

	onConfigure func(width, height int32, states []uint32)
	onClose     func()
}

// ID returns the toplevel's object id.
func (t *XdgToplevel) ID() wire.ObjectID { return t.p.ID }

// OnConfigure registers a callback invoked when the compositor proposes a
// new size and/or state set.
func (t *XdgToplevel) OnConfigure(f func(width, height int32, states []uint32)) { t.onConfigure = f }

// OnClose registers a callback invoked when the compositor asks the client
// to close this window.
func (t *XdgToplevel) OnClose(f func()) { t.onClose = f }

// SetTitle sets the window's title.
func (t *XdgToplevel) SetTitle(title string) error {
	args := wire.NewEncoder(wire.SizeString(title))
	args.PutString(title)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetTitle, Args: args.Bytes()})
}

// SetAppID sets the window's application id, used by shells to group and
// identify windows from the same application.
func (t *XdgToplevel) SetAppID(appID string) error {
	args := wire.NewEncoder(wire.SizeString(appID))
	args.PutString(appID)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetAppID, Args: args.Bytes()})
}

// Move asks the compositor to start an interactive move, driven by the
// given seat and input serial.
func (t *XdgToplevel) Move(seat *Seat, serial uint32) error {
	args := wire.NewEncoder(8)
	args.PutObject(seat.ID())
	args.PutUint32(serial)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelMove, Args: args.Bytes()})
}

// Resize asks the compositor to start an interactive resize along the
// given edges, driven by the given seat and input serial.
func (t *XdgToplevel) Resize(seat *Seat, serial, edges uint32) error {
	args := wire.NewEncoder(12)
	args.PutObject(seat.ID())
	args.PutUint32(serial)
	args.PutUint32(edges)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelResize, Args: args.Bytes()})
}

// SetMaxSize sets the window's maximum size; 0 means unbounded.
func (t *XdgToplevel) SetMaxSize(width, height int32) error {
	args := wire.NewEncoder(8)
	args.PutInt32(width)
	args.PutInt32(height)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetMaxSize, Args: args.Bytes()})
}

// SetMinSize sets the window's minimum size.
func (t *XdgToplevel) SetMinSize(width, height int32) error {
	args := wire.NewEncoder(8)
	args.PutInt32(width)
	args.PutInt32(height)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetMinSize, Args: args.Bytes()})
}

// SetMaximized requests the window be maximized.
func (t *XdgToplevel) SetMaximized() error {
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetMaximized})
}

// UnsetMaximized requests the window leave the maximized state.
func (t *XdgToplevel) UnsetMaximized() error {
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelUnsetMaximized})
}

// SetFullscreen requests the window be made fullscreen, optionally on a
// specific output (nil for "let the compositor choose").
func (t *XdgToplevel) SetFullscreen(output *Output) error {
	var outputID wire.ObjectID
	if output != nil {
		outputID = output.ID()
	}
	args := wire.NewEncoder(4)
	args.PutObject(outputID)
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetFullscreen, Args: args.Bytes()})
}

// UnsetFullscreen requests the window leave the fullscreen state.
func (t *XdgToplevel) UnsetFullscreen() error {
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelUnsetFullscreen})
}

// SetMinimized requests the window be minimized, if the desktop shell
// supports the concept.
func (t *XdgToplevel) SetMinimized() error {
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelSetMinimized})
}

// Destroy destroys the toplevel. The id is released when the server's
// delete_id event for it arrives, not here.
func (t *XdgToplevel) Destroy() error {
	return t.p.Send(proxy.Request{Opcode: opXdgToplevelDestroy})
}

// DispatchEvent decodes and routes one xdg_toplevel event.
func (t *XdgToplevel) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opXdgToplevelEventConfigure:
		width, err := dec.Int32()
		if err != nil {
			return err
		}
		height, err := dec.Int32()
		if err != nil {
			return err
		}
		raw, err := dec.Array()
		if err != nil {
			return err
		}
		states := make([]uint32, len(raw)/4)
		for i := range states {
			states[i] = uint32(raw[i*4]) | uint32(raw[i*4+1])<<8 | uint32(raw[i*4+2])<<16 | uint32(raw[i*4+3])<<24
		}
		if t.onConfigure != nil {
			t.onConfigure(width, height, states)
		}
		return nil
	case opXdgToplevelEventClose:
		if t.onClose != nil {
			t.onClose()
		}
		return nil
	default:
		return nil
	}
}
