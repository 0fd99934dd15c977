package wl

import (
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// wl_compositor request opcodes.
const (
	opCompositorCreateSurface wire.Opcode = 0
	opCompositorCreateRegion  wire.Opcode = 1
)

// wl_surface request opcodes.
const (
	opSurfaceDestroy            wire.Opcode = 0
	opSurfaceAttach             wire.Opcode = 1
	opSurfaceDamage             wire.Opcode = 2
	opSurfaceFrame              wire.Opcode = 3
	opSurfaceSetOpaqueRegion    wire.Opcode = 4
	opSurfaceSetInputRegion     wire.Opcode = 5
	opSurfaceCommit             wire.Opcode = 6
	opSurfaceSetBufferTransform wire.Opcode = 7
	opSurfaceSetBufferScale     wire.Opcode = 8
	opSurfaceDamageBuffer       wire.Opcode = 9
)

// wl_surface event opcodes.
const (
	opSurfaceEventEnter wire.Opcode = 0
	opSurfaceEventLeave wire.Opcode = 1
)

// wl_region request opcodes.
const (
	opRegionDestroy   wire.Opcode = 0
	opRegionAdd       wire.Opcode = 1
	opRegionSubtract  wire.Opcode = 2
)

// Compositor is the wl_compositor global: the factory for surfaces and
// regions.
type Compositor struct {
	p *proxy.Proxy
}

// BindCompositor binds the wl_compositor global advertised by registry,
// registering the resulting proxy in store so it can later be found with
// objectstore.Get[*Compositor].
func BindCompositor(registry *Registry, store *objectstore.Store, name uint32, version uint32) (*Compositor, error) {
	p, err := registry.Bind(name, InterfaceCompositor, version)
	if err != nil {
		return nil, err
	}
	c := &Compositor{p: p}
	store.Insert(p.ID, InterfaceCompositor, p.Version, c)
	return c, nil
}

// ID returns the compositor's object id.
func (c *Compositor) ID() wire.ObjectID { return c.p.ID }

// CreateSurface creates a new, empty surface.
func (c *Compositor) CreateSurface() (*Surface, error) {
	p, err := c.p.NewObject("wl_surface", c.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := c.p.Send(proxy.Request{Opcode: opCompositorCreateSurface, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &Surface{p: p}, nil
}

// CreateRegion creates a new, empty region.
func (c *Compositor) CreateRegion() (*Region, error) {
	p, err := c.p.NewObject("wl_region", c.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := c.p.Send(proxy.Request{Opcode: opCompositorCreateRegion, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &Region{p: p}, nil
}

// Surface is the wl_surface interface: a rectangular area of content,
// attached to a buffer and composited by the server.
type Surface struct {
	p *proxy.Proxy

	onEnter func(output wire.ObjectID)
	onLeave func(output wire.ObjectID)
}

// ID returns the surface's object id.
func (s *Surface) ID() wire.ObjectID { return s.p.ID }

// OnEnter registers a callback invoked when the surface enters an output.
func (s *Surface) OnEnter(f func(output wire.ObjectID)) { s.onEnter = f }

// OnLeave registers a callback invoked when the surface leaves an output.
func (s *Surface) OnLeave(f func(output wire.ObjectID)) { s.onLeave = f }

// Attach sets the buffer that will be displayed at the next Commit.
func (s *Surface) Attach(buffer wire.ObjectID, x, y int32) error {
	args := wire.NewEncoder(12)
	args.PutObject(buffer)
	args.PutInt32(x)
	args.PutInt32(y)
	return s.p.Send(proxy.Request{Opcode: opSurfaceAttach, Args: args.Bytes()})
}

// Damage marks a rectangle of the surface's logical coordinates as needing
// a redraw.
func (s *Surface) Damage(x, y, width, height int32) error {
	args := wire.NewEncoder(16)
	args.PutInt32(x)
	args.PutInt32(y)
	args.PutInt32(width)
	args.PutInt32(height)
	return s.p.Send(proxy.Request{Opcode: opSurfaceDamage, Args: args.Bytes()})
}

// DamageBuffer is like Damage but in buffer-local coordinates (version 4+).
func (s *Surface) DamageBuffer(x, y, width, height int32) error {
	args := wire.NewEncoder(16)
	args.PutInt32(x)
	args.PutInt32(y)
	args.PutInt32(width)
	args.PutInt32(height)
	return s.p.Send(proxy.Request{Opcode: opSurfaceDamageBuffer, Args: args.Bytes()})
}

// Frame requests a one-shot callback fired the next time it would be a
// good time to start drawing a new frame.
func (s *Surface) Frame() (wire.ObjectID, error) {
	p, err := s.p.NewObject("wl_callback", 1)
	if err != nil {
		return 0, err
	}
	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := s.p.Send(proxy.Request{Opcode: opSurfaceFrame, Args: args.Bytes()}); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// SetOpaqueRegion tells the compositor which part of the surface is known
// to be fully opaque, as an optimization hint.
func (s *Surface) SetOpaqueRegion(region wire.ObjectID) error {
	args := wire.NewEncoder(4)
	args.PutObject(region)
	return s.p.Send(proxy.Request{Opcode: opSurfaceSetOpaqueRegion, Args: args.Bytes()})
}

// SetInputRegion restricts the surface's input-accepting area.
func (s *Surface) SetInputRegion(region wire.ObjectID) error {
	args := wire.NewEncoder(4)
	args.PutObject(region)
	return s.p.Send(proxy.Request{Opcode: opSurfaceSetInputRegion, Args: args.Bytes()})
}

// SetBufferScale sets the scale factor applied to this surface's buffer
// (version 3+).
func (s *Surface) SetBufferScale(scale int32) error {
	args := wire.NewEncoder(4)
	args.PutInt32(scale)
	return s.p.Send(proxy.Request{Opcode: opSurfaceSetBufferScale, Args: args.Bytes()})
}

// Commit atomically applies all pending state changes made since the last
// Commit.
func (s *Surface) Commit() error {
	return s.p.Send(proxy.Request{Opcode: opSurfaceCommit})
}

// Destroy destroys the surface. The id is released when the server's
// delete_id event for it arrives, not here.
func (s *Surface) Destroy() error {
	return s.p.Send(proxy.Request{Opcode: opSurfaceDestroy})
}

// DispatchEvent decodes and routes one wl_surface event.
func (s *Surface) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opSurfaceEventEnter:
		output, err := dec.Object()
		if err != nil {
			return err
		}
		if s.onEnter != nil {
			s.onEnter(output)
		}
		return nil
	case opSurfaceEventLeave:
		output, err := dec.Object()
		if err != nil {
			return err
		}
		if s.onLeave != nil {
			s.onLeave(output)
		}
		return nil
	default:
		return nil
	}
}

// Region is the wl_region interface: an accumulated set of rectangles used
// for opaque and input regions.
type Region struct {
	p *proxy.Proxy
}

// ID returns the region's object id.
func (r *Region) ID() wire.ObjectID { return r.p.ID }

// Add unions a rectangle into the region.
func (r *Region) Add(x, y, width, height int32) error {
	args := wire.NewEncoder(16)
	args.PutInt32(x)
	args.PutInt32(y)
	args.PutInt32(width)
	args.PutInt32(height)
	return r.p.Send(proxy.Request{Opcode: opRegionAdd, Args: args.Bytes()})
}

// Subtract removes a rectangle from the region.
func (r *Region) Subtract(x, y, width, height int32) error {
	args := wire.NewEncoder(16)
	args.PutInt32(x)
	args.PutInt32(y)
	args.PutInt32(width)
	args.PutInt32(height)
	return r.p.Send(proxy.Request{Opcode: opRegionSubtract, Args: args.Bytes()})
}

// Destroy destroys the region. The id is released when the server's
// delete_id event for it arrives, not here.
func (r *Region) Destroy() error {
	return r.p.Send(proxy.Request{Opcode: opRegionDestroy})
}
