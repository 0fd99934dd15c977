package wl

import (
	"sync"

	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// wl_output event opcodes.
const (
	opOutputEventGeometry wire.Opcode = 0
	opOutputEventMode     wire.Opcode = 1
	opOutputEventDone     wire.Opcode = 2
	opOutputEventScale    wire.Opcode = 3
)

// wl_output request opcodes.
const opOutputRelease wire.Opcode = 1

// Output mode flags, from wl_output.mode.
const (
	OutputModeCurrent   uint32 = 1
	OutputModePreferred uint32 = 2
)

// OutputGeometry is the data delivered by wl_output's geometry event.
type OutputGeometry struct {
	X, Y              int32
	PhysicalWidth     int32
	PhysicalHeight    int32
	Subpixel          int32
	Make, Model       string
	Transform         int32
}

// OutputMode is one display mode delivered by wl_output's mode event.
type OutputMode struct {
	Flags            uint32
	Width, Height    int32
	Refresh          int32
}

// Output is the wl_output interface: one monitor or display.
type Output struct {
	p *proxy.Proxy

	mu       sync.Mutex
	geometry OutputGeometry
	modes    []OutputMode
	scale    int32

	onGeometry func(OutputGeometry)
	onMode     func(OutputMode)
	onDone     func()
	onScale    func(int32)
}

// BindOutput binds a wl_output global.
func BindOutput(registry *Registry, store *objectstore.Store, name, version uint32) (*Output, error) {
	p, err := registry.Bind(name, InterfaceOutput, version)
	if err != nil {
		return nil, err
	}
	o := &Output{p: p, scale: 1}
	store.Insert(p.ID, InterfaceOutput, p.Version, o)
	return o, nil
}

// ID returns the output's object id.
func (o *Output) ID() wire.ObjectID { return o.p.ID }

// Geometry returns the most recently received geometry.
func (o *Output) Geometry() OutputGeometry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.geometry
}

// Modes returns the display modes received so far.
func (o *Output) Modes() []OutputMode {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]OutputMode, len(o.modes))
	copy(out, o.modes)
	return out
}

// Scale returns the output's integer scale factor.
func (o *Output) Scale() int32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scale
}

// OnGeometry registers a callback for the geometry event.
func (o *Output) OnGeometry(f func(OutputGeometry)) { o.onGeometry = f }

// OnMode registers a callback for each mode event.
func (o *Output) OnMode(f func(OutputMode)) { o.onMode = f }

// OnDone registers a callback invoked once all pending geometry/mode/scale
// events from the current round have been delivered.
func (o *Output) OnDone(f func()) { o.onDone = f }

// OnScale registers a callback for the scale event.
func (o *Output) OnScale(f func(int32)) { o.onScale = f }

// Release releases this output object (version 3+).
func (o *Output) Release() error {
	return o.p.Send(proxy.Request{Opcode: opOutputRelease})
}

// DispatchEvent decodes and routes one wl_output event.
func (o *Output) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opOutputEventGeometry:
		var g OutputGeometry
		var err error
		if g.X, err = dec.Int32(); err != nil {
			return err
		}
		if g.Y, err = dec.Int32(); err != nil {
			return err
		}
		if g.PhysicalWidth, err = dec.Int32(); err != nil {
			return err
		}
		if g.PhysicalHeight, err = dec.Int32(); err != nil {
			return err
		}
		if g.Subpixel, err = dec.Int32(); err != nil {
			return err
		}
		if g.Make, err = dec.String(); err != nil {
			return err
		}
		if g.Model, err = dec.String(); err != nil {
			return err
		}
		if g.Transform, err = dec.Int32(); err != nil {
			return err
		}
		o.mu.Lock()
		o.geometry = g
		o.mu.Unlock()
		if o.onGeometry != nil {
			o.onGeometry(g)
		}
		return nil
	case opOutputEventMode:
		var m OutputMode
		var err error
		if m.Flags, err = dec.Uint32(); err != nil {
			return err
		}
		if m.Width, err = dec.Int32(); err != nil {
			return err
		}
		if m.Height, err = dec.Int32(); err != nil {
			return err
		}
		if m.Refresh, err = dec.Int32(); err != nil {
			return err
		}
		o.mu.Lock()
		o.modes = append(o.modes, m)
		o.mu.Unlock()
		if o.onMode != nil {
			o.onMode(m)
		}
		return nil
	case opOutputEventDone:
		if o.onDone != nil {
			o.onDone()
		}
		return nil
	case opOutputEventScale:
		scale, err := dec.Int32()
		if err != nil {
			return err
		}
		o.mu.Lock()
		o.scale = scale
		o.mu.Unlock()
		if o.onScale != nil {
			o.onScale(scale)
		}
		return nil
	default:
		return nil
	}
}
