package wl

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Chugach-UI/denali/handler"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// wl_registry request opcodes.
const opRegistryBind wire.Opcode = 0

// wl_registry event opcodes.
const (
	opRegistryEventGlobal       wire.Opcode = 0
	opRegistryEventGlobalRemove wire.Opcode = 1
)

// Well-known core interface names, for use with Registry.Bind.
const (
	InterfaceCompositor    = "wl_compositor"
	InterfaceShm           = "wl_shm"
	InterfaceSeat          = "wl_seat"
	InterfaceOutput        = "wl_output"
	InterfaceSubcompositor = "wl_subcompositor"
	InterfaceXdgWmBase     = "xdg_wm_base"
)

// ErrGlobalNotFound is returned by Bind when no global with the given name
// has been advertised.
var ErrGlobalNotFound = errors.New("wl: global not found")

// ErrInterfaceMismatch is returned by Bind when the requested interface
// does not match the advertised global's interface.
var ErrInterfaceMismatch = errors.New("wl: interface mismatch")

// Global is one entry the compositor has advertised through wl_registry's
// global event.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Registry tracks the compositor's advertised globals and lets a client
// bind to them.
type Registry struct {
	p *proxy.Proxy

	mu      sync.RWMutex
	globals map[uint32]Global

	onGlobal       func(Global)
	onGlobalRemove func(name uint32)
}

func newRegistry(p *proxy.Proxy) *Registry {
	return &Registry{p: p, globals: make(map[uint32]Global)}
}

func (r *Registry) proxy() *proxy.Proxy { return r.p }

// ID returns the registry's object id.
func (r *Registry) ID() wire.ObjectID { return r.p.ID }

// OnGlobal registers a callback invoked whenever a new global is
// advertised. Replaying globals already known at registration time is the
// caller's responsibility via ListGlobals.
func (r *Registry) OnGlobal(f func(Global)) { r.onGlobal = f }

// OnGlobalRemove registers a callback invoked when a global is withdrawn.
func (r *Registry) OnGlobalRemove(f func(name uint32)) { r.onGlobalRemove = f }

// ListGlobals returns every currently advertised global, ordered by name.
func (r *Registry) ListGlobals() []Global {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Global, 0, len(r.globals))
	for _, g := range r.globals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Find returns the first advertised global implementing iface, if any.
func (r *Registry) Find(iface string) (Global, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.globals {
		if g.Interface == iface {
			return g, true
		}
	}
	return Global{}, false
}

// Bind requests the compositor create a new object bound to the global
// named name, checking that iface matches what was advertised and that
// version does not exceed it. The allocated proxy is returned for the
// caller (typically a generated wrapper constructor) to adopt.
func (r *Registry) Bind(name uint32, iface string, version uint32) (*proxy.Proxy, error) {
	r.mu.RLock()
	g, ok := r.globals[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: name=%d", ErrGlobalNotFound, name)
	}
	if g.Interface != iface {
		return nil, fmt.Errorf("%w: global %d is %s, not %s", ErrInterfaceMismatch, name, g.Interface, iface)
	}
	if version > g.Version {
		version = g.Version
	}

	p, err := r.p.NewObject(iface, version)
	if err != nil {
		return nil, err
	}

	args := wire.NewEncoder(SizeBindArgs(iface))
	args.PutUint32(name)
	args.PutNewIDDynamic(iface, version, p.ID)
	if err := r.p.Send(proxy.Request{Opcode: opRegistryBind, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return p, nil
}

// SizeBindArgs returns the byte size of a bind request's arguments for the
// given interface name, used to size the encoder up front.
func SizeBindArgs(iface string) int {
	return 4 + wire.SizeGenericNewID(iface)
}

// TryDecode implements handler.Message, letting *Registry participate in a
// composed handler set (see handler.Union). It refuses bytes not addressed
// to wl_registry rather than guessing.
func (r *Registry) TryDecode(iface string, opcode uint16, body []byte, fds []int) error {
	if iface != "wl_registry" {
		return handler.ErrUnknownInterface
	}
	switch wire.Opcode(opcode) {
	case opRegistryEventGlobal, opRegistryEventGlobalRemove:
		return r.dispatch(body, fds, wire.Opcode(opcode))
	default:
		return handler.ErrUnknownOpcode
	}
}

func (r *Registry) dispatch(body []byte, fds []int, opcode wire.Opcode) error {
	dec := wire.NewDecoder(body, fds)
	switch opcode {
	case opRegistryEventGlobal:
		name, err := dec.Uint32()
		if err != nil {
			return err
		}
		iface, err := dec.String()
		if err != nil {
			return err
		}
		version, err := dec.Uint32()
		if err != nil {
			return err
		}
		g := Global{Name: name, Interface: iface, Version: version}
		r.mu.Lock()
		r.globals[name] = g
		r.mu.Unlock()
		if r.onGlobal != nil {
			r.onGlobal(g)
		}
		return nil
	case opRegistryEventGlobalRemove:
		name, err := dec.Uint32()
		if err != nil {
			return err
		}
		r.mu.Lock()
		delete(r.globals, name)
		r.mu.Unlock()
		if r.onGlobalRemove != nil {
			r.onGlobalRemove(name)
		}
		return nil
	default:
		return nil
	}
}
