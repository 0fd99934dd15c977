// Package wl holds hand-written client bindings for core wayland.xml and
// xdg-shell.xml interfaces, in the proxy-backed shape `codegen` emits (a
// struct around a *proxy.Proxy, request methods, On<Event> callbacks and
// DispatchEvent). wl_display and wl_registry, in this file and the next,
// also carry the one-time bootstrap logic (socket connect, id 1
// reservation) that every other interface takes for granted.
package wl

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Chugach-UI/denali/connection"
	"github.com/Chugach-UI/denali/handler"
	"github.com/Chugach-UI/denali/idmanager"
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/transport"
	"github.com/Chugach-UI/denali/wire"
)

// wl_display request opcodes.
const (
	opDisplaySync        wire.Opcode = 0
	opDisplayGetRegistry wire.Opcode = 1
)

// wl_display event opcodes.
const (
	opDisplayEventError    wire.Opcode = 0
	opDisplayEventDeleteID wire.Opcode = 1
)

// Display error codes, from wayland.xml's wl_display.error enum.
const (
	DisplayErrorInvalidObject  uint32 = 0
	DisplayErrorInvalidMethod  uint32 = 1
	DisplayErrorNoMemory       uint32 = 2
	DisplayErrorImplementation uint32 = 3
)

// displayID is the object id reserved for wl_display on every connection.
const displayID = wire.ObjectID(1)

// Display is the root object of a Wayland connection, always bound to
// object id 1. It owns the id manager, the object store, and the
// connection's writer/reader loops; every other proxy in this package and
// its siblings is reached through it.
type Display struct {
	proxy *proxy.Proxy
	conn  *connection.Connection
	ids   *idmanager.IDManager
	store *objectstore.Store
	log   zerolog.Logger

	callbacks map[wire.ObjectID]chan uint32

	protocolErr error
}

// Connect resolves the compositor socket from the environment and connects
// to it.
func Connect(log zerolog.Logger) (*Display, error) {
	sock, err := transport.Connect()
	if err != nil {
		return nil, err
	}
	return newDisplay(sock, log), nil
}

// ConnectTo connects to the compositor socket at an explicit path, bypassing
// environment resolution.
func ConnectTo(path string, log zerolog.Logger) (*Display, error) {
	sock, err := transport.ConnectTo(path)
	if err != nil {
		return nil, err
	}
	return newDisplay(sock, log), nil
}

func newDisplay(sock *transport.Socket, log zerolog.Logger) *Display {
	ids := idmanager.New()
	// A fresh IDManager hands out id 1 first; take it for wl_display so the
	// first object created through the display (the registry) gets id 2.
	_, _ = ids.Alloc()
	store := objectstore.New()
	conn := connection.New(sock, log)

	d := &Display{
		ids:       ids,
		store:     store,
		conn:      conn,
		log:       log,
		callbacks: make(map[wire.ObjectID]chan uint32),
	}
	store.Insert(displayID, "wl_display", 1, d)
	d.proxy = proxy.New(displayID, "wl_display", 1, ids, conn, connection.Registrar{Store: store})
	return d
}

// ID returns the display's object id, always 1.
func (d *Display) ID() wire.ObjectID { return displayID }

// Store returns the connection's object store, for generated bindings that
// need to register or look up proxies by id.
func (d *Display) Store() *objectstore.Store { return d.store }

// IDs returns the connection's id manager.
func (d *Display) IDs() *idmanager.IDManager { return d.ids }

// Proxy returns the proxy handle for wl_display itself, for generated code
// in this package.
func (d *Display) Proxy() *proxy.Proxy { return d.proxy }

// Sync sends a wl_display.sync request and returns a channel receiving the
// callback's done event data. This is the core of Roundtrip.
func (d *Display) Sync() (<-chan uint32, error) {
	cb, err := d.proxy.NewObject("wl_callback", 1)
	if err != nil {
		return nil, err
	}

	ch := make(chan uint32, 1)
	d.callbacks[cb.ID] = ch

	args := wire.NewEncoder(4)
	args.PutNewID(cb.ID)
	if err := d.proxy.Send(proxy.Request{Opcode: opDisplaySync, Args: args.Bytes()}); err != nil {
		delete(d.callbacks, cb.ID)
		close(ch)
		return nil, err
	}
	return ch, nil
}

// Roundtrip sends a sync request and blocks until the compositor has
// processed every request sent before it, dispatching events as they
// arrive in the meantime.
func (d *Display) Roundtrip(ctx context.Context) error {
	ch, err := d.Sync()
	if err != nil {
		return err
	}
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return fmt.Errorf("wl: connection closed during roundtrip")
			}
			return nil
		default:
		}

		ev, outcome, err := d.conn.NextEvent(ctx)
		switch outcome {
		case connection.OutcomeCancelled:
			return err
		case connection.OutcomeWriterStopped:
			return err
		}
		if err != nil {
			return err
		}
		if err := d.dispatch(ev); err != nil {
			return err
		}
	}
}

// Dispatch reads and handles exactly one event from the compositor,
// blocking until one arrives or ctx is cancelled.
func (d *Display) Dispatch(ctx context.Context) error {
	ev, outcome, err := d.conn.NextEvent(ctx)
	if outcome != connection.OutcomeEvent {
		return err
	}
	if err != nil {
		return err
	}
	return d.dispatch(ev)
}

// GetRegistry requests the global registry. Calling it twice returns the
// same Registry.
func (d *Display) GetRegistry() (*Registry, error) {
	if r, ok := objectstore.Get[*Registry](d.store, registryIDCacheKey); ok {
		return r, nil
	}

	p, err := d.proxy.NewObject("wl_registry", 1)
	if err != nil {
		return nil, err
	}

	args := wire.NewEncoder(4)
	args.PutNewID(p.ID)
	if err := d.proxy.Send(proxy.Request{Opcode: opDisplayGetRegistry, Args: args.Bytes()}); err != nil {
		return nil, err
	}

	r := newRegistry(p)
	d.store.Insert(p.ID, "wl_registry", 1, r)
	d.store.Insert(registryIDCacheKey, "wl_registry", 1, r)
	return r, nil
}

// registryIDCacheKey is a sentinel id (never a valid client object id,
// since id 0 is reserved for the null object) used to cache the single
// Registry a Display ever creates.
const registryIDCacheKey = wire.ObjectID(0)

// ProtocolError returns the fatal protocol error reported by the
// compositor, if any. Once set, the connection should be torn down.
func (d *Display) ProtocolError() error { return d.protocolErr }

// dispatch routes one decoded event. wl_display and wl_registry are the two
// interfaces this object always statically knows about, so they are
// composed into a handler.Union and addressed by interface name rather than
// by a chain of id comparisons; everything else falls through the union's
// ErrUnknownInterface to a dynamic, id-keyed lookup instead: sync callbacks
// first, then any object whose typed value is in the store and has a
// DispatchEvent method. Events for other objects (such as those registered
// by interface name only) are logged and dropped.
func (d *Display) dispatch(ev connection.Event) error {
	iface := "wl_display"
	if ev.Header.ObjectID != displayID {
		name, ok := d.store.Interface(ev.Header.ObjectID)
		if !ok {
			d.log.Debug().Uint32("object_id", uint32(ev.Header.ObjectID)).Uint16("opcode", uint16(ev.Header.Opcode)).Msg("wl: event for unknown object, dropped")
			return nil
		}
		iface = name
	}

	registry, _ := objectstore.Get[*Registry](d.store, registryIDCacheKey)
	set := handler.Union[*Display, *Registry]{A: d, B: registry}
	err := set.TryDecode(iface, uint16(ev.Header.Opcode), ev.Body, ev.FDs)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, handler.ErrUnknownOpcode):
		d.log.Warn().Str("interface", iface).Uint16("opcode", uint16(ev.Header.Opcode)).Msg("wl: unknown event opcode")
		return nil
	case errors.Is(err, handler.ErrUnknownInterface):
		if ch, ok := d.callbacks[ev.Header.ObjectID]; ok && ev.Header.Opcode == opCallbackEventDone {
			dec := wire.NewDecoder(ev.Body, ev.FDs)
			data, err := dec.Uint32()
			if err != nil {
				return err
			}
			delete(d.callbacks, ev.Header.ObjectID)
			ch <- data
			close(ch)
			return nil
		}
		type eventDispatcher interface {
			DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error
		}
		if obj, ok := objectstore.Get[eventDispatcher](d.store, ev.Header.ObjectID); ok {
			return obj.DispatchEvent(ev.Header.Opcode, ev.Body, ev.FDs)
		}
		// Unknown target object: the event arrived for something this
		// client removed or never bound. Not fatal, matching spec.md §7.
		d.log.Debug().Uint32("object_id", uint32(ev.Header.ObjectID)).Uint16("opcode", uint16(ev.Header.Opcode)).Msg("wl: event for unknown object, dropped")
		return nil
	default:
		return err
	}
}

// TryDecode implements handler.Message, letting *Display participate in a
// composed handler set (see handler.Union). It refuses bytes not addressed
// to wl_display rather than guessing.
func (d *Display) TryDecode(iface string, opcode uint16, body []byte, fds []int) error {
	if iface != "wl_display" {
		return handler.ErrUnknownInterface
	}
	op := wire.Opcode(opcode)
	switch op {
	case opDisplayEventError, opDisplayEventDeleteID:
		return d.dispatchDisplayEvent(connection.Event{Header: wire.Header{ObjectID: displayID, Opcode: op}, Body: body, FDs: fds})
	default:
		return handler.ErrUnknownOpcode
	}
}

func (d *Display) dispatchDisplayEvent(ev connection.Event) error {
	dec := wire.NewDecoder(ev.Body, ev.FDs)
	switch ev.Header.Opcode {
	case opDisplayEventError:
		objID, err := dec.Object()
		if err != nil {
			return err
		}
		code, err := dec.Uint32()
		if err != nil {
			return err
		}
		message, err := dec.String()
		if err != nil {
			return err
		}
		d.protocolErr = fmt.Errorf("wl: protocol error on object %d (code %d): %s", objID, code, message)
		return d.protocolErr
	case opDisplayEventDeleteID:
		id, err := dec.Uint32()
		if err != nil {
			return err
		}
		d.ids.Recycle(wire.ObjectID(id))
		d.store.Remove(wire.ObjectID(id))
		return nil
	default:
		d.log.Warn().Uint16("opcode", uint16(ev.Header.Opcode)).Msg("wl: unknown wl_display event opcode")
		return nil
	}
}

// Close tears down the underlying connection.
func (d *Display) Close() error {
	return d.conn.Close()
}
