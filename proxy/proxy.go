// Package proxy defines the handle every generated interface binding holds
// to talk to its object on the compositor side: an id, the advertised
// version, and a way to send requests without knowing anything about
// transport or dispatch.
package proxy

import (
	"github.com/Chugach-UI/denali/idmanager"
	"github.com/Chugach-UI/denali/wire"
)

// Request is an outbound message body plus any file descriptors it carries
// out of band.
type Request struct {
	Opcode wire.Opcode
	Args   []byte
	FDs    []int
}

// Sender submits an outbound request for an object id. Generated bindings
// never touch a socket or channel directly; they call Sender.Send.
type Sender interface {
	Send(id wire.ObjectID, req Request) error
}

// InterfaceRegistrar records which interface (and version) an id belongs to
// before the request that creates it is sent, so an event arriving for that
// id before the round trip completes can still be decoded (spec.md §4.4
// "insert into the interface map before sending").
type InterfaceRegistrar interface {
	InsertInterface(id wire.ObjectID, iface string, version uint32)
}

// Proxy is the shared handle embedded in every generated object binding.
type Proxy struct {
	ID        wire.ObjectID
	Version   uint32
	Interface string

	ids       *idmanager.IDManager
	sender    Sender
	registrar InterfaceRegistrar
}

// New creates a Proxy for an object the caller already knows the id of
// (e.g. wl_display, which is always id 1).
func New(id wire.ObjectID, iface string, version uint32, ids *idmanager.IDManager, sender Sender, registrar InterfaceRegistrar) *Proxy {
	return &Proxy{ID: id, Version: version, Interface: iface, ids: ids, sender: sender, registrar: registrar}
}

// NewObject allocates a fresh id for a new_id argument, registers its
// interface before any request referencing it is sent, and returns a Proxy
// for it. Generated request methods that return a new object call this.
func (p *Proxy) NewObject(iface string, version uint32) (*Proxy, error) {
	id, err := p.ids.Alloc()
	if err != nil {
		return nil, err
	}
	p.registrar.InsertInterface(id, iface, version)
	return New(id, iface, version, p.ids, p.sender, p.registrar), nil
}

// Send submits req addressed to this proxy's object id.
func (p *Proxy) Send(req Request) error {
	return p.sender.Send(p.ID, req)
}

// Destroy releases this object's id back to the id manager straight away;
// callers must not use the proxy again. The destructor request methods in
// this module (those for `type="destructor"` requests) do not call it: they
// only send the request, and the id is recycled when wl_display.delete_id
// arrives for it.
func (p *Proxy) Destroy() {
	p.ids.Recycle(p.ID)
}
