package wl

import (
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// wl_shm request opcodes.
const opShmCreatePool wire.Opcode = 0

// wl_shm event opcodes.
const opShmEventFormat wire.Opcode = 0

// wl_shm_pool request opcodes.
const (
	opShmPoolCreateBuffer wire.Opcode = 0
	opShmPoolDestroy      wire.Opcode = 1
	opShmPoolResize       wire.Opcode = 2
)

// wl_buffer request opcodes.
const opBufferDestroy wire.Opcode = 0

// wl_buffer event opcodes.
const opBufferEventRelease wire.Opcode = 0

// ShmFormat is a pixel format supported by wl_shm, matching wayland.xml's
// wl_shm.format enum.
type ShmFormat uint32

// Pixel formats every compositor is required to support.
const (
	ShmFormatARGB8888 ShmFormat = 0
	ShmFormatXRGB8888 ShmFormat = 1
)

// Shm is the wl_shm global: a factory for pools of shared memory the
// client can carve buffers out of.
type Shm struct {
	p *proxy.Proxy

	onFormat func(ShmFormat)
}

// BindShm binds the wl_shm global.
func BindShm(registry *Registry, store *objectstore.Store, name, version uint32) (*Shm, error) {
	p, err := registry.Bind(name, InterfaceShm, version)
	if err != nil {
		return nil, err
	}
	s := &Shm{p: p}
	store.Insert(p.ID, InterfaceShm, p.Version, s)
	return s, nil
}

// ID returns wl_shm's object id.
func (s *Shm) ID() wire.ObjectID { return s.p.ID }

// OnFormat registers a callback invoked once per pixel format the
// compositor supports.
func (s *Shm) OnFormat(f func(ShmFormat)) { s.onFormat = f }

// DispatchEvent decodes and routes one wl_shm event.
func (s *Shm) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	if opcode != opShmEventFormat {
		return nil
	}
	dec := wire.NewDecoder(body, fds)
	format, err := dec.Uint32()
	if err != nil {
		return err
	}
	if s.onFormat != nil {
		s.onFormat(ShmFormat(format))
	}
	return nil
}

// CreatePool creates a new shm pool backed by fd, size bytes long. fd must
// be a memfd or other file descriptor mappable with mmap(MAP_SHARED); it is
// passed out of band via SCM_RIGHTS.
func (s *Shm) CreatePool(fd int, size int32) (*ShmPool, error) {
	p, err := s.p.NewObject("wl_shm_pool", s.p.Version)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(8)
	args.PutNewID(p.ID)
	args.PutInt32(size)
	if err := s.p.Send(proxy.Request{Opcode: opShmCreatePool, Args: args.Bytes(), FDs: []int{fd}}); err != nil {
		return nil, err
	}
	return &ShmPool{p: p}, nil
}

// ShmPool is the wl_shm_pool interface: a region of shared memory buffers
// are created against.
type ShmPool struct {
	p *proxy.Proxy
}

// ID returns the pool's object id.
func (sp *ShmPool) ID() wire.ObjectID { return sp.p.ID }

// CreateBuffer carves a buffer out of the pool at the given offset and
// geometry.
func (sp *ShmPool) CreateBuffer(offset, width, height, stride int32, format ShmFormat) (*Buffer, error) {
	p, err := sp.p.NewObject("wl_buffer", 1)
	if err != nil {
		return nil, err
	}
	args := wire.NewEncoder(24)
	args.PutNewID(p.ID)
	args.PutInt32(offset)
	args.PutInt32(width)
	args.PutInt32(height)
	args.PutInt32(stride)
	args.PutUint32(uint32(format))
	if err := sp.p.Send(proxy.Request{Opcode: opShmPoolCreateBuffer, Args: args.Bytes()}); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

// Resize grows the pool's backing memory to size bytes. The caller must
// have already grown the underlying fd (e.g. with ftruncate) before
// calling this.
func (sp *ShmPool) Resize(size int32) error {
	args := wire.NewEncoder(4)
	args.PutInt32(size)
	return sp.p.Send(proxy.Request{Opcode: opShmPoolResize, Args: args.Bytes()})
}

// Destroy destroys the pool. Buffers already created from it remain valid.
// The id is released when the server's delete_id event for it arrives, not
// here.
func (sp *ShmPool) Destroy() error {
	return sp.p.Send(proxy.Request{Opcode: opShmPoolDestroy})
}

// Buffer is the wl_buffer interface: one region of a pool that can be
// attached to a surface.
type Buffer struct {
	p *proxy.Proxy

	onRelease func()
}

// ID returns the buffer's object id.
func (b *Buffer) ID() wire.ObjectID { return b.p.ID }

// OnRelease registers a callback invoked when the compositor is done
// reading this buffer and it is safe to reuse or destroy.
func (b *Buffer) OnRelease(f func()) { b.onRelease = f }

// DispatchEvent decodes and routes one wl_buffer event.
func (b *Buffer) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	if opcode != opBufferEventRelease {
		return nil
	}
	if b.onRelease != nil {
		b.onRelease()
	}
	return nil
}

// Destroy destroys the buffer. The id is released when the server's
// delete_id event for it arrives, not here.
func (b *Buffer) Destroy() error {
	return b.p.Send(proxy.Request{Opcode: opBufferDestroy})
}
