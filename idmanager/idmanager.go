// Package idmanager allocates and recycles the client-owned object ids a
// Wayland connection hands out for every object it creates.
//
// Incorrect id management causes the compositor to terminate the connection,
// so IDManager keeps the allocation and recycling rules in one place rather
// than scattering them across callers.
package idmanager

import (
	"container/heap"
	"errors"
	"fmt"
	"sync"

	"github.com/Chugach-UI/denali/wire"
)

// ClientMinID is the first id a client may allocate, and the first id a
// fresh IDManager hands out. Id 0 is the null id; id 1 belongs to
// wl_display, and wl.Display allocates it before creating any other object.
const ClientMinID = 0x00000001

// ClientMaxID is the last id in the client-owned range. Ids above this
// belong to the server.
const ClientMaxID = 0xfeffffff

// ErrOutOfClientIDs is returned when every id in the client range is in use.
var ErrOutOfClientIDs = errors.New("idmanager: out of client ids")

// uint32Heap is a min-heap of recycled ids.
type uint32Heap []uint32

func (h uint32Heap) Len() int            { return len(h) }
func (h uint32Heap) Less(i, j int) bool  { return h[i] < h[j] }
func (h uint32Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *uint32Heap) Push(x interface{}) { *h = append(*h, x.(uint32)) }
func (h *uint32Heap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// IDManager allocates monotonically increasing client ids and recycles
// freed ones through a min-heap free list, so the lowest free id is always
// reused first. It is safe for concurrent use.
type IDManager struct {
	mu       sync.Mutex
	next     uint32
	freeList uint32Heap
}

// New creates an IDManager whose first allocated id is ClientMinID.
func New() *IDManager {
	return &IDManager{next: ClientMinID}
}

// Peek returns the id Alloc would hand out next, without allocating it.
func (m *IDManager) Peek() (wire.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peekLocked()
}

func (m *IDManager) peekLocked() (wire.ObjectID, error) {
	if m.next > ClientMaxID && len(m.freeList) == 0 {
		return 0, fmt.Errorf("%w: next=%d", ErrOutOfClientIDs, m.next)
	}
	if len(m.freeList) > 0 && m.freeList[0] < m.next {
		return wire.ObjectID(m.freeList[0]), nil
	}
	return wire.ObjectID(m.next), nil
}

// Alloc allocates and returns the next available id: the lowest recycled id
// below the high-water mark if one exists, otherwise the next unused id.
func (m *IDManager) Alloc() (wire.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.next > ClientMaxID && len(m.freeList) == 0 {
		return 0, fmt.Errorf("%w: next=%d", ErrOutOfClientIDs, m.next)
	}

	if len(m.freeList) > 0 && m.freeList[0] < m.next {
		id := heap.Pop(&m.freeList).(uint32)
		return wire.ObjectID(id), nil
	}

	id := m.next
	m.next++
	return wire.ObjectID(id), nil
}

// Recycle returns id to the pool of available ids. If id is the most
// recently allocated one, the high-water mark is rolled back, and it keeps
// rolling back while the lowest id in the free list sits directly below it,
// removing each such id from the free list. Only the lowest free id is
// compared: with free list {3, 4} and high-water mark 6, recycling 5 leaves
// 4 in the free list.
func (m *IDManager) Recycle(id wire.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := uint32(id)
	if raw == m.next-1 {
		m.next--
		for len(m.freeList) > 0 && m.freeList[0]+1 == m.next {
			heap.Pop(&m.freeList)
			m.next--
		}
		return
	}
	heap.Push(&m.freeList, raw)
}
