// Package objectstore tracks every live object a connection knows about:
// which interface it implements, its negotiated version, and (once bound)
// the generated proxy value itself.
package objectstore

import (
	"sort"
	"sync"

	"github.com/Chugach-UI/denali/wire"
)

// entry is the bookkeeping kept for one object id.
type entry struct {
	Interface string
	Version   uint32
	Proxy     any
}

// Store is an id-ordered table of live objects, safe for concurrent use.
// Entries are inserted twice in the common path: once with InsertInterface
// (before the creating request is sent, so events racing the round trip can
// still be decoded) and once with Insert (once the typed proxy value
// exists).
type Store struct {
	mu      sync.Mutex
	objects map[wire.ObjectID]*entry
}

// New creates an empty Store.
func New() *Store {
	return &Store{objects: make(map[wire.ObjectID]*entry)}
}

// InsertInterface records that id implements iface at the given version,
// without attaching a proxy value yet.
func (s *Store) InsertInterface(id wire.ObjectID, iface string, version uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.objects[id]
	if !ok {
		e = &entry{}
		s.objects[id] = e
	}
	e.Interface = iface
	e.Version = version
}

// Insert attaches the proxy value for an id already registered via
// InsertInterface (or registers it fresh if not).
func (s *Store) Insert(id wire.ObjectID, iface string, version uint32, p any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[id] = &entry{Interface: iface, Version: version, Proxy: p}
}

// Interface returns the interface name registered for id, if any.
func (s *Store) Interface(id wire.ObjectID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.objects[id]
	if !ok {
		return "", false
	}
	return e.Interface, true
}

// Remove deletes id from the store. It is a no-op if id is not present.
func (s *Store) Remove(id wire.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, id)
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Take removes id's proxy from the store and returns it as type T. The
// second return is false if id is absent or its proxy is not a T.
func Take[T any](s *Store, id wire.ObjectID) (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.objects[id]
	if !ok {
		return zero, false
	}
	typed, ok := e.Proxy.(T)
	if !ok {
		return zero, false
	}
	delete(s.objects, id)
	return typed, true
}

// Get returns id's proxy as type T without removing it.
func Get[T any](s *Store, id wire.ObjectID) (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.objects[id]
	if !ok {
		return zero, false
	}
	typed, ok := e.Proxy.(T)
	return typed, ok
}

// GetAll returns every live proxy of type T, ordered by ascending object id.
func GetAll[T any](s *Store) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]wire.ObjectID, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []T
	for _, id := range ids {
		if typed, ok := s.objects[id].Proxy.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}
