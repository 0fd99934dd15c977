package virtualpointer

import (
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/wl"
)

// InterfaceManager is the well-known global name advertised by compositors
// that support wlr-virtual-pointer-unstable-v1.
const InterfaceManager = "zwlr_virtual_pointer_manager_v1"

// BindManager binds the zwlr_virtual_pointer_manager_v1 global advertised
// by registry, registering the resulting proxy in store so it can later be
// found with objectstore.Get[*ZwlrVirtualPointerManagerV1].
func BindManager(registry *wl.Registry, store *objectstore.Store, name uint32, version uint32) (*ZwlrVirtualPointerManagerV1, error) {
	p, err := registry.Bind(name, InterfaceManager, version)
	if err != nil {
		return nil, err
	}
	m := NewZwlrVirtualPointerManagerV1(p)
	store.Insert(p.ID, InterfaceManager, p.Version, m)
	return m, nil
}
