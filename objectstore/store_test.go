package objectstore

import (
	"testing"

	"github.com/Chugach-UI/denali/wire"
)

type fakeSurface struct{ id wire.ObjectID }
type fakeSeat struct{ id wire.ObjectID }

func TestInsertInterfaceThenInsert(t *testing.T) {
	s := New()
	s.InsertInterface(5, "wl_surface", 1)

	iface, ok := s.Interface(5)
	if !ok || iface != "wl_surface" {
		t.Fatalf("Interface(5) = (%q, %v), want (wl_surface, true)", iface, ok)
	}

	if _, ok := Get[*fakeSurface](s, 5); ok {
		t.Fatalf("Get before Insert should not find a typed proxy yet")
	}

	s.Insert(5, "wl_surface", 1, &fakeSurface{id: 5})

	got, ok := Get[*fakeSurface](s, 5)
	if !ok || got.id != 5 {
		t.Fatalf("Get(5) = (%+v, %v), want (&{5}, true)", got, ok)
	}
}

func TestTakeRemoves(t *testing.T) {
	s := New()
	s.Insert(1, "wl_surface", 1, &fakeSurface{id: 1})

	got, ok := Take[*fakeSurface](s, 1)
	if !ok || got.id != 1 {
		t.Fatalf("Take(1) = (%+v, %v)", got, ok)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after Take = %d, want 0", s.Len())
	}
	if _, ok := Get[*fakeSurface](s, 1); ok {
		t.Errorf("Get(1) after Take should fail")
	}
}

func TestGetWrongTypeFails(t *testing.T) {
	s := New()
	s.Insert(1, "wl_surface", 1, &fakeSurface{id: 1})
	if _, ok := Get[*fakeSeat](s, 1); ok {
		t.Errorf("Get with wrong type parameter should fail")
	}
}

func TestGetAllOrderedByID(t *testing.T) {
	s := New()
	s.Insert(3, "wl_surface", 1, &fakeSurface{id: 3})
	s.Insert(1, "wl_surface", 1, &fakeSurface{id: 1})
	s.Insert(2, "wl_surface", 1, &fakeSurface{id: 2})
	s.Insert(9, "wl_seat", 1, &fakeSeat{id: 9})

	all := GetAll[*fakeSurface](s)
	if len(all) != 3 {
		t.Fatalf("GetAll len = %d, want 3", len(all))
	}
	for i, want := range []wire.ObjectID{1, 2, 3} {
		if all[i].id != want {
			t.Errorf("GetAll()[%d].id = %d, want %d", i, all[i].id, want)
		}
	}
}

func TestRemove(t *testing.T) {
	s := New()
	s.InsertInterface(1, "wl_surface", 1)
	s.Remove(1)
	if _, ok := s.Interface(1); ok {
		t.Errorf("Interface(1) after Remove should fail")
	}
}
