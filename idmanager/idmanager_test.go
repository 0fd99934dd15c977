package idmanager

import (
	"errors"
	"testing"

	"github.com/Chugach-UI/denali/wire"
)

func TestAllocMonotonic(t *testing.T) {
	m := New()
	first, err := m.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if first != ClientMinID {
		t.Errorf("first id = %d, want %d", first, ClientMinID)
	}
	second, err := m.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if second != first+1 {
		t.Errorf("second id = %d, want %d", second, first+1)
	}
}

func TestRecycleThenAllocReusesID(t *testing.T) {
	m := New()
	id1, _ := m.Alloc()
	_, _ = m.Alloc()
	m.Recycle(id1)
	id3, err := m.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if id3 != id1 {
		t.Errorf("id3 = %d, want reused id1 = %d", id3, id1)
	}
}

func TestRecycleNonTailGoesToFreeList(t *testing.T) {
	m := New()
	id1, _ := m.Alloc() // 1
	id2, _ := m.Alloc() // 2
	id3, _ := m.Alloc() // 3

	m.Recycle(id1) // non-tail: id1 goes to free list, next stays at 4

	peek, err := m.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if peek != id1 {
		t.Errorf("Peek() = %d, want lowest free id %d", peek, id1)
	}

	got, err := m.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if got != id1 {
		t.Errorf("Alloc() = %d, want recycled id1 = %d", got, id1)
	}

	next, err := m.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if next != id3+1 {
		t.Errorf("Alloc() after free list drained = %d, want %d", next, id3+1)
	}
	_ = id2
}

func TestRecycleSweepsContiguousRunFromTail(t *testing.T) {
	m := New()
	ids := make([]wire.ObjectID, 5)
	for i := range ids {
		id, err := m.Alloc()
		if err != nil {
			t.Fatalf("Alloc: %v", err)
		}
		ids[i] = id
	}

	// Free the top three out of order: ids[3] is not the tail and goes to the
	// free list; recycling the tail ids[4] then rolls the high-water mark
	// back past ids[3], sweeping it out of the free list.
	m.Recycle(ids[3])
	m.Recycle(ids[4])
	m.Recycle(ids[2])
	if len(m.freeList) != 0 {
		t.Errorf("free list after sweep = %v, want empty", m.freeList)
	}

	peek, err := m.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if peek != ids[2] {
		t.Errorf("Peek() after sweep = %d, want %d", peek, ids[2])
	}

	for i := 2; i < 5; i++ {
		got, err := m.Alloc()
		if err != nil {
			t.Fatalf("Alloc: %v", err)
		}
		if got != ids[i] {
			t.Errorf("Alloc() = %d, want %d", got, ids[i])
		}
	}
}

func TestAllocExhausted(t *testing.T) {
	m := &IDManager{next: ClientMaxID + 1}
	if _, err := m.Alloc(); !errors.Is(err, ErrOutOfClientIDs) {
		t.Errorf("expected ErrOutOfClientIDs, got %v", err)
	}
	if _, err := m.Peek(); !errors.Is(err, ErrOutOfClientIDs) {
		t.Errorf("expected ErrOutOfClientIDs from Peek, got %v", err)
	}
}

func TestAllocExhaustedButFreeListNonEmpty(t *testing.T) {
	m := &IDManager{next: ClientMaxID + 1, freeList: uint32Heap{5}}
	id, err := m.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if id != 5 {
		t.Errorf("Alloc() = %d, want 5 from free list", id)
	}
}
