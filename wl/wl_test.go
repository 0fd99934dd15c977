package wl

import (
	"testing"

	"github.com/Chugach-UI/denali/idmanager"
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

// fakeSender records every request sent to it, keyed by object id.
type fakeSender struct {
	sent []sentRequest
}

type sentRequest struct {
	id  wire.ObjectID
	req proxy.Request
}

func (f *fakeSender) Send(id wire.ObjectID, req proxy.Request) error {
	f.sent = append(f.sent, sentRequest{id: id, req: req})
	return nil
}

func newTestProxy(t *testing.T, iface string) (*proxy.Proxy, *fakeSender, *objectstore.Store) {
	t.Helper()
	ids := idmanager.New()
	store := objectstore.New()
	sender := &fakeSender{}
	registrar := fakeRegistrar{store: store}
	id, err := ids.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	p := proxy.New(id, iface, 1, ids, sender, registrar)
	return p, sender, store
}

type fakeRegistrar struct{ store *objectstore.Store }

func (r fakeRegistrar) InsertInterface(id wire.ObjectID, iface string, version uint32) {
	r.store.InsertInterface(id, iface, version)
}

func TestSurfaceCommitSendsNoArgs(t *testing.T) {
	p, sender, _ := newTestProxy(t, "wl_surface")
	s := &Surface{p: p}
	if err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d requests, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.id != p.ID || got.req.Opcode != opSurfaceCommit || len(got.req.Args) != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestSurfaceAttachEncodesArgs(t *testing.T) {
	p, sender, _ := newTestProxy(t, "wl_surface")
	s := &Surface{p: p}
	if err := s.Attach(wire.ObjectID(7), 3, -4); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	dec := wire.NewDecoder(sender.sent[0].req.Args, nil)
	buf, err := dec.Object()
	if err != nil || buf != 7 {
		t.Fatalf("buffer = (%d, %v), want (7, nil)", buf, err)
	}
	x, err := dec.Int32()
	if err != nil || x != 3 {
		t.Fatalf("x = (%d, %v), want (3, nil)", x, err)
	}
	y, err := dec.Int32()
	if err != nil || y != -4 {
		t.Fatalf("y = (%d, %v), want (-4, nil)", y, err)
	}
}

func TestSurfaceDispatchEnterLeave(t *testing.T) {
	p, _, _ := newTestProxy(t, "wl_surface")
	s := &Surface{p: p}
	var entered, left wire.ObjectID
	s.OnEnter(func(output wire.ObjectID) { entered = output })
	s.OnLeave(func(output wire.ObjectID) { left = output })

	enc := wire.NewEncoder(4)
	enc.PutObject(wire.ObjectID(42))
	if err := s.DispatchEvent(opSurfaceEventEnter, enc.Bytes(), nil); err != nil {
		t.Fatalf("DispatchEvent(enter): %v", err)
	}
	if entered != 42 {
		t.Errorf("entered = %d, want 42", entered)
	}

	enc2 := wire.NewEncoder(4)
	enc2.PutObject(wire.ObjectID(43))
	if err := s.DispatchEvent(opSurfaceEventLeave, enc2.Bytes(), nil); err != nil {
		t.Fatalf("DispatchEvent(leave): %v", err)
	}
	if left != 43 {
		t.Errorf("left = %d, want 43", left)
	}
}

func TestRegistryBindUnknownGlobal(t *testing.T) {
	p, _, _ := newTestProxy(t, "wl_registry")
	r := newRegistry(p)
	if _, err := r.Bind(99, "wl_compositor", 1); err == nil {
		t.Fatal("expected error binding unknown global")
	}
}

func TestRegistryDispatchGlobalThenBind(t *testing.T) {
	p, sender, _ := newTestProxy(t, "wl_registry")
	r := newRegistry(p)

	var seen Global
	r.OnGlobal(func(g Global) { seen = g })

	enc := wire.NewEncoder(32)
	enc.PutUint32(1)
	enc.PutString("wl_compositor")
	enc.PutUint32(4)
	if err := r.dispatch(enc.Bytes(), nil, opRegistryEventGlobal); err != nil {
		t.Fatalf("dispatch(global): %v", err)
	}
	if seen.Name != 1 || seen.Interface != "wl_compositor" || seen.Version != 4 {
		t.Fatalf("seen = %+v", seen)
	}

	bound, err := r.Bind(1, "wl_compositor", 4)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if bound.Interface != "wl_compositor" {
		t.Errorf("bound.Interface = %q", bound.Interface)
	}
	if len(sender.sent) != 1 || sender.sent[0].req.Opcode != opRegistryBind {
		t.Fatalf("sent = %+v", sender.sent)
	}
}

func TestRegistryGlobalRemove(t *testing.T) {
	p, _, _ := newTestProxy(t, "wl_registry")
	r := newRegistry(p)

	enc := wire.NewEncoder(32)
	enc.PutUint32(1)
	enc.PutString("wl_seat")
	enc.PutUint32(1)
	_ = r.dispatch(enc.Bytes(), nil, opRegistryEventGlobal)

	removed := uint32(0)
	r.OnGlobalRemove(func(name uint32) { removed = name })

	enc2 := wire.NewEncoder(4)
	enc2.PutUint32(1)
	if err := r.dispatch(enc2.Bytes(), nil, opRegistryEventGlobalRemove); err != nil {
		t.Fatalf("dispatch(global_remove): %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := r.Find("wl_seat"); ok {
		t.Errorf("wl_seat should have been removed")
	}
}

func TestXdgToplevelConfigureDecodesStates(t *testing.T) {
	p, _, _ := newTestProxy(t, "xdg_toplevel")
	top := &XdgToplevel{p: p}

	var width, height int32
	var states []uint32
	top.OnConfigure(func(w, h int32, s []uint32) {
		width, height, states = w, h, s
	})

	enc := wire.NewEncoder(32)
	enc.PutInt32(800)
	enc.PutInt32(600)
	stateBytes := []byte{
		byte(XdgToplevelStateActivated), 0, 0, 0,
		byte(XdgToplevelStateMaximized), 0, 0, 0,
	}
	enc.PutArray(stateBytes)

	if err := top.DispatchEvent(opXdgToplevelEventConfigure, enc.Bytes(), nil); err != nil {
		t.Fatalf("DispatchEvent: %v", err)
	}
	if width != 800 || height != 600 {
		t.Errorf("size = (%d, %d), want (800, 600)", width, height)
	}
	if len(states) != 2 || states[0] != XdgToplevelStateActivated || states[1] != XdgToplevelStateMaximized {
		t.Errorf("states = %v", states)
	}
}

func TestPointerMotionDecodesFixed(t *testing.T) {
	p, _, _ := newTestProxy(t, "wl_pointer")
	ptr := &Pointer{p: p}

	var gotX, gotY wire.Fixed
	ptr.OnMotion(func(time uint32, x, y wire.Fixed) { gotX, gotY = x, y })

	enc := wire.NewEncoder(12)
	enc.PutUint32(1000)
	enc.PutFixed(wire.FixedFromInt(12))
	enc.PutFixed(wire.FixedFromFloat(3.5))

	if err := ptr.DispatchEvent(opPointerEventMotion, enc.Bytes(), nil); err != nil {
		t.Fatalf("DispatchEvent: %v", err)
	}
	if gotX.Int() != 12 {
		t.Errorf("gotX.Int() = %d, want 12", gotX.Int())
	}
	if gotY.Float() != 3.5 {
		t.Errorf("gotY.Float() = %v, want 3.5", gotY.Float())
	}
}
