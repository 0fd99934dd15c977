package virtualpointer

import (
	"testing"

	"github.com/Chugach-UI/denali/idmanager"
	"github.com/Chugach-UI/denali/objectstore"
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

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

type fakeRegistrar struct{ store *objectstore.Store }

func (r fakeRegistrar) InsertInterface(id wire.ObjectID, iface string, version uint32) {
	r.store.InsertInterface(id, iface, version)
}

func newTestProxy(t *testing.T, iface string) (*proxy.Proxy, *fakeSender) {
	t.Helper()
	ids := idmanager.New()
	store := objectstore.New()
	sender := &fakeSender{}
	id, err := ids.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	p := proxy.New(id, iface, 2, ids, sender, fakeRegistrar{store: store})
	return p, sender
}

func TestCreateVirtualPointerEncodesNullSeat(t *testing.T) {
	p, sender := newTestProxy(t, InterfaceManager)
	mgr := NewZwlrVirtualPointerManagerV1(p)

	ptr, err := mgr.CreateVirtualPointer(0)
	if err != nil {
		t.Fatalf("CreateVirtualPointer: %v", err)
	}
	if ptr.ID() == 0 {
		t.Fatalf("expected a nonzero child id")
	}
	dec := wire.NewDecoder(sender.sent[0].req.Args, nil)
	seat, _ := dec.Object()
	if seat != 0 {
		t.Errorf("seat = %d, want 0 (null)", seat)
	}
}

func TestMotionEncodesFixedDeltas(t *testing.T) {
	p, sender := newTestProxy(t, "zwlr_virtual_pointer_v1")
	ptr := NewZwlrVirtualPointerV1(p)

	dx := wire.FixedFromInt(3)
	dy := wire.FixedFromInt(-2)
	if err := ptr.Motion(123, dx, dy); err != nil {
		t.Fatalf("Motion: %v", err)
	}
	dec := wire.NewDecoder(sender.sent[0].req.Args, nil)
	time, _ := dec.Uint32()
	gotDx, _ := dec.Fixed()
	gotDy, _ := dec.Fixed()
	if time != 123 || gotDx != dx || gotDy != dy {
		t.Errorf("time=%d dx=%v dy=%v", time, gotDx, gotDy)
	}
}

func TestButtonSendsEvdevCode(t *testing.T) {
	p, sender := newTestProxy(t, "zwlr_virtual_pointer_v1")
	ptr := NewZwlrVirtualPointerV1(p)

	if err := ptr.Button(10, uint32(ButtonLeft), uint32(ButtonStatePressed)); err != nil {
		t.Fatalf("Button: %v", err)
	}
	dec := wire.NewDecoder(sender.sent[0].req.Args, nil)
	_, _ = dec.Uint32()
	button, _ := dec.Uint32()
	state, _ := dec.Uint32()
	if button != uint32(ButtonLeft) || state != uint32(ButtonStatePressed) {
		t.Errorf("button=%d state=%d", button, state)
	}
}

func TestFrameSendsNoArgs(t *testing.T) {
	p, sender := newTestProxy(t, "zwlr_virtual_pointer_v1")
	ptr := NewZwlrVirtualPointerV1(p)

	if err := ptr.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(sender.sent[0].req.Args) != 0 {
		t.Errorf("Frame args = %v, want empty", sender.sent[0].req.Args)
	}
}
