package protocol

import (
	"strings"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<protocol name="sample">
  <interface name="wl_compositor" version="6">
    <description summary="factory">creates surfaces and regions</description>
    <request name="create_surface">
      <arg name="id" type="new_id" interface="wl_surface"/>
    </request>
    <request name="create_region">
      <arg name="id" type="new_id" interface="wl_region"/>
    </request>
  </interface>
  <interface name="wl_registry" version="1">
    <request name="bind">
      <arg name="name" type="uint"/>
      <arg name="id" type="new_id"/>
    </request>
    <event name="global">
      <arg name="name" type="uint"/>
      <arg name="interface" type="string"/>
      <arg name="version" type="uint"/>
    </event>
    <event name="global_remove">
      <arg name="name" type="uint"/>
    </event>
  </interface>
  <interface name="wl_output" version="4">
    <enum name="transform">
      <entry name="normal" value="0"/>
      <entry name="90" value="1"/>
    </enum>
    <enum name="subpixel" bitfield="true">
      <entry name="unknown" value="0"/>
      <entry name="horizontal_rgb" value="1"/>
    </enum>
  </interface>
</protocol>`

func newSampleProtocol(t testing.TB) *Protocol {
	t.Helper()
	p, err := Parse(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return p
}

func TestParseInterfaces(t *testing.T) {
	p := newSampleProtocol(t)
	if p.Name != "sample" {
		t.Errorf("Name = %q, want sample", p.Name)
	}
	if len(p.Interfaces) != 3 {
		t.Fatalf("len(Interfaces) = %d, want 3", len(p.Interfaces))
	}
	compositor := p.Interfaces[0]
	if compositor.Name != "wl_compositor" || compositor.Version != 6 {
		t.Errorf("compositor = %+v", compositor)
	}
	if len(compositor.Requests) != 2 {
		t.Fatalf("len(Requests) = %d, want 2", len(compositor.Requests))
	}
}

func TestParseArgKinds(t *testing.T) {
	p := newSampleProtocol(t)
	registry := p.Interfaces[1]

	bind := registry.Requests[0]
	if len(bind.Args) != 2 {
		t.Fatalf("len(bind.Args) = %d, want 2", len(bind.Args))
	}
	if bind.Args[0].Kind() != KindUint {
		t.Errorf("bind.Args[0].Kind() = %v, want KindUint", bind.Args[0].Kind())
	}
	if bind.Args[1].Kind() != KindNewID {
		t.Errorf("bind.Args[1].Kind() = %v, want KindNewID", bind.Args[1].Kind())
	}
	if !bind.Args[1].IsGenericNewID() {
		t.Errorf("bind's new_id arg should be generic (no interface attribute)")
	}

	createSurface := p.Interfaces[0].Requests[0]
	if createSurface.Args[0].IsGenericNewID() {
		t.Errorf("create_surface's new_id arg has a fixed interface, should not be generic")
	}
}

func TestParseEnums(t *testing.T) {
	p := newSampleProtocol(t)
	output := p.Interfaces[2]
	if len(output.Enums) != 2 {
		t.Fatalf("len(Enums) = %d, want 2", len(output.Enums))
	}
	if output.Enums[0].BitField {
		t.Errorf("transform enum should not be a bitfield")
	}
	if !output.Enums[1].BitField {
		t.Errorf("subpixel enum should be a bitfield")
	}
	if len(output.Enums[0].Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(output.Enums[0].Entries))
	}
}

func TestRequestIsDestructor(t *testing.T) {
	req := Request{Name: "destroy", Type: "destructor"}
	if !req.IsDestructor() {
		t.Errorf("expected destructor request to report IsDestructor")
	}
	create := Request{Name: "create_surface"}
	if create.IsDestructor() {
		t.Errorf("non-destructor request should not report IsDestructor")
	}
}

func TestBlocklistExcludesFile(t *testing.T) {
	if !Blocklist["xdg-shell-unstable-v5.xml"] {
		t.Errorf("expected xdg-shell-unstable-v5.xml to be blocklisted")
	}
	if Blocklist["xdg-shell.xml"] {
		t.Errorf("xdg-shell.xml should not be blocklisted")
	}
}
