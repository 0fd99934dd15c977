package codegen

import (
	"strings"
	"testing"

	"github.com/Chugach-UI/denali/protocol"
)

const sampleGenXML = `<?xml version="1.0" encoding="UTF-8"?>
<protocol name="sample_gen">
  <interface name="zwp_virtual_keyboard_manager_v1" version="1">
    <request name="create_virtual_keyboard">
      <arg name="seat" type="object" interface="wl_seat"/>
      <arg name="id" type="new_id" interface="zwp_virtual_keyboard_v1"/>
    </request>
  </interface>
  <interface name="zwp_virtual_keyboard_v1" version="1">
    <enum name="keymap_format">
      <entry name="no_keymap" value="0"/>
      <entry name="xkb_v1" value="1"/>
    </enum>
    <request name="keymap">
      <arg name="format" type="uint"/>
      <arg name="fd" type="fd"/>
      <arg name="size" type="uint"/>
    </request>
    <request name="key">
      <arg name="time" type="uint"/>
      <arg name="key" type="uint"/>
      <arg name="state" type="uint"/>
    </request>
    <request name="destroy" type="destructor"/>
    <event name="format_changed">
      <arg name="format" type="uint"/>
    </event>
  </interface>
</protocol>`

func parseSampleGen(t *testing.T) *protocol.Protocol {
	t.Helper()
	p, err := protocol.Parse(strings.NewReader(sampleGenXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return p
}

func TestGenerateSourceCompiles(t *testing.T) {
	p := parseSampleGen(t)
	src, err := GenerateSource("virtualkeyboard", p)
	if err != nil {
		t.Fatalf("GenerateSource: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"package virtualkeyboard",
		"type ZwpVirtualKeyboardManagerV1 struct",
		"func (o *ZwpVirtualKeyboardManagerV1) CreateVirtualKeyboard(seat wire.ObjectID) (*ZwpVirtualKeyboardV1, error)",
		"type ZwpVirtualKeyboardV1 struct",
		"func (o *ZwpVirtualKeyboardV1) Keymap(format uint32, fd int, size uint32) error",
		"func (o *ZwpVirtualKeyboardV1) Destroy() error",
		"type ZwpVirtualKeyboardV1KeymapFormat uint32",
		"ZwpVirtualKeyboardV1KeymapFormatNoKeymap ZwpVirtualKeyboardV1KeymapFormat = 0",
		"ZwpVirtualKeyboardV1KeymapFormatXkbV1    ZwpVirtualKeyboardV1KeymapFormat = 1",
		"github.com/Chugach-UI/denali/handler",
		"func (o *ZwpVirtualKeyboardV1) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error",
		"func (o *ZwpVirtualKeyboardV1) TryDecode(iface string, opcode uint16, body []byte, fds []int) error",
		`if iface != "zwp_virtual_keyboard_v1" {`,
		"return handler.ErrUnknownInterface",
		"return handler.ErrUnknownOpcode",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q\n--- source ---\n%s", want, out)
		}
	}
}

func TestGenerateSourceSkipsDisplay(t *testing.T) {
	xml := `<protocol name="has_display"><interface name="wl_display" version="1"><request name="sync"><arg name="callback" type="new_id" interface="wl_callback"/></request></interface></protocol>`
	p, err := protocol.Parse(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := GenerateSource("wl", p); err == nil {
		t.Errorf("expected error generating a protocol with only wl_display")
	}
}

func TestOutputFileName(t *testing.T) {
	p := parseSampleGen(t)
	if got, want := OutputFileName(p), "sample_gen_generated.go"; got != want {
		t.Errorf("OutputFileName() = %q, want %q", got, want)
	}
}

func TestCamelCaseAndEnumEntryName(t *testing.T) {
	if got := CamelCase("zwp_virtual_keyboard_v1"); got != "ZwpVirtualKeyboardV1" {
		t.Errorf("CamelCase = %q", got)
	}
	if got := CamelCase("wl_surface"); got != "Surface" {
		t.Errorf("CamelCase(wl_surface) = %q, want Surface", got)
	}
	// "90" begins with a digit, so EscapeIdentifier prefixes it with "_"
	// before the interface/enum name is prepended.
	if got, want := EnumEntryName("wl_output", "transform", "90"), "OutputTransform_90"; got != want {
		t.Errorf("EnumEntryName(wl_output, transform, 90) = %q, want %q", got, want)
	}
}
