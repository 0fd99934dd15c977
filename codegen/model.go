package codegen

import (
	"fmt"
	"strings"

	"github.com/Chugach-UI/denali/protocol"
)

// argView is the template-ready form of one protocol.Arg.
type argView struct {
	GoName    string
	WireKind  string // Int, Uint, Fixed, String, Object, NewID, NewIDGeneric, Array, FD
	Interface string // target interface for object/new_id args, CamelCase
	Generic   bool   // true for a new_id arg with no fixed interface
}

// requestView is the template-ready form of one protocol.Request, with
// every field the template needs precomputed so the template itself stays
// free of anything beyond range/if over plain data.
type requestView struct {
	GoName        string
	IfaceGoName   string
	IfaceWireName string
	Opcode        int
	Destructor    bool
	Args          []argView
	PlainArgs     []argView // Args minus the trailing new_id, if any
	EncodeArgs    []argView // PlainArgs minus fd args, which never go in the byte payload
	ParamList     string    // Go parameter list for the method signature
	FDArgsExpr    string    // ", FDs: []int{...}" or "" if no fd args
	HasNewID      bool
	NewIDGoType   string
	NewIDWireIface string
	NewIDVersion  int
}

// eventView is the template-ready form of one protocol.Event.
type eventView struct {
	GoName string
	Opcode int
	Args   []argView
}

// enumEntryView is the template-ready form of one protocol.Entry.
type enumEntryView struct {
	GoName string
	Value  string
}

// enumView is the template-ready form of one protocol.Enum.
type enumView struct {
	GoName   string
	BitField bool
	Entries  []enumEntryView
}

// interfaceView is everything one template execution needs to emit a full
// generated interface binding.
type interfaceView struct {
	WireName string // e.g. "zwp_virtual_keyboard_v1"
	GoName   string // e.g. "ZwpVirtualKeyboardV1"
	Version  int
	Requests []requestView
	Events   []eventView
	Enums    []enumView
}

// fileView is the top-level template input for one generated file.
type fileView struct {
	Package    string
	Protocol   string
	Interfaces []interfaceView
	HasEvents  bool // true if any interface has at least one event, gating the fmt import
}

func buildArgView(a protocol.Arg) argView {
	v := argView{GoName: LowerCamelCase(a.Name)}
	switch a.Kind() {
	case protocol.KindInt:
		v.WireKind = "Int"
	case protocol.KindUint:
		v.WireKind = "Uint"
	case protocol.KindFixed:
		v.WireKind = "Fixed"
	case protocol.KindString:
		v.WireKind = "String"
	case protocol.KindArray:
		v.WireKind = "Array"
	case protocol.KindFD:
		v.WireKind = "FD"
	case protocol.KindObject:
		v.WireKind = "Object"
		v.Interface = CamelCase(a.Interface)
	case protocol.KindNewID:
		if a.IsGenericNewID() {
			v.WireKind = "NewIDGeneric"
			v.Generic = true
		} else {
			v.WireKind = "NewID"
			v.Interface = CamelCase(a.Interface)
		}
	}
	return v
}

func paramList(args []argView) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, argDecl(a))
	}
	return strings.Join(parts, ", ")
}

func fdArgsExpr(args []argView) string {
	var names []string
	for _, a := range args {
		if a.WireKind == "FD" {
			names = append(names, a.GoName)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return ", FDs: []int{" + strings.Join(names, ", ") + "}"
}

func buildRequestView(ifaceGoName, ifaceWireName string, i int, req protocol.Request) requestView {
	rv := requestView{
		GoName:        CamelCase(strings.TrimPrefix(req.Name, "get_")),
		IfaceGoName:   ifaceGoName,
		IfaceWireName: ifaceWireName,
		Opcode:        i,
		Destructor:    req.IsDestructor(),
	}
	for _, a := range req.Args {
		av := buildArgView(a)
		rv.Args = append(rv.Args, av)
		if av.WireKind == "NewID" || av.WireKind == "NewIDGeneric" {
			rv.HasNewID = true
			rv.NewIDGoType = av.Interface
			rv.NewIDWireIface = a.Interface
			rv.NewIDVersion = 1
			continue
		}
		rv.PlainArgs = append(rv.PlainArgs, av)
	}
	rv.ParamList = paramList(rv.PlainArgs)
	rv.FDArgsExpr = fdArgsExpr(rv.PlainArgs)
	for _, a := range rv.PlainArgs {
		if a.WireKind != "FD" {
			rv.EncodeArgs = append(rv.EncodeArgs, a)
		}
	}
	return rv
}

func buildInterfaceView(iface protocol.Interface) interfaceView {
	iv := interfaceView{
		WireName: iface.Name,
		GoName:   CamelCase(iface.Name),
		Version:  iface.Version,
	}

	for i, req := range iface.Requests {
		iv.Requests = append(iv.Requests, buildRequestView(iv.GoName, iv.WireName, i, req))
	}

	for i, ev := range iface.Events {
		evv := eventView{GoName: CamelCase(ev.Name), Opcode: i}
		for _, a := range ev.Args {
			evv.Args = append(evv.Args, buildArgView(a))
		}
		iv.Events = append(iv.Events, evv)
	}

	for _, en := range iface.Enums {
		ev := enumView{GoName: CamelCase(iface.Name) + CamelCase(en.Name), BitField: en.BitField}
		for _, entry := range en.Entries {
			ev.Entries = append(ev.Entries, enumEntryView{
				GoName: EnumEntryName(iface.Name, en.Name, entry.Name),
				Value:  entry.Value,
			})
		}
		iv.Enums = append(iv.Enums, ev)
	}

	return iv
}

// BuildFileView converts a parsed protocol into template input, skipping
// wl_display (always hand-authored, see the wl package) since it owns
// connection bootstrap logic no generated interface needs.
func BuildFileView(pkg string, p *protocol.Protocol) (fileView, error) {
	fv := fileView{Package: pkg, Protocol: p.Name}
	for _, iface := range p.Interfaces {
		if iface.Name == "wl_display" {
			continue
		}
		iv := buildInterfaceView(iface)
		if len(iv.Events) > 0 {
			fv.HasEvents = true
		}
		fv.Interfaces = append(fv.Interfaces, iv)
	}
	if len(fv.Interfaces) == 0 {
		return fv, fmt.Errorf("codegen: protocol %q has no generatable interfaces", p.Name)
	}
	return fv, nil
}
