package codegen

import "text/template"

// fileTemplate renders one generated Go source file for a protocol's
// non-display interfaces. Its shape mirrors the hand-written bindings in
// the wl package: a *proxy.Proxy-backed struct per interface, one method
// per request, an On<Event> callback field plus DispatchEvent per
// interface with events, and exported enum/bitfield constants.
var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"argDecl":       argDecl,
	"argDecodeStmt": argDecodeStmt,
	"encodeStmt":    encodeStmt,
}).Parse(`// Code generated by wlgen from {{.Protocol}}.xml. DO NOT EDIT.

package {{.Package}}

import (
{{if .HasEvents}}	"fmt"

	"github.com/Chugach-UI/denali/handler"
{{end}}
	"github.com/Chugach-UI/denali/proxy"
	"github.com/Chugach-UI/denali/wire"
)

{{range .Interfaces}}{{template "interface" .}}
{{end}}`))

var _ = template.Must(fileTemplate.New("interface").Parse(`
// {{.GoName}} is the generated binding for the {{.WireName}} interface,
// version {{.Version}}.
type {{.GoName}} struct {
	p *proxy.Proxy
{{range .Events}}	on{{.GoName}} func({{range .Args}}{{argDecl .}}, {{end}})
{{end}}}

// New{{.GoName}} wraps an already-created proxy as a {{.GoName}}. Callers
// that obtain the proxy via a bind or a parent request's new_id argument
// use this to get a typed handle.
func New{{.GoName}}(p *proxy.Proxy) *{{.GoName}} {
	return &{{.GoName}}{p: p}
}

// ID returns the object id bound to this {{.GoName}}.
func (o *{{.GoName}}) ID() wire.ObjectID { return o.p.ID }
{{range .Requests}}{{template "request" .}}
{{end}}
{{range .Enums}}{{template "enum" .}}
{{end}}
{{if .Events}}
// DispatchEvent decodes and routes one {{.WireName}} event to its
// registered callback, if any.
func (o *{{.GoName}}) DispatchEvent(opcode wire.Opcode, body []byte, fds []int) error {
	switch opcode {
{{range .Events}}	case {{.Opcode}}: // {{.GoName}}
		if o.on{{.GoName}} == nil {
			return nil
		}
		dec := wire.NewDecoder(body, fds)
{{range .Args}}		{{argDecodeStmt .}}
{{end}}		o.on{{.GoName}}({{range .Args}}{{.GoName}}, {{end}})
		return nil
{{end}}	default:
		return fmt.Errorf("{{.WireName}}: unknown event opcode %d", opcode)
	}
}
{{range .Events}}
// On{{.GoName}} registers the callback invoked when a {{$.WireName}}.{{.GoName}} event arrives.
func (o *{{$.GoName}}) On{{.GoName}}(fn func({{range .Args}}{{argDecl .}}, {{end}})) {
	o.on{{.GoName}} = fn
}
{{end}}

// TryDecode implements handler.Message, letting {{.GoName}} participate in a
// composed handler set (see handler.Union). It refuses bytes not addressed
// to {{.WireName}} rather than guessing.
func (o *{{.GoName}}) TryDecode(iface string, opcode uint16, body []byte, fds []int) error {
	if iface != "{{.WireName}}" {
		return handler.ErrUnknownInterface
	}
	switch wire.Opcode(opcode) {
	case {{range $i, $e := .Events}}{{if $i}}, {{end}}{{$e.Opcode}}{{end}}:
		return o.DispatchEvent(wire.Opcode(opcode), body, fds)
	default:
		return handler.ErrUnknownOpcode
	}
}
{{end}}
`))

var _ = template.Must(fileTemplate.New("request").Parse(`
{{if .HasNewID}}
// {{.GoName}} sends the {{.IfaceWireName}}.{{.GoName}} request and returns the newly created {{.NewIDGoType}}.
func (o *{{.IfaceGoName}}) {{.GoName}}({{.ParamList}}) (*{{.NewIDGoType}}, error) {
	child, err := o.p.NewObject("{{.NewIDWireIface}}", {{.NewIDVersion}})
	if err != nil {
		return nil, err
	}
	enc := wire.NewEncoder(32)
{{range .EncodeArgs}}	{{encodeStmt .}}
{{end}}	enc.PutNewID(child.ID)
	if err := o.p.Send(proxy.Request{Opcode: {{.Opcode}}, Args: enc.Bytes(){{.FDArgsExpr}}}); err != nil {
		return nil, err
	}
	return New{{.NewIDGoType}}(child), nil
}
{{else if .Destructor}}
// {{.GoName}} sends the {{.IfaceWireName}}.{{.GoName}} request, which ends this object's lifetime. The id is released when the server's delete_id event for it arrives, not here.
func (o *{{.IfaceGoName}}) {{.GoName}}({{.ParamList}}) error {
	enc := wire.NewEncoder(32)
{{range .EncodeArgs}}	{{encodeStmt .}}
{{end}}	return o.p.Send(proxy.Request{Opcode: {{.Opcode}}, Args: enc.Bytes(){{.FDArgsExpr}}})
}
{{else}}
// {{.GoName}} sends the {{.IfaceWireName}}.{{.GoName}} request.
func (o *{{.IfaceGoName}}) {{.GoName}}({{.ParamList}}) error {
	enc := wire.NewEncoder(32)
{{range .EncodeArgs}}	{{encodeStmt .}}
{{end}}	return o.p.Send(proxy.Request{Opcode: {{.Opcode}}, Args: enc.Bytes(){{.FDArgsExpr}}})
}
{{end}}
`))

var _ = template.Must(fileTemplate.New("enum").Parse(`
type {{.GoName}} uint32

const (
{{range .Entries}}	{{.GoName}} {{$.GoName}} = {{.Value}}
{{end}})
`))

func argDecl(a argView) string {
	goType := "uint32"
	switch a.WireKind {
	case "Int":
		goType = "int32"
	case "Fixed":
		goType = "wire.Fixed"
	case "String":
		goType = "string"
	case "Array":
		goType = "[]byte"
	case "FD":
		goType = "int"
	case "Object", "NewID", "NewIDGeneric":
		goType = "wire.ObjectID"
	}
	return a.GoName + " " + goType
}

// argDecodeStmt emits a statement reading one argument from dec into a
// same-named local, returning err from the enclosing DispatchEvent method
// on failure. Every Decoder getter returns (value, error), so the shape is
// uniform across kinds except for the object-id kinds, which need an extra
// conversion from the raw uint32 wire.Decoder.Uint32 returns.
func argDecodeStmt(a argView) string {
	errCheck := "\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}"
	switch a.WireKind {
	case "Int":
		return a.GoName + ", err := dec.Int32()" + errCheck
	case "Uint":
		return a.GoName + ", err := dec.Uint32()" + errCheck
	case "Object", "NewID", "NewIDGeneric":
		return a.GoName + "Raw, err := dec.Uint32()" + errCheck + "\n\t\t" + a.GoName + " := wire.ObjectID(" + a.GoName + "Raw)"
	case "Fixed":
		return a.GoName + ", err := dec.Fixed()" + errCheck
	case "String":
		return a.GoName + ", err := dec.String()" + errCheck
	case "Array":
		return a.GoName + ", err := dec.Array()" + errCheck
	case "FD":
		return a.GoName + ", err := dec.FD()" + errCheck
	default:
		return a.GoName + ", err := dec.Uint32()" + errCheck
	}
}

func encodeStmt(a argView) string {
	switch a.WireKind {
	case "Int":
		return "enc.PutInt32(" + a.GoName + ")"
	case "Uint":
		return "enc.PutUint32(" + a.GoName + ")"
	case "Object", "NewID", "NewIDGeneric":
		return "enc.PutObject(" + a.GoName + ")"
	case "Fixed":
		return "enc.PutFixed(" + a.GoName + ")"
	case "String":
		return "enc.PutString(" + a.GoName + ")"
	case "Array":
		return "enc.PutArray(" + a.GoName + ")"
	default:
		return "enc.PutUint32(uint32(" + a.GoName + "))"
	}
}
