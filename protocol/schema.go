// Package protocol parses Wayland protocol XML (wayland.xml and its
// extension protocols) into the schema codegen turns into Go source.
package protocol

import "encoding/xml"

// Protocol is the root element of a Wayland protocol XML document.
type Protocol struct {
	XMLName    xml.Name    `xml:"protocol"`
	Name       string      `xml:"name,attr"`
	Copyright  string      `xml:"copyright"`
	Interfaces []Interface `xml:"interface"`
}

// Description is the human-readable summary/body attached to most
// elements. It is carried through to generated doc comments.
type Description struct {
	Summary string `xml:"summary,attr"`
	Text    string `xml:",chardata"`
}

// Interface is one Wayland interface: a named, versioned bundle of
// requests, events, and enums.
type Interface struct {
	Name        string      `xml:"name,attr"`
	Version     int         `xml:"version,attr"`
	Description Description `xml:"description"`
	Requests    []Request   `xml:"request"`
	Events      []Event     `xml:"event"`
	Enums       []Enum      `xml:"enum"`
}

// Request is a client-to-server message. Type "destructor" marks a request
// that ends the object's lifetime.
type Request struct {
	Name        string      `xml:"name,attr"`
	Type        string      `xml:"type,attr"`
	Since       int         `xml:"since,attr"`
	Description Description `xml:"description"`
	Args        []Arg       `xml:"arg"`
}

// Event is a server-to-client message.
type Event struct {
	Name        string      `xml:"name,attr"`
	Since       int         `xml:"since,attr"`
	Description Description `xml:"description"`
	Args        []Arg       `xml:"arg"`
}

// Arg is one argument of a request or event.
type Arg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	Enum      string `xml:"enum,attr"`
	AllowNull bool   `xml:"allow-null,attr"`
	Summary   string `xml:"summary,attr"`
}

// Enum is a named set of integer constants, optionally a bitfield.
type Enum struct {
	Name        string      `xml:"name,attr"`
	BitField    bool        `xml:"bitfield,attr"`
	Description Description `xml:"description"`
	Entries     []Entry     `xml:"entry"`
}

// Entry is one constant within an Enum.
type Entry struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	Summary string `xml:"summary,attr"`
}

// IsDestructor reports whether r ends its object's lifetime.
func (r Request) IsDestructor() bool { return r.Type == "destructor" }

// ArgKind classifies an Arg's wire representation.
type ArgKind int

const (
	KindInt ArgKind = iota
	KindUint
	KindFixed
	KindString
	KindObject
	KindNewID
	KindArray
	KindFD
)

// Kind classifies a's wire type. new_id args without a fixed Interface
// attribute are the dynamically typed (generic) new_id form.
func (a Arg) Kind() ArgKind {
	switch a.Type {
	case "int":
		return KindInt
	case "uint":
		return KindUint
	case "fixed":
		return KindFixed
	case "string":
		return KindString
	case "object":
		return KindObject
	case "new_id":
		return KindNewID
	case "array":
		return KindArray
	case "fd":
		return KindFD
	default:
		return KindUint
	}
}

// IsGenericNewID reports whether a is a new_id argument with no statically
// known target interface (e.g. wl_registry.bind's id argument).
func (a Arg) IsGenericNewID() bool {
	return a.Kind() == KindNewID && a.Interface == ""
}
