package codegen

import (
	"strings"
	"unicode"
)

// reservedWords are Go keywords and predeclared identifiers that would
// otherwise collide with a generated name (enum entry "type", "range",
// etc. all occur in real protocol XML).
var reservedWords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
	"error": true, "string": true, "int": true, "uint": true, "byte": true,
}

// CamelCase converts a snake_case Wayland identifier (optionally prefixed
// with "wl_") into an exported Go identifier: "wl_surface" -> "Surface",
// "get_xdg_surface" -> "GetXdgSurface".
func CamelCase(name string) string {
	name = strings.TrimPrefix(name, "wl_")
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return EscapeIdentifier(b.String())
}

// LowerCamelCase is CamelCase with an unexported first letter, for method
// parameters and local variables generated from protocol argument names.
func LowerCamelCase(name string) string {
	camel := CamelCase(name)
	if camel == "" {
		return camel
	}
	r := []rune(camel)
	return string(unicode.ToLower(r[0])) + string(r[1:])
}

// EscapeIdentifier guards against two hazards real protocol XML contains:
// names that collide with a Go reserved word (an enum entry literally
// named "type"), and names beginning with a digit (an enum entry named
// "90", from wl_output.transform). Both get a leading underscore.
func EscapeIdentifier(name string) string {
	if name == "" {
		return name
	}
	if reservedWords[strings.ToLower(name)] {
		return "_" + name
	}
	if unicode.IsDigit(rune(name[0])) {
		return "_" + name
	}
	return name
}

// EnumEntryName builds the exported constant name for one enum entry,
// qualified by interface and enum name to avoid collisions between, say,
// wl_output.transform.normal and some other interface's "normal" entry:
// "wl_output", "transform", "90" -> "OutputTransform_90".
func EnumEntryName(ifaceName, enumName, entryName string) string {
	return CamelCase(ifaceName) + CamelCase(enumName) + exportedSuffix(entryName)
}

// exportedSuffix capitalizes entryName without stripping a "wl_" prefix
// (enum entries are never interface-prefixed) and escapes it.
func exportedSuffix(entryName string) string {
	parts := strings.Split(entryName, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return EscapeIdentifier(b.String())
}
