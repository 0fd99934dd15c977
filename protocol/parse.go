package protocol

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parse decodes a single protocol XML document from r.
func Parse(r io.Reader) (*Protocol, error) {
	dec := xml.NewDecoder(r)
	var p Protocol
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("protocol: decode: %w", err)
	}
	return &p, nil
}

// ParseFile decodes a single protocol XML file.
func ParseFile(path string) (*Protocol, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("protocol: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Blocklist names protocol XML files that should never be fed to the
// generator, typically because they are superseded or unstable drafts
// bundled alongside the protocol they will eventually replace.
var Blocklist = map[string]bool{
	"xdg-shell-unstable-v5.xml": true,
	"xdg-shell-unstable-v6.xml": true,
}

// ParseDir walks dir for *.xml files not on the Blocklist and parses each
// one, returning them in directory-walk order.
func ParseDir(dir string) ([]*Protocol, error) {
	var protocols []*Protocol
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".xml" {
			return nil
		}
		if Blocklist[filepath.Base(path)] {
			return nil
		}
		p, err := ParseFile(path)
		if err != nil {
			return err
		}
		protocols = append(protocols, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return protocols, nil
}
