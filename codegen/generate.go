package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"github.com/Chugach-UI/denali/protocol"
)

// GenerateSource renders p's non-display interfaces as formatted Go source
// in package pkg.
func GenerateSource(pkg string, p *protocol.Protocol) ([]byte, error) {
	fv, err := BuildFileView(pkg, p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, fv); err != nil {
		return nil, fmt.Errorf("codegen: render %s: %w", p.Name, err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: gofmt %s: %w\n--- unformatted source ---\n%s", p.Name, err, buf.String())
	}
	return formatted, nil
}

// OutputFileName is the generated file name for protocol p, following the
// teacher's "<subject>_generated.go" convention for machine-written files.
func OutputFileName(p *protocol.Protocol) string {
	return sanitizeFileStem(p.Name) + "_generated.go"
}

func sanitizeFileStem(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// GenerateFile renders p and writes it under outDir. If the destination
// already exists and overwrite is false, it returns an error instead of
// clobbering hand-maintained edits to a previously generated file.
func GenerateFile(pkg, outDir string, p *protocol.Protocol, overwrite bool) (string, error) {
	src, err := GenerateSource(pkg, p)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, OutputFileName(p))
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("codegen: %s already exists (use --overwrite)", path)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("codegen: mkdir %s: %w", outDir, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("codegen: write %s: %w", path, err)
	}
	return path, nil
}
