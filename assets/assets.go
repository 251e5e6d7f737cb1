// Package assets resolves interned PathIds against a base directory or a
// zip bundle, content-sniffs Font/Image paths, and extracts SVG intrinsic
// size for Dimension::Content resolution. It is the registry's injected
// PathResolver collaborator (registry.Registry.PathResolver) - the registry
// itself never touches the filesystem.
package assets

import (
	"bytes"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/hidez8891/zip"

	"github.com/zachzurn/flexml/style"
)

// Resolver opens Font/Image/Directory paths against either a plain
// directory or a .zip bundle (fonts and images packaged together),
// mirroring the teacher's archive/epub-as-zip handling.
type Resolver struct {
	base   string
	isZip  bool
	zr     *zip.Reader
	zfile  *os.File
}

// Open constructs a Resolver rooted at base. If base ends in ".zip" it is
// opened as a zip archive and every path is resolved as an entry within it
// instead of a filesystem path.
func Open(base string) (*Resolver, error) {
	r := &Resolver{base: base}
	if strings.HasSuffix(strings.ToLower(base), ".zip") {
		f, err := os.Open(base)
		if err != nil {
			return nil, err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		zr, err := zip.NewReader(f, info.Size())
		if err != nil {
			f.Close()
			return nil, err
		}
		r.isZip = true
		r.zr = zr
		r.zfile = f
	}
	return r, nil
}

// Close releases the underlying zip file handle, if one is open.
func (r *Resolver) Close() error {
	if r.zfile != nil {
		return r.zfile.Close()
	}
	return nil
}

// Resolve classifies normalized path p for kind, matching registry's
// PathResolver hook signature.
func (r *Resolver) Resolve(p string, kind style.PathKind) style.PathState {
	if kind == style.PathKindDirectory && !r.isZip {
		if info, err := os.Stat(path.Join(r.base, p)); err == nil && info.IsDir() {
			return style.PathDir
		}
		return style.PathMissing
	}
	data, err := r.read(p)
	if err != nil {
		return style.PathMissing
	}
	if kind == style.PathKindDirectory {
		return style.PathDir
	}
	if !r.matchesKind(data, kind) {
		return style.PathMissing
	}
	return style.PathFile
}

func (r *Resolver) matchesKind(data []byte, kind style.PathKind) bool {
	kt, err := filetype.Match(data)
	if err != nil || kt == filetype.Unknown {
		// SVG is text, not sniffable by magic bytes; filetype.Unknown for a
		// well-formed <svg ...> is expected and not itself disqualifying.
		return kind == style.PathKindImage && looksLikeSVG(data)
	}
	switch kind {
	case style.PathKindFont:
		return kt.MIME.Type == "font" || kt.MIME.Type == "application"
	case style.PathKindImage:
		return kt.MIME.Type == "image"
	default:
		return true
	}
}

func looksLikeSVG(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<svg"))
}

// ReadPath returns the raw bytes of p, resolved against the base directory
// or zip archive.
func (r *Resolver) ReadPath(p string) ([]byte, error) { return r.read(p) }

func (r *Resolver) read(p string) ([]byte, error) {
	if r.isZip {
		f, err := r.zr.Open(strings.TrimPrefix(p, "/"))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	full := path.Join(r.base, p)
	return os.ReadFile(full)
}
