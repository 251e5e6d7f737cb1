// Package registry implements the style registry: name/path interning,
// built-in atomic and composite registration, raw style list expansion,
// and per-node/root style resolution.
package registry

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/registry/builtin"
	"github.com/zachzurn/flexml/style"
)

// RawStyle is one (name, optional value) pair as produced by the parser,
// before expansion into atomics.
type RawStyle struct {
	Name  string
	Value string // raw textual payload; empty means "no value given"
	HasValue bool
}

// RegisterResult reports what register_style decided.
type RegisterResult struct {
	Atomic   bool
	Builtin  bool
	Overwrote bool
}

type definition struct {
	atomics    []style.AtomicStyle
	forwarders []style.StyleId
}

// Registry owns the name/path interners, the built-in atomic apply table,
// and every composite definition (built-in and custom).
type Registry struct {
	log *zap.Logger

	names     []string
	nameIndex map[string]style.StyleId

	paths      []string
	pathStates []style.PathState
	pathIndex  map[string]style.PathId

	atomics []builtin.Atomic // index == StyleId for atomics

	definitions      map[style.StyleId]*definition
	firstStyle       style.StyleId
	firstCustomStyle style.StyleId

	// PathResolver, when set, validates interned paths and classifies them
	// as Missing/File/Dir. It is injected by the assets package; the
	// registry itself has no filesystem access.
	PathResolver func(path string, kind style.PathKind) style.PathState
}

// New constructs a registry and registers every built-in atomic then every
// built-in composite, freezing firstCustomStyle at the end.
func New(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:         log.Named("registry"),
		nameIndex:   make(map[string]style.StyleId),
		pathIndex:   make(map[string]style.PathId),
		definitions: make(map[style.StyleId]*definition),
		atomics:     builtin.DefaultAtomics,
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) registerBuiltins() {
	// Atomics first, one id each, in table order.
	for _, a := range r.atomics {
		r.internName(a.Name)
	}
	r.firstStyle = style.StyleId(len(r.names))

	// Built-in composites: for each atomic, walk its alias table.
	for i, a := range r.atomics {
		atomicId := style.StyleId(i)
		for _, alias := range a.Aliases {
			id := r.internName(alias.Name)
			if alias.Forward {
				r.definitions[id] = &definition{forwarders: []style.StyleId{atomicId}}
			} else {
				r.definitions[id] = &definition{atomics: []style.AtomicStyle{{Id: atomicId, Value: alias.Value}}}
			}
		}
	}
	// The reserved root style block.
	r.internName(builtin.RootStyleName)
	if _, ok := r.definitions[r.nameIndex[builtin.RootStyleName]]; !ok {
		r.definitions[r.nameIndex[builtin.RootStyleName]] = &definition{}
	}

	r.firstCustomStyle = style.StyleId(len(r.names))
	r.log.Debug("registered builtins", zap.Int("atomics", int(r.firstStyle)), zap.Int("builtinComposites", int(r.firstCustomStyle-r.firstStyle)))
}

func (r *Registry) internName(name string) style.StyleId {
	if id, ok := r.nameIndex[name]; ok {
		return id
	}
	id := style.StyleId(len(r.names))
	r.names = append(r.names, name)
	r.nameIndex[name] = id
	return id
}

// LookupName interns name if unseen and reports its id - used by the
// parser, which must intern style/forwarder names even before it knows
// whether registration will succeed.
func (r *Registry) LookupName(name string) style.StyleId {
	return r.internName(name)
}

// NameOf returns the interned name for id, or "" if out of range.
func (r *Registry) NameOf(id style.StyleId) string {
	if int(id) < 0 || int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// IsAtomic reports whether id names an atomic style.
func (r *Registry) IsAtomic(id style.StyleId) bool { return id < r.firstStyle }

// IsBuiltinComposite reports whether id names a built-in composite.
func (r *Registry) IsBuiltinComposite(id style.StyleId) bool {
	return id >= r.firstStyle && id < r.firstCustomStyle
}

// FirstStyle and FirstCustomStyle expose the registry's partition
// boundaries for tests asserting the contiguous/monotonic invariant.
func (r *Registry) FirstStyle() style.StyleId       { return r.firstStyle }
func (r *Registry) FirstCustomStyle() style.StyleId { return r.firstCustomStyle }

// InternPath interns a normalized path string, classifying it through
// PathResolver if one is installed.
func (r *Registry) InternPath(raw string, kind style.PathKind) style.PathId {
	norm := normalizePath(raw)
	if id, ok := r.pathIndex[norm]; ok {
		return id
	}
	id := style.PathId(len(r.paths))
	r.paths = append(r.paths, norm)
	state := style.PathMissing
	if r.PathResolver != nil {
		state = r.PathResolver(norm, kind)
	}
	r.pathStates = append(r.pathStates, state)
	r.pathIndex[norm] = id
	return id
}

// PathState reports the validation state of an interned path.
func (r *Registry) PathState(id style.PathId) style.PathState {
	if int(id) < 0 || int(id) >= len(r.pathStates) {
		return style.PathMissing
	}
	return r.pathStates[id]
}

// PathName returns the normalized path string for id.
func (r *Registry) PathName(id style.PathId) string {
	if int(id) < 0 || int(id) >= len(r.paths) {
		return ""
	}
	return r.paths[id]
}

// DebugName returns a slugified, stable debug label for a path - used by
// log/debug dumps, not by parsing or resolution.
func (r *Registry) DebugName(id style.PathId) string {
	return slug.Make(r.PathName(id))
}

func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "\\", "/")
	for strings.Contains(raw, "//") {
		raw = strings.ReplaceAll(raw, "//", "/")
	}
	return raw
}

// RegisterStyle registers or overwrites a composite style definition.
// Atomics are immutable: attempting to register over an atomic id returns
// Atomic=true without touching definitions.
func (r *Registry) RegisterStyle(name string, atomics []style.AtomicStyle, forwarders []style.StyleId) RegisterResult {
	id := r.internName(name)
	if r.IsAtomic(id) {
		return RegisterResult{Atomic: true}
	}
	_, overwrote := r.definitions[id]
	r.definitions[id] = &definition{atomics: atomics, forwarders: forwarders}
	return RegisterResult{Atomic: false, Builtin: id < r.firstCustomStyle, Overwrote: overwrote}
}

// Definition returns a copy of a registered composite's expanded atomics
// and forwarders. ok is false for atomics (which have no definition) and
// for names never registered.
func (r *Registry) Definition(id style.StyleId) (atomics []style.AtomicStyle, forwarders []style.StyleId, ok bool) {
	def, found := r.definitions[id]
	if !found {
		return nil, nil, false
	}
	return append([]style.AtomicStyle(nil), def.atomics...), append([]style.StyleId(nil), def.forwarders...), true
}

// Names returns every custom (non-built-in) style name, sorted in natural
// order for human-facing listings.
func (r *Registry) Names() []string {
	var out []string
	for id := range r.definitions {
		if id >= r.firstCustomStyle {
			out = append(out, r.names[id])
		}
	}
	sort.Sort(natural.StringSlice(out))
	return out
}

// applyAtomic parses raw against atomic id's spec, then runs transformValue
// so path-bearing results become id-bearing before they're stored.
func (r *Registry) applyAtomic(id style.StyleId, raw string, hasValue bool) style.Value {
	a := r.atomics[id]
	var v style.Value
	if !hasValue {
		v = style.Empty()
	} else {
		v = a.Spec.Parse(raw)
	}
	return r.transformValue(v)
}

// transformValue interns and validates any pending path variant, rewriting
// it to its id-bearing form (or Invalid if validation fails).
func (r *Registry) transformValue(v style.Value) style.Value {
	if !v.IsPathPending() {
		return v
	}
	id := r.InternPath(v.PathBuf, v.PathKind)
	switch r.PathState(id) {
	case style.PathMissing:
		return style.Invalid("PATH_MISSING", v.PathBuf)
	}
	switch v.PathKind {
	case style.PathKindFont:
		return style.Font(id)
	case style.PathKindImage:
		return style.Image(id)
	default:
		return style.Directory(id)
	}
}
