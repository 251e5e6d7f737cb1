// Package flexml implements the Flexml document pipeline: lex, parse, and
// cascade a source buffer into a layout tree ready for an external
// flex/block engine and text shaper. See doc.go for the Builder API,
// layout/ for the layout tree, and fragment/ for the post-layout output
// surface.
package flexml

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/zachzurn/flexml/assets"
	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/diag"
	"github.com/zachzurn/flexml/layout"
	"github.com/zachzurn/flexml/node"
	"github.com/zachzurn/flexml/parser"
	"github.com/zachzurn/flexml/registry"
	"github.com/zachzurn/flexml/style"
)

// Builder configures and runs a single document build. Its zero value is
// not usable; construct one with New.
type Builder struct {
	input    []byte
	maxDepth int
	maxNodes int
	basePath string
	name     string
	log      *zap.Logger
	errs     error
}

// New starts building a Doc from input, with the defaults from §5: 10,000
// max nodes, depth 50.
func New(input []byte) *Builder {
	return &Builder{
		input:    input,
		maxDepth: 50,
		maxNodes: 10_000,
	}
}

// WithMaxDepth overrides the nesting-depth guard. n <= 0 is a configuration
// error surfaced at Parse time via multierr.
func (b *Builder) WithMaxDepth(n int) *Builder {
	if n <= 0 {
		b.errs = multierr.Append(b.errs, fmt.Errorf("flexml: max depth must be positive, got %d", n))
		return b
	}
	b.maxDepth = n
	return b
}

// WithMaxNodes overrides the node-count guard. n <= 0 is a configuration
// error surfaced at Parse time via multierr.
func (b *Builder) WithMaxNodes(n int) *Builder {
	if n <= 0 {
		b.errs = multierr.Append(b.errs, fmt.Errorf("flexml: max nodes must be positive, got %d", n))
		return b
	}
	b.maxNodes = n
	return b
}

// WithBasePath sets the directory (or .zip bundle) font/image/directory
// paths resolve against. An empty path is a configuration error.
func (b *Builder) WithBasePath(p string) *Builder {
	if p == "" {
		b.errs = multierr.Append(b.errs, fmt.Errorf("flexml: base path must not be empty"))
		return b
	}
	b.basePath = p
	return b
}

// WithName attaches a human-readable name to the build, surfaced in debug
// dumps and log correlation.
func (b *Builder) WithName(s string) *Builder {
	b.name = s
	return b
}

// WithLogger installs a zap logger for observational logging across the
// lexer, parser, and registry. Parsing never changes behavior based on
// logging.
func (b *Builder) WithLogger(log *zap.Logger) *Builder {
	b.log = log
	return b
}

// Doc is the result of a completed build: the parsed node tree, the style
// registry that resolved it, the root style, and any warnings raised along
// the way. Building a Doc never fails outright - configuration errors
// collected by the Builder surface through Err(), everything else becomes
// a Warning.
type Doc struct {
	buildID  uuid.UUID
	name     string
	nodes    []node.Node
	registry *registry.Registry
	root     layout.Tree
	rootCtx  context.Context
	sink     *diag.Sink
	err      error
}

// Parse runs the full pipeline and returns the resulting Doc. Configuration
// errors collected by With* calls are returned via Doc.Err() rather than
// aborting the build - Doc still reflects a best-effort parse of input so
// callers can inspect warnings even when, say, max_depth was invalid.
func (b *Builder) Parse() *Doc {
	log := b.log
	if log == nil {
		log = zap.NewNop()
	}

	sink := diag.New()
	reg := registry.New(log)
	if b.basePath != "" {
		if resolver, err := assets.Open(b.basePath); err != nil {
			b.errs = multierr.Append(b.errs, fmt.Errorf("flexml: open base path %q: %w", b.basePath, err))
		} else {
			reg.PathResolver = resolver.Resolve
			defer resolver.Close()
		}
	}

	limits := parser.Limits{MaxNodes: b.maxNodes, MaxDepth: b.maxDepth}
	p := parser.New(b.input, reg, sink, log, limits)
	nodes := p.Parse()

	rootAtomics := collectRootAtomics(nodes, reg)
	rootCtx := reg.ResolveRootStyle(rootAtomics)

	tree := layout.Build(nodes, reg, rootCtx)

	id, _ := uuid.NewRandom()
	return &Doc{
		buildID:  id,
		name:     b.name,
		nodes:    nodes,
		registry: reg,
		root:     *tree,
		rootCtx:  rootCtx,
		sink:     sink,
		err:      b.errs,
	}
}

// collectRootAtomics gathers the atomics registered under the reserved
// "flexml" composite name, which a document declares with `{flexml = ...}`
// in its header. Absent one, the root resolves entirely from documented
// defaults.
func collectRootAtomics(nodes []node.Node, reg *registry.Registry) []style.AtomicStyle {
	rootId := reg.LookupName("flexml")
	for _, n := range nodes {
		if n.Kind == node.KindStyleDefinition && n.StyleDefId == rootId {
			atomics, _, ok := reg.Definition(rootId)
			if !ok {
				return nil
			}
			return atomics
		}
	}
	return nil
}

// BuildID returns the UUID stamped on this build, for log correlation.
func (d *Doc) BuildID() string { return d.buildID.String() }

// Name returns the name attached via WithName, or "".
func (d *Doc) Name() string { return d.name }

// Err reports any configuration errors collected by the Builder.
func (d *Doc) Err() error { return d.err }

// Nodes returns the top-level parsed node sequence.
func (d *Doc) Nodes() []node.Node { return d.nodes }

// StyleRegistry returns the registry that resolved this document's styles.
func (d *Doc) StyleRegistry() *registry.Registry { return d.registry }

// Layout returns the cascaded layout tree.
func (d *Doc) Layout() *layout.Tree { return &d.root }

// Warnings returns every warning raised during lexing, parsing, and style
// resolution, in lexical encounter order.
func (d *Doc) Warnings() []diag.Warning { return d.sink.Warnings() }
