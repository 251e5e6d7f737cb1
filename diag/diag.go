// Package diag implements the flexml warning sink: an ordered, append-only
// collection of structured diagnostics shared by the lexer, parser and
// style registry. Nothing in this package is fatal - it only records.
package diag

// Span is a byte range into the document that was parsed.
type Span struct {
	Start int
	End   int
}

// Kind enumerates every distinguishable warning the core pipeline can raise.
type Kind int

const (
	EmptyInput Kind = iota
	ExpectedStyleValue
	UnclosedRawContainer
	UnclosedStyleContainer
	UnclosedBoxContainer
	ExceededNodeDepth
	ExceededNodeCount
	StyleContainerNoStyles
	UnexpectedToken
	OverwroteStyleDefinition
	AtomicStyleDefinition
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case ExpectedStyleValue:
		return "ExpectedStyleValue"
	case UnclosedRawContainer:
		return "UnclosedRawContainer"
	case UnclosedStyleContainer:
		return "UnclosedStyleContainer"
	case UnclosedBoxContainer:
		return "UnclosedBoxContainer"
	case ExceededNodeDepth:
		return "ExceededNodeDepth"
	case ExceededNodeCount:
		return "ExceededNodeCount"
	case StyleContainerNoStyles:
		return "StyleContainerNoStyles"
	case UnexpectedToken:
		return "UnexpectedToken"
	case OverwroteStyleDefinition:
		return "OverwroteStyleDefinition"
	case AtomicStyleDefinition:
		return "AtomicStyleDefinition"
	default:
		return "Unknown"
	}
}

// Warning is the render-ready shape of a single diagnostic.
type Warning struct {
	Kind    Kind
	Span    Span
	Message string
	Label   string
	Help    string
	Fix     string // empty means "no suggested fix"
}

type table struct {
	message string
	label   string
	help    string
	fix     string
}

var tables = map[Kind]table{
	EmptyInput: {
		message: "input is empty",
		label:   "nothing to parse here",
		help:    "provide at least one character of flexml content",
	},
	ExpectedStyleValue: {
		message: "expected a style value after ':'",
		label:   "style value missing",
		help:    "write a value after the colon, e.g. size:12",
	},
	UnclosedRawContainer: {
		message: "raw container was never closed",
		label:   "opened here",
		help:    "add a matching =| before the end of input",
	},
	UnclosedStyleContainer: {
		message: "style definition was never closed",
		label:   "opened here",
		help:    "add a matching } before the end of input",
	},
	UnclosedBoxContainer: {
		message: "box container was never closed",
		label:   "opened here",
		help:    "add a matching ] before the end of input",
	},
	ExceededNodeDepth: {
		message: "maximum nesting depth exceeded",
		label:   "this subtree was skipped",
		help:    "reduce nesting or raise the configured max depth",
	},
	ExceededNodeCount: {
		message: "maximum node count exceeded",
		label:   "parsing stopped here",
		help:    "split the document or raise the configured max nodes",
	},
	StyleContainerNoStyles: {
		message: "style definition has no styles",
		label:   "empty style list",
		help:    "add at least one style, e.g. {name bold}",
	},
	UnexpectedToken: {
		message: "unexpected byte sequence",
		label:   "treated as text",
		help:    "check for a stray delimiter",
	},
	OverwroteStyleDefinition: {
		message: "style definition overwrote an existing composite",
		label:   "redefined here",
		help:    "rename the style if overwriting was unintentional",
	},
	AtomicStyleDefinition: {
		message: "attempted to redefine a built-in atomic style",
		label:   "ignored, atomics are immutable",
		help:    "choose a different name for your custom style",
	},
}

// Sink is an append-only, ordered collection of warnings.
type Sink struct {
	warnings []Warning
}

// New returns an empty sink.
func New() *Sink {
	return &Sink{}
}

// Warn records a warning of the given kind using its static message table.
func (s *Sink) Warn(span Span, kind Kind) {
	t, ok := tables[kind]
	if !ok {
		t = table{message: "unknown warning", label: "", help: ""}
	}
	s.warnings = append(s.warnings, Warning{
		Kind:    kind,
		Span:    span,
		Message: t.message,
		Label:   t.label,
		Help:    t.help,
		Fix:     t.fix,
	})
}

// WarnWithFix records a warning and overrides its suggested fix.
func (s *Sink) WarnWithFix(span Span, kind Kind, fix string) {
	s.Warn(span, kind)
	s.warnings[len(s.warnings)-1].Fix = fix
}

// Warnings returns the render-ready view, in insertion (lexical) order.
func (s *Sink) Warnings() []Warning {
	return s.warnings
}

// Len reports how many warnings have been recorded.
func (s *Sink) Len() int {
	return len(s.warnings)
}
