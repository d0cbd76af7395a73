// Package sceneerr defines the typed error kinds produced during scene
// construction (§7). Validation happens at construction time; construction
// returns one of these and no partial scene is ever exposed. Kept as its
// own package (rather than living in pkg/scene) so lower-level packages
// that validate their own inputs — pkg/mesh, internal/xform — can return
// one of these kinds without importing the scene graph itself.
package sceneerr

import "errors"

// Kind identifies which of the five error categories a Error wraps.
type Kind int

const (
	InvalidScene Kind = iota
	InvalidTransform
	InvalidColor
	DegenerateMesh
	IncompatibleOptions
)

func (k Kind) String() string {
	switch k {
	case InvalidScene:
		return "InvalidScene"
	case InvalidTransform:
		return "InvalidTransform"
	case InvalidColor:
		return "InvalidColor"
	case DegenerateMesh:
		return "DegenerateMesh"
	case IncompatibleOptions:
		return "IncompatibleOptions"
	default:
		return "UnknownSceneError"
	}
}

// Error is the single typed error surfaced to callers at scene build.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Is reports whether err is a *Error of the given kind, looking through
// wrapped causes via errors.As.
func Is(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
