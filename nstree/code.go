package nstree

// Code is the stable status result of every tree operation. It is a value
// type, not an error wrapper: OK is a normal, expected result, not the
// absence of one.
type Code int

const (
	// OK means the operation completed as requested.
	OK Code = iota

	// NotFound means a path (or a prefix of one) does not name an
	// existing folder.
	NotFound

	// Invalid means a path argument is not a canonical path: wrong
	// alphabet, wrong length, missing slash, or similar.
	Invalid

	// Exists means Create was asked to create a folder that is already
	// there, or Move's target names a folder that is already there (the
	// root included).
	Exists

	// NotEmpty means Remove was asked to remove a folder that still has
	// children.
	NotEmpty

	// Busy means the operation targeted the tree root in a way the root
	// itself refuses: it cannot be removed or moved.
	Busy

	// SourceAncestorOfTarget means Move was asked to move a folder into
	// one of its own descendants. Moving a folder onto itself is Exists.
	SourceAncestorOfTarget
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case NotFound:
		return "not found"
	case Invalid:
		return "invalid path"
	case Exists:
		return "already exists"
	case NotEmpty:
		return "not empty"
	case Busy:
		return "root is busy"
	case SourceAncestorOfTarget:
		return "source is an ancestor of target"
	default:
		return "unknown code"
	}
}

// Error lets a non-OK Code be used anywhere the error interface is
// expected, e.g. errors.Is against a sentinel, or wrapping with
// github.com/pkg/errors at a CLI boundary.
func (c Code) Error() string {
	return c.String()
}

var _ error = OK
