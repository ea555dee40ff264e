package field

import "fmt"

// Kind tells why a descriptor was rejected.
type Kind int

const (
	ContainsSpace Kind = iota + 1
	InvalidFormat
	InvalidVisibility
)

func (k Kind) String() string {
	switch k {
	case ContainsSpace:
		return "contains space"
	case InvalidFormat:
		return "invalid format"
	case InvalidVisibility:
		return "invalid visibility"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MalformedError is returned by Parse for a descriptor it cannot accept.
// Cause is set when the rejection comes from a nested parser.
type MalformedError struct {
	Kind       Kind
	Descriptor string
	Cause      error
}

func (e *MalformedError) Error() string {
	switch e.Kind {
	case ContainsSpace:
		return fmt.Sprintf("malformed field %q: descriptor must not contain whitespace", e.Descriptor)
	case InvalidFormat:
		return fmt.Sprintf("malformed field %q: expected name:type[:visibility]", e.Descriptor)
	}
	if e.Cause != nil {
		return fmt.Sprintf("malformed field %q: %v", e.Descriptor, e.Cause)
	}
	return fmt.Sprintf("malformed field %q: %v", e.Descriptor, e.Kind)
}

func (e *MalformedError) Unwrap() error { return e.Cause }

// VisibilityError reports an unknown visibility token.
type VisibilityError struct {
	Token string
}

func (e *VisibilityError) Error() string {
	return fmt.Sprintf("invalid visibility %q, use %q or %q", e.Token, TokenPublic, TokenPrivate)
}
