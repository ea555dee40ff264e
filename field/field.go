// Package field parses compact field descriptors of the form name:type[:visibility].
package field

import (
	"strings"
	"unicode"
)

// Separator splits the segments of a descriptor.
const Separator = ":"

// Definition is one parsed field.
// Name and Type are taken verbatim from the descriptor.
type Definition struct {
	Name       string
	Type       string
	Visibility Visibility
}

// Parse converts a descriptor into a Definition.
//
// The descriptor must not contain whitespace and must have two or three
// segments. The visibility defaults to Public when the third segment is
// absent. Errors are always *MalformedError.
func Parse(descriptor string) (Definition, error) {
	if strings.IndexFunc(descriptor, unicode.IsSpace) >= 0 {
		return Definition{}, &MalformedError{Kind: ContainsSpace, Descriptor: descriptor}
	}

	segs := strings.Split(descriptor, Separator)
	if len(segs) != 2 && len(segs) != 3 {
		return Definition{}, &MalformedError{Kind: InvalidFormat, Descriptor: descriptor}
	}
	// an empty name or type is a shape error as well
	if segs[0] == "" || segs[1] == "" {
		return Definition{}, &MalformedError{Kind: InvalidFormat, Descriptor: descriptor}
	}

	def := Definition{Name: segs[0], Type: segs[1], Visibility: Public}
	if len(segs) == 3 {
		v, err := ParseVisibility(segs[2])
		if err != nil {
			return Definition{}, &MalformedError{Kind: InvalidVisibility, Descriptor: descriptor, Cause: err}
		}
		def.Visibility = v
	}
	return def, nil
}

// ParseAll parses descriptors in order and stops at the first failure.
// The index of the failing descriptor is returned with the error, -1 otherwise.
func ParseAll(descriptors []string) ([]Definition, int, error) {
	defs := make([]Definition, 0, len(descriptors))
	for i, d := range descriptors {
		def, err := Parse(d)
		if err != nil {
			return nil, i, err
		}
		defs = append(defs, def)
	}
	return defs, -1, nil
}

func (d Definition) String() string {
	return d.Name + Separator + d.Type + Separator + d.Visibility.String()
}
