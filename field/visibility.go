package field

import "fmt"

// Visibility controls whether a rendered field carries a public access marker.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// Visibility tokens accepted in the third segment of a descriptor.
const (
	TokenPublic  = "pub"
	TokenPrivate = "pri"
)

// ParseVisibility maps "pub" to Public and "pri" to Private.
// Any other token fails with a *VisibilityError carrying the token.
func ParseVisibility(token string) (Visibility, error) {
	switch token {
	case TokenPublic:
		return Public, nil
	case TokenPrivate:
		return Private, nil
	}
	return Public, &VisibilityError{Token: token}
}

func (v Visibility) IsPublic() bool { return v == Public }

func (v Visibility) String() string {
	switch v {
	case Public:
		return TokenPublic
	case Private:
		return TokenPrivate
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}
