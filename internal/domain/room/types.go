package room

import "errors"

var ErrInvalidRoomType = errors.New("invalid room type")

type Type string

const (
	TypeStandard     Type = "standard"
	TypeDeluxe       Type = "deluxe"
	TypeSuite        Type = "suite"
	TypeFamily       Type = "family"
	TypePresidential Type = "presidential"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypeFamily, TypePresidential:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}
