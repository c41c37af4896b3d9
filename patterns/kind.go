package patterns

import (
	"fmt"
	"strings"
)

type Kind int

const (
	WalkingOnes Kind = iota
	WalkingZeros
	AlternatingWords
	CheckerboardWords
	ZerosOnesWords
)

var kindNames = map[Kind]string{
	WalkingOnes:       "walking-ones",
	WalkingZeros:      "walking-zeros",
	AlternatingWords:  "alternating",
	CheckerboardWords: "checkerboard",
	ZerosOnesWords:    "zeros-ones",
}

func (k Kind) String() string {
	if name, found := kindNames[k]; found {
		return name
	}
	return "unknown"
}

// Seeded reports whether the kind uses the Pattern seed.
func (k Kind) Seeded() bool {
	return k == AlternatingWords
}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
