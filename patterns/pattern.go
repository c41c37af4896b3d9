package patterns

import "fmt"

// Pattern describes one test vector request.
type Pattern struct {
	Name   string
	Kind   Kind
	Width  Width
	Length int
	Seed   uint32
}

func (p Pattern) Validate() error {
	if _, found := kindNames[p.Kind]; !found {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(p.Kind))
	}
	if err := p.Width.check(); err != nil {
		return err
	}
	if p.Length < 0 {
		return fmt.Errorf("%w: pattern %q length %d", ErrInvalidLength, p.Name, p.Length)
	}
	return nil
}

func (p Pattern) Generate() ([]uint32, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.Kind {
	case WalkingOnes:
		return WalkingBit(p.Width, p.Length, true)
	case WalkingZeros:
		return WalkingBit(p.Width, p.Length, false)
	case AlternatingWords:
		return Alternating(p.Width, p.Seed, p.Length)
	case CheckerboardWords:
		return Checkerboard(p.Width, p.Length)
	default:
		return ZerosOnes(p.Width, p.Length)
	}
}

func (p Pattern) String() string {
	if p.Kind.Seeded() {
		return fmt.Sprintf("%s(%s %s seed=%#x len=%d)", p.Name, p.Kind, p.Width, p.Seed, p.Length)
	}
	return fmt.Sprintf("%s(%s %s len=%d)", p.Name, p.Kind, p.Width, p.Length)
}
