package monostring

import "fmt"

// Strand is the orientation of a monomer call relative to the reference
// monomer.
type Strand int

const (
	Forward Strand = iota
	Reverse
)

// Switch returns the opposite strand.
func (s Strand) Switch() Strand {
	if s == Forward {
		return Reverse
	}
	return Forward
}

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// Reliability tags how trustworthy a monomer call is. Unreliable calls
// render as the gap symbol in the monostring.
type Reliability int

const (
	Reliable Reliability = iota
	Unreliable
)

// ParseReliability decodes the raw marker of a decomposition row.
func ParseReliability(marker string) (Reliability, error) {
	switch marker {
	case "+":
		return Reliable, nil
	case "?":
		return Unreliable, nil
	}
	return Unreliable, fmt.Errorf("unknown reliability marker %q", marker)
}

func (r Reliability) String() string {
	if r == Unreliable {
		return "?"
	}
	return "+"
}
