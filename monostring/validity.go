package monostring

import (
	"errors"
	"fmt"
)

var Einvalid = errors.New("invalid monostring")

// Validate checks that a monostring's symbol sequence and instance list
// agree and that every instance matches the nucleotide sequence at its
// coordinates. Corrected positions are exempt from the symbol check.
// It is side-effect free; construction runs it before returning and any
// failure there is fatal.
func Validate(ms *MonoString) error {
	if len(ms.symbols) != len(ms.Instances) {
		return fmt.Errorf("%w: %d symbols for %d instances",
			Euneven, len(ms.symbols), len(ms.Instances))
	}

	size := ms.DB.Size()
	for i, mi := range ms.Instances {
		if _, ok := ms.corrections[i]; ok {
			continue
		}
		if !mi.IsReliable() {
			continue
		}

		want := Symbol(mi.MonoIndex())
		if mi.Strand == Reverse {
			want += Symbol(size)
		}
		if ms.symbols[i] != want {
			return fmt.Errorf("%w: position %d holds %v, instance calls %v",
				Einvalid, i, ms.symbols[i], want)
		}
	}

	seqLen := len(ms.NuclSequence)
	for i, mi := range ms.Instances {
		if mi.End-mi.Start != len(mi.Segment) {
			return fmt.Errorf("%w: instance %d spans [%d, %d) but keeps a segment of length %d",
				Einvalid, i, mi.Start, mi.End, len(mi.Segment))
		}
		if mi.Start < 0 || mi.Start >= mi.End || mi.End > mi.SeqLen {
			return fmt.Errorf("%w: instance %d coordinates [%d, %d) outside [0, %d)",
				Einvalid, i, mi.Start, mi.End, mi.SeqLen)
		}
		if mi.SeqLen != seqLen {
			return fmt.Errorf("%w: instance %d records sequence length %d, sequence has %d",
				Einvalid, i, mi.SeqLen, seqLen)
		}
		if ms.NuclSequence[mi.Start:mi.End] != mi.Segment {
			return fmt.Errorf("%w: instance %d segment disagrees with sequence at [%d, %d)",
				Einvalid, i, mi.Start, mi.End)
		}
	}

	return nil
}
