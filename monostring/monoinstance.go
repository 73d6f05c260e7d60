package monostring

import (
	"github.com/alienzj/centroFlye/bio"
	"github.com/alienzj/centroFlye/monomers"
)

// MonoInstance is one observed occurrence of a monomer at a coordinate
// range of the owning sequence. Monomer is nil when no primary call was
// made (the instance is then unreliable); SecMonomer is nil when there
// was no runner-up call. Coordinates are half-open against the currently
// active orientation of the sequence.
type MonoInstance struct {
	Monomer     *monomers.Monomer
	SecMonomer  *monomers.Monomer
	Strand      Strand
	SecStrand   Strand
	SeqID       string
	Segment     string
	Start       int
	End         int
	SeqLen      int
	Reliability Reliability
	Identity    float64
	SecIdentity float64
}

// MonoIndex returns the index of the primary call, -1 if none was made.
func (mi *MonoInstance) MonoIndex() int {
	if mi.Monomer == nil {
		return -1
	}
	return mi.Monomer.Index
}

// SecMonoIndex returns the index of the secondary call, -1 if none was
// made.
func (mi *MonoInstance) SecMonoIndex() int {
	if mi.SecMonomer == nil {
		return -1
	}
	return mi.SecMonomer.Index
}

// MonoID returns the id of the primary call, empty if none was made.
func (mi *MonoInstance) MonoID() string {
	if mi.Monomer == nil {
		return ""
	}
	return mi.Monomer.ID
}

// RefSeq returns the reference sequence of the primary call.
func (mi *MonoInstance) RefSeq() string {
	if mi.Monomer == nil {
		return ""
	}
	return mi.Monomer.Seq
}

func (mi *MonoInstance) IsLowercase() bool {
	return mi.Strand == Reverse
}

func (mi *MonoInstance) IsReliable() bool {
	return mi.Reliability == Reliable
}

// Reverse flips the instance in place to the opposite orientation of the
// owning sequence: the segment is reverse-complemented, the strand
// switched and [Start, End) remapped from the other end.
func (mi *MonoInstance) Reverse() {
	mi.Segment = bio.RC(mi.Segment)
	mi.Strand = mi.Strand.Switch()
	// [st; en)
	mi.Start, mi.End = mi.SeqLen-mi.End, mi.SeqLen-mi.Start
}
