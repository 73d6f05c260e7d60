// The monostring package converts a per-sequence decomposition of
// monomer alignments into a canonical, orientation-normalized symbol
// sequence and maintains its invariants under targeted corrections.
package monostring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/alienzj/centroFlye/bio"
	"github.com/alienzj/centroFlye/kmers"
	"github.com/alienzj/centroFlye/monomers"
	"github.com/alienzj/centroFlye/sd"
)

// Symbol is one position of a monostring: a monomer index, offset by the
// database size when the call is on the reverse strand, or Gap for an
// unreliable call.
type Symbol int

// Gap is the reserved symbol for unreliable positions.
const Gap Symbol = -1

// GapMark is the textual form of Gap; ReverseMark is the suffix a
// decomposition row appends to a monomer id to denote a reverse-strand
// call.
const (
	GapMark     = "?"
	ReverseMark = "'"
)

func (s Symbol) String() string {
	if s == Gap {
		return GapMark
	}
	return strconv.Itoa(int(s))
}

// Correction is one manual override of a symbol position. Old keeps the
// value the position had before its first correction.
type Correction struct {
	Old Symbol
	New Symbol
}

// MonoString is the orientation-normalized monomer decomposition of one
// nucleotide sequence. Instances and NuclSequence are stored in the
// canonical orientation; the symbol sequence stays derivable from the
// instances except at corrected positions.
type MonoString struct {
	SeqID        string
	Instances    []*MonoInstance
	NuclSequence string
	DB           *monomers.DB
	IsReversed   bool

	symbols     []Symbol
	corrections map[int]Correction
}

var (
	Eshort  = errors.New("decomposition record too short")
	Erange  = errors.New("position out of range")
	Esame   = errors.New("correction does not change the symbol")
	Euneven = errors.New("symbol sequence and instance list disagree")
)

// Options tune construction. The identity-gap reliability downgrade is
// disabled with the zero MinIdentDiff and a MaxIdentForDiff of 1; it
// would mark an instance unreliable when the primary/secondary identity
// gap is below MinIdentDiff while the secondary identity exceeds
// MaxIdentForDiff.
type Options struct {
	MinIdentDiff    float64
	MaxIdentForDiff float64
}

// DefaultOptions keep the downgrade rule a no-op.
func DefaultOptions() Options {
	return Options{MinIdentDiff: 0, MaxIdentForDiff: 1}
}

// FromRecord builds the monostring of one sequence from its
// decomposition record. The first and last rows are discarded as
// alignment artifacts; the remaining rows become MonoInstances, the
// whole string is flipped to the majority orientation of its reliable
// instances, and the symbol sequence is derived. The returned monostring
// has passed Validate; any violation fails construction instead.
func FromRecord(seqID string, db *monomers.DB, rec *sd.Record, nuclSeq string, opts Options) (*MonoString, error) {
	// the edge monomers are systematically unreliable artifacts of the
	// aligner
	if len(rec.Rows) <= 2 {
		return nil, fmt.Errorf("%w: %s has %d rows", Eshort, seqID, len(rec.Rows))
	}
	rows := rec.Rows[1 : len(rec.Rows)-1]

	insts := make([]*MonoInstance, 0, len(rows))
	for _, row := range rows {
		mi, err := buildInstance(seqID, db, row, nuclSeq, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seqID, err)
		}
		insts = append(insts, mi)
	}

	nucl := nuclSeq
	isReversed := lowercaseFraction(insts) > 0.5
	if isReversed {
		nucl = reverseAll(insts, nucl)
	}

	ms := &MonoString{
		SeqID:        seqID,
		Instances:    insts,
		NuclSequence: nucl,
		DB:           db,
		IsReversed:   isReversed,
		symbols:      deriveSymbols(insts, db),
		corrections:  make(map[int]Correction),
	}
	if err := Validate(ms); err != nil {
		return nil, fmt.Errorf("%s: %w", seqID, err)
	}

	log.Debugf("constructed monostring for %s: %d symbols, reversed=%v",
		seqID, len(ms.symbols), isReversed)
	return ms, nil
}

func buildInstance(seqID string, db *monomers.DB, row sd.Row, nuclSeq string, opts Options) (*MonoInstance, error) {
	index, strand, err := decodeID(db, row.Monomer)
	if err != nil {
		return nil, err
	}
	secIndex, secStrand, err := decodeID(db, row.SecMonomer)
	if err != nil {
		return nil, err
	}

	// reported end coordinates are inclusive
	st, en := row.Start, row.End+1
	if st < 0 || st >= en || en > len(nuclSeq) {
		return nil, fmt.Errorf("row coordinates [%d, %d) outside sequence of length %d",
			st, en, len(nuclSeq))
	}

	rel, err := ParseReliability(row.Reliability)
	if err != nil {
		return nil, err
	}

	ident, secIdent := row.Identity/100, row.SecIdentity/100
	// disabled with the default thresholds
	if math.Abs(ident-secIdent) < opts.MinIdentDiff && secIdent > opts.MaxIdentForDiff {
		rel = Unreliable
	}

	var mono, sec *monomers.Monomer
	if index >= 0 {
		if mono, err = db.ByIndex(index); err != nil {
			return nil, err
		}
	} else {
		// a row without a primary call carries no usable symbol
		rel = Unreliable
	}
	if secIndex >= 0 {
		if sec, err = db.ByIndex(secIndex); err != nil {
			return nil, err
		}
	}

	return &MonoInstance{
		Monomer:     mono,
		SecMonomer:  sec,
		Strand:      strand,
		SecStrand:   secStrand,
		SeqID:       seqID,
		Segment:     nuclSeq[st:en],
		Start:       st,
		End:         en,
		SeqLen:      len(nuclSeq),
		Reliability: rel,
		Identity:    ident,
		SecIdentity: secIdent,
	}, nil
}

// decodeID splits a reported monomer id into a database index and a
// strand: a ReverseMark suffix denotes a reverse-strand call and is
// stripped before lookup. The none marker yields index -1.
func decodeID(db *monomers.DB, id string) (int, Strand, error) {
	if id == sd.NoneMonomer {
		return -1, Forward, nil
	}

	strand := Forward
	if strings.HasSuffix(id, ReverseMark) {
		id = strings.TrimSuffix(id, ReverseMark)
		strand = Reverse
	}

	index, ok := db.IndexByID(id)
	if !ok {
		return 0, Forward, fmt.Errorf("unknown monomer %q", id)
	}
	return index, strand, nil
}

// lowercaseFraction is the fraction of reliable instances whose call is
// on the reverse strand, 0 when there are none.
func lowercaseFraction(insts []*MonoInstance) float64 {
	var rel, lower int
	for _, mi := range insts {
		if !mi.IsReliable() {
			continue
		}
		rel++
		if mi.IsLowercase() {
			lower++
		}
	}

	if rel == 0 {
		return 0
	}
	return float64(lower) / float64(rel)
}

// reverseAll flips the whole string to the opposite orientation: the
// instance order, every instance in place, and the nucleotide sequence.
// Applying it twice restores the original.
func reverseAll(insts []*MonoInstance, nucl string) string {
	for i, j := 0, len(insts)-1; i < j; i, j = i+1, j-1 {
		insts[i], insts[j] = insts[j], insts[i]
	}
	for _, mi := range insts {
		mi.Reverse()
	}
	return bio.RC(nucl)
}

func deriveSymbols(insts []*MonoInstance, db *monomers.DB) []Symbol {
	symbols := make([]Symbol, 0, len(insts))
	for _, mi := range insts {
		if !mi.IsReliable() {
			symbols = append(symbols, Gap)
			continue
		}

		sym := Symbol(mi.MonoIndex())
		if mi.Strand == Reverse {
			sym += Symbol(db.Size())
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// Len returns the number of symbols.
func (ms *MonoString) Len() int {
	return len(ms.symbols)
}

// At returns the symbol at pos.
func (ms *MonoString) At(pos int) Symbol {
	return ms.symbols[pos]
}

// Slice returns a copy of the symbols in [st, en).
func (ms *MonoString) Slice(st, en int) []Symbol {
	out := make([]Symbol, en-st)
	copy(out, ms.symbols[st:en])
	return out
}

// Symbols returns a copy of the whole symbol sequence.
func (ms *MonoString) Symbols() []Symbol {
	return ms.Slice(0, len(ms.symbols))
}

// SetSymbol overrides the symbol at pos, recording the change in the
// correction log. The new value must differ from the current one.
// Re-correcting a position keeps the log entry's original value while
// updating its corrected value.
func (ms *MonoString) SetSymbol(pos int, sym Symbol) error {
	if pos < 0 || pos >= len(ms.symbols) {
		return fmt.Errorf("%w: position %d of %d", Erange, pos, len(ms.symbols))
	}

	old := ms.symbols[pos]
	if sym == old {
		return fmt.Errorf("%w: position %d is already %v", Esame, pos, sym)
	}

	cor := Correction{Old: old, New: sym}
	if prev, ok := ms.corrections[pos]; ok {
		cor.Old = prev.Old
	}
	ms.corrections[pos] = cor
	ms.symbols[pos] = sym
	return nil
}

// IsCorrected reports whether any position has been overridden.
func (ms *MonoString) IsCorrected() bool {
	return len(ms.corrections) > 0
}

// Corrections returns a copy of the correction log keyed by position.
func (ms *MonoString) Corrections() map[int]Correction {
	out := make(map[int]Correction, len(ms.corrections))
	for pos, cor := range ms.corrections {
		out[pos] = cor
	}
	return out
}

// PercReliable returns the fraction of instances that are reliable.
func (ms *MonoString) PercReliable() float64 {
	if len(ms.Instances) == 0 {
		return 0
	}

	var n int
	for _, mi := range ms.Instances {
		if mi.IsReliable() {
			n++
		}
	}
	return float64(n) / float64(len(ms.Instances))
}

// PercUnreliable returns the fraction of instances that are unreliable.
func (ms *MonoString) PercUnreliable() float64 {
	return 1 - ms.PercReliable()
}

// PercLowercase returns, among reliable instances only, the fraction
// whose call is on the reverse strand.
func (ms *MonoString) PercLowercase() float64 {
	return lowercaseFraction(ms.Instances)
}

// PercUppercase returns, among reliable instances only, the fraction
// whose call is on the forward strand.
func (ms *MonoString) PercUppercase() float64 {
	return 1 - ms.PercLowercase()
}

// ClassifyInstances partitions the instances by monomer index. Every
// index known to the database is present, with a nil slice when it has
// no instances. With onlyReliable, unreliable instances are left out.
func (ms *MonoString) ClassifyInstances(onlyReliable bool) map[int][]*MonoInstance {
	classes := make(map[int][]*MonoInstance, ms.DB.Size())
	for _, index := range ms.DB.Indexes() {
		classes[index] = nil
	}

	for _, mi := range ms.Instances {
		if onlyReliable && !mi.IsReliable() {
			continue
		}
		index := mi.MonoIndex()
		if index < 0 {
			continue
		}
		classes[index] = append(classes[index], mi)
	}
	return classes
}

// InstancesByIndex returns the instances carrying the given monomer
// index, in string order.
func (ms *MonoString) InstancesByIndex(index int, onlyReliable bool) []*MonoInstance {
	return ms.ClassifyInstances(onlyReliable)[index]
}

// NuclSegment returns the nucleotide sequence in [st, en).
func (ms *MonoString) NuclSegment(st, en int) (string, error) {
	if !(0 <= st && st < en && en < len(ms.NuclSequence)) {
		return "", fmt.Errorf("%w: [%d, %d) in sequence of length %d",
			Erange, st, en, len(ms.NuclSequence))
	}
	return ms.NuclSequence[st:en], nil
}

// Identities returns each instance's primary identity, in string order.
func (ms *MonoString) Identities() []float64 {
	identities := make([]float64, len(ms.Instances))
	for i, mi := range ms.Instances {
		identities[i] = mi.Identity
	}
	return identities
}

// KmerIndex returns, for each k in [mink, maxk], the start positions of
// every k-mer of the symbol sequence. K-mers never span a gap.
func (ms *MonoString) KmerIndex(mink, maxk int) (kmers.Index, error) {
	return kmers.IndexSeq(ms.symbolInts(), mink, maxk, gapSet)
}

// KmerCounts is KmerIndex reduced to occurrence counts.
func (ms *MonoString) KmerCounts(mink, maxk int) (kmers.Counts, error) {
	return kmers.CountSeq(ms.symbolInts(), mink, maxk, gapSet)
}

var gapSet = map[int]bool{int(Gap): true}

func (ms *MonoString) symbolInts() []int {
	seq := make([]int, len(ms.symbols))
	for i, s := range ms.symbols {
		seq[i] = int(s)
	}
	return seq
}

// String renders the symbol sequence with one space between symbols and
// GapMark for gaps.
func (ms *MonoString) String() string {
	parts := make([]string, len(ms.symbols))
	for i, s := range ms.symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
