// The kmers package builds multi-k k-mer indexes over integer symbol
// sequences. Symbols in the ignored set break the sequence: no k-mer
// ever spans them.
package kmers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Index maps each k in the requested range to the start positions of
// every k-mer of the sequence, keyed by the packed k-mer.
type Index map[int]map[string][]int

// Counts maps each k in the requested range to the number of occurrences
// of every k-mer of the sequence, keyed by the packed k-mer.
type Counts map[int]map[string]int

var Ekrange = errors.New("invalid k range")

// Key packs a symbol k-mer into a map key.
func Key(kmer []int) string {
	parts := make([]string, len(kmer))
	for i, s := range kmer {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// ParseKey unpacks a map key back into a symbol k-mer.
func ParseKey(key string) ([]int, error) {
	if key == "" {
		return nil, nil
	}

	parts := strings.Split(key, ",")
	kmer := make([]int, len(parts))
	for i, p := range parts {
		s, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid k-mer key %q: %w", key, err)
		}
		kmer[i] = s
	}

	return kmer, nil
}

// IndexSeq returns, for each k in [mink, maxk], the start positions of
// every k-mer of seq that contains no ignored symbol.
func IndexSeq(seq []int, mink, maxk int, ignored map[int]bool) (Index, error) {
	if err := checkRange(mink, maxk); err != nil {
		return nil, err
	}

	index := make(Index, maxk-mink+1)
	for k := mink; k <= maxk; k++ {
		kidx := make(map[string][]int)
		last := -1 // most recent ignored position
		for i := 0; i < len(seq); i++ {
			if ignored[seq[i]] {
				last = i
				continue
			}

			st := i - k + 1
			if st < 0 || st <= last {
				continue
			}
			key := Key(seq[st : i+1])
			kidx[key] = append(kidx[key], st)
		}
		index[k] = kidx
	}

	return index, nil
}

// CountSeq is IndexSeq reduced to occurrence counts.
func CountSeq(seq []int, mink, maxk int, ignored map[int]bool) (Counts, error) {
	index, err := IndexSeq(seq, mink, maxk, ignored)
	if err != nil {
		return nil, err
	}

	counts := make(Counts, len(index))
	for k, kidx := range index {
		kcnt := make(map[string]int, len(kidx))
		for key, positions := range kidx {
			kcnt[key] = len(positions)
		}
		counts[k] = kcnt
	}

	return counts, nil
}

func checkRange(mink, maxk int) error {
	if mink < 1 || mink > maxk {
		return fmt.Errorf("%w: [%d, %d]", Ekrange, mink, maxk)
	}
	return nil
}
