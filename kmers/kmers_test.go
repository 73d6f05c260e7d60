package kmers

import (
	"errors"
	"reflect"
	"testing"
)

var gap = map[int]bool{-1: true}

func TestIndexSeqSkipsGaps(t *testing.T) {
	seq := []int{0, 1, -1, 2, 3}

	index, err := IndexSeq(seq, 2, 2, gap)
	if err != nil {
		t.Fatalf("IndexSeq: %v", err)
	}

	want := map[string][]int{
		Key([]int{0, 1}): {0},
		Key([]int{2, 3}): {3},
	}
	if !reflect.DeepEqual(index[2], want) {
		t.Errorf("2-mers = %v, want %v", index[2], want)
	}
}

func TestIndexSeqMultiK(t *testing.T) {
	seq := []int{0, 1, 0, 1, 0}

	index, err := IndexSeq(seq, 2, 3, nil)
	if err != nil {
		t.Fatalf("IndexSeq: %v", err)
	}

	want2 := map[string][]int{
		Key([]int{0, 1}): {0, 2},
		Key([]int{1, 0}): {1, 3},
	}
	if !reflect.DeepEqual(index[2], want2) {
		t.Errorf("2-mers = %v, want %v", index[2], want2)
	}

	want3 := map[string][]int{
		Key([]int{0, 1, 0}): {0, 2},
		Key([]int{1, 0, 1}): {1},
	}
	if !reflect.DeepEqual(index[3], want3) {
		t.Errorf("3-mers = %v, want %v", index[3], want3)
	}
}

func TestCountSeq(t *testing.T) {
	seq := []int{0, 1, 0, 1, -1, 0, 1}

	counts, err := CountSeq(seq, 2, 2, gap)
	if err != nil {
		t.Fatalf("CountSeq: %v", err)
	}

	want := map[string]int{
		Key([]int{0, 1}): 3,
		Key([]int{1, 0}): 1,
	}
	if !reflect.DeepEqual(counts[2], want) {
		t.Errorf("2-mer counts = %v, want %v", counts[2], want)
	}
}

func TestIndexSeqBadRange(t *testing.T) {
	if _, err := IndexSeq([]int{0, 1}, 0, 2, nil); !errors.Is(err, Ekrange) {
		t.Errorf("mink=0: err = %v, want Ekrange", err)
	}
	if _, err := IndexSeq([]int{0, 1}, 3, 2, nil); !errors.Is(err, Ekrange) {
		t.Errorf("mink>maxk: err = %v, want Ekrange", err)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	kmers := [][]int{{0}, {0, 1, 2}, {12, 7, 12}, {100, 0}}
	for _, kmer := range kmers {
		got, err := ParseKey(Key(kmer))
		if err != nil {
			t.Fatalf("ParseKey(Key(%v)): %v", kmer, err)
		}
		if !reflect.DeepEqual(got, kmer) {
			t.Errorf("ParseKey(Key(%v)) = %v", kmer, got)
		}
	}
}
