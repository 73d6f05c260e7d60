package bio

import (
	"testing"
)

func TestRC(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"", ""},
		{"A", "T"},
		{"ACGT", "ACGT"},
		{"ACGTACGTAC", "GTACGTACGT"},
		{"AAACCC", "GGGTTT"},
		{"ANA", "TNT"},
		{"acgt", "acgt"},
		{"AXA", "TNT"},
	}

	for _, tt := range tests {
		if got := RC(tt.seq); got != tt.want {
			t.Errorf("RC(%q) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestRCInvolutive(t *testing.T) {
	seqs := []string{"A", "ACGT", "ACGTACGTAC", "GGGGTTTTAACC"}
	for _, seq := range seqs {
		if got := RC(RC(seq)); got != seq {
			t.Errorf("RC(RC(%q)) = %q", seq, got)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ACGT", "ACGT", 0},
		{"ACGT", "", 4},
		{"", "ACGT", 4},
		{"ACGT", "AGGT", 1},
		{"ACGT", "AACGT", 1},
		{"ACGT", "CGT", 1},
		{"AAAA", "TTTT", 4},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"ACGT", "ACGT", 1},
		{"AAAA", "TTTT", 0},
		{"ACGT", "AGGT", 0.75},
	}

	for _, tt := range tests {
		if got := Identity(tt.a, tt.b); got != tt.want {
			t.Errorf("Identity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
