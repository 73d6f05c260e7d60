// The bio package provides the basic nucleotide sequence primitives:
// reverse complement, edit distance and fractional identity.
package bio

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['N'] = 'N'
	complement['a'] = 't'
	complement['t'] = 'a'
	complement['c'] = 'g'
	complement['g'] = 'c'
	complement['n'] = 'n'
}

// RC returns the reverse complement of a nucleotide sequence.
// Characters without a defined complement map to 'N'.
func RC(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}

	return string(out)
}

// Distance implements Levenshtein distance between two sequences
func Distance(a, b string) int {
	f := make([]int, len(b)+1)

	for j := range f {
		f[j] = j
	}

	for n := 0; n < len(a); n++ {
		ca := a[n]
		j := 1
		fj1 := f[0] // fj1 is the value of f[j - 1] in last iteration
		f[0]++
		for m := 0; m < len(b); m++ {
			cb := b[m]
			mn := min(f[j]+1, f[j-1]+1) // delete & insert
			if cb != ca {
				mn = min(mn, fj1+1) // change
			} else {
				mn = min(mn, fj1) // matched
			}

			fj1, f[j] = f[j], mn // save f[j] to fj1(j is about to increase), update f[j] to mn
			j++
		}
	}

	return f[len(f)-1]
}

// Identity returns the fractional identity of two sequences:
// 1 - distance/max(len). The result is between 0 and 1.
func Identity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	l := max(len(a), len(b))
	return 1 - float64(Distance(a, b))/float64(l)
}
