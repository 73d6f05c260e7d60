// The sd package reads StringDecomposer decomposition reports: one
// tab-separated row per aligned monomer occurrence.
package sd

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// NoneMonomer is the marker StringDecomposer emits when no call was made.
const NoneMonomer = "None"

// Row is one aligned monomer occurrence as reported. Coordinates are kept
// exactly as written: 0-based with an inclusive End. Identity values are
// percentages. A missing secondary call has SecMonomer == NoneMonomer and
// SecIdentity 0.
type Row struct {
	SeqID       string
	Monomer     string
	SecMonomer  string
	Start       int
	End         int
	Identity    float64
	SecIdentity float64
	Reliability string
}

// Record is the ordered list of rows reported for one sequence.
type Record struct {
	SeqID string
	Rows  []Row
}

// Parse reads a decomposition report and calls process for every row.
// Files ending in .gz are decompressed transparently.
//
// A row has at least 8 tab-separated fields: sequence id, monomer id,
// start, end, identity, secondary monomer id, secondary identity and,
// last, the reliability marker. Reports carrying the extra
// homopolymer-compressed columns keep the marker last, so any fields in
// between are skipped.
func Parse(fname string, process func(Row) error) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(fname, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}

	nrows := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineno := 1; sc.Scan(); lineno++ {
		l := sc.Text()
		if l == "" {
			continue
		}

		row, err := parseRow(l)
		if err != nil {
			return fmt.Errorf("%s: line %d: %w", fname, lineno, err)
		}
		if err := process(row); err != nil {
			return err
		}
		nrows++
	}
	if err := sc.Err(); err != nil {
		return err
	}

	log.Debugf("read %d decomposition rows from %s", nrows, fname)
	return nil
}

func parseRow(l string) (Row, error) {
	ls := strings.Split(l, "\t")
	if len(ls) < 8 {
		return Row{}, fmt.Errorf("expected at least 8 fields, got %d", len(ls))
	}

	st, err := strconv.Atoi(ls[2])
	if err != nil {
		return Row{}, fmt.Errorf("bad start: %w", err)
	}
	en, err := strconv.Atoi(ls[3])
	if err != nil {
		return Row{}, fmt.Errorf("bad end: %w", err)
	}
	ident, err := parseIdentity(ls[4])
	if err != nil {
		return Row{}, fmt.Errorf("bad identity: %w", err)
	}
	secIdent, err := parseIdentity(ls[6])
	if err != nil {
		return Row{}, fmt.Errorf("bad secondary identity: %w", err)
	}

	return Row{
		SeqID:       ls[0],
		Monomer:     ls[1],
		SecMonomer:  ls[5],
		Start:       st,
		End:         en,
		Identity:    ident,
		SecIdentity: secIdent,
		Reliability: ls[len(ls)-1],
	}, nil
}

func parseIdentity(s string) (float64, error) {
	if s == NoneMonomer {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ReadRecords reads a decomposition report and groups its rows by
// sequence id, preserving row order within each record and the order in
// which sequences first appear.
func ReadRecords(fname string) ([]*Record, error) {
	var records []*Record
	byID := make(map[string]*Record)

	err := Parse(fname, func(row Row) error {
		rec, ok := byID[row.SeqID]
		if !ok {
			rec = &Record{SeqID: row.SeqID}
			byID[row.SeqID] = rec
			records = append(records, rec)
		}
		rec.Rows = append(rec.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
