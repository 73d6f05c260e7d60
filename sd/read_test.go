package sd

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const report = "read1\tmA\t0\t2\t95.5\tmB\t81.0\t+\n" +
	"read1\tmB'\t3\t5\t92.0\tNone\tNone\t+\n" +
	"read1\tNone\t6\t9\t40.0\tNone\tNone\t?\n" +
	"read2\tmA\t0\t3\t99.0\tmB\t85.5\t+\n"

func writeReport(t *testing.T, name, text string) string {
	t.Helper()

	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(text), 0666); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return fname
}

func TestParse(t *testing.T) {
	fname := writeReport(t, "decomposition.tsv", report)

	var rows []Row
	err := Parse(fname, func(row Row) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	want := Row{
		SeqID:       "read1",
		Monomer:     "mA",
		SecMonomer:  "mB",
		Start:       0,
		End:         2,
		Identity:    95.5,
		SecIdentity: 81.0,
		Reliability: "+",
	}
	if rows[0] != want {
		t.Errorf("row 0 = %+v, want %+v", rows[0], want)
	}

	if rows[1].SecMonomer != NoneMonomer || rows[1].SecIdentity != 0 {
		t.Errorf("row 1 secondary = %q, %v, want None, 0", rows[1].SecMonomer, rows[1].SecIdentity)
	}
	if rows[2].Reliability != "?" {
		t.Errorf("row 2 reliability = %q, want ?", rows[2].Reliability)
	}
}

func TestParseExtraColumns(t *testing.T) {
	// homopolymer-compressed reports carry four extra columns before the
	// reliability marker
	line := "read1\tmA\t0\t2\t95.5\tmB\t81.0\tmA\t96.0\tmB\t82.0\t?\n"
	fname := writeReport(t, "decomposition.tsv", line)

	var rows []Row
	if err := Parse(fname, func(row Row) error {
		rows = append(rows, row)
		return nil
	}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(rows) != 1 || rows[0].Reliability != "?" {
		t.Fatalf("rows = %+v, want one row with reliability ?", rows)
	}
}

func TestParseBadRow(t *testing.T) {
	fname := writeReport(t, "decomposition.tsv", "read1\tmA\tzero\t2\t95.5\tmB\t81.0\t+\n")

	err := Parse(fname, func(Row) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("Parse: err = %v, want line-tagged parse error", err)
	}
}

func TestParseGzip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "decomposition.tsv.gz")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatalf("creating %s: %v", fname, err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(report)); err != nil {
		t.Fatalf("writing gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("closing gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	n := 0
	if err := Parse(fname, func(Row) error { n++; return nil }); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n != 4 {
		t.Errorf("got %d rows, want 4", n)
	}
}

func TestReadRecords(t *testing.T) {
	fname := writeReport(t, "decomposition.tsv", report)

	records, err := ReadRecords(fname)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SeqID != "read1" || len(records[0].Rows) != 3 {
		t.Errorf("record 0 = %s with %d rows, want read1 with 3", records[0].SeqID, len(records[0].Rows))
	}
	if records[1].SeqID != "read2" || len(records[1].Rows) != 1 {
		t.Errorf("record 1 = %s with %d rows, want read2 with 1", records[1].SeqID, len(records[1].Rows))
	}
}
