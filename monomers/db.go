// The monomers package holds the monomer reference database: the catalog
// of repeat units that alignment records call against.
package monomers

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
)

// Monomer is one reference repeat unit.
type Monomer struct {
	ID    string
	Index int
	Seq   string
}

// DB is a read-only catalog of monomers with stable indexes assigned in
// load order.
type DB struct {
	monomers []*Monomer
	id2index map[string]int
}

var (
	Edupid   = errors.New("duplicate monomer id")
	Enomono  = errors.New("no such monomer")
	Eemptydb = errors.New("empty monomer database")
)

// LoadFasta reads a monomer database from a FASTA file. Files ending in
// .gz are decompressed transparently.
func LoadFasta(fname string) (db *DB, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(fname, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	return Read(r)
}

// New returns an empty database.
func New() *DB {
	return &DB{id2index: make(map[string]int)}
}

// Read reads a monomer database from FASTA formatted input. The monomer
// id is the first word of the record header.
func Read(r io.Reader) (*DB, error) {
	db := New()

	reader := fasta.NewReader(r)
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id := strings.Fields(s.Name)[0]
		if err := db.Add(id, string(s.Bytes())); err != nil {
			return nil, err
		}
	}

	if db.Size() == 0 {
		return nil, Eemptydb
	}
	return db, nil
}

// Add appends a monomer to the database, assigning it the next index.
// Also the extension point for consensus monomers added after loading.
func (db *DB) Add(id, seq string) error {
	if _, ok := db.id2index[id]; ok {
		return fmt.Errorf("%w: %s", Edupid, id)
	}

	index := len(db.monomers)
	db.monomers = append(db.monomers, &Monomer{ID: id, Index: index, Seq: seq})
	db.id2index[id] = index
	return nil
}

// Size returns the number of monomers in the database.
func (db *DB) Size() int {
	return len(db.monomers)
}

// ByIndex returns the monomer with the given index.
func (db *DB) ByIndex(index int) (*Monomer, error) {
	if index < 0 || index >= len(db.monomers) {
		return nil, fmt.Errorf("%w: index %d", Enomono, index)
	}
	return db.monomers[index], nil
}

// IndexByID returns the index of the monomer with the given id.
func (db *DB) IndexByID(id string) (int, bool) {
	index, ok := db.id2index[id]
	return index, ok
}

// Indexes returns every known monomer index, in order.
func (db *DB) Indexes() []int {
	indexes := make([]int, len(db.monomers))
	for i := range db.monomers {
		indexes[i] = i
	}
	return indexes
}
