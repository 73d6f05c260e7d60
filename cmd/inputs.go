package cmd

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alienzj/centroFlye/config"
	"github.com/alienzj/centroFlye/monomers"
	"github.com/alienzj/centroFlye/monostring"
	"github.com/alienzj/centroFlye/sd"
)

var (
	monomersFile      string
	readsFile         string
	decompositionFile string
)

// addInputFlags registers the three input files every subcommand needs.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&monomersFile, "monomers", "", "FASTA file with the monomer database")
	cmd.Flags().StringVar(&readsFile, "reads", "", "FASTA file with the read sequences")
	cmd.Flags().StringVar(&decompositionFile, "decomposition", "", "StringDecomposer decomposition TSV (optionally gzipped)")
	cmd.MarkFlagRequired("monomers")
	cmd.MarkFlagRequired("reads")
	cmd.MarkFlagRequired("decomposition")
}

// loadReads reads a FASTA file into an id -> sequence map. The id is the
// first word of the record header.
func loadReads(fname string) (map[string]string, error) {
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

	reads := make(map[string]string)
	reader := fasta.NewReader(r)
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		reads[strings.Fields(s.Name)[0]] = string(s.Bytes())
	}
	return reads, nil
}

// buildMonoStrings runs monostring construction over every decomposition
// record, skipping reads that are missing or too short to survive
// trimming.
func buildMonoStrings(conf config.Config) []*monostring.MonoString {
	db, err := monomers.LoadFasta(monomersFile)
	if err != nil {
		log.Fatalf("loading monomer database: %v", err)
	}
	log.Infof("monomer database: %d monomers", db.Size())

	reads, err := loadReads(readsFile)
	if err != nil {
		log.Fatalf("loading reads: %v", err)
	}

	records, err := sd.ReadRecords(decompositionFile)
	if err != nil {
		log.Fatalf("reading decomposition: %v", err)
	}

	opts := monostring.Options{
		MinIdentDiff:    conf.Reliability.MinIdentDiff,
		MaxIdentForDiff: conf.Reliability.MaxIdentForDiff,
	}

	var out []*monostring.MonoString
	for _, rec := range records {
		nucl, ok := reads[rec.SeqID]
		if !ok {
			log.Warnf("no read sequence for %s, skipping", rec.SeqID)
			continue
		}

		ms, err := monostring.FromRecord(rec.SeqID, db, rec, nucl, opts)
		if err != nil {
			log.Warnf("skipping %s: %v", rec.SeqID, err)
			continue
		}

		log.Infof("%s: %d monomers, reversed=%v, reliable=%.3f, lowercase=%.3f",
			ms.SeqID, ms.Len(), ms.IsReversed, ms.PercReliable(), ms.PercLowercase())
		out = append(out, ms)
	}
	return out
}
