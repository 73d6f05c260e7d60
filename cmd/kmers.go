package cmd

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alienzj/centroFlye/config"
)

// kmersCmd aggregates symbol k-mer counts across all monostrings and
// prints "k TAB kmer TAB count" lines, most frequent first.
var kmersCmd = &cobra.Command{
	Use:   "kmers",
	Short: "Count symbol k-mers across the monostrings of a StringDecomposer run",
	Run:   runKmers,
}

func init() {
	addInputFlags(kmersCmd)
	kmersCmd.Flags().Int("min-k", 2, "smallest k to index")
	kmersCmd.Flags().Int("max-k", 5, "largest k to index")
	viper.BindPFlag("kmers.min-k", kmersCmd.Flags().Lookup("min-k"))
	viper.BindPFlag("kmers.max-k", kmersCmd.Flags().Lookup("max-k"))
	rootCmd.AddCommand(kmersCmd)
}

func runKmers(cmd *cobra.Command, args []string) {
	conf := config.New()
	mink, maxk := conf.Kmers.MinK, conf.Kmers.MaxK

	total := make(map[int]map[string]int)
	for _, ms := range buildMonoStrings(conf) {
		counts, err := ms.KmerCounts(mink, maxk)
		if err != nil {
			log.Fatalf("indexing %s: %v", ms.SeqID, err)
		}
		for k, kcnt := range counts {
			if total[k] == nil {
				total[k] = make(map[string]int)
			}
			for key, n := range kcnt {
				total[k][key] += n
			}
		}
	}

	type entry struct {
		k   int
		key string
		n   int
	}
	var entries []entry
	for k, kcnt := range total {
		for key, n := range kcnt {
			entries = append(entries, entry{k, key, n})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].k != entries[j].k {
			return entries[i].k < entries[j].k
		}
		if entries[i].n != entries[j].n {
			return entries[i].n > entries[j].n
		}
		return entries[i].key < entries[j].key
	})

	for _, e := range entries {
		fmt.Printf("%d\t%s\t%d\n", e.k, e.key, e.n)
	}
}
