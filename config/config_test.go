package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultsDisableDowngrade(t *testing.T) {
	viper.Reset()
	c := New()

	// with these values the identity-gap rule can never fire
	if c.Reliability.MinIdentDiff != 0 {
		t.Errorf("min-ident-diff = %v, want 0", c.Reliability.MinIdentDiff)
	}
	if c.Reliability.MaxIdentForDiff != 1 {
		t.Errorf("max-ident-for-diff = %v, want 1", c.Reliability.MaxIdentForDiff)
	}
}

func TestDefaultsKmerRange(t *testing.T) {
	viper.Reset()
	c := New()

	if c.Kmers.MinK != 2 || c.Kmers.MaxK != 5 {
		t.Errorf("k range = [%d, %d], want [2, 5]", c.Kmers.MinK, c.Kmers.MaxK)
	}
}

func TestOverride(t *testing.T) {
	viper.Reset()
	viper.Set("reliability.min-ident-diff", 0.05)
	defer viper.Reset()

	c := New()
	if c.Reliability.MinIdentDiff != 0.05 {
		t.Errorf("min-ident-diff = %v, want 0.05", c.Reliability.MinIdentDiff)
	}
}
