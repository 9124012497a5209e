package chrpos

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	contigs, err := Lookup("hs37d5")
	if err != nil {
		t.Fatal(err)
	}

	if len(contigs) != 25 {
		t.Errorf("Expected 25 primary contigs, found %d", len(contigs))
	}

	for chrom, expected := range map[string]int{
		"1":     249250621,
		"chr19": 59128983,
		"X":     155270560,
		"chrM":  16569,
	} {
		got, exists := contigs.Length(chrom)
		if !exists || got != expected {
			t.Errorf("%s: got %d (exists %v), expected %d", chrom, got, exists, expected)
		}
	}
}

func TestLookupAliases(t *testing.T) {
	for _, assembly := range []string{"GRCh37", "hg19"} {
		if _, err := Lookup(assembly); err != nil {
			t.Errorf("%s: %v", assembly, err)
		}
	}

	if _, err := Lookup("grch38"); err == nil {
		t.Error("Expected an error for an assembly whose coordinates differ")
	}
}

func TestCheck(t *testing.T) {
	contigs, err := Lookup("hs37d5")
	if err != nil {
		t.Fatal(err)
	}

	// APOE rs429358
	if err := contigs.Check("19", 45411941); err != nil {
		t.Error(err)
	}

	if err := contigs.Check("19", 59128984); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}

	if err := contigs.Check("1", 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for position 0, got %v", err)
	}

	if err := contigs.Check("hs37d5", 100); !errors.Is(err, ErrNonPrimaryContig) {
		t.Errorf("Expected ErrNonPrimaryContig, got %v", err)
	}

	if err := contigs.Check("6_cox_hap2", 100); !errors.Is(err, ErrNonPrimaryContig) {
		t.Errorf("Expected ErrNonPrimaryContig, got %v", err)
	}
}
