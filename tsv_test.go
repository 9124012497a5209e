package rsidloci

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/guregu/null.v3"
)

func TestWriteTSV(t *testing.T) {
	rec := apoeRecord()
	rec.Source = "myvariant"

	noRef := apoeRecord()
	noRef.RSID = "rs2"
	noRef.RefAllele = null.String{}
	noRef.AltAlleles = []string{"C", "G"}
	noRef.Source = "ensembl"

	var buf bytes.Buffer
	if err := WriteTSV(&buf, []*LocusRecord{rec, nil, noRef}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{
		"rsid\tchromosome\tposition\tref\talt\tbuild\tsource",
		"rs1\t1\t100\tA\tC\ths37d5\tmyvariant",
		"rs2\t1\t100\tNA\tC,G\ths37d5\tensembl",
	}

	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), buf.String())
	}

	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: got %q, expected %q", i, lines[i], expected[i])
		}
	}
}
