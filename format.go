package rsidloci

import (
	"fmt"
	"strings"
)

// NotFound is printed in place of a locus when the lookup produced nothing.
const NotFound = "Not found"

type Style byte

const (
	// StyleHs37d5 renders loci without a "chr" prefix (1:12345), which is the
	// naming used by the hs37d5 FASTA and by IGV when it is loaded.
	StyleHs37d5 Style = iota
	// StyleStandard renders loci UCSC-style (chr1:12345).
	StyleStandard
)

func (s Style) String() string {
	switch s {
	case StyleHs37d5:
		return "hs37d5"
	case StyleStandard:
		return "standard"
	}

	return fmt.Sprintf("Style(%d)", byte(s))
}

// ParseStyle accepts "hs37d5" (alias "compact") and "standard" (alias
// "ucsc").
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hs37d5", "compact":
		return StyleHs37d5, nil
	case "standard", "ucsc":
		return StyleStandard, nil
	}

	return StyleHs37d5, fmt.Errorf("unknown style %q: expected hs37d5 or standard", name)
}

// Format renders a record as "chrom:pos (ref/alt)". A nil record yields
// NotFound.
func Format(loci *LocusRecord, style Style) string {
	if loci == nil {
		return NotFound
	}

	ref := "N/A"
	if loci.RefAllele.Valid {
		ref = loci.RefAllele.String
	}

	alt := strings.Join(loci.AltAlleles, ",")
	if alt == "" {
		alt = "N/A"
	}

	chrom := loci.Chromosome.String
	if style == StyleStandard {
		chrom = "chr" + chrom
	}

	return fmt.Sprintf("%s:%d (%s/%s)", chrom, loci.Position.Int64, ref, alt)
}
