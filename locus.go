// Package rsidloci holds the locus record produced by an rsID lookup against
// the hs37d5 assembly, along with helpers to format it and to read lists of
// identifiers from local or Google Storage files.
package rsidloci

import (
	"gopkg.in/guregu/null.v3"
)

// Build is the assembly label attached to every record. For chromosomes
// 1-22, X, Y and MT, hs37d5 coordinates are identical to GRCh37/hg19.
const Build = "hs37d5"

// LocusRecord is the result of a single rsID lookup. Chromosome and Position
// are nullable because the upstream services may omit either; a record that
// is missing one of them is never handed back to callers.
type LocusRecord struct {
	RSID       string
	Chromosome null.String // No "chr" prefix
	Position   null.Int    // 1-based
	RefAllele  null.String
	AltAlleles []string
	Build      string

	// Source names the service that produced the record.
	Source string
}

// NewLocusRecord returns an empty record for rsid, with the build label set.
func NewLocusRecord(rsid, source string) *LocusRecord {
	return &LocusRecord{
		RSID:       NormalizeRSID(rsid),
		AltAlleles: []string{},
		Build:      Build,
		Source:     source,
	}
}

// Complete reports whether both the chromosome and the position are
// present. An empty chromosome name or a zero position count as missing.
func (l *LocusRecord) Complete() bool {
	if l == nil {
		return false
	}

	return l.Chromosome.Valid && l.Chromosome.String != "" &&
		l.Position.Valid && l.Position.Int64 != 0
}
