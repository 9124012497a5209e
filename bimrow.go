package rsidloci

// Map columns in the BIM file to their positions
const (
	Chromosome int = iota
	VariantID
	Morgans
	Coordinate
	Allele1
	Allele2
)

// BIMRow holds the columns of a PLINK .bim row that are useful for seeding
// an rsID lookup. Only VariantID is required to be populated.
type BIMRow struct {
	Chromosome string
	Coordinate uint32 // Labeled "position" by most applications
	VariantID  string // E.g., RSID
	Allele1    string // Can contain > 1 character
	Allele2    string // Can contain > 1 character
}
