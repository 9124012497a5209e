package rsidloci

import "strings"

// RSIDPrefix is the marker carried by dbSNP reference SNP cluster IDs.
const RSIDPrefix = "rs"

// NormalizeRSID prepends the "rs" prefix if it is missing. Surrounding
// whitespace is removed. Nothing else about the identifier is changed.
func NormalizeRSID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, RSIDPrefix) {
		return id
	}

	return RSIDPrefix + id
}

// LooksLikeRSID is true for identifiers of the form rs<digits>.
func LooksLikeRSID(id string) bool {
	if !strings.HasPrefix(id, RSIDPrefix) || len(id) == len(RSIDPrefix) {
		return false
	}

	for _, c := range id[len(RSIDPrefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// StripChrPrefix turns "chr1" into "1". Names without the prefix are
// returned unchanged.
func StripChrPrefix(chrom string) string {
	return strings.TrimPrefix(strings.TrimSpace(chrom), "chr")
}
