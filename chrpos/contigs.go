// Package chrpos knows the lengths of the primary contigs of the hs37d5
// assembly (GRCh37 plus decoys). hs37d5 shares GRCh37's coordinates for
// chromosomes 1-22, X, Y and MT; loci on any other contig cannot be assumed
// to carry over between the two.
package chrpos

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

//go:embed lookups/*
var embeddedTemplates embed.FS

var (
	ErrNonPrimaryContig = errors.New("not a primary hs37d5 contig")
	ErrOutOfRange       = errors.New("position outside of contig")
)

// Aliases of assemblies whose primary contigs match hs37d5 exactly.
var assemblyFiles = map[string]string{
	"hs37d5": "hs37d5",
	"grch37": "hs37d5",
	"hg19":   "hs37d5",
}

// Contigs maps contig name (without "chr") to its length in base pairs.
type Contigs map[string]int

// Lookup loads the embedded contig table for assembly.
func Lookup(assembly string) (Contigs, error) {
	name, exists := assemblyFiles[strings.ToLower(assembly)]
	if !exists {
		return nil, fmt.Errorf("chrpos: unknown assembly %q", assembly)
	}

	fileBytes, err := embeddedTemplates.ReadFile("lookups/" + name)
	if err != nil {
		return nil, pfx.Err(err)
	}

	cr := csv.NewReader(bytes.NewReader(fileBytes))
	cr.Comma = '\t'
	entries, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := make(Contigs)
	header := make(map[string]int)

	for i, v := range entries {
		if i == 0 {
			for key, name := range v {
				header[name] = key
			}
			continue
		}

		end, err := strconv.Atoi(v[header["chromEnd"]])
		if err != nil {
			return nil, pfx.Err(err)
		}
		out[v[header["name"]]] = end
	}

	return out, nil
}

// Length returns the length of chrom, which may carry a "chr" prefix.
// UCSC's "M" is accepted for the mitochondrion.
func (c Contigs) Length(chrom string) (int, bool) {
	chrom = strings.TrimPrefix(chrom, "chr")
	if chrom == "M" {
		chrom = "MT"
	}

	length, exists := c[chrom]
	return length, exists
}

// Check returns nil if pos (1-based) lies on a primary contig.
func (c Contigs) Check(chrom string, pos int64) error {
	length, exists := c.Length(chrom)
	if !exists {
		return fmt.Errorf("%s: %w", chrom, ErrNonPrimaryContig)
	}

	if pos < 1 || pos > int64(length) {
		return fmt.Errorf("%s:%d (length %d): %w", chrom, pos, length, ErrOutOfRange)
	}

	return nil
}
