package rsidloci

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/carbocation/vcfgo"
)

// VCFFileFormat is the VCF version written by WriteVCF.
const VCFFileFormat = "4.2"

// WriteVCF writes the records as a sites-only VCF, sorted by chromosome and
// position, which IGV can load against hs37d5 directly. The service that
// reported each locus is kept in the SRC INFO field. nil records are
// skipped.
func WriteVCF(w io.Writer, records []*LocusRecord) error {
	header := vcfgo.NewHeader()
	header.FileFormat = VCFFileFormat
	header.Extras = append(header.Extras, "##reference="+Build)
	header.Infos["SRC"] = &vcfgo.Info{
		Id:          "SRC",
		Number:      "1",
		Type:        "String",
		Description: "Service that reported the locus",
	}

	vw, err := vcfgo.NewWriter(w, header)
	if err != nil {
		return err
	}

	sorted := make([]*LocusRecord, 0, len(records))
	for _, loci := range records {
		if loci == nil {
			continue
		}
		sorted = append(sorted, loci)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := contigRank(sorted[i].Chromosome.String), contigRank(sorted[j].Chromosome.String)
		if ri != rj {
			return ri < rj
		}
		if sorted[i].Chromosome.String != sorted[j].Chromosome.String {
			return sorted[i].Chromosome.String < sorted[j].Chromosome.String
		}
		return sorted[i].Position.Int64 < sorted[j].Position.Int64
	})

	for _, loci := range sorted {
		vw.WriteVariant(NewVCFVariant(loci, header))
	}

	return nil
}

// NewVCFVariant converts a locus into a site with no samples. A missing
// reference allele is written as N and a missing alternate as ".".
func NewVCFVariant(loci *LocusRecord, header *vcfgo.Header) *vcfgo.Variant {
	ref := "N"
	if loci.RefAllele.Valid && loci.RefAllele.String != "" {
		ref = loci.RefAllele.String
	}

	alts := []string{"."}
	if len(loci.AltAlleles) > 0 {
		alts = loci.AltAlleles
	}

	return &vcfgo.Variant{
		Chromosome: loci.Chromosome.String,
		Pos:        uint64(loci.Position.Int64),
		Id_:        loci.RSID,
		Reference:  ref,
		Alternate:  alts,
		Filter:     ".",
		Info_:      vcfgo.NewInfoByte([]byte("SRC="+loci.Source), header),
		Header:     header,
	}
}

// contigRank orders 1-22, then X, Y, MT, then anything else.
func contigRank(chrom string) int {
	chrom = strings.TrimPrefix(chrom, "chr")

	if n, err := strconv.Atoi(chrom); err == nil && n > 0 {
		return n
	}

	switch chrom {
	case "X":
		return 23
	case "Y":
		return 24
	case "M", "MT":
		return 25
	}

	return 26
}
