package rsidloci

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// TSVRow is the on-disk layout of a resolved locus.
type TSVRow struct {
	RSID       string `csv:"rsid"`
	Chromosome string `csv:"chromosome"`
	Position   string `csv:"position"`
	Ref        string `csv:"ref"`
	Alt        string `csv:"alt"`
	Build      string `csv:"build"`
	Source     string `csv:"source"`
}

func NewTSVRow(loci *LocusRecord) *TSVRow {
	row := &TSVRow{
		RSID:       loci.RSID,
		Chromosome: loci.Chromosome.String,
		Ref:        "NA",
		Alt:        "NA",
		Build:      loci.Build,
		Source:     loci.Source,
	}

	if loci.Position.Valid {
		row.Position = strconv.FormatInt(loci.Position.Int64, 10)
	}
	if loci.RefAllele.Valid {
		row.Ref = loci.RefAllele.String
	}
	if len(loci.AltAlleles) > 0 {
		row.Alt = strings.Join(loci.AltAlleles, ",")
	}

	return row
}

// WriteTSV writes one tab-delimited row per record, with a header. nil
// records are skipped.
func WriteTSV(w io.Writer, records []*LocusRecord) error {
	rows := make([]*TSVRow, 0, len(records))
	for _, loci := range records {
		if loci == nil {
			continue
		}
		rows = append(rows, NewTSVRow(loci))
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	return gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw))
}
