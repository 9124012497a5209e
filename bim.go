package rsidloci

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// BIM streams rows out of a PLINK .bim file. The underlying reader may
// already have been decompressed.
type BIM struct {
	scanner *bufio.Scanner
	err     error
	line    int
}

func NewBIM(r io.Reader) *BIM {
	return &BIM{
		scanner: bufio.NewScanner(r),
	}
}

func (b *BIM) Err() error {
	if b.err != nil {
		return b.err
	}

	return b.scanner.Err()
}

// Read returns the next row, or nil at EOF or on error. Blank lines are
// skipped. Check Err after a nil return.
func (b *BIM) Read() *BIMRow {
	for b.scanner.Scan() {
		b.line++

		cols := strings.Fields(b.scanner.Text())
		if len(cols) == 0 {
			continue
		}

		if len(cols) < Allele2+1 {
			b.err = &BIMFormatError{Line: b.line, Columns: len(cols)}
			return nil
		}

		row := &BIMRow{
			Chromosome: cols[Chromosome],
			VariantID:  cols[VariantID],
			Allele1:    cols[Allele1],
			Allele2:    cols[Allele2],
		}

		coord64, err := strconv.ParseUint(cols[Coordinate], 10, 32)
		if err != nil {
			b.err = err
			return nil
		}
		row.Coordinate = uint32(coord64)

		return row
	}

	return nil
}

type BIMFormatError struct {
	Line    int
	Columns int
}

func (e *BIMFormatError) Error() string {
	return "bim line " + strconv.Itoa(e.Line) + ": expected 6 columns, found " + strconv.Itoa(e.Columns)
}
