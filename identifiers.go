package rsidloci

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

var headerNames = map[string]struct{}{
	"rsid":       {},
	"snp":        {},
	"snpid":      {},
	"id":         {},
	"variant_id": {},
	"marker":     {},
}

var listDelimiters = map[rune]struct{}{
	',':  {},
	'\t': {},
	';':  {},
	'|':  {},
}

// ReadIdentifiers loads a list of identifiers from path, which may be local
// or on Google Storage, and may be compressed. PLINK .bim files contribute
// their rsID-like VariantID column. Any other file is read with
// ParseIdentifierList.
func ReadIdentifiers(ctx context.Context, path string, client *storage.Client) ([]string, error) {
	f, err := OpenSource(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rc, err := MaybeDecompressReadCloser(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	if strings.HasSuffix(strings.ToLower(TrimCompressionSuffix(path)), ".bim") {
		return ParseBIMIdentifiers(rc)
	}

	return ParseIdentifierList(rc)
}

// ParseBIMIdentifiers returns the VariantIDs of a .bim stream that look like
// rsIDs. Positional IDs such as 1:12345:A:G cannot be looked up and are
// skipped.
func ParseBIMIdentifiers(r io.Reader) ([]string, error) {
	bim := NewBIM(r)

	out := make([]string, 0)
	for row := bim.Read(); row != nil; row = bim.Read() {
		if LooksLikeRSID(row.VariantID) {
			out = append(out, row.VariantID)
		}
	}

	if err := bim.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// ParseIdentifierList reads identifiers from a delimited list. Lines
// starting with # are comments. If the first row names an identifier column
// (SNP, rsid, ID, ...), that column is used and the row is dropped;
// otherwise the first column is used. Whitespace-aligned tables, such as
// PLINK .assoc or .clumped output, are split on runs of blanks.
func ParseIdentifierList(r io.Reader) ([]string, error) {
	fileBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var rows [][]string
	delim := DetermineDelimiter(bytes.NewReader(fileBytes))
	if delim != '\t' && whitespaceAligned(fileBytes) {
		rows, err = splitFields(fileBytes)
	} else {
		if _, ok := listDelimiters[delim]; !ok {
			delim = ','
		}
		rows, err = splitDelimited(fileBytes, delim)
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	return pickIdentifiers(rows), nil
}

// whitespaceAligned reports whether the first data line separates its
// fields with blanks and nothing else.
func whitespaceAligned(fileBytes []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(fileBytes))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return strings.ContainsAny(line, " \t") && !strings.ContainsAny(line, ",;|")
	}

	return false
}

func splitFields(fileBytes []byte) ([][]string, error) {
	out := make([][]string, 0)

	scanner := bufio.NewScanner(bytes.NewReader(fileBytes))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.Fields(line))
	}

	return out, scanner.Err()
}

func splitDelimited(fileBytes []byte, delim rune) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(fileBytes))
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	out := make([][]string, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func pickIdentifiers(rows [][]string) []string {
	out := make([]string, 0, len(rows))
	if len(rows) == 0 {
		return out
	}

	column := 0
	for key, name := range rows[0] {
		if _, isHeader := headerNames[strings.ToLower(strings.TrimSpace(name))]; isHeader {
			column = key
			rows = rows[1:]
			break
		}
	}

	for _, rec := range rows {
		if len(rec) <= column {
			continue
		}

		id := strings.TrimSpace(rec[column])
		if id == "" {
			continue
		}
		out = append(out, id)
	}

	return out
}
