package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/carbocation/rsidloci"
	"github.com/carbocation/rsidloci/chrpos"
	"github.com/carbocation/rsidloci/lookup"
	"github.com/rs/zerolog"
)

// CLI prints lookup results to Out. Warnings go to Log.
type CLI struct {
	Out      io.Writer
	Resolver *lookup.Resolver
	Contigs  chrpos.Contigs
	Log      zerolog.Logger
}

// Each looks up identifiers one after another with no pause, printing
// "rsid: locus" for each.
func (c *CLI) Each(ctx context.Context, identifiers []string, method lookup.Method, style rsidloci.Style) ([]*rsidloci.LocusRecord, error) {
	fmt.Fprintf(c.Out, "Looking up %d rsID(s) for hs37d5...\n\n", len(identifiers))

	out := make([]*rsidloci.LocusRecord, 0, len(identifiers))
	for _, rsid := range identifiers {
		loci, err := c.Resolver.Resolve(ctx, rsid, method)
		if err != nil {
			return out, err
		}

		if loci == nil {
			fmt.Fprintf(c.Out, "%s: %s\n", rsid, rsidloci.NotFound)
			continue
		}

		c.checkContig(loci)
		fmt.Fprintf(c.Out, "%s: %s\n", loci.RSID, rsidloci.Format(loci, style))
		out = append(out, loci)
	}

	return out, nil
}

// Batch resolves identifiers with a pause between requests, then prints one
// line per distinct identifier in input order.
func (c *CLI) Batch(ctx context.Context, identifiers []string, delay time.Duration, method lookup.Method, style rsidloci.Style) ([]*rsidloci.LocusRecord, error) {
	fmt.Fprintf(c.Out, "Looking up %d rsID(s) for hs37d5...\n\n", len(identifiers))

	batch, err := c.Resolver.ResolveAll(ctx, identifiers, delay, method)
	if batch == nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, id := range identifiers {
		rsid := rsidloci.NormalizeRSID(id)
		if _, dup := seen[rsid]; dup {
			continue
		}
		seen[rsid] = struct{}{}

		loci, found := batch.Found[rsid]
		if !found {
			// Only report misses for IDs that were actually attempted
			if err == nil {
				fmt.Fprintf(c.Out, "%s: %s\n", rsid, rsidloci.NotFound)
			}
			continue
		}

		c.checkContig(loci)
		fmt.Fprintf(c.Out, "%s: %s\n", loci.RSID, rsidloci.Format(loci, style))
	}

	return batch.Records(), err
}

// Demo looks up the APOE SNP rs429358 via MyVariant.info, then a handful of
// well-known SNPs with automatic fallback.
func (c *CLI) Demo(ctx context.Context, delay time.Duration) ([]*rsidloci.LocusRecord, error) {
	rule := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(c.Out, "hs37d5 Assembly Coordinate Lookup")
	fmt.Fprintln(c.Out, rule)
	fmt.Fprintln(c.Out, "Note: hs37d5 is the 1000 Genomes Project reference")
	fmt.Fprintln(c.Out, "      Coordinates for chr 1-22,X,Y,MT match GRCh37/hg19")
	fmt.Fprintln(c.Out, rule)
	fmt.Fprintln(c.Out, "\nSingle rsID lookup (MyVariant.info):")
	fmt.Fprintln(c.Out, dash)

	loci, err := c.Resolver.Resolve(ctx, "rs429358", lookup.MethodMyVariant)
	if err != nil {
		return nil, err
	}

	if loci != nil {
		c.checkContig(loci)

		ref := "N/A"
		if loci.RefAllele.Valid {
			ref = loci.RefAllele.String
		}

		fmt.Fprintf(c.Out, "rsID: %s\n", loci.RSID)
		fmt.Fprintf(c.Out, "Chromosome: %s\n", loci.Chromosome.String)
		fmt.Fprintf(c.Out, "Position: %d\n", loci.Position.Int64)
		fmt.Fprintf(c.Out, "Locus (hs37d5 style): %s\n", rsidloci.Format(loci, rsidloci.StyleHs37d5))
		fmt.Fprintf(c.Out, "Locus (standard): %s\n", rsidloci.Format(loci, rsidloci.StyleStandard))
		fmt.Fprintf(c.Out, "Ref allele: %s\n", ref)
		fmt.Fprintf(c.Out, "Alt alleles: %s\n", strings.Join(loci.AltAlleles, ", "))
	}

	fmt.Fprintln(c.Out, "\n"+rule)
	fmt.Fprintln(c.Out, "Batch lookup:")
	fmt.Fprintln(c.Out, dash)

	batch, err := c.Resolver.ResolveAll(ctx, demoRSIDs, delay, lookup.MethodAuto)
	if err != nil {
		return nil, err
	}

	for _, loci := range batch.Records() {
		c.checkContig(loci)
		fmt.Fprintf(c.Out, "%s: %s\n", loci.RSID, rsidloci.Format(loci, rsidloci.StyleHs37d5))
	}

	fmt.Fprintln(c.Out, "\n"+rule)
	fmt.Fprintln(c.Out, "\nCommand line usage:")
	fmt.Fprintln(c.Out, "  rsid2hs37d5 rs429358 rs7412 rs1799945")
	fmt.Fprintln(c.Out, "\nFor IGV with hs37d5 reference:")
	fmt.Fprintln(c.Out, "  - Use chromosome names without 'chr' prefix (e.g., '1' not 'chr1')")
	fmt.Fprintln(c.Out, "  - Coordinates are identical to GRCh37/hg19 for standard chromosomes")

	return batch.Records(), nil
}

// APOE (rs7412, rs429358) and HFE (rs1799945, rs1800562)
var demoRSIDs = []string{"rs7412", "rs429358", "rs1799945", "rs1800562"}

// checkContig warns about loci that do not sit on a primary hs37d5
// chromosome. The locus is still reported.
func (c *CLI) checkContig(loci *rsidloci.LocusRecord) {
	if c.Contigs == nil {
		return
	}

	if err := c.Contigs.Check(loci.Chromosome.String, loci.Position.Int64); err != nil {
		c.Log.Warn().Err(err).Str("rsid", loci.RSID).Msg("Coordinates may not carry over to hs37d5")
	}
}
