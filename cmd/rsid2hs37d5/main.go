// rsid2hs37d5 converts rsIDs to hs37d5 genomic coordinates.
//
// hs37d5 is the 1000 Genomes Project reference (GRCh37 + decoy sequences).
// Coordinates are fetched from MyVariant.info and, failing that, from the
// Ensembl GRCh37 REST server.
//
//	rsid2hs37d5 rs429358 rs7412 rs1799945
//	rsid2hs37d5 -input gs://bucket/snps.bim.gz -output loci.tsv
//	rsid2hs37d5 -input clumped.txt -output loci.vcf
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carbocation/rsidloci"
	"github.com/carbocation/rsidloci/chrpos"
	"github.com/carbocation/rsidloci/compileinfo"
	"github.com/carbocation/rsidloci/config"
	"github.com/carbocation/rsidloci/logx"
	"github.com/carbocation/rsidloci/lookup"
	"github.com/rs/zerolog/log"
)

func main() {
	conf, err := config.New()
	logger := logx.Init(logx.Config{Debug: conf.Debug, PrettyFormat: conf.PrettyLog})
	if err != nil {
		log.Fatal().Err(err).Msg("Reading configuration")
	}

	var methodName, styleName, inputFile, outputFile string
	var delay time.Duration
	var showVersion bool

	flag.StringVar(&methodName, "method", string(lookup.MethodAuto), "Lookup method: myvariant, ensembl, or auto (MyVariant.info with Ensembl fallback).")
	flag.StringVar(&styleName, "style", rsidloci.StyleHs37d5.String(), "Output style: hs37d5 (1:12345) or standard (chr1:12345).")
	flag.DurationVar(&delay, "delay", conf.Delay, "Pause between requests when looking up a list of rsIDs.")
	flag.StringVar(&inputFile, "input", "", "Optional. File with rsIDs: one per line, a delimited table with rsIDs in the first column, or a PLINK .bim. May be compressed, and may be a google storage URL (gs://).")
	flag.StringVar(&outputFile, "output", "", "Optional. Also write the resolved loci to this path: a sites-only VCF if it ends in .vcf, otherwise a TSV.")
	flag.BoolVar(&showVersion, "version", false, "Print the build version and exit.")
	flag.Parse()

	info := compileinfo.Get()
	if showVersion {
		fmt.Println(info.Version())
		return
	}
	logger.Debug().Msg(info.String())

	method, err := lookup.ParseMethod(methodName)
	if err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("Invalid -method")
	}

	style, err := rsidloci.ParseStyle(styleName)
	if err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("Invalid -style")
	}

	contigs, err := chrpos.Lookup(rsidloci.Build)
	if err != nil {
		log.Fatal().Err(err).Msg("Loading contig table")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{
		Out:      os.Stdout,
		Resolver: lookup.New(conf, logger),
		Contigs:  contigs,
		Log:      logger,
	}

	identifiers := flag.Args()

	var records []*rsidloci.LocusRecord
	switch {
	case inputFile != "":
		var client *storage.Client
		if strings.HasPrefix(inputFile, "gs://") {
			client, err = storage.NewClient(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("Connecting to Google Storage")
			}
			defer client.Close()
		}

		var fromFile []string
		fromFile, err = rsidloci.ReadIdentifiers(ctx, inputFile, client)
		if err != nil {
			log.Fatal().Err(err).Str("input", inputFile).Msg("Reading rsIDs")
		}
		logger.Info().Int("rsids", len(fromFile)).Str("input", inputFile).Msg("Loaded rsIDs")

		records, err = cli.Batch(ctx, append(identifiers, fromFile...), delay, method, style)
	case len(identifiers) > 0:
		records, err = cli.Each(ctx, identifiers, method, style)
	default:
		records, err = cli.Demo(ctx, delay)
	}

	if errors.Is(err, context.Canceled) {
		logger.Warn().Int("loci", len(records)).Msg("Interrupted")
	} else if err != nil {
		log.Fatal().Err(err).Msg("Lookup")
	}

	if outputFile != "" {
		if err := writeOutput(outputFile, records); err != nil {
			log.Fatal().Err(err).Str("output", outputFile).Msg("Writing loci")
		}
		logger.Info().Int("loci", len(records)).Str("output", outputFile).Msg("Wrote loci")
	}
}

// writeOutput saves records as a sites-only VCF when path ends in .vcf, and
// as a TSV otherwise.
func writeOutput(path string, records []*rsidloci.LocusRecord) error {
	path, err := rsidloci.ExpandHome(path)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	write := rsidloci.WriteTSV
	if strings.EqualFold(filepath.Ext(path), ".vcf") {
		write = rsidloci.WriteVCF
	}

	buf := bufio.NewWriter(out)
	if err := write(buf, records); err != nil {
		out.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
