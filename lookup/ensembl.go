package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/carbocation/rsidloci"
	"gopkg.in/guregu/null.v3"
)

const (
	EnsemblName = "ensembl"

	ensemblSpecies = "human"
)

// Ensembl queries the GRCh37 archive of the Ensembl REST API, whose
// coordinates match hs37d5 on the primary chromosomes.
type Ensembl struct {
	BaseURL string
	Client  *http.Client
}

func NewEnsembl(baseURL string, client *http.Client) *Ensembl {
	return &Ensembl{BaseURL: baseURL, Client: client}
}

func (e *Ensembl) Name() string { return EnsemblName }

func (e *Ensembl) Lookup(ctx context.Context, rsid string) (*rsidloci.LocusRecord, error) {
	rsid = rsidloci.NormalizeRSID(rsid)

	endpoint := e.BaseURL + "/variation/" + ensemblSpecies + "/" + url.PathEscape(rsid)
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Service: EnsemblName, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := getBody(ctx, e.Client, EnsemblName, req)
	if err != nil {
		return nil, err
	}

	return ParseEnsembl(rsid, body)
}

// ParseEnsembl converts a raw Ensembl variation response body into a
// record.
func ParseEnsembl(rsid string, body []byte) (*rsidloci.LocusRecord, error) {
	var payload ensemblResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Service: EnsemblName, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return finish(payload.toLocus(rsidloci.NormalizeRSID(rsid)))
}

type ensemblMapping struct {
	SeqRegionName string  `json:"seq_region_name"`
	Start         *int64  `json:"start"`
	AlleleString  *string `json:"allele_string"`
}

type ensemblResponse struct {
	Mappings []ensemblMapping `json:"mappings"`
}

func (p *ensemblResponse) toLocus(rsid string) *rsidloci.LocusRecord {
	rec := rsidloci.NewLocusRecord(rsid, EnsemblName)

	if len(p.Mappings) == 0 {
		return rec
	}
	mapping := p.Mappings[0]

	rec.Chromosome = null.StringFrom(rsidloci.StripChrPrefix(mapping.SeqRegionName))
	if mapping.Start != nil {
		rec.Position = null.IntFrom(*mapping.Start)
	}

	// REF/ALT1/ALT2...
	if mapping.AlleleString != nil {
		alleles := strings.Split(*mapping.AlleleString, "/")
		rec.RefAllele = null.StringFrom(alleles[0])
		if len(alleles) > 1 {
			rec.AltAlleles = alleles[1:]
		}
	}

	return rec
}
