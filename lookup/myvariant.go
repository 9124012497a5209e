package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/carbocation/rsidloci"
	"gopkg.in/guregu/null.v3"
)

const (
	MyVariantName = "myvariant"

	// hg19 and GRCh37 have the same coordinates as the hs37d5 main
	// chromosomes.
	myVariantAssembly = "hg19"
	myVariantFields   = "dbsnp.rsid,dbsnp.chrom,dbsnp.hg19,dbsnp.ref,dbsnp.alt"
)

// MyVariant queries https://myvariant.info/v1/variant/{rsid}.
type MyVariant struct {
	BaseURL string
	Client  *http.Client
}

func NewMyVariant(baseURL string, client *http.Client) *MyVariant {
	return &MyVariant{BaseURL: baseURL, Client: client}
}

func (m *MyVariant) Name() string { return MyVariantName }

func (m *MyVariant) Lookup(ctx context.Context, rsid string) (*rsidloci.LocusRecord, error) {
	rsid = rsidloci.NormalizeRSID(rsid)

	u, err := url.Parse(m.BaseURL + "/v1/variant/" + url.PathEscape(rsid))
	if err != nil {
		return nil, &TransportError{Service: MyVariantName, Err: err}
	}
	q := u.Query()
	q.Set("assembly", myVariantAssembly)
	q.Set("fields", myVariantFields)
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &TransportError{Service: MyVariantName, Err: err}
	}

	body, err := getBody(ctx, m.Client, MyVariantName, req)
	if err != nil {
		return nil, err
	}

	return ParseMyVariant(rsid, body)
}

// ParseMyVariant converts a raw MyVariant.info response body into a record.
func ParseMyVariant(rsid string, body []byte) (*rsidloci.LocusRecord, error) {
	var payload myVariantResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Service: MyVariantName, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return finish(payload.toLocus(rsidloci.NormalizeRSID(rsid)))
}

type myVariantDoc struct {
	DBSNP *struct {
		Chrom flexString   `json:"chrom"`
		HG19  *hg19Mapping `json:"hg19"`
		Ref   *string      `json:"ref"`
		Alt   alleleList   `json:"alt"`
	} `json:"dbsnp"`
}

// myVariantResponse is a single variant document. An rsID that maps to
// several documents comes back as a list; the first one carrying an hg19
// mapping is used.
type myVariantResponse struct {
	myVariantDoc
}

func (p *myVariantResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return json.Unmarshal(data, &p.myVariantDoc)
	}

	var docs []myVariantDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return err
	}

	for _, doc := range docs {
		if doc.DBSNP != nil && doc.DBSNP.HG19 != nil && doc.DBSNP.HG19.coord != nil {
			p.myVariantDoc = doc
			return nil
		}
	}
	if len(docs) > 0 {
		p.myVariantDoc = docs[0]
	}

	return nil
}

func (p *myVariantResponse) toLocus(rsid string) *rsidloci.LocusRecord {
	rec := rsidloci.NewLocusRecord(rsid, MyVariantName)

	if p.DBSNP == nil || p.DBSNP.HG19 == nil {
		return rec
	}

	if coord := p.DBSNP.HG19.coord; coord != nil {
		chrom := coord.Chr
		if chrom == "" {
			// Current responses put the chromosome next to, rather than
			// inside, the hg19 mapping
			chrom = p.DBSNP.Chrom
		}
		rec.Chromosome = null.StringFrom(rsidloci.StripChrPrefix(string(chrom)))
		if coord.Start != nil {
			rec.Position = null.IntFrom(*coord.Start)
		}
	}

	rec.RefAllele = null.StringFromPtr(p.DBSNP.Ref)
	if p.DBSNP.Alt != nil {
		rec.AltAlleles = p.DBSNP.Alt
	}

	return rec
}

type hg19Coord struct {
	Chr   flexString `json:"chr"`
	Start *int64     `json:"start"`
}

// hg19Mapping is the value of dbsnp.hg19, which MyVariant.info sends either
// as a single object or as a list of objects. Only the first is kept.
type hg19Mapping struct {
	coord *hg19Coord
}

func (h *hg19Mapping) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '{':
		var c hg19Coord
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		h.coord = &c
	case '[':
		var cs []hg19Coord
		if err := json.Unmarshal(data, &cs); err != nil {
			return err
		}
		if len(cs) > 0 {
			h.coord = &cs[0]
		}
	default:
		return fmt.Errorf("dbsnp.hg19: expected object or array, got %s", data)
	}

	return nil
}

// alleleList accepts either "T" or ["T", "G"].
type alleleList []string

func (a *alleleList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = alleleList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("dbsnp.alt: %w", err)
	}
	*a = list

	return nil
}

// flexString accepts a JSON string or number; chromosome names are
// occasionally sent unquoted.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("chromosome: %w", err)
	}
	*f = flexString(n.String())

	return nil
}
