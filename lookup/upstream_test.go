package lookup

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/carbocation/rsidloci"
	"github.com/carbocation/rsidloci/config"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type reply struct {
	status int
	body   string
}

// upstream stands in for both MyVariant.info and Ensembl. Unknown rsIDs get
// a 404, as the real services do.
type upstream struct {
	mu        sync.Mutex
	myvariant map[string]reply
	ensembl   map[string]reply
	requests  []*http.Request
}

func newUpstream(t *testing.T) (*upstream, *httptest.Server) {
	t.Helper()

	u := &upstream{
		myvariant: make(map[string]reply),
		ensembl:   make(map[string]reply),
	}

	r := mux.NewRouter()
	r.HandleFunc("/v1/variant/{rsid}", u.serve(u.myvariant)).Methods(http.MethodGet)
	r.HandleFunc("/variation/{species}/{rsid}", u.serve(u.ensembl)).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return u, srv
}

func (u *upstream) serve(replies map[string]reply) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, req.Clone(context.Background()))
		rep, exists := replies[mux.Vars(req)["rsid"]]
		u.mu.Unlock()

		if !exists {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		status := rep.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(rep.body))
	}
}

func (u *upstream) request(i int) *http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.requests[i]
}

func (u *upstream) paths() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]string, 0, len(u.requests))
	for _, req := range u.requests {
		out = append(out, req.URL.Path)
	}

	return out
}

func newTestResolver(srv *httptest.Server, logs *bytes.Buffer) *Resolver {
	conf := config.Default()
	conf.MyVariantURL = srv.URL
	conf.EnsemblURL = srv.URL

	return New(conf, zerolog.New(logs))
}

func isTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// fakeService answers from a map without any HTTP.
type fakeService struct {
	name    string
	results map[string]*rsidloci.LocusRecord
	errs    map[string]error
	calls   []string
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Lookup(ctx context.Context, rsid string) (*rsidloci.LocusRecord, error) {
	f.calls = append(f.calls, rsid)

	if err, exists := f.errs[rsid]; exists {
		return nil, err
	}
	if rec, exists := f.results[rsid]; exists {
		return rec, nil
	}

	return nil, ErrNotFound
}

const (
	rs429358MyVariant = `{"_id":"chr19:g.45411941T>C","dbsnp":{"rsid":"rs429358","chrom":"19","hg19":{"chr":"19","start":45411941,"end":45411941},"ref":"T","alt":"C"}}`
	rs429358Ensembl   = `{"name":"rs429358","mappings":[{"seq_region_name":"19","start":45411941,"end":45411941,"allele_string":"T/C","assembly_name":"GRCh37"}]}`
)
