// Package lookup resolves rsIDs to hs37d5 loci by asking MyVariant.info and
// the Ensembl GRCh37 REST server, one request at a time.
package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/carbocation/rsidloci"
)

// Service is a remote source of loci.
//
// Lookup returns ErrNotFound when the service answers but has no complete
// locus, and a *TransportError for anything else that went wrong.
type Service interface {
	Name() string
	Lookup(ctx context.Context, rsid string) (*rsidloci.LocusRecord, error)
}

// getBody issues a GET and returns the response body. A 404 becomes
// ErrNotFound; every other failure is wrapped in a TransportError.
func getBody(ctx context.Context, client *http.Client, service string, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, &TransportError{Service: service, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Service: service, Err: &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        req.URL.String(),
		}}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Service: service, Err: fmt.Errorf("reading response: %w", err)}
	}

	return body, nil
}

// finish applies the completeness rule shared by both services.
func finish(rec *rsidloci.LocusRecord) (*rsidloci.LocusRecord, error) {
	if !rec.Complete() {
		return nil, ErrNotFound
	}

	return rec, nil
}
