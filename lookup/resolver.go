package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carbocation/rsidloci"
	"github.com/carbocation/rsidloci/config"
	"github.com/rs/zerolog"
)

// Resolver looks up rsIDs against MyVariant.info and Ensembl. It holds no
// state between calls and issues requests strictly one at a time.
type Resolver struct {
	MyVariant Service
	Ensembl   Service
	Log       zerolog.Logger

	// Sleep pauses between batch lookups. Replaced in tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

// RequestTimeout bounds each call to a service.
const RequestTimeout = 10 * time.Second

// New builds a Resolver that talks to the endpoints in conf, sharing one
// HTTP client.
func New(conf config.Config, logger zerolog.Logger) *Resolver {
	client := &http.Client{Timeout: RequestTimeout}

	return &Resolver{
		MyVariant: NewMyVariant(conf.MyVariantURL, client),
		Ensembl:   NewEnsembl(conf.EnsemblURL, client),
		Log:       logger,
		Sleep:     sleepContext,
	}
}

// Resolve returns the hs37d5 locus of identifier, or nil if the selected
// service(s) have none. Transport problems are logged and treated as "no
// result". The only errors are ErrInvalidArgument for an unknown method and
// ctx's error once it is cancelled.
func (r *Resolver) Resolve(ctx context.Context, identifier string, method Method) (*rsidloci.LocusRecord, error) {
	rsid := rsidloci.NormalizeRSID(identifier)

	var services []Service
	switch method {
	case MethodMyVariant:
		services = []Service{r.MyVariant}
	case MethodEnsembl:
		services = []Service{r.Ensembl}
	case MethodAuto:
		services = []Service{r.MyVariant, r.Ensembl}
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, method)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, svc := range services {
		if rec := r.ask(ctx, svc, rsid); rec != nil {
			return rec, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

func (r *Resolver) ask(ctx context.Context, svc Service, rsid string) *rsidloci.LocusRecord {
	rec, err := svc.Lookup(ctx, rsid)
	if errors.Is(err, ErrNotFound) {
		r.Log.Debug().Str("service", svc.Name()).Str("rsid", rsid).Msg("No locus")
		return nil
	} else if err != nil {
		if ctx.Err() != nil {
			// Interrupted, not a service failure
			return nil
		}
		r.Log.Warn().Err(err).Str("service", svc.Name()).Str("rsid", rsid).Msg("Lookup failed")
		return nil
	}

	// Services are expected to enforce this, but a partial record must never
	// escape.
	if !rec.Complete() {
		return nil
	}

	return rec
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
