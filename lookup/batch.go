package lookup

import (
	"context"
	"fmt"
	"time"

	"github.com/carbocation/rsidloci"
)

// Batch is the outcome of ResolveAll.
type Batch struct {
	// Found maps each normalized rsID to its locus.
	Found map[string]*rsidloci.LocusRecord

	// Order lists the keys of Found in input order, once each.
	Order []string

	// Missing lists normalized rsIDs that had no locus, in input order.
	Missing []string
}

// Records returns the found loci in input order.
func (b *Batch) Records() []*rsidloci.LocusRecord {
	out := make([]*rsidloci.LocusRecord, 0, len(b.Order))
	for _, rsid := range b.Order {
		out = append(out, b.Found[rsid])
	}

	return out
}

// ResolveAll looks up each identifier in order, pausing for delay between
// consecutive lookups (never after the last). Identifiers without a locus
// are logged and left out of Found. A failure on one identifier never stops
// the batch; an error is returned only for an invalid method or when ctx is
// cancelled, in which case the loci found so far are still returned.
func (r *Resolver) ResolveAll(ctx context.Context, identifiers []string, delay time.Duration, method Method) (*Batch, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, method)
	}

	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	batch := &Batch{
		Found:   make(map[string]*rsidloci.LocusRecord),
		Order:   make([]string, 0, len(identifiers)),
		Missing: make([]string, 0),
	}

	for i, identifier := range identifiers {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		rsid := rsidloci.NormalizeRSID(identifier)

		rec, err := r.Resolve(ctx, rsid, method)
		if err != nil {
			return batch, err
		}

		if rec != nil {
			if _, seen := batch.Found[rsid]; !seen {
				batch.Order = append(batch.Order, rsid)
			}
			batch.Found[rsid] = rec
		} else {
			r.Log.Warn().Str("rsid", rsid).Msgf("Could not find coordinates for %s", rsid)
			batch.Missing = append(batch.Missing, rsid)
		}

		// Rate limiting
		if delay > 0 && i < len(identifiers)-1 {
			if err := sleep(ctx, delay); err != nil {
				return batch, err
			}
		}
	}

	r.Log.Debug().Int("found", len(batch.Order)).Int("missing", len(batch.Missing)).Msg("Batch finished")

	return batch, nil
}
