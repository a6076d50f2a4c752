package readstore

import (
	"context"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

// OwnerConfigSource loads the campaign settings of one owner kind.
type OwnerConfigSource interface {
	OwnerByID(ctx context.Context, id uuid.UUID) (*campaign.Owner, error)
}

var ErrUnknownOwnerKind = errs.New("no owner source registered for kind")

// OwnerDirectory dispatches an owner reference to the source for its kind.
type OwnerDirectory struct {
	sources map[cart.OwnerKind]OwnerConfigSource
}

func NewOwnerDirectory(events *EventOwnerSource, attractions *AttractionOwnerSource) *OwnerDirectory {
	return NewOwnerDirectoryFromSources(map[cart.OwnerKind]OwnerConfigSource{
		cart.OwnerEvent:      events,
		cart.OwnerAttraction: attractions,
	})
}

func NewOwnerDirectoryFromSources(sources map[cart.OwnerKind]OwnerConfigSource) *OwnerDirectory {
	return &OwnerDirectory{sources: sources}
}

func (d *OwnerDirectory) OwnerByRef(ctx context.Context, ref cart.OwnerRef) (*campaign.Owner, error) {
	src, ok := d.sources[ref.Kind]
	if !ok || src == nil {
		return nil, infra.WrapRepoErr("owner kind "+ref.Kind.String(), ErrUnknownOwnerKind, infra.KindNotFound)
	}
	return src.OwnerByID(ctx, ref.ID)
}
