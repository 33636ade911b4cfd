package agenda

import (
	"context"

	"github.com/classiccuts/booking-api/internal/audit"
	domain "github.com/classiccuts/booking-api/internal/domain/booking"
	"github.com/classiccuts/booking-api/internal/httperr"
	"github.com/classiccuts/booking-api/internal/snapshot"
)

type RemoveBlock struct {
	repo  domain.Repository
	snap  *snapshot.Source
	audit *audit.Dispatcher
}

func NewRemoveBlock(
	repo domain.Repository,
	snap *snapshot.Source,
	auditDisp *audit.Dispatcher,
) *RemoveBlock {
	return &RemoveBlock{
		repo:  repo,
		snap:  snap,
		audit: auditDisp,
	}
}

func (uc *RemoveBlock) Execute(
	ctx context.Context,
	barberID uint,
	userID uint,
	blockID string,
) error {

	block, err := uc.repo.GetBlockedSlot(ctx, barberID, blockID)
	if err != nil {
		return httperr.ErrBusiness("block_not_found")
	}

	if err := uc.repo.DeleteBlockedSlot(ctx, barberID, blockID); err != nil {
		return err
	}

	uc.snap.NotifyBlocksChanged(ctx, barberID, block.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_unblocked",
		Entity:   "blocked_slot",
		EntityID: &blockID,
	})

	return nil
}
