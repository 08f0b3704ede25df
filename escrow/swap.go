package escrow

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// AcceptOffer atomically exchanges the custody lots of a bundle and
// one of its offers: every offered asset moves to the bundle's
// creator, every bundled asset moves to the offerer, and both records
// are marked completed. Validation runs authorization first, then
// bundle status, then offer status, then the bundle/offer linkage; the
// first failing check aborts with no state change and no transfers.
//
// Sibling offers are deliberately left in the bundle's index: their
// owners can still cancel them, and any attempt to accept them fails
// the bundle status check.
func (e *Engine) AcceptOffer(caller common.Address, bundleID, offerID uint64) (SwapReceipt, error) {
	var receipt SwapReceipt
	err := e.exec(func(st *state) error {
		b, ok := st.bundles[bundleID]
		if !ok {
			return fmt.Errorf("bundle %d: %w", bundleID, ErrNotFound)
		}
		if b.Creator != caller {
			return fmt.Errorf("bundle %d owned by %s: %w", bundleID, b.Creator.Hex(), ErrUnauthorized)
		}
		if b.Status != StatusCreated {
			return fmt.Errorf("bundle %d is %s: %w", bundleID, b.Status, ErrNotActive)
		}

		o, ok := st.offers[offerID]
		if !ok {
			return fmt.Errorf("offer %d: %w", offerID, ErrNotFound)
		}
		if o.Status != StatusCreated {
			return fmt.Errorf("offer %d is %s: %w", offerID, o.Status, ErrNotActive)
		}
		if o.BundleID != bundleID {
			return fmt.Errorf("offer %d targets bundle %d: %w", offerID, o.BundleID, ErrBundleMismatch)
		}

		custodian := e.adapter.Custodian()
		for _, lot := range o.Lots {
			if err := e.adapter.Transfer(lot.Asset, lot.Value, custodian, b.Creator); err != nil {
				return fmt.Errorf("deliver %s to creator: %w", lot.Asset.Hex(), err)
			}
		}
		for _, lot := range b.Lots {
			if err := e.adapter.Transfer(lot.Asset, lot.Value, custodian, o.Offerer); err != nil {
				return fmt.Errorf("deliver %s to offerer: %w", lot.Asset.Hex(), err)
			}
		}

		b.Status = StatusCompleted
		o.Status = StatusCompleted
		st.completedSwaps++

		receipt = SwapReceipt{
			BundleID:   bundleID,
			OfferID:    offerID,
			Creator:    b.Creator,
			Offerer:    o.Offerer,
			BundleLots: slices.Clone(b.Lots),
			OfferLots:  slices.Clone(o.Lots),
			SwappedAt:  time.Now(),
		}
		return nil
	})
	if err != nil {
		return SwapReceipt{}, err
	}

	log.Info().
		Uint64("bundle", bundleID).
		Uint64("offer", offerID).
		Str("creator", receipt.Creator.Hex()).
		Str("offerer", receipt.Offerer.Hex()).
		Msg("Swap completed")
	return receipt, nil
}
