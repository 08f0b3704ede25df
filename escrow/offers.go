package escrow

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// CreateOffer pulls every listed asset from the caller into engine
// custody and records a new offer against the target bundle. The
// bundle must have been created at some point but its current status
// is not checked; an offer against a deleted or completed bundle stays
// in custody until its offerer cancels it and can never be accepted.
func (e *Engine) CreateOffer(caller common.Address, bundleID uint64, assetList []common.Address, values []*big.Int) (uint64, error) {
	lots, err := zipLots(assetList, values)
	if err != nil {
		return 0, err
	}

	var id uint64
	err = e.exec(func(st *state) error {
		if _, ok := st.bundles[bundleID]; !ok {
			return fmt.Errorf("bundle %d: %w", bundleID, ErrNotFound)
		}

		custodian := e.adapter.Custodian()
		for _, lot := range lots {
			if err := e.adapter.Transfer(lot.Asset, lot.Value, caller, custodian); err != nil {
				return fmt.Errorf("pull %s into custody: %w", lot.Asset.Hex(), err)
			}
		}

		id = st.numOffers
		st.offers[id] = &Offer{
			ID:       id,
			BundleID: bundleID,
			Offerer:  caller,
			Lots:     lots,
			Status:   StatusCreated,
		}
		st.numOffers++
		st.openOffers[bundleID] = append(st.openOffers[bundleID], id)
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Uint64("offer", id).Uint64("bundle", bundleID).Str("offerer", caller.Hex()).Msg("Offer locked")
	return id, nil
}

// DeleteOffer returns every locked asset to the offerer, removes the
// offer from its bundle's index and marks it deleted. Only the offerer
// may cancel and only while the offer is still in created status.
func (e *Engine) DeleteOffer(caller common.Address, offerID uint64) error {
	err := e.exec(func(st *state) error {
		o, ok := st.offers[offerID]
		if !ok {
			return fmt.Errorf("offer %d: %w", offerID, ErrNotFound)
		}
		if o.Offerer != caller {
			return fmt.Errorf("offer %d owned by %s: %w", offerID, o.Offerer.Hex(), ErrUnauthorized)
		}
		if o.Status != StatusCreated {
			return fmt.Errorf("offer %d is %s: %w", offerID, o.Status, ErrNotActive)
		}

		custodian := e.adapter.Custodian()
		for _, lot := range o.Lots {
			if err := e.adapter.Transfer(lot.Asset, lot.Value, custodian, o.Offerer); err != nil {
				return fmt.Errorf("return %s to offerer: %w", lot.Asset.Hex(), err)
			}
		}

		st.removeOpenOffer(o.BundleID, offerID)
		o.Status = StatusDeleted
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Uint64("offer", offerID).Msg("Offer unlocked")
	return nil
}
