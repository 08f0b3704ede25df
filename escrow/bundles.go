package escrow

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// CreateBundle pulls every listed asset from the caller into engine
// custody and records a new bundle in created status. It returns the
// allocated bundle id. A zero-length bundle is valid.
func (e *Engine) CreateBundle(caller common.Address, assetList []common.Address, values []*big.Int) (uint64, error) {
	lots, err := zipLots(assetList, values)
	if err != nil {
		return 0, err
	}

	var id uint64
	err = e.exec(func(st *state) error {
		custodian := e.adapter.Custodian()
		for _, lot := range lots {
			if err := e.adapter.Transfer(lot.Asset, lot.Value, caller, custodian); err != nil {
				return fmt.Errorf("pull %s into custody: %w", lot.Asset.Hex(), err)
			}
		}

		id = st.numBundles
		st.bundles[id] = &Bundle{
			ID:      id,
			Creator: caller,
			Lots:    lots,
			Status:  StatusCreated,
		}
		st.numBundles++
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Uint64("bundle", id).Str("creator", caller.Hex()).Int("lots", len(lots)).Msg("Bundle locked")
	return id, nil
}

// DeleteBundle returns every locked asset to the bundle's creator and
// marks the bundle deleted. Only the creator may cancel and only while
// the bundle is still in created status; both checks run before any
// transfer is attempted.
func (e *Engine) DeleteBundle(caller common.Address, bundleID uint64) error {
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

		custodian := e.adapter.Custodian()
		for _, lot := range b.Lots {
			if err := e.adapter.Transfer(lot.Asset, lot.Value, custodian, b.Creator); err != nil {
				return fmt.Errorf("return %s to creator: %w", lot.Asset.Hex(), err)
			}
		}

		b.Status = StatusDeleted
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Uint64("bundle", bundleID).Msg("Bundle unlocked")
	return nil
}
