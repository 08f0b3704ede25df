// Package escrow implements the custody and matching engine: parties
// lock asset bundles into custody, counter-parties lock offers against
// a bundle, and the depositor triggers an atomic bundle-for-bundle
// swap of the two custody lots.
package escrow

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Status is the lifecycle marker shared by bundles and offers.
// Deleted and Completed are terminal; a record never returns to
// Created and is never physically removed.
type Status uint8

const (
	StatusCreated Status = iota
	StatusDeleted
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusDeleted:
		return "deleted"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "created":
		*s = StatusCreated
	case "deleted":
		*s = StatusDeleted
	case "completed":
		*s = StatusCompleted
	default:
		return fmt.Errorf("unknown status %q", string(text))
	}
	return nil
}

// Lot is one locked asset position: the asset contract and either a
// token id (non-fungible) or an amount (fungible).
type Lot struct {
	Asset common.Address `json:"asset"`
	Value *big.Int       `json:"value"`
}

// Bundle is a creator's locked collection of assets awaiting a
// matching offer.
type Bundle struct {
	ID      uint64         `json:"id"`
	Creator common.Address `json:"creator"`
	Lots    []Lot          `json:"lots"`
	Status  Status         `json:"status"`
}

// Offer is a counter-party's locked collection of assets proposed
// against a specific bundle.
type Offer struct {
	ID       uint64         `json:"id"`
	BundleID uint64         `json:"bundleId"`
	Offerer  common.Address `json:"offerer"`
	Lots     []Lot          `json:"lots"`
	Status   Status         `json:"status"`
}

// SwapReceipt records a completed bundle-for-bundle exchange.
type SwapReceipt struct {
	BundleID   uint64         `json:"bundleId"`
	OfferID    uint64         `json:"offerId"`
	Creator    common.Address `json:"creator"`
	Offerer    common.Address `json:"offerer"`
	BundleLots []Lot          `json:"bundleLots"`
	OfferLots  []Lot          `json:"offerLots"`
	SwappedAt  time.Time      `json:"swappedAt"`
}

// Stats are the engine's monotonic counters.
type Stats struct {
	Bundles        uint64 `json:"bundles"`
	Offers         uint64 `json:"offers"`
	CompletedSwaps uint64 `json:"completedSwaps"`
}

func zipLots(assetList []common.Address, values []*big.Int) ([]Lot, error) {
	if len(assetList) != len(values) {
		return nil, ErrLengthMismatch
	}

	lots := make([]Lot, len(assetList))
	for i := range assetList {
		if values[i] == nil || values[i].Sign() < 0 {
			return nil, fmt.Errorf("asset %s: %w", assetList[i].Hex(), ErrInvalidValue)
		}
		lots[i] = Lot{Asset: assetList[i], Value: new(big.Int).Set(values[i])}
	}
	return lots, nil
}
