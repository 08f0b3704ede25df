package assets

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Adapter moves one unit of a fungible or non-fungible asset between
// two custody-capable parties. Dispatch is an explicit capability
// check on the asset's registered kind: custodian-held fungible units
// move with a direct transfer, everything else moves with an
// allowance-backed transferFrom.
type Adapter struct {
	custodian common.Address
	kinds     KindRegistry
	backend   Backend
}

func NewAdapter(custodian common.Address, kinds KindRegistry, backend Backend) *Adapter {
	return &Adapter{
		custodian: custodian,
		kinds:     kinds,
		backend:   backend,
	}
}

func (a *Adapter) Custodian() common.Address {
	return a.custodian
}

func (a *Adapter) Transfer(asset common.Address, idOrAmount *big.Int, from, to common.Address) error {
	kind, err := a.kinds.KindOf(asset)
	if err != nil {
		return fmt.Errorf("asset %s not registered: %w", asset.Hex(), err)
	}

	if kind == Fungible && from == a.custodian {
		return a.backend.Transfer(asset, to, idOrAmount)
	}
	// External parties grant an allowance or approval to the custodian
	// out of band before any registry call.
	return a.backend.TransferFrom(asset, from, to, idOrAmount)
}
