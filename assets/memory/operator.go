package memory

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bundleswap/escrow-engine/assets"
)

// Operator executes transfers on the ledger as a single acting
// account. It satisfies assets.Backend for that account.
type Operator struct {
	ledger  *Ledger
	account common.Address
}

// Transfer spends the operator's own fungible balance.
func (o *Operator) Transfer(asset common.Address, to common.Address, amount *big.Int) error {
	kind, err := o.ledger.KindOf(asset)
	if err != nil {
		return err
	}
	if kind != assets.Fungible {
		return fmt.Errorf("direct transfer unsupported for nonfungible asset %s", asset.Hex())
	}

	if err := o.ledger.debit(asset, o.account, amount); err != nil {
		return err
	}
	o.ledger.credit(asset, to, amount)
	return nil
}

// TransferFrom moves idOrAmount from a third-party account, consuming
// the allowance or approval previously granted to the operator.
func (o *Operator) TransferFrom(asset common.Address, from, to common.Address, idOrAmount *big.Int) error {
	kind, err := o.ledger.KindOf(asset)
	if err != nil {
		return err
	}

	if kind == assets.Fungible {
		return o.transferFungibleFrom(asset, from, to, idOrAmount)
	}
	return o.transferTokenFrom(asset, from, to, idOrAmount)
}

func (o *Operator) transferFungibleFrom(asset common.Address, from, to common.Address, amount *big.Int) error {
	// Rejected before the allowance is touched; a negative amount
	// compares below any allowance and would raise it on consumption.
	if amount.Sign() < 0 {
		return fmt.Errorf("negative amount %s of %s from %s", amount, asset.Hex(), from.Hex())
	}

	if from != o.account {
		key := approvalKey{asset, from, o.account}
		allowance := o.ledger.Allowance(asset, from, o.account)
		if allowance.Cmp(amount) < 0 {
			return fmt.Errorf("allowance %s from %s to %s below %s for %s",
				allowance, from.Hex(), o.account.Hex(), amount, asset.Hex())
		}
		o.ledger.setAllowance(key, allowance.Sub(allowance, amount))
	}

	if err := o.ledger.debit(asset, from, amount); err != nil {
		return err
	}
	o.ledger.credit(asset, to, amount)
	return nil
}

func (o *Operator) transferTokenFrom(asset common.Address, from, to common.Address, tokenID *big.Int) error {
	owner, err := o.ledger.OwnerOf(asset, tokenID)
	if err != nil {
		return err
	}
	if owner != from {
		return fmt.Errorf("token %s of %s owned by %s, not %s", tokenID, asset.Hex(), owner.Hex(), from.Hex())
	}

	key := tokenKey{asset, tokenID.String()}
	if !o.authorized(key, owner) {
		return fmt.Errorf("%s not approved to move token %s of %s", o.account.Hex(), tokenID, asset.Hex())
	}

	o.ledger.setOwner(asset, key.id, to)
	// Single-token approvals do not survive a transfer.
	o.ledger.setTokenApproval(key, common.Address{})
	return nil
}

func (o *Operator) authorized(key tokenKey, owner common.Address) bool {
	if o.account == owner {
		return true
	}
	if approved, ok := o.ledger.tokenApprovals[key]; ok && approved == o.account {
		return true
	}
	_, ok := o.ledger.operatorApprovals[operatorKey{key.asset, owner, o.account}]
	return ok
}
