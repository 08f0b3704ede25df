// Package memory implements an in-memory asset ledger used as the
// custodian backend. It tracks fungible balances, non-fungible token
// owners and the allowances granted to the custodian, and supports
// reverting transfers to a snapshot so every engine operation can be
// made all-or-nothing locally.
package memory

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bundleswap/escrow-engine/assets"
)

type approvalKey struct {
	asset   common.Address
	owner   common.Address
	spender common.Address
}

type operatorKey struct {
	asset    common.Address
	owner    common.Address
	operator common.Address
}

type tokenKey struct {
	asset common.Address
	id    string
}

// Ledger is not safe for unsynchronized concurrent mutation; the
// escrow engine serializes all operations that reach it.
type Ledger struct {
	kinds             map[common.Address]assets.Kind
	balances          map[common.Address]map[common.Address]*big.Int
	owners            map[common.Address]map[string]common.Address
	allowances        map[approvalKey]*big.Int
	tokenApprovals    map[tokenKey]common.Address
	operatorApprovals map[operatorKey]struct{}

	// journal holds undo closures for every mutation since the oldest
	// live snapshot, applied in reverse on revert.
	journal []func()
}

func NewLedger() *Ledger {
	return &Ledger{
		kinds:             make(map[common.Address]assets.Kind),
		balances:          make(map[common.Address]map[common.Address]*big.Int),
		owners:            make(map[common.Address]map[string]common.Address),
		allowances:        make(map[approvalKey]*big.Int),
		tokenApprovals:    make(map[tokenKey]common.Address),
		operatorApprovals: make(map[operatorKey]struct{}),
	}
}

func (l *Ledger) RegisterAsset(asset common.Address, kind assets.Kind) error {
	if _, ok := l.kinds[asset]; ok {
		return fmt.Errorf("asset %s already registered", asset.Hex())
	}

	l.kinds[asset] = kind
	switch kind {
	case assets.Fungible:
		l.balances[asset] = make(map[common.Address]*big.Int)
	case assets.NonFungible:
		l.owners[asset] = make(map[string]common.Address)
	}
	return nil
}

func (l *Ledger) KindOf(asset common.Address) (assets.Kind, error) {
	kind, ok := l.kinds[asset]
	if !ok {
		return 0, fmt.Errorf("no asset registered at %s", asset.Hex())
	}

	return kind, nil
}

// Mint credits idOrAmount to owner. For non-fungible assets the token
// id must be unminted.
func (l *Ledger) Mint(asset common.Address, owner common.Address, idOrAmount *big.Int) error {
	kind, err := l.KindOf(asset)
	if err != nil {
		return err
	}

	if kind == assets.Fungible {
		if idOrAmount.Sign() < 0 {
			return fmt.Errorf("negative amount %s of %s for %s", idOrAmount, asset.Hex(), owner.Hex())
		}
		l.credit(asset, owner, idOrAmount)
		return nil
	}

	id := idOrAmount.String()
	if holder, ok := l.owners[asset][id]; ok {
		return fmt.Errorf("token %s of %s already minted to %s", id, asset.Hex(), holder.Hex())
	}
	l.setOwner(asset, id, owner)
	return nil
}

// Approve grants spender the right to pull idOrAmount from owner. For
// fungible assets it sets the allowance, for non-fungible assets it
// approves the single token, which must be owned by owner.
func (l *Ledger) Approve(asset common.Address, owner, spender common.Address, idOrAmount *big.Int) error {
	kind, err := l.KindOf(asset)
	if err != nil {
		return err
	}

	if kind == assets.Fungible {
		if idOrAmount.Sign() < 0 {
			return fmt.Errorf("negative allowance %s of %s for %s", idOrAmount, asset.Hex(), spender.Hex())
		}
		l.setAllowance(approvalKey{asset, owner, spender}, idOrAmount)
		return nil
	}

	id := idOrAmount.String()
	holder, ok := l.owners[asset][id]
	if !ok || holder != owner {
		return fmt.Errorf("token %s of %s not owned by %s", id, asset.Hex(), owner.Hex())
	}
	l.setTokenApproval(tokenKey{asset, id}, spender)
	return nil
}

// SetApprovalForAll lets operator move every token owner holds in the
// given non-fungible asset.
func (l *Ledger) SetApprovalForAll(asset common.Address, owner, operator common.Address) error {
	kind, err := l.KindOf(asset)
	if err != nil {
		return err
	}
	if kind != assets.NonFungible {
		return fmt.Errorf("asset %s is not nonfungible", asset.Hex())
	}

	l.operatorApprovals[operatorKey{asset, owner, operator}] = struct{}{}
	return nil
}

func (l *Ledger) BalanceOf(asset common.Address, owner common.Address) *big.Int {
	balance, ok := l.balances[asset][owner]
	if !ok {
		return new(big.Int)
	}

	return new(big.Int).Set(balance)
}

func (l *Ledger) OwnerOf(asset common.Address, tokenID *big.Int) (common.Address, error) {
	owner, ok := l.owners[asset][tokenID.String()]
	if !ok {
		return common.Address{}, fmt.Errorf("token %s of %s not minted", tokenID, asset.Hex())
	}

	return owner, nil
}

func (l *Ledger) Allowance(asset common.Address, owner, spender common.Address) *big.Int {
	allowance, ok := l.allowances[approvalKey{asset, owner, spender}]
	if !ok {
		return new(big.Int)
	}

	return new(big.Int).Set(allowance)
}

// Operator returns a transfer backend acting as account. Transfers it
// executes are subject to the same allowance rules the asset contracts
// enforce on chain.
func (l *Ledger) Operator(account common.Address) *Operator {
	return &Operator{ledger: l, account: account}
}

// Snapshot marks the current ledger revision. The returned id stays
// valid until it is reverted to or a later revision is reverted past it.
func (l *Ledger) Snapshot() int {
	return len(l.journal)
}

// RevertToSnapshot undoes every mutation made since the snapshot.
func (l *Ledger) RevertToSnapshot(id int) {
	if id < 0 || id > len(l.journal) {
		panic(fmt.Sprintf("ledger snapshot %d out of range", id))
	}

	for i := len(l.journal) - 1; i >= id; i-- {
		l.journal[i]()
	}
	l.journal = l.journal[:id]
}

func (l *Ledger) credit(asset common.Address, owner common.Address, amount *big.Int) {
	prev, had := l.balances[asset][owner]
	l.balances[asset][owner] = new(big.Int).Add(l.BalanceOf(asset, owner), amount)
	l.journal = append(l.journal, func() {
		if had {
			l.balances[asset][owner] = prev
		} else {
			delete(l.balances[asset], owner)
		}
	})
}

func (l *Ledger) debit(asset common.Address, owner common.Address, amount *big.Int) error {
	// A negative amount would turn the debit into a credit.
	if amount.Sign() < 0 {
		return fmt.Errorf("negative amount %s of %s for %s", amount, asset.Hex(), owner.Hex())
	}

	balance := l.BalanceOf(asset, owner)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("balance %s of %s below %s for %s", balance, owner.Hex(), amount, asset.Hex())
	}

	prev := l.balances[asset][owner]
	l.balances[asset][owner] = balance.Sub(balance, amount)
	l.journal = append(l.journal, func() {
		l.balances[asset][owner] = prev
	})
	return nil
}

func (l *Ledger) setOwner(asset common.Address, id string, owner common.Address) {
	prev, had := l.owners[asset][id]
	l.owners[asset][id] = owner
	l.journal = append(l.journal, func() {
		if had {
			l.owners[asset][id] = prev
		} else {
			delete(l.owners[asset], id)
		}
	})
}

func (l *Ledger) setAllowance(key approvalKey, amount *big.Int) {
	prev, had := l.allowances[key]
	l.allowances[key] = new(big.Int).Set(amount)
	l.journal = append(l.journal, func() {
		if had {
			l.allowances[key] = prev
		} else {
			delete(l.allowances, key)
		}
	})
}

func (l *Ledger) setTokenApproval(key tokenKey, spender common.Address) {
	prev, had := l.tokenApprovals[key]
	if spender == (common.Address{}) && !had {
		return
	}
	if spender == (common.Address{}) {
		delete(l.tokenApprovals, key)
	} else {
		l.tokenApprovals[key] = spender
	}
	l.journal = append(l.journal, func() {
		if had {
			l.tokenApprovals[key] = prev
		} else {
			delete(l.tokenApprovals, key)
		}
	})
}
