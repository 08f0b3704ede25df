package assets

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Kind classifies an asset contract at registration time. Transfer
// dispatch is driven by this classification instead of probing the
// contract for supported transfer semantics.
type Kind uint8

const (
	Fungible Kind = iota
	NonFungible
)

func (k Kind) String() string {
	switch k {
	case Fungible:
		return "fungible"
	case NonFungible:
		return "nonfungible"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "fungible", "erc20":
		return Fungible, nil
	case "nonfungible", "erc721":
		return NonFungible, nil
	default:
		return 0, fmt.Errorf("unknown asset kind %q", s)
	}
}

// KindRegistry resolves the registered kind of an asset contract.
type KindRegistry interface {
	KindOf(asset common.Address) (Kind, error)
}

// Backend executes single-asset moves on behalf of the custodian
// account. Transfer spends the custodian's own fungible balance.
// TransferFrom moves an asset between third-party accounts and
// requires a prior allowance or approval to the custodian.
type Backend interface {
	Transfer(asset common.Address, to common.Address, amount *big.Int) error
	TransferFrom(asset common.Address, from common.Address, to common.Address, idOrAmount *big.Int) error
}

// Snapshotter is implemented by backends that can revert transfers
// executed since a snapshot. The engine uses it to make every public
// operation all-or-nothing. Backends without it delegate that
// guarantee to an external execution boundary.
type Snapshotter interface {
	Snapshot() int
	RevertToSnapshot(id int)
}
