package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"

	"github.com/bundleswap/escrow-engine/assets"
	"github.com/bundleswap/escrow-engine/chains/evm/calls/contracts"
)

type FungibleCaller interface {
	Allowance(owner, spender common.Address) (*big.Int, error)
}

type NonFungibleCaller interface {
	OwnerOf(tokenID *big.Int) (common.Address, error)
	GetApproved(tokenID *big.Int) (common.Address, error)
	IsApprovedForAll(owner, operator common.Address) (bool, error)
}

// ContractFactory resolves asset contract bindings per address.
type ContractFactory interface {
	ERC20(asset common.Address) FungibleCaller
	ERC721(asset common.Address) NonFungibleCaller
}

type clientContractFactory struct {
	client client.Client
}

func NewClientContractFactory(client client.Client) ContractFactory {
	return &clientContractFactory{client: client}
}

func (f *clientContractFactory) ERC20(asset common.Address) FungibleCaller {
	return contracts.NewERC20Contract(f.client, asset)
}

func (f *clientContractFactory) ERC721(asset common.Address) NonFungibleCaller {
	return contracts.NewERC721Contract(f.client, asset)
}

// ApprovalChecker verifies on-chain that the custodian holds the
// allowance or approval needed to pull an asset from its owner. It is
// a preflight only; the pull itself still fails safely without it.
type ApprovalChecker struct {
	custodian common.Address
	kinds     assets.KindRegistry
	factory   ContractFactory
}

func NewApprovalChecker(
	factory ContractFactory,
	custodian common.Address,
	kinds assets.KindRegistry,
) *ApprovalChecker {
	return &ApprovalChecker{
		custodian: custodian,
		kinds:     kinds,
		factory:   factory,
	}
}

func (a *ApprovalChecker) VerifyApproval(asset common.Address, owner common.Address, idOrAmount *big.Int) error {
	kind, err := a.kinds.KindOf(asset)
	if err != nil {
		return err
	}

	if kind == assets.Fungible {
		return a.verifyAllowance(asset, owner, idOrAmount)
	}
	return a.verifyTokenApproval(asset, owner, idOrAmount)
}

func (a *ApprovalChecker) verifyAllowance(asset common.Address, owner common.Address, amount *big.Int) error {
	allowance, err := a.factory.ERC20(asset).Allowance(owner, a.custodian)
	if err != nil {
		return err
	}

	if allowance.Cmp(amount) < 0 {
		return fmt.Errorf("allowance %s of %s for custodian below %s", allowance, asset.Hex(), amount)
	}
	return nil
}

func (a *ApprovalChecker) verifyTokenApproval(asset common.Address, owner common.Address, tokenID *big.Int) error {
	contract := a.factory.ERC721(asset)
	holder, err := contract.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if holder != owner {
		return fmt.Errorf("token %s of %s owned by %s, not %s", tokenID, asset.Hex(), holder.Hex(), owner.Hex())
	}

	approved, err := contract.GetApproved(tokenID)
	if err != nil {
		return err
	}
	if approved == a.custodian {
		return nil
	}

	all, err := contract.IsApprovedForAll(owner, a.custodian)
	if err != nil {
		return err
	}
	if !all {
		return fmt.Errorf("custodian not approved for token %s of %s", tokenID, asset.Hex())
	}
	return nil
}
