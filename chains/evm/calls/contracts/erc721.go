package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/bundleswap/escrow-engine/chains/evm/calls/consts"
)

type ERC721Contract struct {
	contracts.Contract
	client client.Client
}

func NewERC721Contract(
	client client.Client,
	address common.Address,
) *ERC721Contract {
	return &ERC721Contract{
		Contract: contracts.NewContract(address, consts.ERC721ABI, nil, client, nil),
		client:   client,
	}
}

func (c *ERC721Contract) OwnerOf(tokenID *big.Int) (common.Address, error) {
	res, err := c.CallContract("ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}

	out := *abi.ConvertType(res[0], new(common.Address)).(*common.Address)
	return out, nil
}

func (c *ERC721Contract) GetApproved(tokenID *big.Int) (common.Address, error) {
	res, err := c.CallContract("getApproved", tokenID)
	if err != nil {
		return common.Address{}, err
	}

	out := *abi.ConvertType(res[0], new(common.Address)).(*common.Address)
	return out, nil
}

func (c *ERC721Contract) IsApprovedForAll(owner, operator common.Address) (bool, error) {
	res, err := c.CallContract("isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}

	out := *abi.ConvertType(res[0], new(bool)).(*bool)
	return out, nil
}
