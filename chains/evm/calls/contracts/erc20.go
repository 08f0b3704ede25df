package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/bundleswap/escrow-engine/chains/evm/calls/consts"
)

type ERC20Contract struct {
	contracts.Contract
	client client.Client
}

func NewERC20Contract(
	client client.Client,
	address common.Address,
) *ERC20Contract {
	return &ERC20Contract{
		Contract: contracts.NewContract(address, consts.ERC20ABI, nil, client, nil),
		client:   client,
	}
}

// Allowance returns the amount spender may pull from owner.
func (c *ERC20Contract) Allowance(owner, spender common.Address) (*big.Int, error) {
	res, err := c.CallContract("allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	out := *abi.ConvertType(res[0], new(*big.Int)).(**big.Int)
	return out, nil
}

func (c *ERC20Contract) BalanceOf(account common.Address) (*big.Int, error) {
	res, err := c.CallContract("balanceOf", account)
	if err != nil {
		return nil, err
	}

	out := *abi.ConvertType(res[0], new(*big.Int)).(**big.Int)
	return out, nil
}
