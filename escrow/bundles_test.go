package escrow_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/bundleswap/escrow-engine/assets"
	"github.com/bundleswap/escrow-engine/assets/memory"
	"github.com/bundleswap/escrow-engine/escrow"
)

var (
	custodian = common.HexToAddress("0x9B36f165baB9ebe611d491180418d8De4b8f3a1f")
	alice     = common.HexToAddress("0x739139AB4a2a8b1e5e5d90d7b3FfD8D8d6D0dD5d")
	bob       = common.HexToAddress("0x04005C8A516d7d72dd50ee6D15bC381f80a62406")

	usdc = common.HexToAddress("0x72F46b6AB7249Bed9cC74Fce9E2a5ff84C756bc1")
	gold = common.HexToAddress("0x83A9b6B22385846c6B82a3f28cd1aDa9fa4F3044")
	deed = common.HexToAddress("0xeD4aC08dD19064BD3C8Ba304f28cd1aDa9fa4F30")
)

// setupEngine builds an engine over a fresh in-memory ledger. Alice
// holds fungibles and the deed token 0, bob holds fungibles and deed
// tokens 3003, 8848 and 1000042. Only usdc and deed are approved for
// custody; gold is minted without approvals.
func setupEngine() (*escrow.Engine, *memory.Ledger) {
	ledger := memory.NewLedger()

	_ = ledger.RegisterAsset(usdc, assets.Fungible)
	_ = ledger.RegisterAsset(gold, assets.Fungible)
	_ = ledger.RegisterAsset(deed, assets.NonFungible)

	_ = ledger.Mint(usdc, alice, big.NewInt(1_000_000))
	_ = ledger.Mint(usdc, bob, big.NewInt(1_000_000))
	_ = ledger.Mint(gold, alice, big.NewInt(500))
	_ = ledger.Mint(deed, alice, big.NewInt(0))
	_ = ledger.Mint(deed, bob, big.NewInt(3003))
	_ = ledger.Mint(deed, bob, big.NewInt(8848))
	_ = ledger.Mint(deed, bob, big.NewInt(1000042))

	_ = ledger.Approve(usdc, alice, custodian, big.NewInt(1_000_000))
	_ = ledger.Approve(usdc, bob, custodian, big.NewInt(1_000_000))
	_ = ledger.SetApprovalForAll(deed, alice, custodian)
	_ = ledger.SetApprovalForAll(deed, bob, custodian)

	adapter := assets.NewAdapter(custodian, ledger, ledger.Operator(custodian))
	return escrow.NewEngine(adapter, ledger, nil), ledger
}

type CreateBundleTestSuite struct {
	suite.Suite

	engine *escrow.Engine
	ledger *memory.Ledger
}

func TestRunCreateBundleTestSuite(t *testing.T) {
	suite.Run(t, new(CreateBundleTestSuite))
}

func (s *CreateBundleTestSuite) SetupTest() {
	s.engine, s.ledger = setupEngine()
}

func (s *CreateBundleTestSuite) Test_CreateBundle_LengthMismatch() {
	_, err := s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{})

	s.ErrorIs(err, escrow.ErrLengthMismatch)
}

func (s *CreateBundleTestSuite) Test_CreateBundle_LocksAssets() {
	id, err := s.engine.CreateBundle(
		alice,
		[]common.Address{usdc, deed},
		[]*big.Int{big.NewInt(1000), big.NewInt(0)})

	s.Nil(err)
	s.Equal(uint64(0), id)
	s.Equal("1000", s.ledger.BalanceOf(usdc, custodian).String())
	s.Equal("999000", s.ledger.BalanceOf(usdc, alice).String())
	owner, _ := s.ledger.OwnerOf(deed, big.NewInt(0))
	s.Equal(custodian, owner)

	bundle, err := s.engine.Bundle(id)
	s.Nil(err)
	s.Equal(alice, bundle.Creator)
	s.Equal(escrow.StatusCreated, bundle.Status)
	s.Len(bundle.Lots, 2)
}

func (s *CreateBundleTestSuite) Test_CreateBundle_NegativeValueRejected() {
	// bob holds no gold and granted no gold allowance; a negative value
	// must not pass as a deposit that pays the depositor
	_, err := s.engine.CreateBundle(bob, []common.Address{gold}, []*big.Int{big.NewInt(-500)})

	s.ErrorIs(err, escrow.ErrInvalidValue)
	s.Equal("0", s.ledger.BalanceOf(gold, custodian).String())
	s.Equal("0", s.ledger.BalanceOf(gold, bob).String())
	s.Equal("0", s.ledger.Allowance(gold, bob, custodian).String())
	s.Equal(escrow.Stats{}, s.engine.Stats())

	_, err = s.engine.Bundle(0)
	s.ErrorIs(err, escrow.ErrNotFound)
}

func (s *CreateBundleTestSuite) Test_CreateBundle_NilValueRejected() {
	_, err := s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{nil})

	s.ErrorIs(err, escrow.ErrInvalidValue)
	s.Equal("1000000", s.ledger.BalanceOf(usdc, alice).String())
}

func (s *CreateBundleTestSuite) Test_CreateBundle_EmptyBundleValid() {
	id, err := s.engine.CreateBundle(alice, []common.Address{}, []*big.Int{})

	s.Nil(err)
	s.Equal(uint64(0), id)

	bundle, err := s.engine.Bundle(id)
	s.Nil(err)
	s.Len(bundle.Lots, 0)
}

func (s *CreateBundleTestSuite) Test_CreateBundle_RollsBackOnFailedTransfer() {
	// gold carries no allowance so the second pull fails
	_, err := s.engine.CreateBundle(
		alice,
		[]common.Address{usdc, gold},
		[]*big.Int{big.NewInt(1000), big.NewInt(500)})

	s.NotNil(err)
	s.Equal("0", s.ledger.BalanceOf(usdc, custodian).String())
	s.Equal("1000000", s.ledger.BalanceOf(usdc, alice).String())
	s.Equal(escrow.Stats{}, s.engine.Stats())

	_, err = s.engine.Bundle(0)
	s.ErrorIs(err, escrow.ErrNotFound)
}

func (s *CreateBundleTestSuite) Test_CreateBundle_IdsAreNeverReused() {
	id1, err := s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{big.NewInt(100)})
	s.Nil(err)
	err = s.engine.DeleteBundle(alice, id1)
	s.Nil(err)

	id2, err := s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{big.NewInt(100)})
	s.Nil(err)

	s.Equal(uint64(0), id1)
	s.Equal(uint64(1), id2)
	s.Equal(uint64(2), s.engine.Stats().Bundles)
}

type DeleteBundleTestSuite struct {
	suite.Suite

	engine *escrow.Engine
	ledger *memory.Ledger
}

func TestRunDeleteBundleTestSuite(t *testing.T) {
	suite.Run(t, new(DeleteBundleTestSuite))
}

func (s *DeleteBundleTestSuite) SetupTest() {
	s.engine, s.ledger = setupEngine()
}

func (s *DeleteBundleTestSuite) Test_DeleteBundle_NotFound() {
	err := s.engine.DeleteBundle(alice, 99)

	s.ErrorIs(err, escrow.ErrNotFound)
}

func (s *DeleteBundleTestSuite) Test_DeleteBundle_Unauthorized() {
	id, _ := s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{big.NewInt(1000)})

	err := s.engine.DeleteBundle(bob, id)

	s.ErrorIs(err, escrow.ErrUnauthorized)
	s.Equal("1000", s.ledger.BalanceOf(usdc, custodian).String())
}

func (s *DeleteBundleTestSuite) Test_DeleteBundle_ReturnsAssets() {
	id, _ := s.engine.CreateBundle(
		alice,
		[]common.Address{usdc, deed},
		[]*big.Int{big.NewInt(1000), big.NewInt(0)})

	err := s.engine.DeleteBundle(alice, id)

	s.Nil(err)
	s.Equal("0", s.ledger.BalanceOf(usdc, custodian).String())
	s.Equal("1000000", s.ledger.BalanceOf(usdc, alice).String())
	owner, _ := s.ledger.OwnerOf(deed, big.NewInt(0))
	s.Equal(alice, owner)

	bundle, _ := s.engine.Bundle(id)
	s.Equal(escrow.StatusDeleted, bundle.Status)
}

func (s *DeleteBundleTestSuite) Test_DeleteBundle_AlreadyDeleted() {
	id, _ := s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{big.NewInt(1000)})
	_ = s.engine.DeleteBundle(alice, id)

	err := s.engine.DeleteBundle(alice, id)

	s.ErrorIs(err, escrow.ErrNotActive)
	s.Equal("1000000", s.ledger.BalanceOf(usdc, alice).String())
}
