package escrow_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/bundleswap/escrow-engine/assets/memory"
	"github.com/bundleswap/escrow-engine/escrow"
)

type CreateOfferTestSuite struct {
	suite.Suite

	engine   *escrow.Engine
	ledger   *memory.Ledger
	bundleID uint64
}

func TestRunCreateOfferTestSuite(t *testing.T) {
	suite.Run(t, new(CreateOfferTestSuite))
}

func (s *CreateOfferTestSuite) SetupTest() {
	s.engine, s.ledger = setupEngine()
	s.bundleID, _ = s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{big.NewInt(1000)})
}

func (s *CreateOfferTestSuite) Test_CreateOffer_UnknownBundle() {
	_, err := s.engine.CreateOffer(bob, 99, []common.Address{usdc}, []*big.Int{big.NewInt(100)})

	s.ErrorIs(err, escrow.ErrNotFound)
}

func (s *CreateOfferTestSuite) Test_CreateOffer_LengthMismatch() {
	_, err := s.engine.CreateOffer(bob, s.bundleID, []common.Address{usdc}, []*big.Int{})

	s.ErrorIs(err, escrow.ErrLengthMismatch)
}

func (s *CreateOfferTestSuite) Test_CreateOffer_NegativeValueRejected() {
	_, err := s.engine.CreateOffer(bob, s.bundleID, []common.Address{gold}, []*big.Int{big.NewInt(-500)})

	s.ErrorIs(err, escrow.ErrInvalidValue)
	s.Equal("0", s.ledger.BalanceOf(gold, custodian).String())
	s.Equal("0", s.ledger.BalanceOf(gold, bob).String())
	s.Equal(uint64(0), s.engine.Stats().Offers)
}

func (s *CreateOfferTestSuite) Test_CreateOffer_LocksAssets() {
	id, err := s.engine.CreateOffer(
		bob,
		s.bundleID,
		[]common.Address{deed, usdc},
		[]*big.Int{big.NewInt(3003), big.NewInt(500)})

	s.Nil(err)
	s.Equal(uint64(0), id)
	owner, _ := s.ledger.OwnerOf(deed, big.NewInt(3003))
	s.Equal(custodian, owner)
	s.Equal("999500", s.ledger.BalanceOf(usdc, bob).String())

	offer, err := s.engine.Offer(id)
	s.Nil(err)
	s.Equal(s.bundleID, offer.BundleID)
	s.Equal(bob, offer.Offerer)
	s.Equal(escrow.StatusCreated, offer.Status)

	openOffers, err := s.engine.OpenOffers(s.bundleID)
	s.Nil(err)
	s.Equal([]uint64{id}, openOffers)
}

func (s *CreateOfferTestSuite) Test_CreateOffer_RollsBackOnFailedTransfer() {
	// bob holds no gold at all
	_, err := s.engine.CreateOffer(
		bob,
		s.bundleID,
		[]common.Address{deed, gold},
		[]*big.Int{big.NewInt(3003), big.NewInt(1)})

	s.NotNil(err)
	owner, _ := s.ledger.OwnerOf(deed, big.NewInt(3003))
	s.Equal(bob, owner)
	s.Equal(uint64(0), s.engine.Stats().Offers)
}

// Offers may target bundles that already left created status. The
// locked assets stay retrievable through cancellation.
func (s *CreateOfferTestSuite) Test_CreateOffer_AgainstDeletedBundle() {
	_ = s.engine.DeleteBundle(alice, s.bundleID)

	id, err := s.engine.CreateOffer(bob, s.bundleID, []common.Address{usdc}, []*big.Int{big.NewInt(100)})
	s.Nil(err)

	err = s.engine.DeleteOffer(bob, id)
	s.Nil(err)
	s.Equal("1000000", s.ledger.BalanceOf(usdc, bob).String())
}

type DeleteOfferTestSuite struct {
	suite.Suite

	engine   *escrow.Engine
	ledger   *memory.Ledger
	bundleID uint64
}

func TestRunDeleteOfferTestSuite(t *testing.T) {
	suite.Run(t, new(DeleteOfferTestSuite))
}

func (s *DeleteOfferTestSuite) SetupTest() {
	s.engine, s.ledger = setupEngine()
	s.bundleID, _ = s.engine.CreateBundle(alice, []common.Address{usdc}, []*big.Int{big.NewInt(1000)})
}

func (s *DeleteOfferTestSuite) Test_DeleteOffer_NotFound() {
	err := s.engine.DeleteOffer(bob, 99)

	s.ErrorIs(err, escrow.ErrNotFound)
}

func (s *DeleteOfferTestSuite) Test_DeleteOffer_Unauthorized() {
	id, _ := s.engine.CreateOffer(bob, s.bundleID, []common.Address{usdc}, []*big.Int{big.NewInt(100)})

	err := s.engine.DeleteOffer(alice, id)

	s.ErrorIs(err, escrow.ErrUnauthorized)
}

func (s *DeleteOfferTestSuite) Test_DeleteOffer_ReturnsAssetsAndPrunesIndex() {
	id1, _ := s.engine.CreateOffer(bob, s.bundleID, []common.Address{usdc}, []*big.Int{big.NewInt(100)})
	id2, _ := s.engine.CreateOffer(bob, s.bundleID, []common.Address{deed}, []*big.Int{big.NewInt(8848)})
	id3, _ := s.engine.CreateOffer(bob, s.bundleID, []common.Address{usdc}, []*big.Int{big.NewInt(200)})

	err := s.engine.DeleteOffer(bob, id1)
	s.Nil(err)

	offer, _ := s.engine.Offer(id1)
	s.Equal(escrow.StatusDeleted, offer.Status)
	s.Equal("999800", s.ledger.BalanceOf(usdc, bob).String())

	openOffers, err := s.engine.OpenOffers(s.bundleID)
	s.Nil(err)
	s.ElementsMatch([]uint64{id2, id3}, openOffers)
}

func (s *DeleteOfferTestSuite) Test_DeleteOffer_AlreadyDeleted() {
	id, _ := s.engine.CreateOffer(bob, s.bundleID, []common.Address{usdc}, []*big.Int{big.NewInt(100)})
	_ = s.engine.DeleteOffer(bob, id)

	err := s.engine.DeleteOffer(bob, id)

	s.ErrorIs(err, escrow.ErrNotActive)
	s.Equal("1000000", s.ledger.BalanceOf(usdc, bob).String())
}
