package evm_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/bundleswap/escrow-engine/assets"
	mock_assets "github.com/bundleswap/escrow-engine/assets/mock"
	"github.com/bundleswap/escrow-engine/chains/evm"
	mock_evm "github.com/bundleswap/escrow-engine/chains/evm/mock"
)

type ApprovalCheckerTestSuite struct {
	suite.Suite

	mockFactory *mock_evm.MockContractFactory
	mockERC20   *mock_evm.MockFungibleCaller
	mockERC721  *mock_evm.MockNonFungibleCaller
	mockKinds   *mock_assets.MockKindRegistry
	checker     *evm.ApprovalChecker

	custodian common.Address
	owner     common.Address
	asset     common.Address
}

func TestRunApprovalCheckerTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalCheckerTestSuite))
}

func (s *ApprovalCheckerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockFactory = mock_evm.NewMockContractFactory(ctrl)
	s.mockERC20 = mock_evm.NewMockFungibleCaller(ctrl)
	s.mockERC721 = mock_evm.NewMockNonFungibleCaller(ctrl)
	s.mockKinds = mock_assets.NewMockKindRegistry(ctrl)
	s.mockFactory.EXPECT().ERC20(gomock.Any()).Return(s.mockERC20).AnyTimes()
	s.mockFactory.EXPECT().ERC721(gomock.Any()).Return(s.mockERC721).AnyTimes()

	s.custodian = common.HexToAddress("0x9B36f165baB9ebe611d491180418d8De4b8f3a1f")
	s.owner = common.HexToAddress("0x739139AB4a2a8b1e5e5d90d7b3FfD8D8d6D0dD5d")
	s.asset = common.HexToAddress("0x72F46b6AB7249Bed9cC74Fce9E2a5ff84C756bc1")

	s.checker = evm.NewApprovalChecker(s.mockFactory, s.custodian, s.mockKinds)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_UnknownAsset() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.Kind(0), errors.New("not configured"))

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(100))

	s.NotNil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_SufficientAllowance() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.Fungible, nil)
	s.mockERC20.EXPECT().Allowance(s.owner, s.custodian).Return(big.NewInt(100), nil)

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(100))

	s.Nil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_AllowanceTooLow() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.Fungible, nil)
	s.mockERC20.EXPECT().Allowance(s.owner, s.custodian).Return(big.NewInt(99), nil)

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(100))

	s.NotNil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_AllowanceCallFails() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.Fungible, nil)
	s.mockERC20.EXPECT().Allowance(s.owner, s.custodian).Return(nil, errors.New("call failed"))

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(100))

	s.NotNil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_TokenNotOwned() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.NonFungible, nil)
	s.mockERC721.EXPECT().OwnerOf(big.NewInt(7)).Return(s.custodian, nil)

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(7))

	s.NotNil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_SingleTokenApproval() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.NonFungible, nil)
	s.mockERC721.EXPECT().OwnerOf(big.NewInt(7)).Return(s.owner, nil)
	s.mockERC721.EXPECT().GetApproved(big.NewInt(7)).Return(s.custodian, nil)

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(7))

	s.Nil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_OperatorApproval() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.NonFungible, nil)
	s.mockERC721.EXPECT().OwnerOf(big.NewInt(7)).Return(s.owner, nil)
	s.mockERC721.EXPECT().GetApproved(big.NewInt(7)).Return(common.Address{}, nil)
	s.mockERC721.EXPECT().IsApprovedForAll(s.owner, s.custodian).Return(true, nil)

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(7))

	s.Nil(err)
}

func (s *ApprovalCheckerTestSuite) Test_VerifyApproval_NoApproval() {
	s.mockKinds.EXPECT().KindOf(s.asset).Return(assets.NonFungible, nil)
	s.mockERC721.EXPECT().OwnerOf(big.NewInt(7)).Return(s.owner, nil)
	s.mockERC721.EXPECT().GetApproved(big.NewInt(7)).Return(common.Address{}, nil)
	s.mockERC721.EXPECT().IsApprovedForAll(s.owner, s.custodian).Return(false, nil)

	err := s.checker.VerifyApproval(s.asset, s.owner, big.NewInt(7))

	s.NotNil(err)
}
