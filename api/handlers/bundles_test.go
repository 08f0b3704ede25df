package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/bundleswap/escrow-engine/api/handlers"
	mock_handlers "github.com/bundleswap/escrow-engine/api/handlers/mock"
	"github.com/bundleswap/escrow-engine/escrow"
)

var (
	caller = common.HexToAddress("0x739139AB4a2a8b1e5e5d90d7b3FfD8D8d6D0dD5d")
	usdc   = common.HexToAddress("0x72F46b6AB7249Bed9cC74Fce9E2a5ff84C756bc1")
	deed   = common.HexToAddress("0xeD4aC08dD19064BD3C8Ba304f28cd1aDa9fa4F30")
)

type BundlesHandlerTestSuite struct {
	suite.Suite

	mockEngine   *mock_handlers.MockEngine
	mockVerifier *mock_handlers.MockApprovalVerifier
	handler      *handlers.BundlesHandler
}

func TestRunBundlesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BundlesHandlerTestSuite))
}

func (s *BundlesHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockEngine = mock_handlers.NewMockEngine(ctrl)
	s.mockVerifier = mock_handlers.NewMockApprovalVerifier(ctrl)
	s.handler = handlers.NewBundlesHandler(s.mockEngine, s.mockVerifier, nil)
}

func (s *BundlesHandlerTestSuite) createRequest(body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/bundles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.CallerHeader, caller.Hex())
	return req
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_MissingCaller() {
	body, _ := json.Marshal(handlers.LotsBody{Assets: []string{}, Values: []*handlers.BigInt{}})
	req := httptest.NewRequest(http.MethodPost, "/v1/bundles", bytes.NewReader(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_InvalidBody() {
	req := s.createRequest([]byte("not json"))
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_LengthMismatch() {
	body, _ := json.Marshal(handlers.LotsBody{
		Assets: []string{usdc.Hex()},
		Values: []*handlers.BigInt{},
	})
	req := s.createRequest(body)
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_InvalidAssetAddress() {
	body, _ := json.Marshal(handlers.LotsBody{
		Assets: []string{"not an address"},
		Values: []*handlers.BigInt{{big.NewInt(100)}},
	})
	req := s.createRequest(body)
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_MissingApproval() {
	s.mockVerifier.EXPECT().VerifyApproval(usdc, caller, gomock.Any()).Return(errors.New("no allowance"))

	body, _ := json.Marshal(handlers.LotsBody{
		Assets: []string{usdc.Hex()},
		Values: []*handlers.BigInt{{big.NewInt(100)}},
	})
	req := s.createRequest(body)
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_NegativeValue() {
	s.mockVerifier.EXPECT().VerifyApproval(usdc, caller, big.NewInt(-500)).Return(nil)
	s.mockEngine.EXPECT().CreateBundle(caller, gomock.Any(), gomock.Any()).Return(uint64(0), escrow.ErrInvalidValue)

	body, _ := json.Marshal(handlers.LotsBody{
		Assets: []string{usdc.Hex()},
		Values: []*handlers.BigInt{{big.NewInt(-500)}},
	})
	req := s.createRequest(body)
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_EngineBusy() {
	s.mockVerifier.EXPECT().VerifyApproval(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockEngine.EXPECT().CreateBundle(caller, gomock.Any(), gomock.Any()).Return(uint64(0), escrow.ErrReentrantCall)

	body, _ := json.Marshal(handlers.LotsBody{
		Assets: []string{usdc.Hex()},
		Values: []*handlers.BigInt{{big.NewInt(100)}},
	})
	req := s.createRequest(body)
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleCreate_ValidRequest() {
	s.mockVerifier.EXPECT().VerifyApproval(usdc, caller, big.NewInt(100)).Return(nil)
	s.mockVerifier.EXPECT().VerifyApproval(deed, caller, big.NewInt(7)).Return(nil)
	s.mockEngine.EXPECT().CreateBundle(
		caller,
		[]common.Address{usdc, deed},
		[]*big.Int{big.NewInt(100), big.NewInt(7)},
	).Return(uint64(3), nil)

	body, _ := json.Marshal(handlers.LotsBody{
		Assets: []string{usdc.Hex(), deed.Hex()},
		Values: []*handlers.BigInt{{big.NewInt(100)}, {big.NewInt(7)}},
	})
	req := s.createRequest(body)
	recorder := httptest.NewRecorder()

	s.handler.HandleCreate(recorder, req)

	s.Equal(http.StatusCreated, recorder.Code)
	resp := make(map[string]uint64)
	_ = json.NewDecoder(recorder.Body).Decode(&resp)
	s.Equal(uint64(3), resp["id"])
}

func (s *BundlesHandlerTestSuite) Test_HandleGet_NotFound() {
	s.mockEngine.EXPECT().Bundle(uint64(5)).Return(escrow.Bundle{}, escrow.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/bundles/5", nil)
	req = mux.SetURLVars(req, map[string]string{"bundleId": "5"})
	recorder := httptest.NewRecorder()

	s.handler.HandleGet(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleGet_ValidRequest() {
	s.mockEngine.EXPECT().Bundle(uint64(5)).Return(escrow.Bundle{
		ID:      5,
		Creator: caller,
		Lots:    []escrow.Lot{{Asset: usdc, Value: big.NewInt(100)}},
		Status:  escrow.StatusCreated,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/bundles/5", nil)
	req = mux.SetURLVars(req, map[string]string{"bundleId": "5"})
	recorder := httptest.NewRecorder()

	s.handler.HandleGet(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	bundle := escrow.Bundle{}
	_ = json.NewDecoder(recorder.Body).Decode(&bundle)
	s.Equal(uint64(5), bundle.ID)
	s.Equal(escrow.StatusCreated, bundle.Status)
}

func (s *BundlesHandlerTestSuite) Test_HandleDelete_Unauthorized() {
	s.mockEngine.EXPECT().DeleteBundle(caller, uint64(5)).Return(escrow.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodDelete, "/v1/bundles/5", nil)
	req.Header.Set(handlers.CallerHeader, caller.Hex())
	req = mux.SetURLVars(req, map[string]string{"bundleId": "5"})
	recorder := httptest.NewRecorder()

	s.handler.HandleDelete(recorder, req)

	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *BundlesHandlerTestSuite) Test_HandleDelete_ValidRequest() {
	s.mockEngine.EXPECT().DeleteBundle(caller, uint64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/bundles/5", nil)
	req.Header.Set(handlers.CallerHeader, caller.Hex())
	req = mux.SetURLVars(req, map[string]string{"bundleId": "5"})
	recorder := httptest.NewRecorder()

	s.handler.HandleDelete(recorder, req)

	s.Equal(http.StatusNoContent, recorder.Code)
}
