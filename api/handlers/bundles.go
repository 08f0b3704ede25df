package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/bundleswap/escrow-engine/escrow"
)

// Engine is the subset of the escrow engine the API exposes.
type Engine interface {
	CreateBundle(caller common.Address, assetList []common.Address, values []*big.Int) (uint64, error)
	DeleteBundle(caller common.Address, bundleID uint64) error
	CreateOffer(caller common.Address, bundleID uint64, assetList []common.Address, values []*big.Int) (uint64, error)
	DeleteOffer(caller common.Address, offerID uint64) error
	AcceptOffer(caller common.Address, bundleID, offerID uint64) (escrow.SwapReceipt, error)
	Bundle(id uint64) (escrow.Bundle, error)
	Offer(id uint64) (escrow.Offer, error)
	OpenOffers(bundleID uint64) ([]uint64, error)
}

// ApprovalVerifier checks on-chain that the caller approved the
// custodian for an asset before the engine tries to pull it.
type ApprovalVerifier interface {
	VerifyApproval(asset common.Address, owner common.Address, idOrAmount *big.Int) error
}

type OperationMetrics interface {
	TrackOperationTime(start time.Time)
}

type LotsBody struct {
	Assets []string  `json:"assets"`
	Values []*BigInt `json:"values"`
}

func (b *LotsBody) parse() ([]common.Address, []*big.Int, error) {
	if len(b.Assets) != len(b.Values) {
		return nil, nil, fmt.Errorf("fields 'assets' and 'values' differ in length")
	}

	assetList := make([]common.Address, len(b.Assets))
	values := make([]*big.Int, len(b.Values))
	for i, asset := range b.Assets {
		if !common.IsHexAddress(asset) {
			return nil, nil, fmt.Errorf("invalid asset address %s", asset)
		}
		if b.Values[i] == nil {
			return nil, nil, fmt.Errorf("missing value for asset %s", asset)
		}
		assetList[i] = common.HexToAddress(asset)
		values[i] = b.Values[i].Int
	}
	return assetList, values, nil
}

type BundlesHandler struct {
	engine   Engine
	verifier ApprovalVerifier
	metrics  OperationMetrics
}

func NewBundlesHandler(engine Engine, verifier ApprovalVerifier, metrics OperationMetrics) *BundlesHandler {
	return &BundlesHandler{
		engine:   engine,
		verifier: verifier,
		metrics:  metrics,
	}
}

// HandleCreate locks the posted lots into custody and returns the id of
// the new bundle
func (h *BundlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		defer h.metrics.TrackOperationTime(time.Now())
	}

	caller, err := callerAddress(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	b := &LotsBody{}
	d := json.NewDecoder(r.Body)
	err = d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	assetList, values, err := b.parse()
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	if h.verifier != nil {
		for i, asset := range assetList {
			err = h.verifier.VerifyApproval(asset, caller, values[i])
			if err != nil {
				JSONError(w, fmt.Errorf("asset %s not approved for custody: %s", asset, err), http.StatusUnprocessableEntity)
				return
			}
		}
	}

	id, err := h.engine.CreateBundle(caller, assetList, values)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	JSONResponse(w, map[string]uint64{"id": id}, http.StatusCreated)
}

// HandleGet returns the bundle with the requested id, whatever its
// status
func (h *BundlesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "bundleId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	bundle, err := h.engine.Bundle(id)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	JSONResponse(w, bundle, http.StatusOK)
}

// HandleDelete returns the locked lots to the bundle creator
func (h *BundlesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		defer h.metrics.TrackOperationTime(time.Now())
	}

	caller, err := callerAddress(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	id, err := pathID(mux.Vars(r), "bundleId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err = h.engine.DeleteBundle(caller, id)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
