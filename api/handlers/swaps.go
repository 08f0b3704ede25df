package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bundleswap/escrow-engine/escrow"
)

// Receipts looks up receipts of recently completed swaps.
type Receipts interface {
	Add(receipt escrow.SwapReceipt)
	Receipt(bundleID uint64) (escrow.SwapReceipt, error)
}

type SwapsHandler struct {
	engine   Engine
	receipts Receipts
	metrics  OperationMetrics
}

func NewSwapsHandler(engine Engine, receipts Receipts, metrics OperationMetrics) *SwapsHandler {
	return &SwapsHandler{
		engine:   engine,
		receipts: receipts,
		metrics:  metrics,
	}
}

// HandleAccept swaps the bundle custody lot against the offer custody
// lot and returns the receipt
func (h *SwapsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		defer h.metrics.TrackOperationTime(time.Now())
	}

	caller, err := callerAddress(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	bundleID, err := pathID(vars, "bundleId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	offerID, err := pathID(vars, "offerId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	receipt, err := h.engine.AcceptOffer(caller, bundleID, offerID)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}
	if h.receipts != nil {
		h.receipts.Add(receipt)
	}

	JSONResponse(w, receipt, http.StatusOK)
}

// HandleReceipt returns the cached receipt for a completed bundle
func (h *SwapsHandler) HandleReceipt(w http.ResponseWriter, r *http.Request) {
	bundleID, err := pathID(mux.Vars(r), "bundleId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	receipt, err := h.receipts.Receipt(bundleID)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	JSONResponse(w, receipt, http.StatusOK)
}
