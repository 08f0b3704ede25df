package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type OffersHandler struct {
	engine   Engine
	verifier ApprovalVerifier
	metrics  OperationMetrics
}

func NewOffersHandler(engine Engine, verifier ApprovalVerifier, metrics OperationMetrics) *OffersHandler {
	return &OffersHandler{
		engine:   engine,
		verifier: verifier,
		metrics:  metrics,
	}
}

// HandleCreate locks the posted lots as an offer against the bundle in
// the path and returns the id of the new offer
func (h *OffersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		defer h.metrics.TrackOperationTime(time.Now())
	}

	caller, err := callerAddress(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	bundleID, err := pathID(mux.Vars(r), "bundleId")
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

	id, err := h.engine.CreateOffer(caller, bundleID, assetList, values)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	JSONResponse(w, map[string]uint64{"id": id}, http.StatusCreated)
}

// HandleList returns the ids of open offers targeting the bundle
func (h *OffersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	bundleID, err := pathID(mux.Vars(r), "bundleId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	offers, err := h.engine.OpenOffers(bundleID)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	JSONResponse(w, map[string][]uint64{"offers": offers}, http.StatusOK)
}

// HandleGet returns the offer with the requested id, whatever its
// status
func (h *OffersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "offerId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	offer, err := h.engine.Offer(id)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	JSONResponse(w, offer, http.StatusOK)
}

// HandleDelete returns the locked lots to the offerer
func (h *OffersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		defer h.metrics.TrackOperationTime(time.Now())
	}

	caller, err := callerAddress(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	id, err := pathID(mux.Vars(r), "offerId")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err = h.engine.DeleteOffer(caller, id)
	if err != nil {
		JSONError(w, err, statusCode(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
