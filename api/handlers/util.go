package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bundleswap/escrow-engine/escrow"
)

const CallerHeader = "X-Caller-Address"

type BigInt struct {
	*big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", b.String())), nil
}

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func JSONResponse(w http.ResponseWriter, body interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// callerAddress resolves the identity the operation executes as from
// the X-Caller-Address header.
func callerAddress(r *http.Request) (common.Address, error) {
	caller := r.Header.Get(CallerHeader)
	if caller == "" {
		return common.Address{}, fmt.Errorf("missing header '%s'", CallerHeader)
	}
	if !common.IsHexAddress(caller) {
		return common.Address{}, fmt.Errorf("invalid caller address %s", caller)
	}
	return common.HexToAddress(caller), nil
}

func pathID(vars map[string]string, name string) (uint64, error) {
	id, err := strconv.ParseUint(vars[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field '%s' invalid", name)
	}
	return id, nil
}

// statusCode maps engine errors onto HTTP status codes. Transfer
// failures have no sentinel and map to 422.
func statusCode(err error) int {
	switch {
	case errors.Is(err, escrow.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, escrow.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, escrow.ErrNotActive), errors.Is(err, escrow.ErrBundleMismatch):
		return http.StatusConflict
	case errors.Is(err, escrow.ErrLengthMismatch), errors.Is(err, escrow.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, escrow.ErrReentrantCall):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}
