package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bundleswap/escrow-engine/escrow"
)

var stateKey = []byte("escrow:state")

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// EscrowStore persists engine snapshots so that bundles and offers
// survive restarts.
type EscrowStore struct {
	db KeyValueReaderWriter
}

func NewEscrowStore(db KeyValueReaderWriter) *EscrowStore {
	return &EscrowStore{
		db: db,
	}
}

// Persist stores the snapshot, replacing the previously stored one.
func (s *EscrowStore) Persist(snapshot *escrow.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = s.db.SetByKey(stateKey, data)
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

// Snapshot returns the stored snapshot. A nil snapshot with a nil error
// means nothing has been persisted yet.
func (s *EscrowStore) Snapshot() (*escrow.Snapshot, error) {
	data, err := s.db.GetByKey(stateKey)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	snapshot := &escrow.Snapshot{}
	err = json.Unmarshal(data, snapshot)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}
