package escrow

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/bundleswap/escrow-engine/assets"
)

// Persister stores the engine state committed by an operation. A
// persist failure aborts the operation before its effects become
// visible.
type Persister interface {
	Persist(snap *Snapshot) error
}

// Engine owns the bundle and offer tables for their full lifetime and
// acts as custodian of the locked assets. Every mutating operation
// executes as one indivisible unit: either every transfer and status
// write lands, or none does.
type Engine struct {
	adapter   *assets.Adapter
	rollback  assets.Snapshotter
	persister Persister

	// busy is the reentrancy guard around every mutating operation.
	busy atomic.Bool

	mu    sync.RWMutex
	state *state
}

// NewEngine wires the engine to its transfer adapter. rollback reverts
// the adapter's backend on operation failure and may be nil when an
// external execution boundary guarantees the revert. persister may be
// nil to keep state purely in memory.
func NewEngine(adapter *assets.Adapter, rollback assets.Snapshotter, persister Persister) *Engine {
	return &Engine{
		adapter:   adapter,
		rollback:  rollback,
		persister: persister,
		state:     newState(),
	}
}

// Restore replaces the engine state with a previously persisted
// snapshot. It must run before the engine starts serving operations.
func (e *Engine) Restore(snap *Snapshot) error {
	if !e.busy.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	defer e.busy.Store(false)

	st, err := restoreState(snap)
	if err != nil {
		return fmt.Errorf("restore engine state: %w", err)
	}

	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
	return nil
}

// exec runs one mutating operation inside the atomic boundary. The
// operation body works on a private copy of the tables and performs
// transfers immediately; on any failure the backend reverts to the
// snapshot and the copy is discarded, so no counter, status or index
// change from the invocation stays observable.
func (e *Engine) exec(fn func(st *state) error) error {
	if !e.busy.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	defer e.busy.Store(false)

	var snap int
	if e.rollback != nil {
		snap = e.rollback.Snapshot()
	}

	work := e.state.clone()
	err := fn(work)
	if err == nil && e.persister != nil {
		if perr := e.persister.Persist(work.snapshot()); perr != nil {
			err = fmt.Errorf("persist engine state: %w", perr)
		}
	}
	if err != nil {
		if e.rollback != nil {
			e.rollback.RevertToSnapshot(snap)
		}
		return err
	}

	e.mu.Lock()
	e.state = work
	e.mu.Unlock()
	return nil
}

// Bundle returns a copy of the bundle record.
func (e *Engine) Bundle(id uint64) (Bundle, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.state.bundles[id]
	if !ok {
		return Bundle{}, fmt.Errorf("bundle %d: %w", id, ErrNotFound)
	}

	bundle := *b
	bundle.Lots = slices.Clone(b.Lots)
	return bundle, nil
}

// Offer returns a copy of the offer record.
func (e *Engine) Offer(id uint64) (Offer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	o, ok := e.state.offers[id]
	if !ok {
		return Offer{}, fmt.Errorf("offer %d: %w", id, ErrNotFound)
	}

	offer := *o
	offer.Lots = slices.Clone(o.Lots)
	return offer, nil
}

// OpenOffers returns the ids of offers still pointing at the bundle.
// The order is not significant.
func (e *Engine) OpenOffers(bundleID uint64) ([]uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.state.bundles[bundleID]; !ok {
		return nil, fmt.Errorf("bundle %d: %w", bundleID, ErrNotFound)
	}

	return slices.Clone(e.state.openOffers[bundleID]), nil
}

func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		Bundles:        e.state.numBundles,
		Offers:         e.state.numOffers,
		CompletedSwaps: e.state.completedSwaps,
	}
}
