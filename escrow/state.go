package escrow

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// state holds the bundle and offer tables, the bundle→open-offers
// index and the id counters. Counters double as the next-id allocator;
// because records are never removed they always equal the table sizes.
type state struct {
	bundles map[uint64]*Bundle
	offers  map[uint64]*Offer
	// openOffers lists, per bundle, the offers still eligible for
	// cancellation bookkeeping. Removal is swap-with-last-and-pop, so
	// order carries no meaning.
	openOffers map[uint64][]uint64

	numBundles     uint64
	numOffers      uint64
	completedSwaps uint64
}

func newState() *state {
	return &state{
		bundles:    make(map[uint64]*Bundle),
		offers:     make(map[uint64]*Offer),
		openOffers: make(map[uint64][]uint64),
	}
}

// clone deep-copies the tables. Lot values are never mutated after
// storage, so the big.Int pointers are shared.
func (s *state) clone() *state {
	c := &state{
		bundles:        make(map[uint64]*Bundle, len(s.bundles)),
		offers:         make(map[uint64]*Offer, len(s.offers)),
		openOffers:     make(map[uint64][]uint64, len(s.openOffers)),
		numBundles:     s.numBundles,
		numOffers:      s.numOffers,
		completedSwaps: s.completedSwaps,
	}
	for id, b := range s.bundles {
		bundle := *b
		bundle.Lots = slices.Clone(b.Lots)
		c.bundles[id] = &bundle
	}
	for id, o := range s.offers {
		offer := *o
		offer.Lots = slices.Clone(o.Lots)
		c.offers[id] = &offer
	}
	for id, offers := range s.openOffers {
		c.openOffers[id] = slices.Clone(offers)
	}
	return c
}

func (s *state) removeOpenOffer(bundleID, offerID uint64) {
	offers := s.openOffers[bundleID]
	for i, id := range offers {
		if id != offerID {
			continue
		}
		offers[i] = offers[len(offers)-1]
		s.openOffers[bundleID] = offers[:len(offers)-1]
		return
	}
}

// Snapshot is the portable form of the engine state, used for
// persistence. The index and counters are derived on restore.
type Snapshot struct {
	Bundles []Bundle `json:"bundles"`
	Offers  []Offer  `json:"offers"`
}

func (s *state) snapshot() *Snapshot {
	snap := &Snapshot{
		Bundles: make([]Bundle, 0, len(s.bundles)),
		Offers:  make([]Offer, 0, len(s.offers)),
	}
	for _, b := range s.bundles {
		bundle := *b
		bundle.Lots = slices.Clone(b.Lots)
		snap.Bundles = append(snap.Bundles, bundle)
	}
	for _, o := range s.offers {
		offer := *o
		offer.Lots = slices.Clone(o.Lots)
		snap.Offers = append(snap.Offers, offer)
	}
	slices.SortFunc(snap.Bundles, func(a, b Bundle) int { return compareIDs(a.ID, b.ID) })
	slices.SortFunc(snap.Offers, func(a, b Offer) int { return compareIDs(a.ID, b.ID) })
	return snap
}

// compareIDs is a three-way compare; subtraction would overflow int.
func compareIDs(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func restoreState(snap *Snapshot) (*state, error) {
	st := newState()
	st.numBundles = uint64(len(snap.Bundles))
	st.numOffers = uint64(len(snap.Offers))

	for i := range snap.Bundles {
		b := snap.Bundles[i]
		if b.ID >= st.numBundles {
			return nil, fmt.Errorf("bundle id %d out of range, ids are dense", b.ID)
		}
		if _, ok := st.bundles[b.ID]; ok {
			return nil, fmt.Errorf("duplicate bundle id %d", b.ID)
		}
		if b.Status == StatusCompleted {
			st.completedSwaps++
		}
		st.bundles[b.ID] = &b
	}
	for i := range snap.Offers {
		o := snap.Offers[i]
		if o.ID >= st.numOffers {
			return nil, fmt.Errorf("offer id %d out of range, ids are dense", o.ID)
		}
		if _, ok := st.offers[o.ID]; ok {
			return nil, fmt.Errorf("duplicate offer id %d", o.ID)
		}
		if _, ok := st.bundles[o.BundleID]; !ok {
			return nil, fmt.Errorf("offer %d targets unknown bundle %d", o.ID, o.BundleID)
		}
		st.offers[o.ID] = &o
		// Only deletion prunes the index; completed offers stay in it.
		if o.Status != StatusDeleted {
			st.openOffers[o.BundleID] = append(st.openOffers[o.BundleID], o.ID)
		}
	}
	return st, nil
}
