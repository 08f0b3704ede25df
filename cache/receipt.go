package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/bundleswap/escrow-engine/escrow"
)

const (
	RECEIPT_TTL = time.Hour * 24
)

// ReceiptCache keeps recently completed swap receipts queryable without
// hitting the engine state. Receipts expire after RECEIPT_TTL.
type ReceiptCache struct {
	receipts *ttlcache.Cache[uint64, escrow.SwapReceipt]
}

func NewReceiptCache(ctx context.Context) *ReceiptCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[uint64, escrow.SwapReceipt](RECEIPT_TTL),
	)

	rc := &ReceiptCache{
		receipts: cache,
	}

	go cache.Start()
	go rc.watch(ctx)
	return rc
}

func (c *ReceiptCache) Add(receipt escrow.SwapReceipt) {
	c.receipts.Set(receipt.BundleID, receipt, ttlcache.DefaultTTL)
}

func (c *ReceiptCache) Receipt(bundleID uint64) (escrow.SwapReceipt, error) {
	receipt := c.receipts.Get(bundleID)
	if receipt == nil {
		return escrow.SwapReceipt{}, fmt.Errorf("no receipt found for bundle %d", bundleID)
	}

	return receipt.Value(), nil
}

func (c *ReceiptCache) watch(ctx context.Context) {
	<-ctx.Done()
	c.receipts.Stop()
}
