package orderbook

import "fmt"

// PriceLevel aggregates all resting quantity at one price on one side.
// Price is duplicated from the side book's key so depth walks stay on one cache line.
type PriceLevel struct {
	Price         float64
	TotalQuantity uint32
	OrderCount    uint32 // cumulative limit adds; never decremented by matches
}

func (p *PriceLevel) String() string {
	return fmt.Sprintf("level{price=%.4f qty=%d orders=%d}", p.Price, p.TotalQuantity, p.OrderCount)
}

// BatchWidth is the number of level updates applied per batch.
const BatchWidth = 4

// ApplyQuantityBatch applies up to BatchWidth (level, delta) updates in one
// pass. For each non-nil level the quantity delta is added and OrderCount is
// incremented once. Nil entries are no-ops. The contract is pointwise; the
// batching exists for the limit-ingestion path, which feeds levels through
// here instead of touching them one by one.
func ApplyQuantityBatch(levels *[BatchWidth]*PriceLevel, deltas *[BatchWidth]int32, count int) {
	if count > BatchWidth {
		count = BatchWidth
	}
	for i := 0; i < count; i++ {
		lvl := levels[i]
		if lvl == nil {
			continue
		}
		lvl.TotalQuantity = uint32(int64(lvl.TotalQuantity) + int64(deltas[i]))
		lvl.OrderCount++
	}
}
