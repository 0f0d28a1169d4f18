package orderbook

import (
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// OrderBook is the matching engine core: two price-ordered side books under
// one readers/writer lock. Writers (limit adds, market matches) take the
// lock exclusively; best-price and depth reads share it.
type OrderBook struct {
	mu   sync.RWMutex
	bids *LevelMap
	asks *LevelMap

	lastStamp atomic.Int64
}

// NewOrderBook creates an empty book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids: NewLevelMap(),
		asks: NewLevelMap(),
	}
}

// stamp returns a strictly increasing admission timestamp in nanoseconds.
// Wall-clock ties and regressions are broken by bumping past the last stamp.
func (b *OrderBook) stamp() int64 {
	for {
		now := time.Now().UnixNano()
		last := b.lastStamp.Load()
		if now <= last {
			now = last + 1
		}
		if b.lastStamp.CompareAndSwap(last, now) {
			return now
		}
	}
}

func validID(id string) bool {
	return strings.IndexByte(id, 0) < 0
}

// AddLimitOrder admits a resting order at price on the given side. It
// returns false only when validation fails: zero quantity, a non-finite or
// non-positive price (zero is the empty-side sentinel and may never rest),
// or an id with an embedded NUL. Ids longer than 15 bytes are truncated,
// not rejected.
func (b *OrderBook) AddLimitOrder(side Side, price float64, quantity uint32, id string) bool {
	if quantity == 0 {
		return false
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return false
	}
	if !validID(id) {
		return false
	}

	o := Order{
		ID:        MakeOrderID(id),
		Price:     price,
		Quantity:  quantity,
		Side:      side,
		Type:      Limit,
		Timestamp: b.stamp(),
	}

	batch := [1]Order{o}
	b.applyLimitBatch(batch[:])
	return true
}

// applyLimitBatch folds a slice of admitted limit orders into the book,
// feeding the touched levels through the quantity updater four at a time.
// A single-order batch is the common case; the bulk path is shared with it
// so both have identical semantics.
func (b *OrderBook) applyLimitBatch(orders []Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var levels [BatchWidth]*PriceLevel
	var deltas [BatchWidth]int32

	n := 0
	for i := range orders {
		o := &orders[i]
		book := b.asks
		if o.Side == Buy {
			book = b.bids
		}
		levels[n] = book.GetOrCreate(o.Price)
		deltas[n] = int32(o.Quantity)
		n++
		if n == BatchWidth {
			ApplyQuantityBatch(&levels, &deltas, n)
			n = 0
		}
	}
	if n > 0 {
		ApplyQuantityBatch(&levels, &deltas, n)
	}
}

// ProcessMarketOrder consumes liquidity from the side opposing the order:
// a buy sweeps asks cheapest-first, a sell sweeps bids highest-first. Each
// level touched emits one MatchResult; drained levels are erased in the same
// critical section. Any quantity left when the opposing side is exhausted is
// dropped. An empty book yields an empty result, not an error.
func (b *OrderBook) ProcessMarketOrder(side Side, quantity uint32, id string) []MatchResult {
	if quantity == 0 || !validID(id) {
		return nil
	}

	o := Order{
		ID:        MakeOrderID(id),
		Quantity:  quantity,
		Side:      side,
		Type:      Market,
		Timestamp: b.stamp(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	opposing := b.bids
	best := opposing.Max
	if side == Buy {
		opposing = b.asks
		best = opposing.Min
	}

	var matches []MatchResult
	remaining := o.Quantity

	for remaining > 0 {
		lvl := best()
		if lvl == nil {
			break
		}

		matched := remaining
		if lvl.TotalQuantity < matched {
			matched = lvl.TotalQuantity
		}

		matches = append(matches, MatchResult{
			Quantity:       matched,
			Price:          lvl.Price,
			CounterpartyID: o.ID,
		})
		lvl.TotalQuantity -= matched
		remaining -= matched

		if lvl.TotalQuantity == 0 {
			opposing.Delete(lvl.Price)
		}
	}

	return matches
}

// BestPrices returns the highest bid and lowest ask. A side with no resting
// liquidity reports 0.
func (b *OrderBook) BestPrices() (bid, ask float64) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if lvl := b.bids.Max(); lvl != nil {
		bid = lvl.Price
	}
	if lvl := b.asks.Min(); lvl != nil {
		ask = lvl.Price
	}
	return bid, ask
}

// Depth returns up to levels aggregates from one side, best-first: bids
// descending, asks ascending. The result is a copy, decoupled from later
// mutations.
func (b *OrderBook) Depth(side Side, levels int) []PriceLevel {
	if levels <= 0 {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]PriceLevel, 0, levels)
	visit := func(lvl *PriceLevel) bool {
		out = append(out, *lvl)
		return len(out) < levels
	}

	if side == Buy {
		b.bids.Descend(visit)
	} else {
		b.asks.Ascend(visit)
	}
	return out
}

// Levels reports the number of populated price levels on one side.
func (b *OrderBook) Levels(side Side) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if side == Buy {
		return b.bids.Size()
	}
	return b.asks.Size()
}
