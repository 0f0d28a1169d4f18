package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tyr/domain/orderbook"
	"tyr/infra/ring"
	"tyr/infra/sequence"
)

type capturedBatch struct {
	seq     uint64
	side    orderbook.Side
	matches []orderbook.MatchResult
}

type captureSink struct {
	batches []capturedBatch
}

func (c *captureSink) PublishFills(_ context.Context, seq uint64, side orderbook.Side, matches []orderbook.MatchResult) error {
	c.batches = append(c.batches, capturedBatch{seq: seq, side: side, matches: matches})
	return nil
}

func newTestService(capacity uint64) (*OrderService, *captureSink) {
	sink := &captureSink{}
	svc := NewOrderService(
		orderbook.NewOrderBook(),
		ring.New(capacity),
		sequence.New(),
		nil,
		sink,
		zap.NewNop(),
	)
	return svc, sink
}

func TestSubmitLimitAssignsSequences(t *testing.T) {
	svc, _ := newTestService(8)

	seq1, ok := svc.SubmitLimit(orderbook.Buy, 100.0, 500, "A")
	require.True(t, ok)
	seq2, ok := svc.SubmitLimit(orderbook.Sell, 101.0, 500, "B")
	require.True(t, ok)
	assert.Greater(t, seq2, seq1)

	bid, ask := svc.BestPrices()
	assert.Equal(t, 100.0, bid)
	assert.Equal(t, 101.0, ask)
}

func TestSubmitLimitRejectsInvalid(t *testing.T) {
	svc, _ := newTestService(8)

	_, ok := svc.SubmitLimit(orderbook.Buy, 100.0, 0, "ZERO")
	assert.False(t, ok)
	_, ok = svc.SubmitLimit(orderbook.Buy, 0.0, 100, "FREE")
	assert.False(t, ok)
}

func TestSubmitMarketPublishesFills(t *testing.T) {
	svc, sink := newTestService(8)

	_, ok := svc.SubmitLimit(orderbook.Sell, 100.0, 500, "MAKER")
	require.True(t, ok)

	seq, matches := svc.SubmitMarket(context.Background(), orderbook.Buy, 300, "TAKER")
	require.Len(t, matches, 1)
	assert.Equal(t, uint32(300), matches[0].Quantity)

	require.Len(t, sink.batches, 1)
	assert.Equal(t, seq, sink.batches[0].seq)
	assert.Equal(t, orderbook.Buy, sink.batches[0].side)
	assert.Equal(t, matches, sink.batches[0].matches)
}

func TestSubmitMarketNoLiquidityPublishesNothing(t *testing.T) {
	svc, sink := newTestService(8)

	_, matches := svc.SubmitMarket(context.Background(), orderbook.Buy, 300, "TAKER")
	assert.Empty(t, matches)
	assert.Empty(t, sink.batches)
}

func TestEnqueueAndDrainPending(t *testing.T) {
	svc, sink := newTestService(64)

	require.NoError(t, svc.EnqueueLimit(orderbook.Sell, 100.0, 500, "S1"))
	require.NoError(t, svc.EnqueueLimit(orderbook.Sell, 101.0, 500, "S2"))
	require.NoError(t, svc.EnqueueMarket(orderbook.Buy, 700, "M1"))

	// Nothing applied until the drain runs.
	_, ask := svc.BestPrices()
	assert.Equal(t, 0.0, ask)

	n := svc.DrainPending(context.Background())
	assert.Equal(t, 3, n)

	// Ring order is matching order: both sells rested before the market hit.
	require.Len(t, sink.batches, 1)
	fills := sink.batches[0].matches
	require.Len(t, fills, 2)
	assert.Equal(t, 100.0, fills[0].Price)
	assert.Equal(t, uint32(500), fills[0].Quantity)
	assert.Equal(t, 101.0, fills[1].Price)
	assert.Equal(t, uint32(200), fills[1].Quantity)

	depth := svc.Depth(orderbook.Sell, 2)
	require.Len(t, depth, 1)
	assert.Equal(t, uint32(300), depth[0].TotalQuantity)
}

func TestEnqueueBackpressure(t *testing.T) {
	svc, _ := newTestService(2)

	require.NoError(t, svc.EnqueueLimit(orderbook.Buy, 100.0, 1, "A"))
	require.NoError(t, svc.EnqueueLimit(orderbook.Buy, 100.0, 1, "B"))

	err := svc.EnqueueLimit(orderbook.Buy, 100.0, 1, "C")
	assert.ErrorIs(t, err, ErrRingFull)

	// Draining frees capacity again.
	svc.DrainPending(context.Background())
	require.NoError(t, svc.EnqueueLimit(orderbook.Buy, 100.0, 1, "C"))
}

func TestDrainManyPreservesTotals(t *testing.T) {
	svc, _ := newTestService(1 << 12)

	const adds = 1000
	for i := 0; i < adds; i++ {
		require.NoError(t, svc.EnqueueLimit(orderbook.Buy, 90.0+float64(i%10), 10, fmt.Sprintf("B%d", i)))
	}
	assert.Equal(t, adds, svc.DrainPending(context.Background()))

	var resting uint64
	for _, lvl := range svc.Depth(orderbook.Buy, 100) {
		resting += uint64(lvl.TotalQuantity)
	}
	assert.Equal(t, uint64(adds*10), resting)
}
