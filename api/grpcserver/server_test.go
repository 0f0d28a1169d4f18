package grpcserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pb "tyr/api/pb"
	"tyr/domain/orderbook"
	"tyr/infra/ring"
	"tyr/infra/sequence"
	"tyr/service"
)

func newTestServer() *Server {
	svc := service.NewOrderService(
		orderbook.NewOrderBook(),
		ring.New(64),
		sequence.New(),
		nil,
		nil,
		zap.NewNop(),
	)
	return New(svc, zap.NewNop())
}

func TestPlaceLimitAndBestPrices(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	reply, err := s.PlaceLimit(ctx, &pb.PlaceLimitRequest{
		Side: pb.Side_SIDE_BUY, Price: 100.0, Quantity: 1000, Id: "ORDER1",
	})
	require.NoError(t, err)
	assert.True(t, reply.Accepted)
	assert.NotZero(t, reply.Seq)

	_, err = s.PlaceLimit(ctx, &pb.PlaceLimitRequest{
		Side: pb.Side_SIDE_SELL, Price: 101.0, Quantity: 1000, Id: "ORDER2",
	})
	require.NoError(t, err)

	best, err := s.BestPrices(ctx, &pb.BestPricesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 100.0, best.Bid)
	assert.Equal(t, 101.0, best.Ask)
}

func TestPlaceLimitRejected(t *testing.T) {
	s := newTestServer()

	reply, err := s.PlaceLimit(context.Background(), &pb.PlaceLimitRequest{
		Side: pb.Side_SIDE_BUY, Price: 100.0, Quantity: 0, Id: "ZERO",
	})
	require.NoError(t, err)
	assert.False(t, reply.Accepted)
}

func TestPlaceMarketReturnsFills(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	for _, req := range []*pb.PlaceLimitRequest{
		{Side: pb.Side_SIDE_SELL, Price: 100.0, Quantity: 500, Id: "S1"},
		{Side: pb.Side_SIDE_SELL, Price: 101.0, Quantity: 500, Id: "S2"},
	} {
		_, err := s.PlaceLimit(ctx, req)
		require.NoError(t, err)
	}

	reply, err := s.PlaceMarket(ctx, &pb.PlaceMarketRequest{
		Side: pb.Side_SIDE_BUY, Quantity: 800, Id: "TAKER",
	})
	require.NoError(t, err)
	require.Len(t, reply.Fills, 2)
	assert.Equal(t, uint32(500), reply.Fills[0].Quantity)
	assert.Equal(t, 100.0, reply.Fills[0].Price)
	assert.Equal(t, uint32(300), reply.Fills[1].Quantity)
	assert.Equal(t, 101.0, reply.Fills[1].Price)
	assert.Equal(t, "TAKER", reply.Fills[0].CounterpartyId)
}

func TestDepthSnapshot(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	for i, price := range []float64{100.0, 99.0, 98.0} {
		_, err := s.PlaceLimit(ctx, &pb.PlaceLimitRequest{
			Side: pb.Side_SIDE_BUY, Price: price, Quantity: 10, Id: "B" + string(rune('0'+i)),
		})
		require.NoError(t, err)
	}

	reply, err := s.Depth(ctx, &pb.DepthRequest{Side: pb.Side_SIDE_BUY, Levels: 2})
	require.NoError(t, err)
	require.Len(t, reply.Levels, 2)
	assert.Equal(t, 100.0, reply.Levels[0].Price)
	assert.Equal(t, 99.0, reply.Levels[1].Price)
	assert.Equal(t, uint32(1), reply.Levels[0].OrderCount)
}
