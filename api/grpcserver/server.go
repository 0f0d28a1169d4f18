// Package grpcserver adapts OrderService to the gRPC surface. It carries no
// matching logic; requests are translated and handed to the service layer.
package grpcserver

import (
	"context"

	"go.uber.org/zap"

	pb "tyr/api/pb"
	"tyr/domain/orderbook"
	"tyr/service"
)

type Server struct {
	pb.UnimplementedEngineServer
	svc *service.OrderService
	log *zap.Logger
}

func New(svc *service.OrderService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) PlaceLimit(ctx context.Context, req *pb.PlaceLimitRequest) (*pb.PlaceLimitReply, error) {
	seq, accepted := s.svc.SubmitLimit(toSide(req.Side), req.Price, req.Quantity, req.Id)

	s.log.Debug("grpc place limit",
		zap.Uint64("seq", seq),
		zap.Bool("accepted", accepted),
		zap.Float64("price", req.Price),
		zap.Uint32("quantity", req.Quantity),
	)

	return &pb.PlaceLimitReply{Seq: seq, Accepted: accepted}, nil
}

func (s *Server) PlaceMarket(ctx context.Context, req *pb.PlaceMarketRequest) (*pb.PlaceMarketReply, error) {
	seq, matches := s.svc.SubmitMarket(ctx, toSide(req.Side), req.Quantity, req.Id)

	reply := &pb.PlaceMarketReply{
		Seq:   seq,
		Fills: make([]*pb.Fill, 0, len(matches)),
	}
	for _, m := range matches {
		reply.Fills = append(reply.Fills, &pb.Fill{
			Quantity:       m.Quantity,
			Price:          m.Price,
			CounterpartyId: m.CounterpartyID.String(),
		})
	}
	return reply, nil
}

// -------------------- Queries --------------------

func (s *Server) BestPrices(ctx context.Context, req *pb.BestPricesRequest) (*pb.BestPricesReply, error) {
	bid, ask := s.svc.BestPrices()
	return &pb.BestPricesReply{Bid: bid, Ask: ask}, nil
}

func (s *Server) Depth(ctx context.Context, req *pb.DepthRequest) (*pb.DepthReply, error) {
	levels := s.svc.Depth(toSide(req.Side), int(req.Levels))

	reply := &pb.DepthReply{Levels: make([]*pb.Level, 0, len(levels))}
	for _, lvl := range levels {
		reply.Levels = append(reply.Levels, &pb.Level{
			Price:         lvl.Price,
			TotalQuantity: lvl.TotalQuantity,
			OrderCount:    lvl.OrderCount,
		})
	}
	return reply, nil
}

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_SIDE_SELL {
		return orderbook.Sell
	}
	return orderbook.Buy
}
