package service

import (
	"context"
	"encoding/json"
	"errors"
	"runtime"

	"go.uber.org/zap"

	"tyr/domain/orderbook"
	"tyr/infra/journal"
	"tyr/infra/ring"
	"tyr/infra/sequence"
)

// ErrRingFull is the backpressure signal of the asynchronous submit path.
var ErrRingFull = errors.New("service: ingress ring full")

// FillSink receives the matches produced by a market order. The Kafka
// producer is the production implementation; tests substitute their own.
type FillSink interface {
	PublishFills(ctx context.Context, seq uint64, side orderbook.Side, matches []orderbook.MatchResult) error
}

// OrderService is the only write entry point into the engine. It owns the
// coordination between the book, the ingress ring, the sequencer, and the
// egress paths; the domain package stays free of I/O.
type OrderService struct {
	book    *orderbook.OrderBook
	ingress *ring.Ring
	seq     *sequence.Sequencer
	journal *journal.Journal // optional: durable egress
	sink    FillSink         // optional: direct egress
	log     *zap.Logger
}

func NewOrderService(
	book *orderbook.OrderBook,
	ingress *ring.Ring,
	seq *sequence.Sequencer,
	jnl *journal.Journal,
	sink FillSink,
	log *zap.Logger,
) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		book:    book,
		ingress: ingress,
		seq:     seq,
		journal: jnl,
		sink:    sink,
		log:     log,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands — synchronous path
// ──────────────────────────────────────────────────────────
//

// SubmitLimit admits a limit order directly under the book's writer lock.
// The returned sequence is assigned even for rejected orders so callers can
// correlate the rejection.
func (s *OrderService) SubmitLimit(side orderbook.Side, price float64, quantity uint32, id string) (uint64, bool) {
	seq := s.seq.Next()
	ok := s.book.AddLimitOrder(side, price, quantity, id)
	if !ok {
		s.log.Debug("limit order rejected",
			zap.Uint64("seq", seq),
			zap.String("side", side.String()),
			zap.Float64("price", price),
			zap.Uint32("quantity", quantity),
		)
	}
	return seq, ok
}

// SubmitMarket matches a market order and routes its fills to the egress
// paths. Partial and empty fills are ordinary outcomes.
func (s *OrderService) SubmitMarket(ctx context.Context, side orderbook.Side, quantity uint32, id string) (uint64, []orderbook.MatchResult) {
	seq := s.seq.Next()
	matches := s.book.ProcessMarketOrder(side, quantity, id)
	if len(matches) > 0 {
		s.emit(ctx, seq, side, matches)
	}
	return seq, matches
}

//
// ──────────────────────────────────────────────────────────
// Commands — asynchronous path
// ──────────────────────────────────────────────────────────
//

// EnqueueLimit places a limit order onto the ingress ring for the drain
// loop to apply. The ring preserves enqueue order, which becomes the
// matching order.
func (s *OrderService) EnqueueLimit(side orderbook.Side, price float64, quantity uint32, id string) error {
	o := orderbook.Order{
		ID:       orderbook.MakeOrderID(id),
		Price:    price,
		Quantity: quantity,
		Side:     side,
		Type:     orderbook.Limit,
	}
	if !s.ingress.TryEnqueue(o) {
		return ErrRingFull
	}
	return nil
}

// EnqueueMarket places a market order onto the ingress ring.
func (s *OrderService) EnqueueMarket(side orderbook.Side, quantity uint32, id string) error {
	o := orderbook.Order{
		ID:       orderbook.MakeOrderID(id),
		Quantity: quantity,
		Side:     side,
		Type:     orderbook.Market,
	}
	if !s.ingress.TryEnqueue(o) {
		return ErrRingFull
	}
	return nil
}

// Drain applies ring orders to the book until ctx is done. It is the single
// consumer of the ingress ring in production, so dequeue order is matching
// order.
func (s *OrderService) Drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		o, ok := s.ingress.TryDequeue()
		if !ok {
			runtime.Gosched()
			continue
		}
		s.apply(ctx, o)
	}
}

// DrainPending applies everything currently committed to the ring and
// returns the number of orders applied. Used at shutdown and by tests.
func (s *OrderService) DrainPending(ctx context.Context) int {
	n := 0
	for {
		o, ok := s.ingress.TryDequeue()
		if !ok {
			return n
		}
		s.apply(ctx, o)
		n++
	}
}

func (s *OrderService) apply(ctx context.Context, o orderbook.Order) {
	id := o.ID.String()
	switch o.Type {
	case orderbook.Limit:
		seq := s.seq.Next()
		if !s.book.AddLimitOrder(o.Side, o.Price, o.Quantity, id) {
			s.log.Debug("ring limit order rejected", zap.Uint64("seq", seq), zap.String("id", id))
		}
	case orderbook.Market:
		seq := s.seq.Next()
		matches := s.book.ProcessMarketOrder(o.Side, o.Quantity, id)
		if len(matches) > 0 {
			s.emit(ctx, seq, o.Side, matches)
		}
	default:
		s.log.Warn("unsupported order type dropped", zap.String("type", o.Type.String()), zap.String("id", id))
	}
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *OrderService) BestPrices() (bid, ask float64) {
	return s.book.BestPrices()
}

func (s *OrderService) Depth(side orderbook.Side, levels int) []orderbook.PriceLevel {
	return s.book.Depth(side, levels)
}

//
// ──────────────────────────────────────────────────────────
// Egress
// ──────────────────────────────────────────────────────────
//

// fillBatch is the journal payload: one market order's fills.
type fillBatch struct {
	Seq   uint64      `json:"seq"`
	Side  string      `json:"side"`
	Fills []fillEntry `json:"fills"`
}

type fillEntry struct {
	Quantity  uint32  `json:"quantity"`
	Price     float64 `json:"price"`
	Aggressor string  `json:"aggressor"`
}

func (s *OrderService) emit(ctx context.Context, seq uint64, side orderbook.Side, matches []orderbook.MatchResult) {
	if s.journal != nil {
		batch := fillBatch{Seq: seq, Side: side.String(), Fills: make([]fillEntry, 0, len(matches))}
		for _, m := range matches {
			batch.Fills = append(batch.Fills, fillEntry{
				Quantity:  m.Quantity,
				Price:     m.Price,
				Aggressor: m.CounterpartyID.String(),
			})
		}
		payload, err := json.Marshal(batch)
		if err == nil {
			err = s.journal.Append(seq, payload)
		}
		if err != nil {
			s.log.Error("journal append failed", zap.Uint64("seq", seq), zap.Error(err))
		}
	}

	if s.sink != nil {
		if err := s.sink.PublishFills(ctx, seq, side, matches); err != nil {
			s.log.Error("fill publish failed", zap.Uint64("seq", seq), zap.Error(err))
		}
	}
}
