// Package ring provides the bounded multi-producer/multi-consumer ingress
// queue that carries Order values from submitters to the matching loop.
//
// Each slot carries a sequence counter that doubles as the ownership ticket:
// slot i starts at sequence i ("free for producer ticket i"). A producer
// claims ticket t by CAS on the tail, writes the payload, and publishes by
// storing t+1 into the slot's sequence. A consumer claims ticket t by CAS on
// the head once it observes sequence t+1, copies the payload out, and hands
// the slot to the next lap's producer by storing t+N. The sequence stores
// and loads carry the synchronization; head and tail themselves only order
// ticket claims.
package ring

import (
	"sync/atomic"

	"tyr/domain/orderbook"
)

type slot struct {
	seq   uint64
	order orderbook.Order
	_pad  [16]byte
}

// Ring is the ingress queue. Capacity is fixed at construction and must be a
// power of two. Both operations are non-blocking: full and empty are
// ordinary return values, never errors.
type Ring struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	slots []slot
	mask  uint64
}

// New allocates a ring of the given capacity.
func New(capacity uint64) *Ring {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("ring: capacity must be a power of two")
	}
	r := &Ring{
		slots: make([]slot, capacity),
		mask:  capacity - 1,
	}
	for i := range r.slots {
		r.slots[i].seq = uint64(i)
	}
	return r
}

// TryEnqueue publishes o. It returns false when the ring is full. Losing a
// ticket race to another producer retries; only a genuinely full ring fails.
func (r *Ring) TryEnqueue(o orderbook.Order) bool {
	for {
		t := atomic.LoadUint64(&r.tail)
		s := &r.slots[t&r.mask]
		seq := atomic.LoadUint64(&s.seq)

		switch {
		case seq == t:
			if atomic.CompareAndSwapUint64(&r.tail, t, t+1) {
				s.order = o
				atomic.StoreUint64(&s.seq, t+1)
				return true
			}
		case seq < t:
			// previous lap not yet consumed
			return false
		default:
			// another producer claimed this ticket; take the next one
		}
	}
}

// TryDequeue removes the oldest published order. It returns false when no
// committed element is available.
func (r *Ring) TryDequeue() (orderbook.Order, bool) {
	for {
		h := atomic.LoadUint64(&r.head)
		s := &r.slots[h&r.mask]
		seq := atomic.LoadUint64(&s.seq)

		switch {
		case seq == h+1:
			if atomic.CompareAndSwapUint64(&r.head, h, h+1) {
				o := s.order
				atomic.StoreUint64(&s.seq, h+uint64(len(r.slots)))
				return o, true
			}
		case seq < h+1:
			return orderbook.Order{}, false
		default:
			// another consumer claimed this ticket
		}
	}
}

// Len reports the number of claimed, unconsumed tickets. Under concurrent
// enqueues this can include a slot whose payload is not yet published.
func (r *Ring) Len() int {
	h := atomic.LoadUint64(&r.head)
	t := atomic.LoadUint64(&r.tail)
	return int(t - h)
}

// Cap reports the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.slots)
}
