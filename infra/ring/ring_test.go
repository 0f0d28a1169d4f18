package ring

import (
	"sync"
	"testing"

	"tyr/domain/orderbook"
)

func order(n uint32) orderbook.Order {
	return orderbook.Order{
		ID:       orderbook.MakeOrderID("T"),
		Price:    100.0,
		Quantity: n,
		Side:     orderbook.Buy,
		Type:     orderbook.Limit,
	}
}

func TestRejectsBadCapacity(t *testing.T) {
	for _, c := range []uint64{0, 3, 100, 1<<10 + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) should panic", c)
				}
			}()
			New(c)
		}()
	}
}

func TestEmptyDequeue(t *testing.T) {
	r := New(8)
	if _, ok := r.TryDequeue(); ok {
		t.Error("dequeue on empty ring should fail")
	}
}

func TestFullEnqueue(t *testing.T) {
	r := New(4)
	for i := uint32(0); i < 4; i++ {
		if !r.TryEnqueue(order(i)) {
			t.Fatalf("enqueue %d failed on non-full ring", i)
		}
	}
	if r.TryEnqueue(order(99)) {
		t.Error("enqueue on full ring should fail")
	}
	if r.Len() != 4 {
		t.Errorf("Len = %d, want 4", r.Len())
	}

	// One slot frees exactly one enqueue.
	if _, ok := r.TryDequeue(); !ok {
		t.Fatal("dequeue failed on full ring")
	}
	if !r.TryEnqueue(order(99)) {
		t.Error("enqueue should succeed after one dequeue")
	}
}

func TestFIFOOrder(t *testing.T) {
	r := New(64)
	for i := uint32(0); i < 64; i++ {
		if !r.TryEnqueue(order(i)) {
			t.Fatalf("enqueue %d failed", i)
		}
	}
	for i := uint32(0); i < 64; i++ {
		o, ok := r.TryDequeue()
		if !ok {
			t.Fatalf("dequeue %d failed", i)
		}
		if o.Quantity != i {
			t.Fatalf("dequeued %d, want %d", o.Quantity, i)
		}
	}
}

func TestWrapAround(t *testing.T) {
	r := New(4)
	next := uint32(0)
	want := uint32(0)

	for lap := 0; lap < 10; lap++ {
		for i := 0; i < 3; i++ {
			if !r.TryEnqueue(order(next)) {
				t.Fatal("enqueue failed below capacity")
			}
			next++
		}
		for i := 0; i < 3; i++ {
			o, ok := r.TryDequeue()
			if !ok {
				t.Fatal("dequeue failed with committed elements")
			}
			if o.Quantity != want {
				t.Fatalf("dequeued %d, want %d", o.Quantity, want)
			}
			want++
		}
	}
}

// Every successful enqueue must be matched by exactly one dequeue: no loss,
// no duplication, across many producers and consumers.
func TestConcurrentNoLossNoDup(t *testing.T) {
	const (
		producers = 4
		consumers = 4
		perProd   = 20000
	)

	r := New(1024)
	var seen sync.Map
	var enqueued, dequeued int64
	var mu sync.Mutex

	var prodWG, consWG sync.WaitGroup
	done := make(chan struct{})

	for c := 0; c < consumers; c++ {
		consWG.Add(1)
		go func() {
			defer consWG.Done()
			local := int64(0)
			for {
				o, ok := r.TryDequeue()
				if !ok {
					select {
					case <-done:
						// drain whatever is left
						for {
							o, ok := r.TryDequeue()
							if !ok {
								mu.Lock()
								dequeued += local
								mu.Unlock()
								return
							}
							if _, dup := seen.LoadOrStore(o.Quantity, true); dup {
								t.Errorf("duplicate delivery of %d", o.Quantity)
							}
							local++
						}
					default:
						continue
					}
				}
				if _, dup := seen.LoadOrStore(o.Quantity, true); dup {
					t.Errorf("duplicate delivery of %d", o.Quantity)
				}
				local++
			}
		}()
	}

	for p := 0; p < producers; p++ {
		prodWG.Add(1)
		go func(p int) {
			defer prodWG.Done()
			local := int64(0)
			for i := 0; i < perProd; i++ {
				v := uint32(p*perProd + i)
				for !r.TryEnqueue(order(v)) {
					// ring full, let consumers catch up
				}
				local++
			}
			mu.Lock()
			enqueued += local
			mu.Unlock()
		}(p)
	}

	prodWG.Wait()
	close(done)
	consWG.Wait()

	if enqueued != int64(producers*perProd) {
		t.Errorf("enqueued %d, want %d", enqueued, producers*perProd)
	}
	if dequeued != enqueued {
		t.Errorf("dequeued %d, enqueued %d", dequeued, enqueued)
	}
}

func TestPayloadSurvivesTransit(t *testing.T) {
	r := New(8)

	in := orderbook.Order{
		ID:        orderbook.MakeOrderID("ORDER_XYZ"),
		Price:     123.45,
		Quantity:  678,
		Side:      orderbook.Sell,
		Type:      orderbook.Market,
		Timestamp: 987654321,
	}
	if !r.TryEnqueue(in) {
		t.Fatal("enqueue failed")
	}
	out, ok := r.TryDequeue()
	if !ok {
		t.Fatal("dequeue failed")
	}
	if out != in {
		t.Errorf("payload mangled in transit: got %+v, want %+v", out, in)
	}
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	r := New(1 << 16)
	o := order(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.TryEnqueue(o)
		r.TryDequeue()
	}
}

func BenchmarkContendedEnqueue(b *testing.B) {
	r := New(1 << 20)
	o := order(1)

	go func() {
		for {
			r.TryDequeue()
		}
	}()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for !r.TryEnqueue(o) {
			}
		}
	})
}
