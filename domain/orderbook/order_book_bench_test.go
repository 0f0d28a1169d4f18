package orderbook

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkAddLimitOrder(b *testing.B) {
	book := NewOrderBook()
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		price := 90.0 + rng.Float64()*20.0
		book.AddLimitOrder(Buy, price, 100, "BENCH")
	}
}

func BenchmarkAddLimitOrderParallel(b *testing.B) {
	book := NewOrderBook()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			price := 90.0 + float64(i%200)/10.0
			book.AddLimitOrder(Sell, price, 100, "BENCH")
			i++
		}
	})
}

func BenchmarkProcessMarketOrder(b *testing.B) {
	book := NewOrderBook()
	for i := 0; i < 1000; i++ {
		book.AddLimitOrder(Sell, 100.0+float64(i%50), 1<<30, fmt.Sprintf("S%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.ProcessMarketOrder(Buy, 100, "BENCH")
	}
}

func BenchmarkBestPrices(b *testing.B) {
	book := NewOrderBook()
	for i := 0; i < 1000; i++ {
		book.AddLimitOrder(Buy, 90.0+float64(i%100)/10.0, 100, fmt.Sprintf("B%d", i))
		book.AddLimitOrder(Sell, 110.0+float64(i%100)/10.0, 100, fmt.Sprintf("S%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.BestPrices()
	}
}

func BenchmarkDepth(b *testing.B) {
	book := NewOrderBook()
	for i := 0; i < 1000; i++ {
		book.AddLimitOrder(Buy, 50.0+float64(i%500)/5.0, 100, fmt.Sprintf("B%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Depth(Buy, 5)
	}
}
