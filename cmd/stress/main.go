// Stress driver: hammers the engine with random limit orders from many
// goroutines, then dumps the resulting book. The engine core is untouched;
// everything here is driver scaffolding.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"tyr/domain/orderbook"
)

const (
	priceMin = 90.0
	priceMax = 110.0
	qtyMin   = 100
	qtyMax   = 1000
)

var processed atomic.Uint64

func generateOrders(book *orderbook.OrderBook, numOrders, workerID int, start time.Time) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	for i := 0; i < numOrders; i++ {
		side := orderbook.Buy
		if rng.Intn(2) == 1 {
			side = orderbook.Sell
		}
		price := priceMin + rng.Float64()*(priceMax-priceMin)
		quantity := uint32(qtyMin + rng.Intn(qtyMax-qtyMin+1))
		id := fmt.Sprintf("ORD_%d_%d", workerID, i)

		if book.AddLimitOrder(side, price, quantity, id) {
			current := processed.Add(1)
			if current%10000 == 0 {
				elapsed := time.Since(start)
				rate := float64(current) / elapsed.Seconds()
				fmt.Printf("\rProcessed: %d orders, Rate: %.2f orders/sec", current, rate)
			}
		}
	}
}

func main() {
	numOrders := flag.Int("orders", 1_000_000, "total orders to submit")
	numWorkers := flag.Int("workers", 8, "concurrent producers")
	flag.Parse()

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	book := orderbook.NewOrderBook()
	perWorker := *numOrders / *numWorkers

	log.Info("stress run starting",
		zap.Int("orders", *numOrders),
		zap.Int("workers", *numWorkers),
	)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			generateOrders(book, perWorker, id, start)
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := processed.Load()
	fmt.Printf("\n\nBenchmark Results:\n")
	fmt.Printf("Total orders processed: %d\n", total)
	fmt.Printf("Total time: %.3f ms\n", float64(elapsed.Microseconds())/1000.0)
	fmt.Printf("Average latency: %.3f microseconds per order\n",
		float64(elapsed.Microseconds())/float64(total))

	bid, ask := book.BestPrices()
	fmt.Printf("\nFinal book state:\n")
	fmt.Printf("Best bid: %v\n", bid)
	fmt.Printf("Best ask: %v\n", ask)

	for _, side := range []orderbook.Side{orderbook.Buy, orderbook.Sell} {
		fmt.Printf("\nTop 5 %s Levels:\n", side)
		for _, lvl := range book.Depth(side, 5) {
			fmt.Printf("Price: %v, Quantity: %d, Orders: %d\n",
				lvl.Price, lvl.TotalQuantity, lvl.OrderCount)
		}
	}
}
