package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"tyr/api/grpcserver"
	pb "tyr/api/pb"
	"tyr/domain/orderbook"
	"tyr/infra/journal"
	"tyr/infra/kafka"
	"tyr/infra/ring"
	"tyr/infra/sequence"
	"tyr/jobs/broadcaster"
	"tyr/pkg/config"
	"tyr/service"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	// ---------------- Core ----------------

	book := orderbook.NewOrderBook()
	ingress := ring.New(cfg.RingCapacity)
	seq := sequence.New()

	// ---------------- Egress ----------------

	var (
		jnl  *journal.Journal
		sink service.FillSink
		bc   *broadcaster.Broadcaster
	)

	switch cfg.Egress {
	case "journal":
		jnl, err = journal.Open(cfg.JournalDir)
		if err != nil {
			log.Fatal("journal open failed", zap.Error(err))
		}
		defer jnl.Close()

		bc, err = broadcaster.New(jnl, cfg.KafkaBrokers, cfg.FillsTopic, cfg.BroadcastInterval, log)
		if err != nil {
			log.Fatal("broadcaster init failed", zap.Error(err))
		}
		defer bc.Close()

	case "direct":
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.FillsTopic)
		defer producer.Close()
		sink = producer
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(book, ingress, seq, jnl, sink, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go svc.Drain(ctx)
	if bc != nil {
		go bc.Run(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal("listen failed", zap.String("addr", cfg.ListenAddr), zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.New(svc, log))

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		<-sigc
		log.Info("shutting down")
		cancel()
		grpcSrv.GracefulStop()
	}()

	log.Info("engine listening", zap.String("addr", cfg.ListenAddr))
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal("grpc server exited", zap.Error(err))
	}

	// Apply anything still sitting in the ring before exit.
	if n := svc.DrainPending(context.Background()); n > 0 {
		log.Info("drained pending orders", zap.Int("count", n))
	}
}
