package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Marjona6/sproutish/internal/catalog"
	"github.com/Marjona6/sproutish/internal/config"
	"github.com/Marjona6/sproutish/internal/consumer"
)

func main() {
	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsServer := &http.Server{Addr: cfg.MetricsAddress, Handler: promhttp.Handler()}
	go func() {
		logger.Infow("metrics listening", "address", cfg.MetricsAddress)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("metrics server error", "error", err)
		}
	}()

	handler := consumer.NewStatsHandler(catalog.New(rand.New(rand.NewSource(time.Now().UnixNano()))))

	var wg sync.WaitGroup
	for _, topic := range cfg.ConsumerTopics {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.KafkaBrokers,
			GroupID:        cfg.ConsumerGroupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10 << 20,
			CommitInterval: 0,
		})
		processor := consumer.NewProcessor(reader, handler, consumer.WithLogger(logger))

		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			logger.Infow("consumer started", "topic", topic, "group", cfg.ConsumerGroupID)
			if err := processor.Run(ctx); err != nil && err != context.Canceled {
				logger.Errorw("consumer stopped", "topic", topic, "error", err)
			}
			if err := reader.Close(); err != nil {
				logger.Warnw("reader close failed", "topic", topic, "error", err)
			}
		}(topic)
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownCh

	cancel()
	wg.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Warnw("metrics shutdown failed", "error", err)
	}
}
