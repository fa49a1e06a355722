package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-apparel/internal/handlers/wardrobe/v1alpha1"
	"github.com/KirkDiggler/rpg-apparel/internal/orchestrators/wardrobe"
	"github.com/KirkDiggler/rpg-apparel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-apparel/internal/redis"
	"github.com/KirkDiggler/rpg-apparel/internal/repositories/placement"
)

var (
	grpcPort  int
	redisAddr string
	redisTLS  bool
	storeKind string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the wardrobe gRPC server backed by Redis, or by process memory with --store memory.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().BoolVar(&redisTLS, "redis-tls", false, "Connect to Redis over TLS")
	serverCmd.Flags().StringVar(&storeKind, "store", storeRedis, "Placement store (redis, memory)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	placementRepo, closeStore, err := newPlacementRepository()
	if err != nil {
		return err
	}
	defer closeStore()

	wardrobeService, err := wardrobe.NewOrchestrator(&wardrobe.Config{
		PlacementRepo: placementRepo,
		Clock:         clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create wardrobe orchestrator: %w", err)
	}

	wardrobeHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		WardrobeService: wardrobeService,
	})
	if err != nil {
		return fmt.Errorf("failed to create wardrobe handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	v1alpha1.RegisterWardrobeServiceServer(srv, wardrobeHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (store %s)...", grpcPort, storeKind)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

const (
	storeRedis  = "redis"
	storeMemory = "memory"
)

func newPlacementRepository() (placement.Repository, func(), error) {
	switch storeKind {
	case storeMemory:
		log.Println("Using in-memory placement store; nothing survives a restart")
		return placement.NewInMemory(), func() {}, nil
	case storeRedis:
		redisClient, err := redis.NewClient(redisAddr, &redis.Options{UseTLS: redisTLS})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		repo, err := placement.NewRedis(&placement.RedisConfig{Client: redisClient})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create placement repository: %w", err)
		}
		return repo, func() { _ = redisClient.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", storeKind, storeRedis, storeMemory)
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
