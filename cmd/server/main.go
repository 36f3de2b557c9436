package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/cashcycle-backend/internal/adapter/grpc"
	cashcyclev1 "github.com/simaogato/cashcycle-backend/internal/adapter/grpc/cashcycle/v1"
)

const defaultGRPCPort = ":8080"

func main() {
	// 1. Setup Logger
	logger := newLogger(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()

	// 2. Create gRPC server with request logging
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.LoggingInterceptor(logger)),
	)

	// Register CashCycleServiceServer
	// The engine is stateless: every request carries its own events and
	// reference date, so there is nothing else to wire.
	cashcyclev1.RegisterCashCycleServiceServer(grpcServer, grpcadapter.NewServer())

	reflection.Register(grpcServer)

	// 3. Listen on TCP port
	port := os.Getenv("GRPC_PORT")
	if port == "" {
		port = defaultGRPCPort
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	// Start server in a goroutine
	go func() {
		logger.Info("gRPC server listening", zap.String("port", port))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("failed to serve gRPC server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, logger)
}

// newLogger builds a production zap logger at the given level (default info)
func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("received signal, shutting down gracefully", zap.String("signal", sig.String()))

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}
