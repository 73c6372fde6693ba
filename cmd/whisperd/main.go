// Whisper gRPC Server
// Recursively inspects file content and returns the derived artifact tree
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/filewhisper/whisper/internal/config"
	"github.com/filewhisper/whisper/internal/logger"
	"github.com/filewhisper/whisper/internal/metrics"
	"github.com/filewhisper/whisper/internal/server"
	"github.com/filewhisper/whisper/pkg/identity"
	pb "github.com/filewhisper/whisper/proto"
)

var (
	port        = flag.Int("port", 0, "The server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "The observability HTTP port (overrides config)")
	configPath  = flag.String("config", "", "Path to a YAML config file")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pretty      = flag.Bool("pretty", false, "Pretty-print logs for development")
	datacenter  = flag.Int64("datacenter", -1, "Snowflake datacenter id, 0-31 (overrides config)")
	machine     = flag.Int64("machine", -1, "Snowflake machine id, 0-31 (overrides config)")
)

func main() {
	flag.Parse()

	// .env is optional; missing files are fine
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply environment: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *metricsPort != 0 {
		cfg.MetricsPort = *metricsPort
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *datacenter >= 0 {
		cfg.Datacenter = *datacenter
	}
	if *machine >= 0 {
		cfg.Machine = *machine
	}
	if *pretty {
		cfg.Pretty = true
	}

	logger.InitGlobalLogger(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.Pretty,
	})
	log := logger.GetGlobalLogger()
	log.LogServerStart(cfg.Port, cfg.MetricsPort)

	ids, err := identity.Init(cfg.Datacenter, cfg.Machine)
	if err != nil {
		log.Fatal("Failed to initialize identity generator").Err(err).Send()
	}

	m := metrics.NewMetrics()

	// Create gRPC server
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatal("Failed to listen").Err(err).Send()
	}

	whisperServer := server.NewServer(ids, nil, log, m)

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(100*1024*1024), // 100 MB
		grpc.MaxSendMsgSize(100*1024*1024), // 100 MB
		grpc.UnaryInterceptor(server.GrpcMetricsInterceptor(m, log)),
	)

	// Register service
	pb.RegisterWhisperServer(grpcServer, whisperServer)

	// Register reflection service for grpcurl/grpcui
	reflection.Register(grpcServer)

	// Observability HTTP server (metrics, health, pprof)
	obs := server.NewObservabilityServer(cfg.MetricsPort, log)
	go func() {
		if err := obs.Start(); err != nil {
			log.Error("Observability server stopped").Err(err).Send()
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.LogServerShutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		obs.Shutdown(ctx)

		grpcServer.GracefulStop()
	}()

	// Start server
	log.LogServerReady(cfg.Port)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal("Failed to serve").Err(err).Send()
	}
}
