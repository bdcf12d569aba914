package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/J-Castrillon/InventoryManagement/internal/config"
	"github.com/J-Castrillon/InventoryManagement/internal/logger"
	"github.com/J-Castrillon/InventoryManagement/internal/server"
	"github.com/J-Castrillon/InventoryManagement/internal/services"
	"github.com/J-Castrillon/InventoryManagement/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", ":8080", "Address to listen on")
	_ = viper.BindPFlag("APP_PORT", serveCmd.Flags().Lookup("port"))
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// --- Initialize Repositories ---
	productRepo, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// --- Initialize RabbitMQ Client ---
	var publisher services.Publisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			return err
		}
		defer func() {
			if err := mqClient.Close(); err != nil {
				log.Error("failed to close RabbitMQ client", zap.Error(err))
			}
		}()
		publisher = mqClient
		log.Info("publishing product events", zap.String("exchange", cfg.RabbitMQExchange))
	}

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, publisher, log)

	app := server.NewApp(productService, log, server.Options{LogRequests: cfg.LogRequests})

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppPort))
		listenErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("error during Fiber shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
	return nil
}
