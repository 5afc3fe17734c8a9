package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/formgate/formgate/internal/adapters/http"
	"github.com/formgate/formgate/internal/config"
	"github.com/formgate/formgate/internal/presentation/tui"
	"github.com/formgate/formgate/internal/runtime"
	"github.com/formgate/formgate/internal/schemas"
	"github.com/formgate/formgate/pkg/adapters/file"
	"github.com/formgate/formgate/pkg/adapters/memory"
	"github.com/formgate/formgate/pkg/adapters/redis"
	"github.com/formgate/formgate/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP validation server",
	Long:  `Starts the FormGate engine in server mode, exposing the validation and schema APIs over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		addrFlag, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addrFlag
		}

		logger := newLogger(cmd)

		store, err := newStore(cfg)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		svc := schemas.NewService(store, schemas.WithLogger(logger))
		if cfg.Seed {
			if err := svc.Seed(context.Background()); err != nil {
				fmt.Printf("Error seeding schemas: %v\n", err)
				os.Exit(1)
			}
		}

		engine := runtime.NewEngine(svc, runtime.WithLogger(logger))

		opts := []httpadapter.Option{httpadapter.WithLogger(logger)}
		if len(cfg.CORSOrigins) > 0 {
			opts = append(opts, httpadapter.WithAllowedOrigins(cfg.CORSOrigins))
		}
		handler := httpadapter.NewHandler(engine, svc, opts...)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner()
			fmt.Printf("Starting FormGate Server on %s\n", srv.Addr)
			fmt.Printf("Schema store: %s\n", cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("FormGate Server stopped gracefully")
		}
	},
}

// newStore builds the schema backend named by the configuration.
func newStore(cfg config.Config) (ports.SchemaStore, error) {
	switch cfg.Store {
	case "", "memory":
		return memory.NewStore(), nil
	case "redis":
		return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil
	case "file":
		return file.New(cfg.FilePath), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", config.DefaultPath, "Path to the configuration file")
	serveCmd.Flags().StringP("addr", "a", ":8080", "Listen address (overrides config)")
}
