package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/site/internal/config"
	"portfolio/site/internal/content"
	"portfolio/site/internal/database"
	"portfolio/site/internal/handler"
	"portfolio/site/internal/hub"
	"portfolio/site/internal/server"
	"portfolio/site/internal/telemetry"
	"portfolio/site/internal/view"
	"portfolio/site/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const serviceName = "portfolio-site"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadConfig()
	},
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page and API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the content table for local environments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := database.Connect(cfg.DatabaseURL); err != nil {
			return err
		}
		return database.Migrate(database.DB, cfg.ContentTable)
	},
}

// defaultTokenTTL bounds webhook tokens unless --ttl 0 asks for no expiry.
const defaultTokenTTL = 24 * time.Hour

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for the content webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := jwt.GenerateToken(config.AppConfig.WebhookSecret, jwt.WebhookSubject, tokenTTL)
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", defaultTokenTTL, "token lifetime (0 means no expiry)")
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

// @title           Portfolio API
// @version         1.0
// @description     Read API and content webhook for the portfolio site.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:       cfg.OTelEndpoint,
		ServiceName:    serviceName,
		ServiceVersion: version,
		SampleRatio:    cfg.OTelSample,
	})
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Connect to the database
	if err := database.Connect(cfg.DatabaseURL); err != nil {
		return err
	}

	source := content.NewGormSource(database.DB, cfg.ContentTable)
	query := content.NewQuery(source, cfg.CacheTTL)
	h := handler.New(query, source, hub.NewHub(), view.DefaultSite())

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           server.NewRouter(h, cfg.WebhookSecret),
		ReadHeaderTimeout: server.ReadHeaderTimeout,
		// Request contexts end on shutdown so event streams close.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server is running on %s", cfg.ServerAddr)
		log.Printf("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
