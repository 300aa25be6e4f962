package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/cmd"
	adapterhttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/emag"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(configs)

	if configs.RunOnce {
		os.Exit(runOnce(&app, configs))
	}

	jobManager := jobs.NewJobManager(
		app.CreateProcessOrdersCommandHandler(),
		configs.OrderStatus,
		configs.PollSchedule,
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := newWebServer(&app, configs)
	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	// Stop the poller before the web server so no new run starts while the
	// process is going down.
	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Web server shutdown failed: %v", err)
	}
}

func getConfigs() cmd.Config {
	// .env is optional; deployments may pass plain environment variables
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		EmagBaseURL:          envOrDefault("EMAG_BASE_URL", emag.DefaultBaseURL),
		EmagUsername:         os.Getenv("EMAG_USERNAME"),
		EmagPassword:         os.Getenv("EMAG_PASSWORD"),
		OrderStatus:          envInt("ORDER_STATUS", 2),
		PollSchedule:         envOrDefault("POLL_SCHEDULE", "0 * * * * *"),
		LabelOutputDir:       envOrDefault("LABEL_OUTPUT_DIR", "."),
		RunOnce:              envBool("RUN_ONCE"),
		VATRate:              envDecimal("VAT_RATE", services.DefaultVATRate),
		ShippingTaxThreshold: envDecimal("SHIPPING_TAX_THRESHOLD", services.DefaultShippingTaxThreshold),
		Sender: label.Party{
			Name:       os.Getenv("SENDER_NAME"),
			Contact:    os.Getenv("SENDER_CONTACT"),
			Phone1:     os.Getenv("SENDER_PHONE1"),
			LocalityID: envInt("SENDER_LOCALITY_ID", 2),
			Street:     os.Getenv("SENDER_STREET"),
			Zipcode:    os.Getenv("SENDER_ZIPCODE"),
			Country:    envOrDefault("SENDER_COUNTRY", "Romania"),
		},
		SFTPHost:      os.Getenv("SFTP_HOST"),
		SFTPPort:      os.Getenv("SFTP_PORT"),
		SFTPUsername:  os.Getenv("SFTP_USERNAME"),
		SFTPPassword:  os.Getenv("SFTP_PASSWORD"),
		SFTPUploadDir: os.Getenv("SFTP_UPLOAD_DIR"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return parsed
}

func envBool(key string) bool {
	value := os.Getenv(key)
	if value == "" {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %v", key, err)
	}
	return parsed
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		log.Fatalf("Invalid decimal for %s: %v", key, err)
	}
	return parsed
}

// runOnce executes a single pipeline pass. Exit code 1 when the run could
// not execute or when any order in the run failed.
func runOnce(app *cmd.CompositionRoot, configs cmd.Config) int {
	handler := app.CreateProcessOrdersCommandHandler()

	command, err := commands.NewProcessOrdersCommand(configs.OrderStatus)
	if err != nil {
		log.Errorf("Invalid order status %d: %v", configs.OrderStatus, err)
		return 1
	}

	report, err := handler.Handle(context.Background(), command)
	if err != nil {
		log.Errorf("Pipeline run failed: %v", err)
		return 1
	}

	if report.HasFailures() {
		return 1
	}
	return 0
}

func newWebServer(app *cmd.CompositionRoot, configs cmd.Config) *echo.Echo {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateProcessOrdersCommandHandler(),
		app.CreateGetLastReportQueryHandler(),
		configs.OrderStatus,
	)
	server.RegisterRoutes(e)

	return e
}
