package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"consolidator/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		ShopifyShopDomain:    goDotEnvVariable("SHOPIFY_SHOP_DOMAIN"),
		ShopifyAccessToken:   goDotEnvVariable("SHOPIFY_ACCESS_TOKEN"),
		ShopifyWebhookSecret: goDotEnvVariable("SHOPIFY_WEBHOOK_SECRET"),
		TargetLocationID:     goDotEnvVariable("TARGET_LOCATION_ID"),
		SettleDelay:          durationEnvVariable("SETTLE_DELAY"),
		RetentionWindow:      durationEnvVariable("JOB_RETENTION_WINDOW"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// durationEnvVariable reads an optional duration; zero when unset so the
// component-level defaults apply.
func durationEnvVariable(key string) time.Duration {
	value := goDotEnvVariable(key)
	if value == "" {
		return 0
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return duration
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
