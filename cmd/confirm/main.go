package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/joao-fontenele/orderflow-email-confirmation/internal/email"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	serviceURL := os.Getenv("EMAIL_SERVICE_URL")
	if serviceURL == "" {
		serviceURL = "http://localhost:8080"
	}

	url := flag.String("url", serviceURL, "email service base URL")
	to := flag.String("email", "", "recipient address")
	orderPath := flag.String("order", "", "path to a JSON file with the order payload")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	if *to == "" {
		logger.Error("usage: confirm -email <address> [-order order.json] [-url http://host:port]")
		os.Exit(1)
	}

	var order any
	if *orderPath != "" {
		data, err := os.ReadFile(*orderPath)
		if err != nil {
			logger.Error("failed to read order file", slog.String("path", *orderPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &order); err != nil {
			logger.Error("failed to parse order file", slog.String("path", *orderPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	client := email.NewClient(*url, &http.Client{
		Timeout:   *timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := client.SendOrderConfirmation(ctx, *to, order); err != nil {
		logger.Error("confirmation request failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("confirmation accepted", slog.String("email", *to))
}
