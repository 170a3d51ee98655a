// Package app wires the invoice-export tool: config, client, and the
// fetch-then-render flow.
package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.uber.org/zap"

	"github.com/OsuohaNnamdi/warelink-admin/internal/api"
	"github.com/OsuohaNnamdi/warelink-admin/internal/invoice"
	"github.com/OsuohaNnamdi/warelink-admin/internal/session"
)

// Run fetches the configured order and writes its invoice PDF. It is
// the single wiring point for the tool.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Exporting invoice",
		zap.String("base_url", cfg.BaseURL),
		zap.String("order_id", cfg.OrderID),
	)

	client, err := api.NewClient(api.Config{
		BaseURL:        cfg.BaseURL,
		TracerProvider: m.TracerProvider(),
		MeterProvider:  m.MeterProvider(),
	})
	if err != nil {
		return errors.Wrap(err, "create client")
	}

	if cfg.Token != "" {
		ctx = session.WithToken(ctx, cfg.Token)
	}

	o, err := client.GetOrder(ctx, cfg.OrderID)
	if err != nil {
		return errors.Wrap(err, "fetch order")
	}

	name, data, err := invoice.Generate(o)
	if err != nil {
		return errors.Wrap(err, "generate invoice")
	}

	path := filepath.Join(cfg.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write invoice")
	}

	lg.Info("Invoice written",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("items", len(o.Items)),
	)
	return nil
}
