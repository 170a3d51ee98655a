package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the invoice-export configuration, loadable from
// environment variables (WARELINK_ prefix), flags, or YAML files.
type Config struct {
	BaseURL string `usage:"Admin API root including the /api prefix" flag:"base-url"`
	Token   string `usage:"Session token for the Authorization header (WARELINK_TOKEN)"`
	OrderID string `usage:"Order to export" flag:"order-id"`
	OutDir  string `default:"." usage:"Directory the invoice PDF is written to" flag:"out-dir"`
}

// LoadConfig loads configuration from environment variables, flags,
// and YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "WARELINK",
		Files:     []string{"config.yaml", "/etc/warelink/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required: set WARELINK_BASE_URL or --base-url")
	}
	if cfg.OrderID == "" {
		return nil, errors.New("order id is required: set WARELINK_ORDER_ID or --order-id")
	}
	return &cfg, nil
}
