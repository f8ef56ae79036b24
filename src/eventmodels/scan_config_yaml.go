package eventmodels

import (
	"fmt"
)

const (
	DefaultLargeTradeThreshold = 10_000_000.0
	DefaultTradesPerSymbol     = 10000
	DefaultAccountAmount       = 25000.0
	DefaultLivevolTokenURL     = "https://id.livevol.com/connect/token"
	DefaultLivevolBaseURL      = "https://api.livevol.com/v1/live/allaccess"
	DefaultLivevolAuthCache    = "cboe_auth.json"
)

type TelemetryConfigYAML struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

type LivevolConfigYAML struct {
	TokenURL  string `yaml:"token_url"`
	BaseURL   string `yaml:"base_url"`
	AuthCache string `yaml:"auth_cache"`
}

type ScanConfigYAML struct {
	SymbolsFile         string              `yaml:"symbols_file"`
	OutputDir           string              `yaml:"output_dir"`
	LargeTradeThreshold float64             `yaml:"large_trade_threshold"`
	TradesPerSymbol     int                 `yaml:"trades_per_symbol"`
	TopTrades           int                 `yaml:"top_trades"`
	AccountAmount       float64             `yaml:"account_amount"`
	SignalQuantity1     float64             `yaml:"signal_quantity_1"`
	SignalQuantity2     float64             `yaml:"signal_quantity_2"`
	RequestsPerSecond   float64             `yaml:"requests_per_second"`
	LogLevel            string              `yaml:"log_level"`
	LogFormat           string              `yaml:"log_format"`
	Telemetry           TelemetryConfigYAML `yaml:"telemetry"`
	Livevol             LivevolConfigYAML   `yaml:"livevol"`
}

// ApplyDefaults fills every zero valued setting with its default.
func (c *ScanConfigYAML) ApplyDefaults() {
	if c.SymbolsFile == "" {
		c.SymbolsFile = "new-list.csv"
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	if c.LargeTradeThreshold == 0 {
		c.LargeTradeThreshold = DefaultLargeTradeThreshold
	}

	if c.TradesPerSymbol == 0 {
		c.TradesPerSymbol = DefaultTradesPerSymbol
	}

	if c.TopTrades == 0 {
		c.TopTrades = DefaultTradesPerSymbol
	}

	if c.AccountAmount == 0 {
		c.AccountAmount = DefaultAccountAmount
	}

	if c.SignalQuantity1 == 0 {
		c.SignalQuantity1 = 2500
	}

	if c.SignalQuantity2 == 0 {
		c.SignalQuantity2 = 25600
	}

	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 1
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "options-flow"
	}

	if c.Livevol.TokenURL == "" {
		c.Livevol.TokenURL = DefaultLivevolTokenURL
	}

	if c.Livevol.BaseURL == "" {
		c.Livevol.BaseURL = DefaultLivevolBaseURL
	}

	if c.Livevol.AuthCache == "" {
		c.Livevol.AuthCache = DefaultLivevolAuthCache
	}
}

func (c *ScanConfigYAML) Validate() error {
	if c.LargeTradeThreshold < 0 {
		return fmt.Errorf("ScanConfigYAML: large_trade_threshold must not be negative: %w", ErrInvalidConfig)
	}

	if c.TradesPerSymbol < 1 {
		return fmt.Errorf("ScanConfigYAML: trades_per_symbol must be positive: %w", ErrInvalidConfig)
	}

	if c.TopTrades < 1 {
		return fmt.Errorf("ScanConfigYAML: top_trades must be positive: %w", ErrInvalidConfig)
	}

	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("ScanConfigYAML: requests_per_second must be positive: %w", ErrInvalidConfig)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("ScanConfigYAML: unknown log_format %q: %w", c.LogFormat, ErrInvalidConfig)
	}

	return nil
}
