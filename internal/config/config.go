package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultDatabaseURL      = "salondesk.db"
	defaultTokenTTL         = "24h"
	defaultConversionTax    = "0"
	defaultManualTax        = "7"
	defaultPaymentMethod    = "Cash"
	defaultOverdueAfterDays = "0"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	// Tax applied when an appointment is converted to an invoice. The manual
	// invoice path uses its own rate; the two are intentionally independent.
	ConversionTaxPercent decimal.Decimal
	// Tax applied on manual invoice create/update.
	ManualTaxPercent decimal.Decimal
	// Payment method stamped on invoices created by conversion.
	DefaultPaymentMethod string
	// Pending invoices older than this many days are flagged Overdue by the
	// daily scheduler. 0 disables the job.
	OverdueAfterDays int
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:             getenv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:          getenv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:            strings.TrimSpace(os.Getenv("JWT_SECRET")),
		DefaultPaymentMethod: getenv("DEFAULT_PAYMENT_METHOD", defaultPaymentMethod),
	}

	ttl, err := time.ParseDuration(getenv("TOKEN_TTL", defaultTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("config: bad TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	cfg.ConversionTaxPercent, err = percent("CONVERSION_TAX_PERCENT", defaultConversionTax)
	if err != nil {
		return nil, err
	}
	cfg.ManualTaxPercent, err = percent("MANUAL_TAX_PERCENT", defaultManualTax)
	if err != nil {
		return nil, err
	}

	days, err := strconv.Atoi(getenv("INVOICE_OVERDUE_AFTER_DAYS", defaultOverdueAfterDays))
	if err != nil || days < 0 {
		return nil, fmt.Errorf("config: bad INVOICE_OVERDUE_AFTER_DAYS")
	}
	cfg.OverdueAfterDays = days

	return cfg, nil
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func percent(key, fallback string) (decimal.Decimal, error) {
	raw := getenv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: bad %s: %w", key, err)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("config: %s out of range 0-100", key)
	}
	return d, nil
}
