package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir   string
	DBPath    string
	OutputDir string

	TopDefault int

	CompanyColumn       string
	FundingColumn       string
	MarketplaceColumn   string
	MarketplaceRequired bool

	// StrictRows flips the lenient drop-bad-rows policy into a hard
	// failure on the first unusable row.
	StrictRows bool
	// FundingNumeric treats the funding column as a plain numeric type
	// instead of free-form "$2.5M" style text.
	FundingNumeric bool

	OutputFundingHeader     string
	OutputMarketplaceHeader string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:   getEnv("FUNDRANK_DATA_DIR", cwd),
		DBPath:    getEnv("FUNDRANK_DB_PATH", filepath.Join(cwd, "data", "fundrank.db")),
		OutputDir: getEnv("FUNDRANK_OUTPUT_DIR", filepath.Join(cwd, "out")),

		TopDefault: getEnvInt("FUNDRANK_TOP_DEFAULT", 5),

		CompanyColumn:       getEnv("FUNDRANK_COMPANY_COLUMN", "Company"),
		FundingColumn:       getEnv("FUNDRANK_FUNDING_COLUMN", "Recent Funding Amount"),
		MarketplaceColumn:   getEnv("FUNDRANK_MARKETPLACE_COLUMN", "Using cloud marketplaces?"),
		MarketplaceRequired: getEnvBool("FUNDRANK_MARKETPLACE_REQUIRED", false),

		StrictRows:     getEnvBool("FUNDRANK_STRICT_ROWS", false),
		FundingNumeric: getEnvBool("FUNDRANK_FUNDING_NUMERIC", false),

		OutputFundingHeader:     getEnv("FUNDRANK_OUTPUT_FUNDING_HEADER", "Recent Funding Amount"),
		OutputMarketplaceHeader: getEnv("FUNDRANK_OUTPUT_MARKETPLACE_HEADER", "Using cloud marketplace"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
