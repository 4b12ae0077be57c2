package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultCartDBPath            = "bella-boutique.db"
	defaultCartSlotKey           = "bella-boutique-cart"
	defaultFreeShippingThreshold = 1000
	defaultShippingFlatFee       = 200
)

type Config struct {
	AppEnv                string
	CartDBPath            string
	CartSlotKey           string
	FreeShippingThreshold int
	ShippingFlatFee       int
}

// LoadConfig reads the environment (optionally from a .env file) into a
// Config. Every value has a working default, so an empty environment is fine.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:                os.Getenv("APP_ENV"),
		CartDBPath:            getenvOr("CART_DB_PATH", defaultCartDBPath),
		CartSlotKey:           getenvOr("CART_SLOT_KEY", defaultCartSlotKey),
		FreeShippingThreshold: getenvIntOr("FREE_SHIPPING_THRESHOLD", defaultFreeShippingThreshold),
		ShippingFlatFee:       getenvIntOr("SHIPPING_FLAT_FEE", defaultShippingFlatFee),
	}
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
