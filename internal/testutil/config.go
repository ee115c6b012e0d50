// Package testutil centralizes test configuration and item factories so
// fixtures stay consistent across packages.
package testutil

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// Environment variables tests honor when pointed at live endpoints.
	TestBrandsURLVar    = "TEST_BRANDS_URL"
	TestMaterialsURLVar = "TEST_MATERIALS_URL"
	TestCompsURLVar     = "TEST_COMPS_URL"
)

func init() {
	// Best effort; tests run fine without a .env file.
	_ = godotenv.Load()
}

// GetEnv returns an environment value or the default.
func GetEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// OfflineMode reports whether tests should avoid live endpoints. Defaults to
// true so the suite is hermetic.
func OfflineMode() bool {
	v := os.Getenv("TEST_OFFLINE")
	if v == "" {
		return true
	}
	offline, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return offline
}
