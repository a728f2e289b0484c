package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable prefix for all netrecon settings
const envPrefix = "NETRECON_"

// ScannerConfig contains configurable scanner settings
type ScannerConfig struct {
	// Channel buffer sizes
	TargetChannelBuffer int
	ResultChannelBuffer int

	// CLI defaults (overridable via flags)
	DefaultWorkers int
	DefaultTimeout time.Duration
}

// ResolverConfig contains configurable name-resolution settings
type ResolverConfig struct {
	// Fallback nameservers used when /etc/resolv.conf is unavailable,
	// comma-separated host:port entries
	Nameservers  []string
	QueryTimeout time.Duration
}

// OutputConfig contains reporting presentation settings
type OutputConfig struct {
	NoColor bool
}

// DefaultScannerConfig returns default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		TargetChannelBuffer: getEnvInt("SCANNER_TARGET_BUFFER", 1000),
		ResultChannelBuffer: getEnvInt("SCANNER_RESULT_BUFFER", 1000),
		DefaultWorkers:      getEnvInt("DEFAULT_WORKERS", 0), // 0 = auto
		DefaultTimeout:      getEnvDuration("DEFAULT_TIMEOUT", time.Second),
	}
}

// DefaultResolverConfig returns default resolver configuration
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Nameservers:  getEnvStrings("NAMESERVERS", "8.8.8.8:53,1.1.1.1:53"),
		QueryTimeout: getEnvDuration("DNS_TIMEOUT", 3*time.Second),
	}
}

// DefaultOutputConfig returns default output configuration
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		NoColor: getEnvBool("NO_COLOR", false),
	}
}

// getEnvInt retrieves an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(envPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable with a default value
// Accepts values like "500ms", "5s", "1m"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if val := os.Getenv(envPrefix + key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable with a default value
// Accepts: "true", "false", "1", "0", "yes", "no" (case-insensitive)
func getEnvBool(key string, defaultValue bool) bool {
	if val := os.Getenv(envPrefix + key); val != "" {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

// getEnvStrings retrieves a comma-separated list environment variable
// with a default value; empty entries are dropped
func getEnvStrings(key string, defaultValue string) []string {
	val := os.Getenv(envPrefix + key)
	if val == "" {
		val = defaultValue
	}

	var result []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Global configuration instances (initialized once at startup)
var (
	Scanner  = DefaultScannerConfig()
	Resolver = DefaultResolverConfig()
	Output   = DefaultOutputConfig()
)

// Init initializes all configuration from environment variables
// Call this at application startup
func Init() {
	Scanner = DefaultScannerConfig()
	Resolver = DefaultResolverConfig()
	Output = DefaultOutputConfig()
}
