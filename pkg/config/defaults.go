package config

import "github.com/spf13/viper"

// setDefaults registers the default value for every known key.
func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8081)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.shutdown_timeout", "10s")
	viper.SetDefault("server.max_header_bytes", 1<<20)

	// Storage
	viper.SetDefault("storage.data_dir", "./data/sessions")
	viper.SetDefault("storage.wipe_on_start", true)
	viper.SetDefault("storage.max_connections", 4)
	viper.SetDefault("storage.log_queries", false)

	// Rate limiting
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Logging
	viper.SetDefault("logging.verbose", false)
}
