package configs

import (
	"fmt"
	"strings"

	"trace-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// setDefaults registers the value of every key that may be left out of the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)

	v.SetDefault("log.level", "info")
	v.SetDefault("file_storage.root_dir", "./data")

	v.SetDefault("parsing.bler_min_transfer_size", 200)
	v.SetDefault("parsing.pdcp_min_drb_id", 3)

	v.SetDefault("ingestion.max_trace_bytes", 256*1024*1024)

	v.SetDefault("campaign.data_dir", "data")
	v.SetDefault("campaign.params_file", "params.json")
	v.SetDefault("campaign.rx_trace_file", "RxPacketTrace.txt")
	v.SetDefault("campaign.ul_pdcp_file", "UlPdcpStats.txt")
	v.SetDefault("campaign.dl_pdcp_file", "DlPdcpStats.txt")
	v.SetDefault("campaign.results_name", "parsed_results")
	v.SetDefault("campaign.summary_name", "summary_results")
	v.SetDefault("campaign.ecdf_bins", 100)
	v.SetDefault("campaign.ignore_params", []string{"RngRun"})

	v.SetDefault("allocation.cache_size", 64)
	v.SetDefault("allocation.max_symbols", 14)
}

// LoadConfig reads configuration from file and validates it.
// An empty configPath yields the defaults.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Read from file
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.server.port" -> "server.port"
	if _, path, ok := strings.Cut(e.Namespace(), "."); ok {
		field = path
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
