package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Parsing     ParsingConfig     `mapstructure:"parsing" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Campaign    CampaignConfig    `mapstructure:"campaign" validate:"required"`
	Allocation  AllocationConfig  `mapstructure:"allocation" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ParsingConfig holds the record filters applied while aggregating.
type ParsingConfig struct {
	// BlerMinTransferSize drops block-error reports with size <= this value; -1 keeps all.
	BlerMinTransferSize int64 `mapstructure:"bler_min_transfer_size" validate:"min=-1"`
	PdcpMinDrbID        int   `mapstructure:"pdcp_min_drb_id" validate:"min=0"`
}

// IngestionConfig holds limits for uploaded traces.
type IngestionConfig struct {
	MaxTraceBytes int64 `mapstructure:"max_trace_bytes" validate:"required,min=1"`
}

// CampaignConfig describes the layout of a finished simulation campaign directory.
type CampaignConfig struct {
	DataDir      string   `mapstructure:"data_dir" validate:"required"`
	ParamsFile   string   `mapstructure:"params_file" validate:"required"`
	RxTraceFile  string   `mapstructure:"rx_trace_file" validate:"required"`
	UlPdcpFile   string   `mapstructure:"ul_pdcp_file" validate:"required"`
	DlPdcpFile   string   `mapstructure:"dl_pdcp_file" validate:"required"`
	ResultsName  string   `mapstructure:"results_name" validate:"required"`
	SummaryName  string   `mapstructure:"summary_name" validate:"required"`
	EcdfBins     int      `mapstructure:"ecdf_bins" validate:"required,min=1"`
	IgnoreParams []string `mapstructure:"ignore_params"`
}

// AllocationConfig holds the subframe layout settings.
type AllocationConfig struct {
	CacheSize  int `mapstructure:"cache_size" validate:"required,min=1"`
	MaxSymbols int `mapstructure:"max_symbols" validate:"required,min=1"`
}
