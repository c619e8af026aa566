package audit

// Config holds configuration for the audit feature.
type Config struct {
	// Sink selects where reports go (storage, file).
	Sink string `mapstructure:"sink" default:"storage"`
	// ReportPrefix is the object-name prefix for reports in the bucket.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// KeepReports caps how many reports are retained in storage; 0 keeps all.
	KeepReports int `mapstructure:"keep_reports" default:"30"`
	// OutputDir is the local directory used by the file sink.
	OutputDir string `mapstructure:"output_dir" default:"reports"`
	// ProgressDelayMS paces progress output between records. Purely cosmetic;
	// 0 disables it.
	ProgressDelayMS int `mapstructure:"progress_delay_ms" default:"0"`
}

const (
	SinkStorage = "storage"
	SinkFile    = "file"
)

// IsValidSink checks if the configured sink kind is valid.
func (c Config) IsValidSink() bool {
	switch c.Sink {
	case SinkStorage, SinkFile:
		return true
	default:
		return false
	}
}
