package sources

// Config holds the snapshot object locations and cache behavior.
type Config struct {
	// ADObject is the object name of the on-prem directory export.
	ADObject string `mapstructure:"ad_object" default:"snapshots/ad-computers.json"`
	// CloudObject is the object name of the cloud directory export.
	CloudObject string `mapstructure:"cloud_object" default:"snapshots/entra-devices.json"`
	// ManagedObject is the object name of the device-management export.
	ManagedObject string `mapstructure:"managed_object" default:"snapshots/intune-devices.json"`
	// CacheTTLSeconds is the snapshot cache time-to-live. Zero disables
	// caching so every audit re-downloads the exports.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
