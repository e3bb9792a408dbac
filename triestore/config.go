package triestore

// DefaultCacheSize is the lookup cache capacity used when Config leaves
// CacheSize unset.
const DefaultCacheSize = 256

// Config holds configuration options for a Store.
type Config struct {
	// CacheSize is the number of recent (version, key) lookup results
	// kept in memory. Zero or below selects DefaultCacheSize.
	CacheSize int `json:"cache_size" yaml:"cache_size"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CacheSize: DefaultCacheSize,
	}
}
