package config

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST endpoint.
//   - DatabasePath: path to the local SQLite file holding the persisted
//     session.
//   - DemoMode: when true, the CLI runs against the in-process mock
//     gateway and never touches the network.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	DemoMode           bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.DatabasePath = "storefront.db"
	c.DemoMode = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
