package config

import "time"

// Config holds runtime settings for the gophstore CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	SplashDelay         time.Duration
	FeedRetryInterval   time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "gophstore.db"
	c.SplashDelay = 1500 * time.Millisecond
	c.FeedRetryInterval = 5 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then flags. Later
// sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
