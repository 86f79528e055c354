package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophstore/internal/flagx"
	"github.com/dmitrijs2005/gophstore/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI configuration. Fields left out
// keep their current value.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        *string         `json:"database_path"`
	SplashDelay         *timex.Duration `json:"splash_delay"`
	FeedRetryInterval   *timex.Duration `json:"feed_retry_interval"`
}

// parseJson overlays the JSON file named by -c/-config onto cfg. Read or
// decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SplashDelay != nil {
		cfg.SplashDelay = jc.SplashDelay.Duration
	}
	if jc.FeedRetryInterval != nil {
		cfg.FeedRetryInterval = jc.FeedRetryInterval.Duration
	}
}
