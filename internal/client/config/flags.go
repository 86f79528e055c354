package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/flagx"
)

// parseFlags overlays the short flags onto cfg:
//
//	-a string   server gRPC address
//	-i int      online check interval, seconds
//	-f string   local database file
//	-l int      splash delay, milliseconds
//	-y int      feed retry interval, seconds
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-f", "-l", "-y"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file")
	splashDelay := fs.Int("l", int(cfg.SplashDelay.Milliseconds()), "splash delay (in milliseconds)")
	feedRetry := fs.Int("y", int(cfg.FeedRetryInterval.Seconds()), "feed retry interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.SplashDelay = time.Duration(*splashDelay) * time.Millisecond
	cfg.FeedRetryInterval = time.Duration(*feedRetry) * time.Second
}
