package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/schoolplatform/internal/flagx"
)

var knownFlags = []string{"-a", "-s", "-d", "-b", "-t", "-k", "-l"}

// parseFlags populates selected Config fields from command-line flags. Only
// the flags listed in the package doc are looked at.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the account daemon")
	fs.StringVar(&cfg.Storage.Driver, "s", cfg.Storage.Driver, "storage driver (sqlite, postgres, s3)")
	fs.StringVar(&cfg.Storage.DSN, "d", cfg.Storage.DSN, "storage DSN")
	fs.StringVar(&cfg.Storage.S3Bucket, "b", cfg.Storage.S3Bucket, "S3 bucket")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.SessionSecret, "k", cfg.SessionSecret, "session signing secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
