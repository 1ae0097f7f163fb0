package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/schoolplatform/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., "127.0.0.1:50051")
//	-m string     metrics bind address (e.g., ":9090"), empty disables metrics
//	-s string     storage driver: sqlite, postgres or s3
//	-d string     storage DSN
//	-k string     session signing secret
//	-l string     log level
//	-x duration   graceful shutdown timeout
//	-u string     S3 access key
//	-p string     S3 secret key
//	-b string     S3 bucket
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000")
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-s", "-d", "-k", "-l", "-x", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address and port of the metrics endpoint")
	fs.StringVar(&cfg.Storage.Driver, "s", cfg.Storage.Driver, "storage driver")
	fs.StringVar(&cfg.Storage.DSN, "d", cfg.Storage.DSN, "storage DSN")
	fs.StringVar(&cfg.SessionSecret, "k", cfg.SessionSecret, "session signing secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.ShutdownTimeout, "x", cfg.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&cfg.Storage.S3AccessKey, "u", cfg.Storage.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.Storage.S3SecretKey, "p", cfg.Storage.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.Storage.S3Bucket, "b", cfg.Storage.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.Storage.S3Region, "g", cfg.Storage.S3Region, "S3 region")
	fs.StringVar(&cfg.Storage.S3BaseEndpoint, "e", cfg.Storage.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
