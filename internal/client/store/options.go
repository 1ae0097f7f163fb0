package store

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Options selects and configures the key/value backend.
type Options struct {
	Driver string `json:"driver" env:"DRIVER"`

	// DSN is a file path (or sqlite URI) for sqlite and a connection string
	// for postgres.
	DSN string `json:"dsn" env:"DSN"`

	S3Bucket       string `json:"s3_bucket" env:"S3_BUCKET"`
	S3Region       string `json:"s3_region" env:"S3_REGION"`
	S3BaseEndpoint string `json:"s3_base_endpoint" env:"S3_BASE_ENDPOINT"`
	S3AccessKey    string `json:"s3_access_key" env:"S3_ACCESS_KEY"`
	S3SecretKey    string `json:"s3_secret_key" env:"S3_SECRET_KEY"`
	S3Prefix       string `json:"s3_prefix" env:"S3_PREFIX"`
}
