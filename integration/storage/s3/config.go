package s3

import "time"

// Config holds the bucket settings. Empty Bucket disables publishing.
type Config struct {
	Bucket         string        `env:"S3_BUCKET"`
	Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_ACCESS_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`         // MinIO, Spaces, R2 and other S3-compatible services
	BaseURL        string        `env:"S3_BASE_URL"`         // CDN or public URL base
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE"` // required for MinIO
	CacheControl   string        `env:"S3_CACHE_CONTROL" envDefault:"public, max-age=300"`
	UploadTimeout  time.Duration `env:"S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}
