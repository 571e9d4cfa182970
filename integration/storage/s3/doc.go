// Package s3 uploads published catalog artifacts to Amazon S3 or an
// S3-compatible service (MinIO, DigitalOcean Spaces, Cloudflare R2).
//
//	cfg := s3.Config{Bucket: "form-i18n", Region: "ap-south-1"}
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	err = store.Put(ctx, "catalogs/general/latest.json", "application/json", body)
//	url := store.URL("catalogs/general/latest.json")
//
// MinIO needs an endpoint and path-style addressing:
//
//	cfg := s3.Config{
//		Bucket:         "form-i18n",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// SDK errors are mapped onto the package sentinels (ErrObjectNotFound,
// ErrAccessDenied, ErrServiceUnavailable and so on) so callers can use errors.Is.
// Tests pass a fake through WithClient.
package s3
