// Package storage archives indicator snapshots in an S3-compatible bucket
// (AWS S3 or self-hosted MinIO) through the MinIO Go client.
//
// Callers depend on the Client interface; core/storage/mocks provides a
// testify mock of it.
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
