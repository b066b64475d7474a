package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSUploader writes applicant CVs to a Cloud Storage bucket and makes each
// object world-readable, since the returned URL goes straight into the
// application record and is fetched by recruiters' browsers.
type GCSUploader struct {
	bucket *gcs.BucketHandle
	name   string
	client *gcs.Client
}

func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{
		bucket: client.Bucket(bucket),
		name:   bucket,
		client: client,
	}, nil
}

func (g *GCSUploader) Close() error { return g.client.Close() }

func (g *GCSUploader) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	obj := g.bucket.Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", err
	}
	return "https://storage.googleapis.com/" + g.name + "/" + objectName, nil
}
