package content

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type (
	MinioConfig struct {
		Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
		AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
		Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"booru"`
		Secure    bool   `yaml:"secure" env:"MINIO_SECURE" env-default:"false"`
	}

	// MinioStore keeps blobs as objects in a single S3 compatible bucket.
	MinioStore struct {
		client *minio.Client
		bucket string
	}

	// minioWriter streams bytes written to it in to a PutObject call running
	// in the background. The upload is only complete once Close returns.
	minioWriter struct {
		pipe *io.PipeWriter
		done chan error
	}
)

func NewMinioStore(ctx context.Context, config MinioConfig) (*MinioStore, error) {
	log.Emit(logger.INFO, "Connecting to MinIO at %s\n", config.Endpoint)
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check for bucket %q: %w", config.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", config.Bucket, err)
		}
		log.Emit(logger.NEW, "Created MinIO bucket %s\n", config.Bucket)
	}

	return &MinioStore{client: client, bucket: config.Bucket}, nil
}

func (store *MinioStore) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := store.client.StatObject(ctx, store.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isMinioNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (store *MinioStore) OpenWrite(ctx context.Context, key string) (io.WriteCloser, error) {
	contentType := "application/octet-stream"
	if _, mediaType, err := ParseKey(key); err == nil {
		contentType = ContentType(mediaType)
	}

	reader, writer := io.Pipe()
	done := make(chan error, 1)
	go func() {
		_, err := store.client.PutObject(ctx, store.bucket, key, reader, -1, minio.PutObjectOptions{ContentType: contentType})
		// Unblock any pending writes if the upload failed part way
		reader.CloseWithError(err)
		done <- err
	}()

	return &minioWriter{pipe: writer, done: done}, nil
}

func (store *MinioStore) OpenRead(ctx context.Context, key string) (io.ReadCloser, error) {
	object, err := store.client.GetObject(ctx, store.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat forces the request so a missing object is
	// reported here rather than on first read.
	if _, err := object.Stat(); err != nil {
		object.Close()
		if isMinioNotFound(err) {
			return nil, ErrBlobNotFound
		}

		return nil, err
	}

	return object, nil
}

func (w *minioWriter) Write(p []byte) (int, error) {
	return w.pipe.Write(p)
}

func (w *minioWriter) Close() error {
	if err := w.pipe.Close(); err != nil {
		return err
	}

	return <-w.done
}

func isMinioNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
