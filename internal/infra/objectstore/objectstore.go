package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/remonte/internal/config"
)

var ErrDisabled = errors.New("object storage is not configured")

// Storage stores public objects and returns the URL they are served from.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ======================================================
// S3
// ======================================================

type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

var _ Storage = (*S3Storage)(nil)

func NewS3Storage(cfg config.S3Config) (*S3Storage, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}

	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client:    s3.New(opts),
		bucket:    cfg.Bucket,
		publicURL: publicBase(cfg),
	}, nil
}

func publicBase(cfg config.S3Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (s *S3Storage) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}

// ======================================================
// MEMORY
// ======================================================

// MemoryStorage keeps objects in process; used by tests and local runs without S3.
type MemoryStorage struct {
	mu      sync.Mutex
	baseURL string
	objects map[string]Object
}

type Object struct {
	Body        []byte
	ContentType string
}

var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]Object),
	}
}

func (m *MemoryStorage) Put(_ context.Context, key string, body []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key] = Object{Body: append([]byte(nil), body...), ContentType: contentType}
	return m.baseURL + "/" + key, nil
}

func (m *MemoryStorage) Object(key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.objects[key]
	return o, ok
}
