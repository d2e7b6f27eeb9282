package objectstore

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/remonte/internal/config"
)

func TestNewS3Storage_DisabledWithoutBucket(t *testing.T) {
	_, err := NewS3Storage(config.S3Config{Region: "us-east-1"})
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestPublicBase(t *testing.T) {
	cases := []struct {
		cfg  config.S3Config
		want string
	}{
		{config.S3Config{Bucket: "photos", Region: "eu-west-1"}, "https://photos.s3.eu-west-1.amazonaws.com"},
		{config.S3Config{Bucket: "photos", Endpoint: "http://minio:9000/"}, "http://minio:9000/photos"},
		{config.S3Config{Bucket: "photos", PublicURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
	}

	for _, tc := range cases {
		if got := publicBase(tc.cfg); got != tc.want {
			t.Fatalf("publicBase(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestMemoryStorage_Put(t *testing.T) {
	s := NewMemoryStorage("http://local/")

	url, err := s.Put(context.Background(), "masters/1.webp", []byte("abc"), "image/webp")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "http://local/masters/1.webp" {
		t.Fatalf("unexpected url %q", url)
	}

	obj, ok := s.Object("masters/1.webp")
	if !ok || string(obj.Body) != "abc" || obj.ContentType != "image/webp" {
		t.Fatalf("unexpected object %+v", obj)
	}
}
