package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pgEdge/pgedge-warehouse/internal/config"
)

type mockS3Client struct {
	keys    []string
	failFor map[string]bool
}

func (m *mockS3Client) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := *input.Key
	if m.failFor[key] {
		return nil, errors.New("access denied")
	}
	m.keys = append(m.keys, key)
	return &s3.PutObjectOutput{}, nil
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("parquet"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestUploadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dim_date.parquet")
	writeFile(t, dir, "fact_orders.parquet")

	mock := &mockS3Client{}
	u, err := New(context.Background(), config.S3Config{
		Bucket: "my-bucket",
		Folder: "processed/",
	}, WithS3Client(mock))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	n, err := u.UploadFiles(context.Background(), dir, []string{"dim_date.parquet", "fact_orders.parquet"})
	if err != nil {
		t.Fatalf("UploadFiles failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 uploads, got %d", n)
	}
	if len(mock.keys) != 2 || mock.keys[0] != "processed/dim_date.parquet" {
		t.Errorf("Unexpected keys: %v", mock.keys)
	}
}

func TestUploadFilesSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dim_date.parquet")

	mock := &mockS3Client{}
	u, err := New(context.Background(), config.S3Config{Bucket: "b"}, WithS3Client(mock))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	n, err := u.UploadFiles(context.Background(), dir, []string{"dim_date.parquet", "dim_cust.parquet"})
	if err != nil {
		t.Fatalf("UploadFiles failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 upload, got %d", n)
	}
	// Folder unset: key is the bare file name.
	if len(mock.keys) != 1 || mock.keys[0] != "dim_date.parquet" {
		t.Errorf("Unexpected keys: %v", mock.keys)
	}
}

func TestUploadFilesContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dim_date.parquet")
	writeFile(t, dir, "dim_cust.parquet")

	mock := &mockS3Client{failFor: map[string]bool{"dim_date.parquet": true}}
	u, err := New(context.Background(), config.S3Config{Bucket: "b"}, WithS3Client(mock))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	n, err := u.UploadFiles(context.Background(), dir, []string{"dim_date.parquet", "dim_cust.parquet"})
	if err != nil {
		t.Fatalf("Expected batch to continue past a failed put, got: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 successful upload, got %d", n)
	}
}

func TestUploadFilesAllFailed(t *testing.T) {
	dir := t.TempDir()

	mock := &mockS3Client{}
	u, err := New(context.Background(), config.S3Config{Bucket: "b"}, WithS3Client(mock))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = u.UploadFiles(context.Background(), dir, []string{"dim_date.parquet"})
	if err == nil {
		t.Fatal("Expected error when nothing was uploaded, got nil")
	}
}

func TestNewMissingBucket(t *testing.T) {
	_, err := New(context.Background(), config.S3Config{})
	if err == nil {
		t.Fatal("Expected error for missing bucket, got nil")
	}
}
