package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"advocacia_elite/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrInvalidMediaKey is returned for keys that escape the media root
var ErrInvalidMediaKey = errors.New("invalid media key")

// MediaProvider resolves and serves the images referenced by the content
type MediaProvider interface {
	UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*StorageResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error) // Returns reader, content-type, error
	GetPublicURL(key string) string
	Name() string
}

// StorageResult contains information about the stored file
type StorageResult struct {
	Key      string // Storage key/path
	FileSize int64
	MimeType string
	URL      string // Public URL
}

// Media is the global media provider
var Media MediaProvider

// InitializeMedia sets up the media provider based on configuration
func InitializeMedia(cfg *config.Config) {
	Media = NewMediaProvider(cfg)
}

// NewMediaProvider returns R2 when it is configured and reachable, otherwise
// the local media directory
func NewMediaProvider(cfg *config.Config) MediaProvider {
	if !cfg.R2Configured() {
		log.Printf("Media storage established (Local filesystem - path: %s)", cfg.MediaDir)
		return NewLocalMedia(cfg.MediaDir)
	}

	r2, err := NewR2Media(cfg)
	if err != nil {
		log.Printf("[WARNING] Failed to initialize R2 storage: %v. Falling back to local storage.", err)
		return NewLocalMedia(cfg.MediaDir)
	}

	// Test R2 connection (HeadBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &cfg.R2BucketName}); err != nil {
		log.Printf("[WARNING] R2 bucket connection test failed: %v. Falling back to local storage.", err)
		return NewLocalMedia(cfg.MediaDir)
	}

	log.Printf("Media storage established (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
	return r2
}

// MediaURL resolves an image key with the global provider
func MediaURL(key string) string {
	if key == "" {
		return ""
	}
	if Media == nil {
		return "/media/" + key
	}
	return Media.GetPublicURL(key)
}

// R2Media implements MediaProvider for Cloudflare R2
type R2Media struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewR2Media creates a new R2 media provider
func NewR2Media(cfg *config.Config) (*R2Media, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(
		cfg.R2AccessKeyID,
		cfg.R2SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Media{
		client:    client,
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

// Name identifies the provider in logs
func (r *R2Media) Name() string {
	return "r2:" + r.bucket
}

// UploadReader uploads content from a reader to R2
func (r *R2Media) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*StorageResult, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=31536000"),
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload to R2: %w", err)
	}

	return &StorageResult{
		Key:      key,
		FileSize: size,
		MimeType: contentType,
		URL:      r.GetPublicURL(key),
	}, nil
}

// Get retrieves a file from R2 and returns a reader
func (r *R2Media) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from R2: %w", err)
	}

	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}

	return result.Body, contentType, nil
}

// GetPublicURL returns the public bucket URL when configured, otherwise the
// server's own media proxy
func (r *R2Media) GetPublicURL(key string) string {
	if r.publicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.publicURL, "/"), key)
	}
	return "/media/" + key
}

// LocalMedia implements MediaProvider for the local filesystem
type LocalMedia struct {
	baseDir string
}

// NewLocalMedia creates a new local media provider
func NewLocalMedia(baseDir string) *LocalMedia {
	return &LocalMedia{baseDir: baseDir}
}

// Name identifies the provider in logs
func (l *LocalMedia) Name() string {
	return "local:" + l.baseDir
}

// UploadReader saves content from a reader to the local media directory
func (l *LocalMedia) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*StorageResult, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StorageResult{
		Key:      key,
		FileSize: written,
		MimeType: contentType,
		URL:      l.GetPublicURL(key),
	}, nil
}

// Get opens a media file and detects its content type from the extension
func (l *LocalMedia) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return nil, "", err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	return file, ContentTypeFor(key), nil
}

// GetPublicURL returns the media proxy path
func (l *LocalMedia) GetPublicURL(key string) string {
	return "/media/" + key
}

// Walk calls fn for every file below the media directory with its key
func (l *LocalMedia) Walk(fn func(key, path string, size int64) error) error {
	return filepath.WalkDir(l.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(l.baseDir, path)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), path, info.Size())
	})
}

func (l *LocalMedia) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidMediaKey, key)
	}
	return filepath.Join(l.baseDir, clean), nil
}

// ContentTypeFor detects a content type from the key's extension
func ContentTypeFor(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	switch ext {
	case ".webp":
		return "image/webp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
