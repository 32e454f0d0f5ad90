// Package storage provides S3-compatible object storage for raw page
// archiving.
package storage

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tailoredscoops/scoop/internal/config"
)

// Client wraps an S3-compatible object storage client. An unconfigured
// client turns every archive call into a no-op so ingestion never depends on
// object storage being present.
type Client struct {
	s3     *s3.Client
	bucket string
}

// NewClient creates a new S3-compatible storage client.
func NewClient(ctx context.Context, cfg config.S3Config) (*Client, error) {
	if cfg.Endpoint == "" {
		slog.Warn("S3 endpoint not configured, page archiving disabled")
		return &Client{bucket: cfg.Bucket}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = &cfg.Endpoint
		o.UsePathStyle = true
	})

	return &Client{
		s3:     client,
		bucket: cfg.Bucket,
	}, nil
}

// Configured returns true if the S3 client has a valid connection configured.
func (c *Client) Configured() bool {
	return c.s3 != nil
}

// ArchivePage compresses and uploads one fetched page. Keys are laid out by
// fetch day and URL hash, so rearchiving the same page on the same day
// overwrites in place.
func (c *Client) ArchivePage(ctx context.Context, pageURL string, html []byte) error {
	if c.s3 == nil {
		return nil
	}

	key := fmt.Sprintf("pages/%s/%s.html.gz",
		time.Now().UTC().Format("2006-01-02"), sha256sum([]byte(pageURL)))

	compressed, err := gzipCompress(html)
	if err != nil {
		return fmt.Errorf("storage: compress %s: %w", key, err)
	}

	_, err = c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
		Body:   bytes.NewReader(compressed),
	})
	if err != nil {
		return fmt.Errorf("storage: upload %s: %w", key, err)
	}

	slog.Debug("page archived", "key", key, "size", len(compressed))
	return nil
}

// GetPage retrieves an archived page by its URL and fetch day.
func (c *Client) GetPage(ctx context.Context, pageURL string, day time.Time) ([]byte, error) {
	if c.s3 == nil {
		return nil, fmt.Errorf("storage: not configured")
	}

	key := fmt.Sprintf("pages/%s/%s.html.gz",
		day.UTC().Format("2006-01-02"), sha256sum([]byte(pageURL)))

	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return gzipDecompress(data)
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipDecompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func sha256sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
