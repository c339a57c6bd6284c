package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/segmentio/encoding/json"
	"github.com/sethgrid/pester"
)

// Client lists and downloads snapshot partitions from the public bucket. The
// bucket allows unsigned access, no AWS account needed.
type Client struct {
	Bucket string
	s3     *s3.Client
}

// NewClient builds a client with anonymous credentials against the default
// bucket region.
func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		Bucket: DefaultBucket,
		s3:     s3.NewFromConfig(cfg),
	}, nil
}

// List returns all partitions of one kind currently in the bucket.
func (c *Client) List(ctx context.Context, kind string) ([]Partition, error) {
	var parts []Partition
	paginator := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.Bucket),
		Prefix: aws.String(fmt.Sprintf("data/%s/", kind)),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || !strings.HasSuffix(*obj.Key, ".gz") {
				continue
			}
			part, err := ParsePath(*obj.Key)
			if err != nil {
				continue
			}
			parts = append(parts, part)
		}
	}
	return parts, nil
}

// Download fetches one bucket key into dst, writing to a temporary file first
// so an interrupted transfer never leaves a truncated partition behind.
func (c *Client) Download(ctx context.Context, key, dst string) error {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".part-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, out.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// Manifest is the per kind file list OpenAlex publishes alongside the data.
type Manifest struct {
	Entries []ManifestEntry `json:"entries"`
	Meta    struct {
		ContentLength int64 `json:"content_length"`
		RecordCount   int64 `json:"record_count"`
	} `json:"meta"`
}

// ManifestEntry is one snapshot file with its size and record count.
type ManifestEntry struct {
	URL  string `json:"url"`
	Meta struct {
		ContentLength int64 `json:"content_length"`
		RecordCount   int64 `json:"record_count"`
	} `json:"meta"`
}

// FetchManifest retrieves the manifest for a kind over plain HTTPS with
// retries and backoff.
func FetchManifest(kind string) (*Manifest, error) {
	client := pester.New()
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = 3
	client.RetryOnHTTP429 = true
	link := fmt.Sprintf("https://%s.s3.amazonaws.com/data/%s/manifest", DefaultBucket, kind)
	resp, err := client.Get(link)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest: HTTP %d for %s", resp.StatusCode, link)
	}
	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	return &m, nil
}
