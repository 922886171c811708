package backup

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/netx"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	contentTypeJSON = "application/json"
	presignExpiry   = 15 * time.Minute
	keyPrefix       = "skillsync"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// S3Options locate the bucket and carry static credentials (MinIO style).
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Exporter uploads backups to an S3-compatible bucket through a presigned
// PUT URL.
type S3Exporter struct {
	opts S3Options
	http netx.HTTPClient
}

// NewS3Exporter returns an exporter using http for the upload; nil means
// http.DefaultClient.
func NewS3Exporter(opts S3Options, httpClient netx.HTTPClient) *S3Exporter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &S3Exporter{opts: opts, http: httpClient}
}

func (e *S3Exporter) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(e.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.opts.AccessKey,
			e.opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// Export uploads data as skillsync/<name> and returns its s3:// location.
func (e *S3Exporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	pc, err := e.getPresignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 config: %w", err)
	}

	bucket := e.opts.Bucket
	key := path.Join(keyPrefix, name)

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentTypeJSON),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, e.http, req.URL, contentTypeJSON, data); err != nil {
		return "", fmt.Errorf("upload backup: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
