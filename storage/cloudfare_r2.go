package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CloudflareR2UploaderConfig holds the bucket credentials. Every field is required.
type CloudflareR2UploaderConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

func (c CloudflareR2UploaderConfig) validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"account id", c.AccountID},
		{"access key id", c.AccessKeyID},
		{"secret access key", c.SecretAccessKey},
		{"bucket name", c.BucketName},
		{"public base url", c.PublicBaseURL},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("r2 config incomplete, missing: %s", strings.Join(missing, ", "))
	}
	if _, err := url.Parse(c.PublicBaseURL); err != nil {
		return fmt.Errorf("r2 public base url: %w", err)
	}
	return nil
}

// objectPutter is the part of the S3 client the uploader needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type r2Uploader struct {
	client objectPutter
	bucket string
	base   *url.URL
}

// NewCloudflareR2Uploader talks to R2 through its S3-compatible endpoint.
func NewCloudflareR2Uploader(ctx context.Context, cfg CloudflareR2UploaderConfig) (FileUploader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 sdk config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("https://" + cfg.AccountID + ".r2.cloudflarestorage.com")
	})
	return newR2Uploader(client, cfg.BucketName, cfg.PublicBaseURL), nil
}

func newR2Uploader(client objectPutter, bucket, publicBaseURL string) *r2Uploader {
	u := &r2Uploader{client: client, bucket: bucket}
	if publicBaseURL != "" {
		if base, err := url.Parse(publicBaseURL); err == nil {
			if !strings.HasSuffix(base.Path, "/") {
				base.Path += "/"
			}
			u.base = base
		}
	}
	return u
}

func (u *r2Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (*UploadResult, error) {
	if key == "" {
		return nil, errors.New("r2 upload: empty key")
	}
	out, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return nil, fmt.Errorf("r2 upload %s: %w", key, err)
	}

	return &UploadResult{
		Key:      key,
		Location: u.GetPublicURL(key),
		// S3-compatible APIs quote the ETag.
		ETag: strings.Trim(aws.ToString(out.ETag), `"`),
	}, nil
}

// GetPublicURL joins key onto the public base url, or returns "" when either is missing.
func (u *r2Uploader) GetPublicURL(key string) string {
	if u.base == nil || key == "" {
		return ""
	}
	ref, err := url.Parse(strings.TrimPrefix(key, "/"))
	if err != nil {
		return ""
	}
	return u.base.ResolveReference(ref).String()
}
