// Package publish uploads rendered documents to an S3 bucket.
//
//	p, err := publish.NewFromConfig(ctx, publish.Config{
//	    Bucket: "site",
//	    Prefix: "docs/",
//	    Region: "eu-west-1",
//	})
//	key, err := p.Publish(ctx, "index.html", markup, "text/html; charset=utf-8")
//
// Any S3-compatible endpoint works; set Config.Endpoint to use path-style
// addressing against it.
package publish

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/markup/internal/errors"
)

// PutObjectAPI is the part of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config configures a Publisher.
type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string

	// Anonymous sends unsigned requests instead of resolving credentials.
	Anonymous bool
}

// Publisher writes documents into one bucket under a key prefix.
type Publisher struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// New creates a Publisher on an existing client.
// Returns E041 when bucket is empty.
func New(client PutObjectAPI, bucket, prefix string) (*Publisher, error) {
	if bucket == "" {
		return nil, errors.New("E041")
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// NewFromConfig creates a Publisher with its own S3 client. Region and
// credentials resolve through the default AWS chain (environment, shared
// config files, instance roles); cfg.Region overrides the resolved region.
// Returns E041 when the bucket is empty and E042 when the chain fails.
func NewFromConfig(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E041")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Anonymous {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E042").Wrap(err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return New(client, cfg.Bucket, cfg.Prefix)
}

// Key returns the object key for name.
func (p *Publisher) Key(name string) string {
	name = strings.TrimLeft(path.Clean("/"+name), "/")
	return p.prefix + name
}

// Publish uploads markup as name and returns the object key.
// Upload failures are returned as E040.
func (p *Publisher) Publish(ctx context.Context, name, markup, contentType string) (string, error) {
	key := p.Key(name)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(markup),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E040").WithDetailf("s3://%s/%s", p.bucket, key).Wrap(err)
	}
	return key, nil
}
