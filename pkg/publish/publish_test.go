package publish

import (
	"context"
	stderrors "errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/markup/internal/errors"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestPublish(t *testing.T) {
	client := &fakeS3{}
	p, err := New(client, "site", "docs/")
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	key, err := p.Publish(context.Background(), "index.html", "<p></p>", "text/html; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "docs/index.html", key)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "site", aws.ToString(in.Bucket))
	assert.Equal(t, "docs/index.html", aws.ToString(in.Key))
	assert.Equal(t, "text/html; charset=utf-8", aws.ToString(in.ContentType))
	assert.Equal(t, "2024-05-01T12:00:00Z", in.Metadata["publish-time"])
	assert.Equal(t, "<p></p>", client.bodies[0])
}

func TestKey(t *testing.T) {
	p, err := New(&fakeS3{}, "b", "pre/")
	require.NoError(t, err)

	tests := map[string]string{
		"a.html":          "pre/a.html",
		"/a.html":         "pre/a.html",
		"x/../../a.html":  "pre/a.html",
		"sub/./page.html": "pre/sub/page.html",
	}
	for in, want := range tests {
		assert.Equal(t, want, p.Key(in), in)
	}
}

func TestPublishFailure(t *testing.T) {
	cause := stderrors.New("access denied")
	p, err := New(&fakeS3{err: cause}, "site", "")
	require.NoError(t, err)

	_, err = p.Publish(context.Background(), "a.xml", "<a/>", "application/xml")
	require.Error(t, err)
	assert.Equal(t, "E040", errors.Code(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "s3://site/a.xml")
}

// isolateAWS points the default chain at the given env only.
func isolateAWS(t *testing.T, env map[string]string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	for _, k := range []string{"AWS_PROFILE", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN"} {
		t.Setenv(k, env[k])
	}
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(&fakeS3{}, "", "")
	assert.Equal(t, "E041", errors.Code(err))

	_, err = NewFromConfig(context.Background(), Config{Region: "us-east-1"})
	assert.Equal(t, "E041", errors.Code(err))
}

func TestNewFromConfigDefaultChain(t *testing.T) {
	isolateAWS(t, map[string]string{
		"AWS_REGION":            "eu-west-1",
		"AWS_ACCESS_KEY_ID":     "id",
		"AWS_SECRET_ACCESS_KEY": "secret",
	})

	p, err := NewFromConfig(context.Background(), Config{Bucket: "b"})
	require.NoError(t, err)
	opts := p.client.(*s3.Client).Options()
	assert.Equal(t, "eu-west-1", opts.Region)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestNewFromConfigOverrides(t *testing.T) {
	isolateAWS(t, map[string]string{
		"AWS_REGION":            "eu-west-1",
		"AWS_ACCESS_KEY_ID":     "id",
		"AWS_SECRET_ACCESS_KEY": "secret",
	})

	p, err := NewFromConfig(context.Background(), Config{
		Bucket:    "b",
		Region:    "us-east-2",
		Endpoint:  "http://localhost:9000",
		Anonymous: true,
	})
	require.NoError(t, err)
	opts := p.client.(*s3.Client).Options()
	assert.Equal(t, "us-east-2", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.True(t, aws.IsCredentialsProvider(opts.Credentials, aws.AnonymousCredentials{}))
}
