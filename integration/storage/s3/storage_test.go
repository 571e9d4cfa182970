package s3_test

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/integration/storage/s3"
)

type object struct {
	body         []byte
	contentType  string
	cacheControl string
}

type fakeClient struct {
	mu      sync.Mutex
	objects map[string]object
	err     error
}

func newFake() *fakeClient {
	return &fakeClient{objects: make(map[string]object)}
}

func (f *fakeClient) PutObject(ctx context.Context, in *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = object{
		body:         body,
		contentType:  aws.ToString(in.ContentType),
		cacheControl: aws.ToString(in.CacheControl),
	}
	return &s3aws.PutObjectOutput{}, nil
}

func (f *fakeClient) HeadObject(ctx context.Context, in *s3aws.HeadObjectInput, _ ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3aws.HeadObjectOutput{}, nil
}

func (f *fakeClient) DeleteObject(ctx context.Context, in *s3aws.DeleteObjectInput, _ ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3aws.DeleteObjectOutput{}, nil
}

func newStorage(t *testing.T, fake *fakeClient, cfg s3.Config) *s3.Storage {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "forms"
	}
	if cfg.Region == "" {
		cfg.Region = "ap-south-1"
	}
	s, err := s3.New(context.Background(), cfg, s3.WithClient(fake))
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	_, err := s3.New(context.Background(), s3.Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, s3.ErrInvalidConfig)
	assert.False(t, s3.Config{}.Enabled())
	assert.True(t, s3.Config{Bucket: "b"}.Enabled())
}

func TestPutExistsDelete(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	s := newStorage(t, fake, s3.Config{CacheControl: "no-cache"})

	require.NoError(t, s.Put(ctx, "/catalogs/general/latest.json", "application/json", []byte(`{}`)))

	obj := fake.objects["catalogs/general/latest.json"]
	assert.Equal(t, []byte(`{}`), obj.body)
	assert.Equal(t, "application/json", obj.contentType)
	assert.Equal(t, "no-cache", obj.cacheControl)

	ok, err := s.Exists(ctx, "catalogs/general/latest.json")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, "catalogs/general/missing.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "catalogs/general/latest.json"))
	assert.ErrorIs(t, s.Delete(ctx, "catalogs/general/latest.json"), s3.ErrObjectNotFound)
}

func TestInvalidKeys(t *testing.T) {
	s := newStorage(t, newFake(), s3.Config{})
	for _, key := range []string{"", "/", "a/../b"} {
		assert.ErrorIs(t, s.Put(context.Background(), key, "text/plain", nil), s3.ErrInvalidKey, key)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, s3.ErrAccessDenied},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, s3.ErrServiceUnavailable},
		{"no such bucket", &types.NoSuchBucket{}, s3.ErrBucketNotFound},
		{"deadline", context.DeadlineExceeded, s3.ErrOperationTimeout},
		{"canceled", context.Canceled, s3.ErrOperationCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFake()
			fake.err = tt.err
			s := newStorage(t, fake, s3.Config{})

			assert.ErrorIs(t, s.Put(context.Background(), "k", "text/plain", nil), tt.want)

			_, err := s.Exists(context.Background(), "k")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown code is kept", func(t *testing.T) {
		fake := newFake()
		fake.err = &smithy.GenericAPIError{Code: "Teapot"}
		err := newStorage(t, fake, s3.Config{}).Put(context.Background(), "k", "text/plain", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Teapot")
	})
}

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  s3.Config
		want string
	}{
		{"aws virtual host", s3.Config{}, "https://forms.s3.ap-south-1.amazonaws.com/a/b.json"},
		{"aws path style", s3.Config{ForcePathStyle: true}, "https://s3.ap-south-1.amazonaws.com/forms/a/b.json"},
		{"minio", s3.Config{Endpoint: "http://localhost:9000", ForcePathStyle: true}, "http://localhost:9000/forms/a/b.json"},
		{"spaces", s3.Config{Endpoint: "https://nyc3.digitaloceanspaces.com"}, "https://forms.nyc3.digitaloceanspaces.com/a/b.json"},
		{"cdn", s3.Config{BaseURL: "https://cdn.example.com/"}, "https://cdn.example.com/a/b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newStorage(t, newFake(), tt.cfg).URL("/a/b.json"))
		})
	}
}
