package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/config"
)

type mockHeadObject struct {
	mock.Mock
}

func (m *mockHeadObject) HeadObject(
	ctx context.Context,
	params *s3.HeadObjectInput,
	optFns ...func(*s3.Options),
) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, *params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func TestCheckReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		ok   bool
	}{
		{"simple key", "badges/team-1.png", true},
		{"empty", "", false},
		{"absolute", "/etc/passwd", false},
		{"parent traversal", "badges/../secret", false},
		{"backslash", "badges\\a.png", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckReference(tt.ref)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidReference)
			}
		})
	}
}

func TestS3Validator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("object exists", func(t *testing.T) {
		client := new(mockHeadObject)
		client.On("HeadObject", ctx, "uploads", "receipts/r1.pdf").Return(&s3.HeadObjectOutput{}, nil)
		v := NewS3Validator(client, "uploads", "https://cdn.example.com")

		assert.NoError(t, v.Validate(ctx, "receipts/r1.pdf"))
		client.AssertExpectations(t)
	})

	t.Run("object missing", func(t *testing.T) {
		client := new(mockHeadObject)
		client.On("HeadObject", ctx, "uploads", "receipts/none.pdf").Return(nil, &types.NotFound{})
		v := NewS3Validator(client, "uploads", "")

		err := v.Validate(ctx, "receipts/none.pdf")
		assert.ErrorIs(t, err, ErrObjectNotFound)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("store unavailable is transient", func(t *testing.T) {
		client := new(mockHeadObject)
		client.On("HeadObject", ctx, "uploads", "badges/a.png").Return(nil, errors.New("dial tcp: i/o timeout"))
		v := NewS3Validator(client, "uploads", "")

		err := v.Validate(ctx, "badges/a.png")
		assert.Equal(t, apperr.KindTransientFailure, apperr.KindOf(err))
	})

	t.Run("malformed reference never reaches the store", func(t *testing.T) {
		client := new(mockHeadObject)
		v := NewS3Validator(client, "uploads", "")

		assert.ErrorIs(t, v.Validate(ctx, "../x"), ErrInvalidReference)
		client.AssertNotCalled(t, "HeadObject", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPublicURL(t *testing.T) {
	v := NewS3Validator(new(mockHeadObject), "uploads", "https://cdn.example.com/files/")
	assert.Equal(t, "https://cdn.example.com/files/badges/a.png", v.PublicURL("badges/a.png"))
	assert.Equal(t, "", v.PublicURL(""))

	p := NewPermissive("")
	assert.Equal(t, "", p.PublicURL("badges/a.png"))
	assert.NoError(t, p.Validate(context.Background(), "badges/a.png"))
}

func TestNew(t *testing.T) {
	t.Run("no bucket yields permissive validator", func(t *testing.T) {
		v, err := New(context.Background(), config.StorageConfig{PublicBaseURL: "https://cdn.example.com"})
		require.NoError(t, err)
		assert.IsType(t, &Permissive{}, v)
	})

	t.Run("bucket yields s3 validator", func(t *testing.T) {
		v, err := New(context.Background(), config.StorageConfig{
			Bucket:          "uploads",
			Region:          "auto",
			Endpoint:        "https://account.r2.cloudflarestorage.com",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			PublicBaseURL:   "https://cdn.example.com",
		})
		require.NoError(t, err)
		assert.IsType(t, &S3Validator{}, v)
	})
}
