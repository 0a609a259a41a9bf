package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errNotFound := New(KindNotFound, "team not found")

	t.Run("sentinel", func(t *testing.T) {
		assert.Equal(t, KindNotFound, KindOf(errNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("loading team: %w", errNotFound)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.ErrorIs(t, err, errNotFound)
	})

	t.Run("untagged error is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, Kind(""), KindOf(nil))
	})
}

func TestTransient(t *testing.T) {
	t.Run("wraps driver error", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := Transient(cause)
		assert.Equal(t, KindTransientFailure, KindOf(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection reset by peer")
	})

	t.Run("keeps tagged error", func(t *testing.T) {
		sentinel := New(KindCapacityExceeded, "full")
		assert.Same(t, sentinel, Transient(sentinel))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Transient(nil))
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInvalidScore, http.StatusBadRequest},
		{KindDrawRequiresAdmin, http.StatusBadRequest},
		{KindAlreadyConfirmed, http.StatusConflict},
		{KindCapacityExceeded, http.StatusConflict},
		{KindFixturesAlreadyGenerated, http.StatusConflict},
		{KindTransientFailure, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.kind))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "match not found", MessageOf(New(KindNotFound, "match not found")))
	assert.Equal(t, "internal server error", MessageOf(errors.New("secret detail")))
}
