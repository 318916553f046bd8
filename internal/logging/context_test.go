package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDFromContext(t *testing.T) {
	t.Run("should return the stored id", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "4b1c1f0e-6a0e-4f57-9d3c-0f5d1c2a9b11")
		assert.Equal(t, "4b1c1f0e-6a0e-4f57-9d3c-0f5d1c2a9b11", RequestIDFromContext(ctx))
	})

	t.Run("should return empty without an id", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})
}
