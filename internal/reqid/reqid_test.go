package reqid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, id, got)

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	_, other := NewContext(context.Background())
	require.NotEqual(t, id, other)

	_, ok = FromContext(context.Background())
	require.False(t, ok, "unexpected id in empty context")
}
