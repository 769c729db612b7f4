package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "vocab_db")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, map[string]string{"vocab_db": "[]", "vocab_refresh_count": "1"}))
	require.NoError(t, s.Put(ctx, map[string]string{"vocab_refresh_count": "2"}))

	v, ok, err := s.Get(ctx, "vocab_refresh_count")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	v, _, _ = s.Get(ctx, "vocab_db")
	assert.Equal(t, "[]", v)
	assert.NoError(t, s.Ping(ctx))
}
