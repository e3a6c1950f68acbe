package assistant

import (
	"context"
	"fmt"
	"testing"

	"movebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateTrim(t *testing.T) {
	state := newSessionState()
	for i := 0; i < 20; i++ {
		state.append(models.RoleUser, fmt.Sprintf("message %d", i))
	}
	state.trim()

	require.Len(t, state.Messages, maxTranscriptLen)
	// System prompt survives trimming; the tail is the most recent turns.
	assert.Equal(t, models.RoleSystem, state.Messages[0].Role)
	assert.Equal(t, "message 19", state.Messages[len(state.Messages)-1].Content)
	assert.Equal(t, "message 9", state.Messages[1].Content)
}

func TestSessionStateTrimNoop(t *testing.T) {
	state := newSessionState()
	state.append(models.RoleUser, "hello")
	state.trim()
	assert.Len(t, state.Messages, 2)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	state := newSessionState()
	state.append(models.RoleUser, "hi")
	state.Meta.CallRequested = true
	require.NoError(t, store.Save(ctx, "s1", state))

	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Len(t, loaded.Messages, 2)
	assert.True(t, loaded.Meta.CallRequested)

	// Mutating the loaded copy must not leak back into the store.
	loaded.append(models.RoleUser, "extra")
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, again.Messages, 2)

	require.NoError(t, store.Delete(ctx, "s1"))
	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
