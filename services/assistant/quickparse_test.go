package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuickMoveDetails(t *testing.T) {
	quick := ParseQuickMoveDetails("Moving from 100 Main St Houston TX to 200 Oak Ave Katy TX, 3 bedrooms, stairs at pickup")
	require.NotNil(t, quick)
	assert.Equal(t, "100 main st houston tx", quick.Pickup)
	assert.Equal(t, "200 oak ave katy tx, 3 bedrooms, stairs at pickup", quick.Drop)
	assert.Equal(t, 3, quick.Rooms)
	assert.True(t, quick.Stairs)
}

func TestParseQuickMoveDetailsNoStairs(t *testing.T) {
	quick := ParseQuickMoveDetails("from a to b 2 bedroom no stairs")
	require.NotNil(t, quick)
	assert.Equal(t, 2, quick.Rooms)
	assert.False(t, quick.Stairs)
}

func TestParseQuickMoveDetailsIncomplete(t *testing.T) {
	assert.Nil(t, ParseQuickMoveDetails(""))
	assert.Nil(t, ParseQuickMoveDetails("I want to move next week"))
	// Addresses without a bedroom count are not enough.
	assert.Nil(t, ParseQuickMoveDetails("from 100 Main St to 200 Oak Ave"))
	// Bedrooms without addresses are not enough either.
	assert.Nil(t, ParseQuickMoveDetails("3 bedrooms with elevator"))
}
