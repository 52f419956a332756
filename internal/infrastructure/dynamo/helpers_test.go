package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrKey(t *testing.T) {
	key := strKey("id", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.Len(t, key, 1)
	av, ok := key["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", av.Value)
}

func TestCursorRoundTrip(t *testing.T) {
	cursor := encodeCursor("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.NotEqual(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", cursor)

	id, err := decodeCursor(cursor)
	require.NoError(t, err)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", id)
}

func TestDecodeCursor_Garbage(t *testing.T) {
	_, err := decodeCursor("!!! not base64 !!!")
	assert.Error(t, err)
}
