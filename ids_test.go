package luxrpc_test

import (
	"encoding/json"
	"testing"

	"github.com/sebamiro/luxrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryNetworkID(t *testing.T) {
	assert.Equal(t, "11111111111111111111111111111111LpoYY", luxrpc.PrimaryNetworkID.String())

	id, err := luxrpc.ParseID("11111111111111111111111111111111LpoYY")
	require.NoError(t, err)
	assert.Equal(t, luxrpc.PrimaryNetworkID, id)
}

func TestID(t *testing.T) {
	var id luxrpc.ID
	for i := range id {
		id[i] = byte(i)
	}
	parsed, err := luxrpc.ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	b, err := json.Marshal(map[string]luxrpc.ID{"id": id})
	require.NoError(t, err)
	var out map[string]luxrpc.ID
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, id, out["id"])
}

func TestParseIDErrors(t *testing.T) {
	_, err := luxrpc.ParseID("11111111111111111111111111111111LpoYZ")
	assert.ErrorIs(t, err, luxrpc.ErrBadChecksum)

	_, err = luxrpc.ParseID("1")
	assert.ErrorIs(t, err, luxrpc.ErrBadLength)

	var node luxrpc.NodeID
	_, err = luxrpc.ParseID(node.String()[len("NodeID-"):])
	assert.ErrorIs(t, err, luxrpc.ErrBadLength)
}

func TestNodeID(t *testing.T) {
	var empty luxrpc.NodeID
	assert.Equal(t, "NodeID-111111111111111111116DBWJs", empty.String())

	withPrefix, err := luxrpc.ParseNodeID("NodeID-111111111111111111116DBWJs")
	require.NoError(t, err)
	withoutPrefix, err := luxrpc.ParseNodeID("111111111111111111116DBWJs")
	require.NoError(t, err)
	assert.Equal(t, empty, withPrefix)
	assert.Equal(t, empty, withoutPrefix)

	var id luxrpc.NodeID
	require.NoError(t, id.UnmarshalText([]byte("NodeID-111111111111111111116DBWJs")))
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "NodeID-111111111111111111116DBWJs", string(text))
}
