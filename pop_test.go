package luxrpc_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/cloudflare/circl/sign/bls"
	"github.com/sebamiro/luxrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProofOfPossession(t *testing.T) (luxrpc.ProofOfPossession, []byte) {
	t.Helper()
	ikm := make([]byte, 32)
	for i := range ikm {
		ikm[i] = byte(i + 1)
	}
	sk, err := bls.KeyGen[bls.KeyG1SigG2](ikm, nil, nil)
	require.NoError(t, err)
	pk, err := sk.PublicKey().MarshalBinary()
	require.NoError(t, err)
	require.Len(t, pk, luxrpc.PublicKeyLen)

	sig := bls.Sign(sk, pk)
	return luxrpc.ProofOfPossession{
		PublicKey:         "0x" + hex.EncodeToString(pk),
		ProofOfPossession: "0x" + hex.EncodeToString(sig),
	}, pk
}

func TestGetNodeID(t *testing.T) {
	pop, pk := newProofOfPossession(t)
	n, server := newNode(t)
	n.answer(luxrpc.InfoGetNodeID, fmt.Sprintf(
		`{"nodeID":"NodeID-5mb46qkSBj81k9g9e4VFjGGSbaaSLFRzD","nodePOP":{"publicKey":%q,"proofOfPossession":%q}}`,
		pop.PublicKey, pop.ProofOfPossession,
	))
	c := luxrpc.NewClient(server.URL)

	resp, err := c.GetNodeID()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), resp.ID)
	assert.Equal(t, "2.0", resp.Version)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "NodeID-5mb46qkSBj81k9g9e4VFjGGSbaaSLFRzD", resp.Result.NodeID)

	got := resp.Result.NodePOP
	require.NotNil(t, got)
	assert.Equal(t, pop.PublicKey, got.PublicKey)
	assert.Equal(t, pop.ProofOfPossession, got.ProofOfPossession)
	require.NotNil(t, got.Pubkey)
	b, err := got.Pubkey.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, pk, b)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"method":"info.getNodeID"}`, n.last().Body)
}

func TestGetNodeIDFailures(t *testing.T) {
	tests := []struct {
		name   string
		result string
		msg    string
	}{
		{
			name:   "missing proof of possession",
			result: `{"nodeID":"NodeID-5mb46qkSBj81k9g9e4VFjGGSbaaSLFRzD"}`,
			msg:    "no proof of possession found in result.nodePOP",
		},
		{
			name:   "malformed public key",
			result: `{"nodeID":"NodeID-5mb46qkSBj81k9g9e4VFjGGSbaaSLFRzD","nodePOP":{"publicKey":"0x1234","proofOfPossession":"0x"}}`,
			msg:    "failed to load proof of possession public key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, server := newNode(t)
			n.answer(luxrpc.InfoGetNodeID, tt.result)
			c := luxrpc.NewClient(server.URL)

			_, err := c.GetNodeID()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.False(t, luxrpc.IsRetryable(err))

			var e *luxrpc.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, luxrpc.KindOther, e.Kind)
		})
	}
}

func TestGetNodeIDNoResult(t *testing.T) {
	_, server := newNode(t)
	c := luxrpc.NewClient(server.URL)

	_, err := c.GetNodeID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result found")
	assert.Contains(t, err.Error(), "the method does not exist")
}

func TestProofOfPossessionVerify(t *testing.T) {
	pop, _ := newProofOfPossession(t)
	require.NoError(t, pop.Verify())

	pubkey, err := pop.LoadPubkey()
	require.NoError(t, err)
	assert.True(t, pubkey.Validate())

	short := pop
	short.ProofOfPossession = "0x00"
	assert.Error(t, short.Verify())

	bad := pop
	bad.PublicKey = "zz"
	assert.Error(t, bad.Verify())

	// Right length, not a compressed point.
	notOnCurve := pop
	notOnCurve.PublicKey = "0x" + hex.EncodeToString(make([]byte, luxrpc.PublicKeyLen))
	_, err = notOnCurve.LoadPubkey()
	assert.Error(t, err)
}
