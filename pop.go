package luxrpc

import (
	"encoding/hex"
	"strings"

	"github.com/cloudflare/circl/sign/bls"
	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/stellar/go/support/errors"
)

const (
	// PublicKeyLen is the size of a compressed BLS12-381 G1 public key.
	PublicKeyLen = 48
	// SignatureLen is the size of a compressed BLS12-381 G2 signature.
	SignatureLen = 96
)

// PublicKey is a BLS public key whose signatures live in G2.
type PublicKey = bls.PublicKey[bls.KeyG1SigG2]

// ProofOfPossession as returned in "nodePOP" and validator "signer" fields.
// Pubkey is not sent by the node, it is derived from PublicKey.
type ProofOfPossession struct {
	PublicKey         string `json:"publicKey"`
	ProofOfPossession string `json:"proofOfPossession"`

	Pubkey *PublicKey `json:"-"`
}

// LoadPubkey decompresses and validates the hex encoded public key.
func (p *ProofOfPossession) LoadPubkey() (*PublicKey, error) {
	b, err := decodeHex(p.PublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid public key encoding")
	}
	if len(b) != PublicKeyLen {
		return nil, errors.Errorf("invalid public key length %d, expected %d", len(b), PublicKeyLen)
	}

	pubkey := new(PublicKey)
	if err := pubkey.UnmarshalBinary(b); err != nil {
		return nil, errors.Wrap(err, "invalid public key")
	}
	if !pubkey.Validate() {
		return nil, errors.New("public key is not a valid G1 subgroup point")
	}
	return pubkey, nil
}

// Verify checks that the proof carries a well formed key and signature.
func (p *ProofOfPossession) Verify() error {
	if _, err := p.LoadPubkey(); err != nil {
		return err
	}
	sig, err := decodeHex(p.ProofOfPossession)
	if err != nil {
		return errors.Wrap(err, "invalid proof of possession encoding")
	}
	if len(sig) != SignatureLen {
		return errors.Errorf("invalid proof of possession length %d, expected %d", len(sig), SignatureLen)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

// withPubkey returns a copy of resp whose proof of possession carries the
// derived public key. resp is left untouched.
func withPubkey(resp *GetNodeIDResponse) (*GetNodeIDResponse, error) {
	if resp.Result == nil {
		if resp.Error != nil {
			return nil, rpc.WrapOther(resp.Error, "no result found", false)
		}
		return nil, rpc.NewOther("no result found")
	}
	if resp.Result.NodePOP == nil {
		return nil, rpc.NewOther("no proof of possession found in result.nodePOP")
	}

	pubkey, err := resp.Result.NodePOP.LoadPubkey()
	if err != nil {
		return nil, rpc.WrapOther(err, "failed to load proof of possession public key", false)
	}

	pop := *resp.Result.NodePOP
	pop.Pubkey = pubkey
	result := *resp.Result
	result.NodePOP = &pop
	out := *resp
	out.Result = &result
	return &out, nil
}
