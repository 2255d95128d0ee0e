package luxrpc

import (
	"bytes"
	"crypto/sha256"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stellar/go/support/errors"
)

const (
	idLen        = 32
	nodeIDLen    = 20
	checksumLen  = 4
	nodeIDPrefix = "NodeID-"
)

var (
	ErrBadChecksum = errors.New("cb58: bad checksum")
	ErrBadLength   = errors.New("cb58: bad length")
)

// ID identifies blockchains, subnets and transactions. It is rendered in
// CB58, base58 with a 4 byte sha256 checksum.
type ID [idLen]byte

// PrimaryNetworkID is the id of the primary network subnet.
var PrimaryNetworkID = ID{}

func (id ID) String() string {
	return encodeCB58(id[:])
}

// ParseID decodes a CB58 string into an ID.
func ParseID(s string) (ID, error) {
	var id ID
	b, err := decodeCB58(s)
	if err != nil {
		return id, err
	}
	if len(b) != idLen {
		return id, errors.Wrapf(ErrBadLength, "expected %d bytes, got %d", idLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NodeID identifies a node, e.g. "NodeID-7Xhw2mDxuDS44j42TCB6U5579esbSt3Lg".
type NodeID [nodeIDLen]byte

func (id NodeID) String() string {
	return nodeIDPrefix + encodeCB58(id[:])
}

// ParseNodeID decodes a node id with or without its "NodeID-" prefix.
func ParseNodeID(s string) (NodeID, error) {
	var id NodeID
	b, err := decodeCB58(strings.TrimPrefix(s, nodeIDPrefix))
	if err != nil {
		return id, err
	}
	if len(b) != nodeIDLen {
		return id, errors.Wrapf(ErrBadLength, "expected %d bytes, got %d", nodeIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func encodeCB58(b []byte) string {
	sum := sha256.Sum256(b)
	buf := make([]byte, 0, len(b)+checksumLen)
	buf = append(buf, b...)
	buf = append(buf, sum[len(sum)-checksumLen:]...)
	return base58.Encode(buf)
}

func decodeCB58(s string) ([]byte, error) {
	raw := base58.Decode(s)
	if len(raw) < checksumLen {
		return nil, errors.Wrapf(ErrBadLength, "decoding %q", s)
	}
	payload, checksum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	sum := sha256.Sum256(payload)
	if !bytes.Equal(sum[len(sum)-checksumLen:], checksum) {
		return nil, errors.Wrapf(ErrBadChecksum, "decoding %q", s)
	}
	return payload, nil
}
