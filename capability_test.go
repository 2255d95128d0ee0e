package luxrpc_test

import (
	"testing"

	"github.com/sebamiro/luxrpc"
	"github.com/stretchr/testify/assert"
)

func TestEngineAddr(t *testing.T) {
	t.Setenv(luxrpc.EngineAddrKey, "")
	_, ok := luxrpc.EngineAddr()
	assert.False(t, ok)

	t.Setenv(luxrpc.EngineAddrKey, "127.0.0.1:9652")
	addr, ok := luxrpc.EngineAddr()
	assert.True(t, ok)
	assert.Equal(t, "127.0.0.1:9652", addr)
}

func TestLockOption(t *testing.T) {
	assert.Equal(t, "write", luxrpc.WriteLock.String())
	assert.Equal(t, "read", luxrpc.ReadLock.String())
	assert.Equal(t, "none", luxrpc.NoLock.String())
	assert.Equal(t, "unknown", luxrpc.LockOption(7).String())

	h := luxrpc.HTTPHandler[luxrpc.Checkable]{LockOption: luxrpc.NoLock, Handler: luxrpc.NewClient("127.0.0.1:9650")}
	assert.Equal(t, luxrpc.NoLock, h.LockOption)
	assert.Empty(t, h.ServerAddr)
}
