package luxrpc

import (
	"os"
	"time"
)

const (
	// EngineAddrKey is the environment variable carrying the address of the
	// engine a VM plugin reports back to.
	EngineAddrKey = "LUX_VM_RUNTIME_ENGINE_ADDR"

	DefaultDialTimeout = 10 * time.Second
)

// Checkable is implemented by anything that reports its own health.
type Checkable interface {
	HealthCheck() ([]byte, error)
}

// Initializer is implemented by VM runtimes started by the engine.
type Initializer interface {
	Initialize(protocolVersion uint32, vmServerAddr string) error
}

type Verifiable interface {
	Verify() error
}

var (
	_ Checkable  = Client{}
	_ Verifiable = (*ProofOfPossession)(nil)
)

// EngineAddr returns the engine address from the environment.
func EngineAddr() (string, bool) {
	addr, ok := os.LookupEnv(EngineAddrKey)
	if !ok || addr == "" {
		return "", false
	}
	return addr, true
}

// LockOption tells the engine which lock to hold while serving a handler.
type LockOption uint32

const (
	WriteLock LockOption = iota
	ReadLock
	NoLock
)

func (o LockOption) String() string {
	switch o {
	case WriteLock:
		return "write"
	case ReadLock:
		return "read"
	case NoLock:
		return "none"
	default:
		return "unknown"
	}
}

// HTTPHandler describes a handler a VM exposes under the node's HTTP server.
type HTTPHandler[T any] struct {
	LockOption LockOption
	Handler    T
	ServerAddr string
}
