package luxrpc_test

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/sebamiro/luxrpc"
	"github.com/stretchr/testify/assert"
)

func TestUnits(t *testing.T) {
	assert.Equal(t, uint64(1_000_000_000), luxrpc.Lux)
	assert.Equal(t, uint64(1_000_000_000_000_000_000), luxrpc.LuxEVMChain)
	assert.Equal(t, uint64(1<<30), luxrpc.GiB)
}

func TestCastXPNLuxToLux(t *testing.T) {
	allOnes := new(uint256.Int).SetAllOne()
	assert.Equal(t, uint64(math.MaxUint64), luxrpc.CastXPNLuxToLux(allOnes))
	assert.Equal(t, uint64(18446744073), luxrpc.CastXPNLuxToLux(uint256.NewInt(math.MaxUint64)))
	assert.Equal(t, uint64(0), luxrpc.CastXPNLuxToLux(uint256.NewInt(100)))
	assert.Equal(t, uint64(2), luxrpc.CastXPNLuxToLux(uint256.NewInt(2*luxrpc.Lux)))
}

func TestCastLuxToXPNLux(t *testing.T) {
	assert.Equal(t, uint256.NewInt(5*luxrpc.Lux), luxrpc.CastLuxToXPNLux(uint256.NewInt(5)))

	allOnes := new(uint256.Int).SetAllOne()
	assert.Equal(t, allOnes, luxrpc.CastLuxToXPNLux(allOnes))
}

func TestCastEVMNLuxToLuxI64(t *testing.T) {
	assert.Equal(t, int64(9), luxrpc.CastEVMNLuxToLuxI64(uint256.NewInt(math.MaxInt64)))
	assert.Equal(t, int64(math.MaxInt64), luxrpc.CastEVMNLuxToLuxI64(new(uint256.Int).SetAllOne()))
	assert.Equal(t, int64(3), luxrpc.CastEVMNLuxToLuxI64(uint256.MustFromDecimal("3000000000000000000")))
}

func TestCastLuxToEVMNLux(t *testing.T) {
	assert.Equal(t, uint256.MustFromDecimal("7000000000000000000"), luxrpc.CastLuxToEVMNLux(uint256.NewInt(7)))

	allOnes := new(uint256.Int).SetAllOne()
	assert.Equal(t, allOnes, luxrpc.CastLuxToEVMNLux(allOnes))
}
