package luxrpc

import (
	"math"

	"github.com/holiman/uint256"
)

const (
	KiB uint64 = 1024
	MiB        = 1024 * KiB
	GiB        = 1024 * MiB
)

const (
	NanoLux  uint64 = 1
	MicroLux        = 1000 * NanoLux
	MilliLux        = 1000 * MicroLux

	// Lux is one LUX on the X and P chains, 10^9 nano LUX.
	Lux = 1000 * MilliLux

	KiloLux = 1000 * Lux
	MegaLux = 1000 * KiloLux

	// LuxEVMChain is one LUX on the C-Chain, 10^18 units.
	LuxEVMChain = 1000 * MegaLux
)

var (
	xpUnit  = uint256.NewInt(Lux)
	evmUnit = uint256.NewInt(LuxEVMChain)
)

// CastXPNLuxToLux converts nano LUX on the X and P chains to LUX, saturating
// at math.MaxUint64.
func CastXPNLuxToLux(nlux *uint256.Int) uint64 {
	luxs := new(uint256.Int).Div(nlux, xpUnit)
	if !luxs.IsUint64() {
		return math.MaxUint64
	}
	return luxs.Uint64()
}

// CastLuxToXPNLux converts LUX to nano LUX on the X and P chains, saturating
// at the maximum 256-bit value.
func CastLuxToXPNLux(lux *uint256.Int) *uint256.Int {
	nlux, overflow := new(uint256.Int).MulOverflow(lux, xpUnit)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return nlux
}

// CastEVMNLuxToLuxI64 converts C-Chain units to LUX, saturating at math.MaxInt64.
func CastEVMNLuxToLuxI64(nlux *uint256.Int) int64 {
	luxs := new(uint256.Int).Div(nlux, evmUnit)
	if !luxs.IsUint64() || luxs.Uint64() >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(luxs.Uint64())
}

// CastLuxToEVMNLux converts LUX to C-Chain units, saturating at the maximum
// 256-bit value.
func CastLuxToEVMNLux(lux *uint256.Int) *uint256.Int {
	nlux, overflow := new(uint256.Int).MulOverflow(lux, evmUnit)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return nlux
}
