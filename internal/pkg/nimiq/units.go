package nimiq

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

const lunaExponent = 5

var (
	ErrNegativeAmount = errors.New("negative amount")
	ErrLunaPrecision  = errors.New("amount is more precise than one luna")
)

// LunaFromNIM converts a NIM amount to luna (1 NIM = 100000 luna).
func LunaFromNIM(nim decimal.Decimal) (uint64, error) {
	if nim.IsNegative() {
		return 0, ErrNegativeAmount
	}

	luna := nim.Shift(lunaExponent)
	if !luna.Equal(luna.Truncate(0)) {
		return 0, ErrLunaPrecision
	}

	return luna.BigInt().Uint64(), nil
}

func NIMFromLuna(luna uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(luna), -lunaExponent)
}
