package service

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a decimal greater than zero")

func randBytesFromStr(length int, from string) ([]byte, error) {
	b := make([]byte, length)
	fromLenBigInt := big.NewInt(int64(len(from)))
	for i := range b {
		r, err := rand.Int(rand.Reader, fromLenBigInt)
		if err != nil {
			return nil, err
		}
		b[i] = from[r.Int64()]
	}
	return b, nil
}

// parsePositiveAmount validates amounts on the write path. Reads stay
// lenient about historical garbage, but nothing new gets stored unless
// it is a decimal greater than zero.
func parsePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
