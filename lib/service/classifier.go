package service

import (
	"github.com/francoluca35/comandas-multiples-sub006/common"
)

// PaymentBucket : which running total a record contributes to.
type PaymentBucket string

const (
	BucketCash    PaymentBucket = common.PaymentBucketCash
	BucketVirtual PaymentBucket = common.PaymentBucketVirtual
)

// ClassifyPayment assigns a record to exactly one bucket from its
// payment method and, for income entries, the alternate payment option
// field. Matching is case-sensitive against the exact marker strings
// the POS clients write. Order matters: cash markers are checked
// before virtual ones, and anything unrecognized is cash. The cash
// default is a deliberate policy for unknown methods, not an error,
// so classification never fails.
func ClassifyPayment(method, option string) PaymentBucket {
	switch method {
	case common.MethodCashUpper, common.MethodCashLower, common.MethodCashEnglish:
		return BucketCash
	}
	if option == common.OptionCashDrawer {
		return BucketCash
	}

	switch method {
	case common.MethodVirtual,
		common.MethodMercadoPago, common.MethodMercadoPagoLC,
		common.MethodCardUpper, common.MethodCardLower,
		common.MethodTransferUpper, common.MethodTransferLower:
		return BucketVirtual
	}
	if option == common.OptionTransferToAccount {
		return BucketVirtual
	}

	return BucketCash
}
