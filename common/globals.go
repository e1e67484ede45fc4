package common

const (
	OrderChannelTable    = "table"
	OrderChannelTakeaway = "takeaway"
	OrderChannelDelivery = "delivery"

	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"

	PaymentBucketCash    = "cash"
	PaymentBucketVirtual = "virtual"

	// Income entries can mirror a settled order. New rows carry the
	// structured source type; historical rows are recognized by the
	// sale markers embedded in their free-text reason.
	IncomeSourceSale   = "sale"
	IncomeSourceManual = "manual"

	SaleMarkerTable    = "TableCharge"
	SaleMarkerTakeaway = "Takeaway"
	SaleMarkerDelivery = "Delivery"

	// Payment method markers as the POS clients write them. The
	// method field is matched case-sensitively against these exact
	// strings, anything unrecognized falls back to cash.
	MethodCashUpper     = "Efectivo"
	MethodCashLower     = "efectivo"
	MethodCashEnglish   = "cash"
	MethodVirtual       = "virtual"
	MethodMercadoPago   = "MercadoPago"
	MethodMercadoPagoLC = "mercadopago"
	MethodCardUpper     = "Tarjeta"
	MethodCardLower     = "tarjeta"
	MethodTransferUpper = "Transferencia"
	MethodTransferLower = "transferencia"

	// Alternate "payment option" field on income entries.
	OptionCashDrawer        = "CashDrawer"
	OptionTransferToAccount = "TransferToAccount"
)
