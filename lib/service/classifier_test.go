package service_test

import (
	"testing"

	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/stretchr/testify/assert"
)

func TestClassifyCashMarkers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("Efectivo", ""))
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("efectivo", ""))
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("cash", ""))
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("", "CashDrawer"))
}

func TestClassifyVirtualMarkers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("MercadoPago", ""))
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("mercadopago", ""))
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("Tarjeta", ""))
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("tarjeta", ""))
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("Transferencia", ""))
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("transferencia", ""))
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("", "TransferToAccount"))
	// the generic bucket name doubles as an expense method value
	assert.Equal(t, service.BucketVirtual, service.ClassifyPayment("virtual", ""))
}

func TestClassifyCashWinsOverVirtualOption(t *testing.T) {
	t.Parallel()
	// method marker is checked before the option field
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("Efectivo", "TransferToAccount"))
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("MercadoPago", "CashDrawer"))
}

func TestClassifyUnknownDefaultsToCash(t *testing.T) {
	t.Parallel()
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("Bitcoin", ""))
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("", ""))
	// markers are case-sensitive, a differently cased variant is unknown
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("MERCADOPAGO", ""))
	assert.Equal(t, service.BucketCash, service.ClassifyPayment("Mercadopago", ""))
}
