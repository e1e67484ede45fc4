package service

import (
	"bytes"
	"testing"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/ziflex/lecho/v3"
)

func TestStoredVirtualAmountParsesValidBalance(t *testing.T) {
	t.Parallel()
	svc := &BackofficeService{}
	amount := svc.storedVirtualAmount(&models.VirtualBalance{RestaurantID: "rest-001", Amount: "1234.56"})
	assert.Equal(t, "1234.56", amount.String())
}

func TestStoredVirtualAmountWarnsOnMalformedBalance(t *testing.T) {
	t.Parallel()
	var logOutput bytes.Buffer
	svc := &BackofficeService{Logger: lecho.New(&logOutput)}

	amount := svc.storedVirtualAmount(&models.VirtualBalance{RestaurantID: "rest-001", Amount: "corrupted"})
	assert.True(t, amount.IsZero())
	assert.Contains(t, logOutput.String(), "malformed amount")

	// nil logger must not panic
	amount = (&BackofficeService{}).storedVirtualAmount(&models.VirtualBalance{Amount: "corrupted"})
	assert.True(t, amount.IsZero())
}
