package models_test

import (
	"testing"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/stretchr/testify/assert"
)

func TestSaleDerivedStructuredSourceWins(t *testing.T) {
	t.Parallel()
	entry := models.IncomeEntry{SourceType: "sale", Reason: "anything"}
	assert.True(t, entry.SaleDerived())

	// a manual entry keeps its classification even when the reason
	// happens to contain a marker
	entry = models.IncomeEntry{SourceType: "manual", Reason: "refund for Takeaway order"}
	assert.False(t, entry.SaleDerived())
}

func TestSaleDerivedLegacyMarkerFallback(t *testing.T) {
	t.Parallel()
	assert.True(t, (&models.IncomeEntry{Reason: "TableCharge #3"}).SaleDerived())
	assert.True(t, (&models.IncomeEntry{Reason: "Takeaway #12"}).SaleDerived())
	assert.True(t, (&models.IncomeEntry{Reason: "Delivery #9"}).SaleDerived())
	assert.False(t, (&models.IncomeEntry{Reason: "tip jar"}).SaleDerived())
	assert.False(t, (&models.IncomeEntry{Reason: ""}).SaleDerived())
}
