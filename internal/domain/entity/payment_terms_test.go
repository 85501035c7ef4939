package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
)

// Todo código del enum tiene etiqueta no vacía.
func TestPaymentTermsLabel_EnumCompleto(t *testing.T) {
	for _, code := range entity.PaymentTermsList {
		label := entity.PaymentTermsLabel(code)
		assert.NotEmpty(t, label, "el código %s debe tener etiqueta", code)
	}
}

// Las etiquetas son las del contrato público.
func TestPaymentTermsLabel_Etiquetas(t *testing.T) {
	assert.Equal(t, "Net 1 Day", entity.PaymentTermsLabel(entity.Terms1))
	assert.Equal(t, "Net 7 Days", entity.PaymentTermsLabel(entity.Terms7))
	assert.Equal(t, "Net 14 Days", entity.PaymentTermsLabel(entity.Terms14))
	assert.Equal(t, "Net 30 Days", entity.PaymentTermsLabel(entity.Terms30))
}

// Un código fuera del enum es violación de contrato: panic, no error.
func TestPaymentTermsLabel_CodigoDesconocidoPanic(t *testing.T) {
	require.Panics(t, func() {
		entity.PaymentTermsLabel("terms_60")
	})
}

// El dominio del léxico es exactamente el enum.
func TestValidPaymentTerms(t *testing.T) {
	for _, code := range entity.PaymentTermsList {
		assert.True(t, entity.ValidPaymentTerms(code))
	}
	assert.False(t, entity.ValidPaymentTerms(""))
	assert.False(t, entity.ValidPaymentTerms("terms_90"))
}
