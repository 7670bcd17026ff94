package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOrderTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("4.50"), Quantity: 3},
	}}
	got := order.CalculateOrderTotal()
	assert.True(t, got.Equal(decimal.RequireFromString("33.50")), "got %s", got)
}

func TestOrderIsPaid(t *testing.T) {
	order := Order{}
	assert.False(t, order.IsPaid())

	order.Payment = &Payment{Status: PaymentStatusPending}
	assert.False(t, order.IsPaid())

	order.Payment.Status = PaymentStatusPaid
	assert.True(t, order.IsPaid())
}

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod(PaymentMethodFlutterwave))
	assert.True(t, ValidMethod(PaymentMethodBankTransfer))
	assert.True(t, ValidMethod(PaymentMethodCard))
	assert.False(t, ValidMethod("PayPal"))
	assert.False(t, ValidMethod(""))
}
