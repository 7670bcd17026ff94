package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartCalculateTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{UnitPrice: decimal.RequireFromString("19.99"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("5.005"), Quantity: 1},
	}}

	got := cart.CalculateTotal()
	assert.True(t, got.Equal(decimal.RequireFromString("44.99")), "got %s", got)
}

func TestCartCalculateTotalEmpty(t *testing.T) {
	var cart Cart
	assert.True(t, cart.CalculateTotal().IsZero())
}

func TestCartTotalQuantity(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Quantity: 2},
		{Quantity: 3},
	}}
	assert.Equal(t, 5, cart.TotalQuantity())
	assert.Zero(t, (&Cart{}).TotalQuantity())
}
