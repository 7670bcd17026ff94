package store

import "errors"

var (
	ErrCartNotFound      = errors.New("cart not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidCoupon     = errors.New("invalid coupon code")
	ErrExpiredCoupon     = errors.New("expired coupon")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentCreation   = errors.New("payment creation failed")
)
