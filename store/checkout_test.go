package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/gateway"
	"github.com/Dolapo001/Zentoria/models"
)

type fakeGateway struct {
	err     error
	calls   int
	lastReq gateway.InitiateRequest
}

func (f *fakeGateway) Initiate(_ context.Context, req gateway.InitiateRequest) (*gateway.PaymentLink, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &gateway.PaymentLink{TxRef: req.TxRef, Link: "https://pay.test/" + req.TxRef}, nil
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Coupon{},
	))
	return db
}

// seedCart creates a user with a cart holding qty units of a fresh product
// priced at price, with the given stock.
func seedCart(t *testing.T, db *gorm.DB, price string, stock, qty int) (uint, string) {
	t.Helper()
	user := models.User{
		Username:     "shopper",
		Email:        "shopper@example.com",
		PasswordHash: "x",
		Fullname:     "Test Shopper",
	}
	require.NoError(t, db.Create(&user).Error)

	product := models.Product{
		Name:     "Widget",
		Price:    decimal.RequireFromString(price),
		Quantity: stock,
	}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{UserID: user.ID, Status: models.CartStatusActive}
	require.NoError(t, db.Create(&cart).Error)
	item := models.CartItem{
		CartID:    cart.CartID,
		ProductID: product.ID,
		UnitPrice: product.Price,
		Quantity:  qty,
	}
	require.NoError(t, db.Create(&item).Error)

	return user.ID, product.ID
}

func TestCheckoutHappyPath(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedCart(t, db, "10.00", 5, 2)
	gw := &fakeGateway{}

	result, err := Checkout(context.Background(), db, gw, userID, "")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Amount.Equal(decimal.RequireFromString("20.00")))
	assert.NotEmpty(t, result.TxRef)
	assert.NotEmpty(t, result.PaymentLink)
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, result.TxRef, gw.lastReq.TxRef)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", productID).Error)
	assert.Equal(t, 3, product.Quantity)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, result.OrderID).Error)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("20.00")))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))

	var payment models.Payment
	require.NoError(t, db.First(&payment, result.PaymentID).Error)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.True(t, payment.Amount.Equal(result.Amount))
	assert.Equal(t, result.TxRef, payment.TransactionID,
		"the stored reference is what the webhook matches on")

	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "cart should be emptied after checkout")
}

func TestCheckoutAppliesCouponDiscount(t *testing.T) {
	db := setupDB(t)
	userID, _ := seedCart(t, db, "10.00", 5, 2)
	coupon := models.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.RequireFromString("10"),
		ExpiryDate:         time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&coupon).Error)

	gw := &fakeGateway{}
	result, err := Checkout(context.Background(), db, gw, userID, "SAVE10")
	require.NoError(t, err)

	assert.True(t, result.Amount.Equal(decimal.RequireFromString("18.00")),
		"expected 18.00, got %s", result.Amount)

	var payment models.Payment
	require.NoError(t, db.First(&payment, result.PaymentID).Error)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("18.00")))
}

func TestCheckoutInsufficientStock(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedCart(t, db, "10.00", 5, 6)
	gw := &fakeGateway{}

	result, err := Checkout(context.Background(), db, gw, userID, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, result)
	assert.Zero(t, gw.calls)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", productID).Error)
	assert.Equal(t, 5, product.Quantity, "stock must be untouched on failure")

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(1), itemCount, "cart must survive a failed checkout")
}

func TestCheckoutUnknownCoupon(t *testing.T) {
	db := setupDB(t)
	userID, _ := seedCart(t, db, "10.00", 5, 2)
	gw := &fakeGateway{}

	_, err := Checkout(context.Background(), db, gw, userID, "NOSUCH")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Zero(t, gw.calls)
}

func TestCheckoutExpiredCoupon(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedCart(t, db, "10.00", 5, 2)

	coupon := models.Coupon{
		Code:               "OLD",
		DiscountPercentage: decimal.RequireFromString("10"),
		ExpiryDate:         time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&coupon).Error)
	// Backdate behind the hook's back so the stored row looks stale.
	require.NoError(t, db.Model(&models.Coupon{}).Where("id = ?", coupon.ID).
		Update("expiry_date", time.Now().Add(-time.Hour)).Error)

	gw := &fakeGateway{}
	_, err := Checkout(context.Background(), db, gw, userID, "OLD")
	assert.ErrorIs(t, err, ErrExpiredCoupon)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", productID).Error)
	assert.Equal(t, 5, product.Quantity)
}

func TestCheckoutDeactivatedCoupon(t *testing.T) {
	db := setupDB(t)
	userID, _ := seedCart(t, db, "10.00", 5, 2)

	coupon := models.Coupon{
		Code:               "KILLED",
		DiscountPercentage: decimal.RequireFromString("10"),
		ExpiryDate:         time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&coupon).Error)
	coupon.Deactivate()
	require.NoError(t, db.Save(&coupon).Error)

	_, err := Checkout(context.Background(), db, &fakeGateway{}, userID, "KILLED")
	assert.ErrorIs(t, err, ErrExpiredCoupon)
}

func TestCheckoutPaymentValidationRollsBackOrder(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedCart(t, db, "10.00", 5, 2)

	// 150% discount drives the payable amount negative, which payment
	// validation rejects inside the transaction.
	coupon := models.Coupon{
		Code:               "TOOBIG",
		DiscountPercentage: decimal.RequireFromString("150"),
		ExpiryDate:         time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&coupon).Error)

	gw := &fakeGateway{}
	result, err := Checkout(context.Background(), db, gw, userID, "TOOBIG")
	assert.ErrorIs(t, err, ErrPaymentCreation)
	assert.Nil(t, result)
	assert.Zero(t, gw.calls)

	var orderCount, paymentCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Zero(t, orderCount, "order must not survive payment validation failure")
	assert.Zero(t, paymentCount)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", productID).Error)
	assert.Equal(t, 5, product.Quantity, "stock decrement must be rolled back")
}

func TestCheckoutGatewayFailureKeepsOrder(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedCart(t, db, "10.00", 5, 2)
	gw := &fakeGateway{err: gateway.ErrTimeout}

	result, err := Checkout(context.Background(), db, gw, userID, "")
	assert.ErrorIs(t, err, gateway.ErrTimeout)
	require.NotNil(t, result, "the committed order must be reported even when the gateway fails")
	assert.NotZero(t, result.OrderID)
	assert.Empty(t, result.PaymentLink)

	var order models.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)

	var payment models.Payment
	require.NoError(t, db.First(&payment, result.PaymentID).Error)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Equal(t, result.TxRef, payment.TransactionID)

	// Stock stays decremented: the sale is committed, only collection failed.
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", productID).Error)
	assert.Equal(t, 3, product.Quantity)
}

func TestCheckoutEmptyAndMissingCart(t *testing.T) {
	db := setupDB(t)

	_, err := Checkout(context.Background(), db, &fakeGateway{}, 999, "")
	assert.ErrorIs(t, err, ErrCartNotFound)

	user := models.User{Username: "empty", Email: "empty@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID}).Error)

	_, err = Checkout(context.Background(), db, &fakeGateway{}, user.ID, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutConcurrentStockContention(t *testing.T) {
	db := setupDB(t)

	product := models.Product{Name: "Scarce", Price: decimal.RequireFromString("10.00"), Quantity: 3}
	require.NoError(t, db.Create(&product).Error)

	var userIDs []uint
	for _, name := range []string{"first", "second"} {
		user := models.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
		require.NoError(t, db.Create(&user).Error)
		cart := models.Cart{UserID: user.ID}
		require.NoError(t, db.Create(&cart).Error)
		require.NoError(t, db.Create(&models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			UnitPrice: product.Price,
			Quantity:  2,
		}).Error)
		userIDs = append(userIDs, user.ID)
	}

	// Sequential here, but the conditional decrement is what guarantees the
	// second buyer cannot take stock that is no longer there.
	_, err := Checkout(context.Background(), db, &fakeGateway{}, userIDs[0], "")
	require.NoError(t, err)
	_, err = Checkout(context.Background(), db, &fakeGateway{}, userIDs[1], "")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var p models.Product
	require.NoError(t, db.First(&p, "id = ?", product.ID).Error)
	assert.Equal(t, 1, p.Quantity, "oversell must never happen")
}
