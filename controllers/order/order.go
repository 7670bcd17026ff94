package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemUpdateRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /user/orders
// Owner-scoped for regular users, everything for staff.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		query := db.Preload("Items").Preload("Payment").Order("created_at DESC")
		if role, _ := c.Get("role"); role != "admin" {
			query = query.Where("user_id = ?", userID)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Order details retrieved successfully", orders)
	}
}

// GET /user/orders/:order_id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var order models.Order
		err := db.Preload("Items").Preload("Payment").Preload("ShippingAddress").
			Where("id = ? AND user_id = ?", c.Param("order_id"), userID).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Order not found", nil)
				return
			}
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Order retrieved successfully", order)
	}
}

// GET /admin/orders
// API-key protected, so there is no user in context; everything is returned.
func ListAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("Payment").Preload("ShippingAddress").
			Order("created_at DESC").Find(&orders).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Orders retrieved successfully", orders)
	}
}

// PUT /admin/orders/:order_id/status
// Flipping the status to shipped also sets the shipped flag, and the change is
// broadcast to websocket subscribers.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.OrderStatusShipped {
			updates["shipped"] = true
		}

		res := db.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates)
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Order not found", nil)
			return
		}

		BroadcastOrderUpdate(orderID, string(newStatus))
		utils.Success(c, http.StatusOK, "Order status updated successfully", nil)
	}
}

// DELETE /user/orders/:order_id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		orderID := c.Param("order_id")

		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.ShippingAddress{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, http.StatusNotFound, "Order not found", nil)
				return
			}
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Order deleted successfully", nil)
	}
}

// GET /user/order-items/:order_item_id
func GetOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var item models.OrderItem
		err := db.Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("order_items.id = ? AND orders.user_id = ?", c.Param("order_item_id"), userID).
			First(&item).Error
		if err != nil {
			utils.Error(c, http.StatusNotFound, "OrderItem not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "OrderItem retrieved successfully", item)
	}
}

// PUT /user/order-items/:order_item_id
// Editing a quantity re-syncs the pending payment amount with the recomputed
// order total, the way the original admin flow did.
func UpdateOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var req OrderItemUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
			utils.Error(c, http.StatusBadRequest, "Quantity must be greater than zero", nil)
			return
		}

		var item models.OrderItem
		err := db.Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("order_items.id = ? AND orders.user_id = ?", c.Param("order_item_id"), userID).
			First(&item).Error
		if err != nil {
			utils.Error(c, http.StatusNotFound, "OrderItem not found", nil)
			return
		}

		txErr := db.Transaction(func(tx *gorm.DB) error {
			item.Quantity = req.Quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}

			var order models.Order
			if err := tx.Preload("Items").First(&order, item.OrderID).Error; err != nil {
				return err
			}
			total := order.CalculateOrderTotal()
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("total", total).Error; err != nil {
				return err
			}
			return tx.Model(&models.Payment{}).
				Where("order_id = ? AND status = ?", order.ID, models.PaymentStatusPending).
				Update("amount", total).Error
		})
		if txErr != nil {
			utils.InternalError(c, txErr)
			return
		}
		utils.Success(c, http.StatusOK, "OrderItem updated successfully", item)
	}
}
