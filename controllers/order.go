// controllers/order.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"laundrypos-backend/models"
	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderItemInput defines one line of an order
type OrderItemInput struct {
	ServiceID uint    `json:"serviceId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"min=0"`
	Loads     int     `json:"loads" binding:"min=0"`
}

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	Customer string           `json:"customer" binding:"required"`
	Phone    string           `json:"phone"`
	Method   string           `json:"method" binding:"required,oneof=Cash GCash"`
	Items    []OrderItemInput `json:"items" binding:"required,min=1"`
}

// UpdateStatusInput carries the board move
type UpdateStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=Received Washing Drying Ready Released"`
}

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder prices and stores a new order
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	draft := services.OrderDraft{
		CustomerName:  input.Customer,
		Phone:         input.Phone,
		PaymentMethod: input.Method,
	}
	for _, item := range input.Items {
		draft.Items = append(draft.Items, services.DraftItem{
			ServiceID: item.ServiceID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Loads:     item.Loads,
		})
	}

	order, err := oc.orders.Create(c.Request.Context(), draft)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders lists all orders, or one board column with ?status=
func (oc *OrderController) GetOrders(c *gin.Context) {
	var (
		orders []models.Order
		err    error
	)

	if status := c.Query("status"); status != "" {
		orders, err = oc.orders.ListByStatus(c.Request.Context(), models.OrderStatus(status))
	} else {
		orders, err = oc.orders.ListAll(c.Request.Context())
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves one order by ID
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order on the board
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := oc.orders.UpdateStatus(c.Request.Context(), uint(id), input.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes one order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	if err := oc.orders.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// ClearOrders wipes the whole order collection
func (oc *OrderController) ClearOrders(c *gin.Context) {
	if err := oc.orders.ClearAll(c.Request.Context()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All orders cleared"})
}
