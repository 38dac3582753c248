package controllers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pizza-delivery/config"
	"pizza-delivery/middleware"
	"pizza-delivery/models"
	"pizza-delivery/repositories"
)

type OrderController struct {
	Orders repositories.OrderStore
}

func NewOrderController(orders repositories.OrderStore) *OrderController {
	return &OrderController{Orders: orders}
}

const ordersCacheKey = "orders_list_all"

func invalidateOrderCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(context.Background(), ordersCacheKey)
}

// Hello godoc
// @Summary Hello
// @Description Authenticated hello world
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /order/ [get]
func (ctrl *OrderController) Hello(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Hello World"})
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Place a new pizza order. Status is always PENDING on create.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order body models.OrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	size := req.PizzaSize
	if size == "" {
		size = models.SizeSmall
	}

	order := &models.Order{
		Quantity:    req.Quantity,
		PizzaSize:   size,
		OrderStatus: models.StatusPending,
		UserID:      user.ID,
	}

	if err := ctrl.Orders.Create(c.Request.Context(), order); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	invalidateOrderCache()

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"id":           order.ID,
			"pizza_size":   order.PizzaSize,
			"quantity":     order.Quantity,
			"order_status": order.OrderStatus,
		},
	})
}

// ListAllOrders godoc
// @Summary List all orders
// @Description List every order in the store (Staff)
// @Tags Staff - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /order/orders [get]
func (ctrl *OrderController) ListAllOrders(c *gin.Context) {
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, ordersCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	orders, err := ctrl.Orders.FindAll(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	response := gin.H{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, ordersCacheKey, string(jsonData), time.Minute)
	}

	c.JSON(200, response)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get any order by id (Staff)
// @Tags Staff - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.Orders.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
		return
	}
	if order == nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// GetMyOrders godoc
// @Summary Get current user's orders
// @Description List the orders owned by the caller
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/user/orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	orders, err := ctrl.Orders.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// GetMyOrderByID godoc
// @Summary Get one of the current user's orders
// @Description Fetch a single order owned by the caller. A miss is a 400,
// @Description not a 404: only ids among the caller's own orders resolve.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/user/order/{id}/ [get]
func (ctrl *OrderController) GetMyOrderByID(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	orders, err := ctrl.Orders.FindByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
		return
	}

	for i := range orders {
		if orders[i].ID == id {
			c.JSON(200, gin.H{
				"success": true,
				"message": "Order retrieved successfully",
				"data":    orders[i],
			})
			return
		}
	}

	c.JSON(400, gin.H{"success": false, "message": "No order with such id"})
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Overwrite quantity and pizza size. Order status is untouched.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body models.OrderRequest true "Order data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order/update/{id}/ [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	size := req.PizzaSize
	if size == "" {
		size = models.SizeSmall
	}

	order, err := ctrl.Orders.Update(c.Request.Context(), id, req.Quantity, size)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order"})
		return
	}
	if order == nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	invalidateOrderCache()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order updated successfully",
		"data": gin.H{
			"id":           order.ID,
			"quantity":     order.Quantity,
			"pizza_size":   order.PizzaSize,
			"order_status": order.OrderStatus,
		},
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Overwrite the order status (Staff). Any status may be set
// @Description directly; no transition order is enforced.
// @Tags Staff - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body models.OrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order/update/{id} [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	status := req.OrderStatus
	if status == "" {
		status = models.StatusPending
	}

	order, err := ctrl.Orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}
	if order == nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	invalidateOrderCache()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data": gin.H{
			"id":           order.ID,
			"quantity":     order.Quantity,
			"pizza_size":   order.PizzaSize,
			"order_status": order.OrderStatus,
		},
	})
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order by id. Deleting a missing id is a no-op.
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Router /order/order/delete/{id}/ [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.Orders.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}
	if order != nil {
		invalidateOrderCache()
	}

	c.Status(204)
}
