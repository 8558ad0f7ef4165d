package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/resenaros/Ecommerce-API/models"
	"github.com/resenaros/Ecommerce-API/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid " + name,
			Error:   err.Error(),
		})
		return 0, false
	}
	return id, true
}

// @Summary Create order
// @Description Create an order for an existing user; order_date uses MM.DD.YYYY HH:MM:SS
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Delete order
// @Description Delete an order and its product links
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// @Summary Add product to order
// @Description Link a product to an order; each product at most once per order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/add_product/{product_id} [put]
func (ctrl *OrderController) AddProduct(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	if err := ctrl.orderService.AddProduct(c.Request.Context(), orderID, productID); err != nil {
		respondError(c, err, "Failed to add product to order")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product added to order successfully",
	})
}

// @Summary Remove product from order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/remove_product/{product_id} [delete]
func (ctrl *OrderController) RemoveProduct(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	if err := ctrl.orderService.RemoveProduct(c.Request.Context(), orderID, productID); err != nil {
		respondError(c, err, "Failed to remove product from order")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product removed from order successfully",
	})
}

// @Summary Get a user's orders
// @Tags Orders
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/user/{user_id} [get]
func (ctrl *OrderController) GetOrdersByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	orders, err := ctrl.orderService.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// @Summary Get products in an order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/products [get]
func (ctrl *OrderController) GetOrderProducts(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	products, err := ctrl.orderService.GetOrderProducts(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err, "Failed to retrieve order products")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order products retrieved successfully",
		Data:    products,
	})
}
