package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/pratik117-dev/restaurant-site-backend/pkg/resp"
	"github.com/pratik117-dev/restaurant-site-backend/services"

	"github.com/gin-gonic/gin"
)

// AdminController covers the order dashboard and the delivery toggle.
type AdminController struct {
	Orders   *services.OrderService
	Delivery *services.DeliveryService
}

func NewAdminController(orders *services.OrderService, delivery *services.DeliveryService) *AdminController {
	return &AdminController{Orders: orders, Delivery: delivery}
}

// GET /admin/orders, everything except cancelled
func (ac *AdminController) ListOrders(c *gin.Context) {
	orders, err := ac.Orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /admin/orders/:id
func (ac *AdminController) UpdateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.AdminOrderPatchIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ac.Orders.AdminUpdate(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /admin/orders/:id
func (ac *AdminController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ac.Orders.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// GET /admin/orders/download, served as a CSV attachment. The file is
// assembled in memory first; writing straight to the response would
// commit a 200 before a failure could still surface.
func (ac *AdminController) DownloadOrders(c *gin.Context) {
	var buf bytes.Buffer
	if err := ac.Orders.ExportCSV(&buf); err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// GET /delivery-status
func (ac *AdminController) DeliveryStatus(c *gin.Context) {
	ds, err := ac.Delivery.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ds)
}

// PATCH /admin/delivery-status
func (ac *AdminController) UpdateDeliveryStatus(c *gin.Context) {
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ds, err := ac.Delivery.Set(*req.Available)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ds)
}
