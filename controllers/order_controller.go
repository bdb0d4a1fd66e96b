package controllers

import (
	"strconv"

	"github.com/pratik117-dev/restaurant-site-backend/pkg/resp"
	"github.com/pratik117-dev/restaurant-site-backend/services"
	"github.com/pratik117-dev/restaurant-site-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders, caller's own orders only
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /orders/:id/checkout, owner amends contact fields
func (oc *OrderController) CheckoutPatch(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CheckoutPatchIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.CheckoutPatch(uid, uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
