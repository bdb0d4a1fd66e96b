package controllers

import (
	"strconv"

	"github.com/pratik117-dev/restaurant-site-backend/pkg/resp"
	"github.com/pratik117-dev/restaurant-site-backend/services"
	"github.com/pratik117-dev/restaurant-site-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, total, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "totalPrice": total})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "added to cart"})
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(uid, uint(itemID), body.Quantity); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart updated"})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.RemoveItem(uid, uint(itemID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed"})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
