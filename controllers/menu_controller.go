package controllers

import (
	"strconv"

	"github.com/pratik117-dev/restaurant-site-backend/pkg/resp"
	"github.com/pratik117-dev/restaurant-site-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu and GET /admin/menu
func (m *MenuController) List(c *gin.Context) {
	items, err := m.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu
func (m *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := m.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /admin/menu/:id
func (m *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := m.Svc.Update(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (m *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := m.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
