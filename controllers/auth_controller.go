package controllers

import (
	"net/http"

	"github.com/pratik117-dev/restaurant-site-backend/pkg/resp"
	"github.com/pratik117-dev/restaurant-site-backend/services"
	"github.com/pratik117-dev/restaurant-site-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.Register(req.Email, req.Name, req.Password); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "OTP sent to your email"})
}

// POST /auth/verify-otp
func (a *AuthController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.VerifyOTP(req.Email, req.OTP)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"token": token,
		"user":  gin.H{"email": user.Email, "name": user.Name, "isAdmin": user.IsAdmin},
	})
}

// POST /auth/resend-otp
func (a *AuthController) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.ResendOTP(req.Email); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "OTP sent to your email"})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"email": user.Email, "name": user.Name, "isAdmin": user.IsAdmin},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"email": user.Email, "name": user.Name, "isAdmin": user.IsAdmin})
}
