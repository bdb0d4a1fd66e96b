package main

import (
	"fmt"
	"log"

	"github.com/pratik117-dev/restaurant-site-backend/configs"
	"github.com/pratik117-dev/restaurant-site-backend/middlewares"
	"github.com/pratik117-dev/restaurant-site-backend/pkg/mailer"
	"github.com/pratik117-dev/restaurant-site-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDeliveryStatus(); err != nil {
		log.Fatalf("seed delivery status failed: %v", err)
	}

	mail := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve uploaded menu images
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg, mail)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
