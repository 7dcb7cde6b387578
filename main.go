package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/models"
	"salonbook-backend/routes"
	"salonbook-backend/scheduling"
	"salonbook-backend/services"
	"salonbook-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	db.AutoMigrate(
		&models.Salon{},
		&models.Service{},
		&models.Booking{},
		&models.User{},
		&models.ReminderLog{},
	)

	// Wire the stores and the scheduling core once at startup; everything
	// downstream gets them by reference.
	salons := store.NewSalonStore(db)
	svcs := store.NewServiceStore(db)
	bookings := store.NewBookingStore(db)

	blocking := config.BlockingStatuses()
	scheduler := scheduling.NewScheduler(bookings, svcs, blocking)
	availability := scheduling.NewEngine(svcs, bookings, blocking)

	reminders := services.NewReminderService(db)
	reminders.StartScheduler()

	r := routes.SetupRouter(routes.Handlers{
		Auth:     &controllers.AuthController{DB: db, Salons: salons},
		Salons:   &controllers.SalonController{Salons: salons},
		Services: &controllers.ServiceController{Services: svcs},
		Bookings: &controllers.BookingController{Scheduler: scheduler, Bookings: bookings},
		Public:   &controllers.PublicController{Salons: salons, Services: svcs, Scheduler: scheduler, Availability: availability},
		Profile:  &controllers.ProfileController{Salons: salons},
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
