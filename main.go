package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	database "github.com/rishijha390/delhi-tandoori-momo/config"
	controllers "github.com/rishijha390/delhi-tandoori-momo/controllers"
	middleware "github.com/rishijha390/delhi-tandoori-momo/middlewares"
	"github.com/rishijha390/delhi-tandoori-momo/repository"
	"github.com/rishijha390/delhi-tandoori-momo/routes"
	"github.com/rishijha390/delhi-tandoori-momo/seed"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load() // load .env if it exists

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		log.Fatal("MONGO_URL is not set in the environment variables")
	}
	dbName := getenv("DB_NAME", "restaurant_db")
	port := getenv("PORT", "8000")

	ctx := context.Background()

	client, err := database.Connect(ctx, mongoURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Error("Error disconnecting from MongoDB")
		}
	}()
	log.Info("Connected to MongoDB")

	menuRepo := repository.NewMongoMenuRepo(database.OpenCollection(client, dbName, "menu_items"))
	orderRepo := repository.NewMongoOrderRepo(database.OpenCollection(client, dbName, "orders"))
	reviewRepo := repository.NewMongoReviewRepo(database.OpenCollection(client, dbName, "reviews"))
	contactRepo := repository.NewMongoContactRepo(database.OpenCollection(client, dbName, "contact_messages"))

	if err := seed.NewSeeder(menuRepo, reviewRepo, log).SeedIfEmpty(ctx); err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	routes.RestaurantRoutes(api)
	routes.MenuRoutes(api, controllers.NewMenuController(menuRepo, log))
	routes.OrderRoutes(api, controllers.NewOrderController(orderRepo, log))
	routes.ReviewRoutes(api, controllers.NewReviewController(reviewRepo, log))
	routes.ContactRoutes(api, controllers.NewContactController(contactRepo, log))

	// CORS wraps the router itself so preflight requests are answered even
	// when no route matches the OPTIONS method.
	handler := middleware.CORS(middleware.RequestLogger(log)(router))

	log.WithField("port", port).Info("Server running")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
