package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"creatorclasses_server/auth"
	"creatorclasses_server/config"
	"creatorclasses_server/routes"
	"creatorclasses_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize AWS clients
	log.Println("Initializing AWS clients...")
	dynamoService := &services.DynamoService{Client: services.InitializeDynamoDBClient()}
	s3Service := &services.S3Service{
		Client: services.InitializeS3Client(),
		Bucket: cfg.S3BucketName,
		Region: cfg.AWSRegion,
	}
	notificationService := &services.NotificationService{
		Client:   services.InitializeSQSClient(),
		QueueURL: cfg.SQSQueueURL,
	}
	log.Println("AWS clients initialized.")

	// Initialize services
	profileService := &services.CreatorProfileService{Dynamo: dynamoService, S3: s3Service}
	classService := &services.ClassService{
		Dynamo:   dynamoService,
		S3:       s3Service,
		Notifier: notificationService,
		Profiles: profileService,
	}
	subscriptionService := &services.SubscriptionService{Dynamo: dynamoService, Classes: classService}

	tokens := auth.NewTokenService(cfg.JWTSecret)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Creator Classes")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterClassRoutes(r, classService, tokens)
	routes.RegisterSubscriptionRoutes(r, subscriptionService, tokens)
	routes.RegisterCreatorProfileRoutes(r, profileService, tokens)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, corsHandler))
}
