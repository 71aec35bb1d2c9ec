package main

import (
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"google.golang.org/grpc"

	"autivision/api"
	"autivision/auth"
	"autivision/config"
	"autivision/data"
	pb "autivision/gen"
	"autivision/model"
	"autivision/service"
	"autivision/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := data.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	log.Printf("Loading model from: %s", cfg.ModelPath)
	classifier, err := model.NewONNXModel(cfg.ModelPath)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	defer classifier.Close()

	workdir, err := storage.NewWorkdir(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	inference := service.NewInferenceService(classifier, cfg.InferTimeout)
	screening := service.NewScreening(workdir, inference)
	authService := auth.NewService(data.NewUserRepository(db))

	restServer := fiber.New()
	restServer.Use(logger.New())
	restServer.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.SecretKey}))
	api.NewServer(authService, screening).Register(restServer)

	grpcServer := grpc.NewServer()
	pb.RegisterScreeningServiceServer(grpcServer, api.NewScreeningServer(screening))

	go func() {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatalf("Failed to listen: %v", err)
		}
		log.Printf("Starting gRPC server on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	go func() {
		log.Printf("Starting Fiber server on %s", cfg.HTTPAddr)
		if err := restServer.Listen(cfg.HTTPAddr); err != nil {
			log.Fatalf("Failed to serve Fiber: %v", err)
		}
	}()

	select {}
}
