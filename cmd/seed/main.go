package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"interviewhub/internal/config"
	"interviewhub/internal/database"
	"interviewhub/internal/domain"
	"interviewhub/internal/logger"
	"interviewhub/internal/repository"

	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_data.json"

type seedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type seedQuestion struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	QType   string   `json:"qtype"`
	Tags    []string `json:"tags"`
	Options []string `json:"options"`
}

type seedData struct {
	Users     []seedUser     `json:"users"`
	Questions []seedQuestion `json:"questions"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var data seedData
	if err := json.Unmarshal(byteValue, &data); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Seed data loaded",
		zap.Int("users", len(data.Users)),
		zap.Int("questions", len(data.Questions)))

	userRepo := repository.NewSQLXUserRepository(db)
	questionRepo := repository.NewSQLXQuestionRepository(db)

	for _, su := range data.Users {
		existing, err := userRepo.GetUserByUsername(ctx, su.Username)
		if err != nil {
			log.Error("Failed to check existing user", zap.String("username", su.Username), zap.Error(err))
			continue
		}
		if existing != nil {
			log.Info("User already present, skipping", zap.String("username", su.Username))
			continue
		}

		user := domain.NewUser(su.Username, su.Email)
		user.IsStaff = su.IsStaff
		if err := user.Validate(); err != nil {
			log.Error("Invalid seed user", zap.String("username", su.Username), zap.Error(err))
			continue
		}
		if err := userRepo.CreateUser(ctx, user); err != nil {
			log.Error("Failed to seed user", zap.String("username", su.Username), zap.Error(err))
			continue
		}
		log.Info("Seeded user", zap.String("username", su.Username), zap.String("id", user.ID))
	}

	for _, sq := range data.Questions {
		question := domain.NewQuestion(sq.Title, sq.Body, domain.QuestionType(sq.QType), sq.Tags, sq.Options)
		if err := question.Validate(); err != nil {
			log.Error("Invalid seed question", zap.String("title", sq.Title), zap.Error(err))
			continue
		}
		if err := questionRepo.CreateQuestion(ctx, question); err != nil {
			log.Error("Failed to seed question", zap.String("title", sq.Title), zap.Error(err))
			continue
		}
		log.Info("Seeded question", zap.String("title", sq.Title), zap.String("id", question.ID))
	}

	log.Info("Initial data seeding process completed.")
}
