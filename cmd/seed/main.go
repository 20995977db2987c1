// Command seed populates a development database with demo providers,
// reviews, and users. It writes through the service layer so the same
// validation and rating aggregation rules apply as in the API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/localprint/api/internal/config"
	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/repository"
	"github.com/localprint/api/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	providerRepo := repository.NewProviderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	providerService := service.NewProviderService(service.ProviderServiceConfig{Repo: providerRepo})
	reviewService := service.NewReviewService(service.ReviewServiceConfig{
		ReviewRepo:   reviewRepo,
		ProviderRepo: providerRepo,
	})
	userService := service.NewUserService(service.UserServiceConfig{Repo: userRepo})

	providers := []model.CreateProviderRequest{
		{
			DisplayName:    "Campus Copy Corner",
			City:           "Rotterdam",
			Description:    strPtr("Fast laser prints near the university, same-day pickup."),
			PricePerPage:   floatPtr(0.08),
			ColorSupported: boolPtr(true),
			Duplex:         boolPtr(true),
		},
		{
			DisplayName:    "Jan's Home Office",
			City:           "Utrecht",
			Description:    strPtr("Black and white only, evenings and weekends."),
			PricePerPage:   floatPtr(0.05),
			ColorSupported: boolPtr(false),
			Duplex:         boolPtr(false),
		},
		{
			DisplayName:  "PrintPoint Centrum",
			City:         "Amsterdam",
			PricePerPage: floatPtr(0.12),
		},
	}

	reviewSets := [][]model.CreateReviewRequest{
		{
			{ReviewerName: "Sanne", Rating: intPtr(5), Comment: strPtr("Flawless color prints, ready in an hour.")},
			{ReviewerName: "Tom", Rating: intPtr(4)},
		},
		{
			{ReviewerName: "Mila", Rating: intPtr(3), Comment: strPtr("Cheap but slow to respond.")},
		},
		nil,
	}

	for i := range providers {
		provider, err := providerService.Create(ctx, &providers[i])
		if err != nil {
			slog.Error("failed to seed provider",
				slog.String("display_name", providers[i].DisplayName),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("seeded provider",
			slog.String("id", provider.ID),
			slog.String("city", provider.City))

		for j := range reviewSets[i] {
			req := reviewSets[i][j]
			req.ProviderID = provider.ID
			if _, err := reviewService.Create(ctx, &req); err != nil {
				slog.Error("failed to seed review",
					slog.String("provider_id", provider.ID),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}

	users := []model.CreateUserRequest{
		{Name: "Sanne de Vries", Email: "sanne@example.com", City: "Rotterdam"},
		{Name: "Tom Bakker", Email: "tom@example.com", City: "Utrecht"},
	}
	for i := range users {
		user, err := userService.Create(ctx, &users[i])
		if err != nil {
			// Re-running the seeder against a populated database is fine;
			// duplicate accounts are skipped.
			slog.Warn("skipped user",
				slog.String("email", users[i].Email),
				slog.String("error", err.Error()))
			continue
		}
		slog.Info("seeded user", slog.String("id", user.ID))
	}

	slog.Info("seed complete")
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
