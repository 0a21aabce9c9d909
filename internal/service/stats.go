package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/model"
	"github.com/AlexeyVin20/LibraryAPI-sub000/internal/repository"
)

type StatsService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewStatsService(repo repository.Repository, log *zap.Logger) *StatsService {
	return &StatsService{
		log:  log,
		repo: repo,
	}
}

func (s *StatsService) TitleStats(ctx context.Context, titleID int) (model.TitleStats, error) {
	return s.repo.TitleStats(ctx, titleID)
}

func (s *StatsService) CopySummary(ctx context.Context) (model.CopySummary, error) {
	return s.repo.CopySummary(ctx)
}
