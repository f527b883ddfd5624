package service

import (
	"context"
	"fmt"

	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/util"
)

type DashboardService struct {
	Repo *repo.GormRepo
}

type Summary struct {
	Counts repo.Counts   `json:"counts"`
	Users  []models.User `json:"users"`
}

func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.Repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	offset, limit := util.Calculate(1, util.DefaultPageSize)
	_, users, err := s.Repo.ListUsers(ctx, "", offset, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard users: %w", err)
	}
	return &Summary{Counts: counts, Users: users}, nil
}
