package service

import (
	"context"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
)

type OperatorService struct {
	operators *repository.OperatorRepository
}

func NewOperatorService(operators *repository.OperatorRepository) *OperatorService {
	return &OperatorService{operators: operators}
}

func (s *OperatorService) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	return s.operators.GetByID(ctx, id)
}
