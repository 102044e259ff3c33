package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/basket-md/basket/internal/database"
	"github.com/basket-md/basket/internal/shopping"
)

// DepartmentService reads the department catalogue.
type DepartmentService struct {
	repo *database.DepartmentRepository
}

func NewDepartmentService(ctx *database.Context) *DepartmentService {
	return &DepartmentService{repo: database.NewDepartmentRepository(ctx)}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]shopping.Department, error) {
	return s.repo.FindAll(ctx)
}

func (s *DepartmentService) GetByID(ctx context.Context, id string) (*shopping.Department, error) {
	return s.repo.FindByID(ctx, id)
}

// Resolve accepts a department ID or name.
func (s *DepartmentService) Resolve(ctx context.Context, ref string) (*shopping.Department, error) {
	ref = strings.TrimSpace(ref)
	department, err := s.repo.FindByID(ctx, ref)
	if err != nil {
		return nil, err
	}
	if department != nil {
		return department, nil
	}

	department, err = s.repo.FindByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, fmt.Errorf("department %q: %w", ref, database.ErrNotFound)
	}
	return department, nil
}

// Index loads every department for label lookups.
func (s *DepartmentService) Index(ctx context.Context) (shopping.DepartmentIndex, error) {
	departments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return shopping.NewDepartmentIndex(departments), nil
}
