package finance

import (
	"context"
	"net/http"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

type CategoriesService struct {
	gw Gateway
}

func (s *CategoriesService) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.gw.Do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create заводит пользовательскую категорию. В основных сценариях
// категории только читаются, но эндпоинт на бэкенде есть.
func (s *CategoriesService) Create(ctx context.Context, name string) (*model.Category, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	var category model.Category
	if err := s.gw.Do(ctx, http.MethodPost, "/categories", nil, body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
