package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/AppointEase/internal/domain"
)

// Catalog неизменяемый справочник услуг
// Создается один раз при старте, порядок услуг сохраняется
type Catalog struct {
	services []domain.Service
	byID     map[string]int
}

// New создает каталог, проверяя уникальность ID и положительную длительность
func New(services []domain.Service) (*Catalog, error) {
	c := &Catalog{
		services: make([]domain.Service, 0, len(services)),
		byID:     make(map[string]int, len(services)),
	}

	for i, svc := range services {
		svc.ID = strings.TrimSpace(svc.ID)
		if svc.ID == "" {
			return nil, fmt.Errorf("%w: service #%d has empty id", ErrInvalidService, i)
		}
		if svc.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: service %q has non-positive duration %d", ErrInvalidService, svc.ID, svc.DurationMinutes)
		}
		if svc.Price < 0 {
			return nil, fmt.Errorf("%w: service %q has negative price", ErrInvalidService, svc.ID)
		}
		if _, exists := c.byID[svc.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateService, svc.ID)
		}

		c.byID[svc.ID] = len(c.services)
		c.services = append(c.services, svc)
	}

	return c, nil
}

// ListServices возвращает копию списка услуг в порядке добавления
func (c *Catalog) ListServices(_ context.Context) []domain.Service {
	result := make([]domain.Service, len(c.services))
	copy(result, c.services)
	return result
}

// GetService возвращает услугу по ID
func (c *Catalog) GetService(_ context.Context, id string) (*domain.Service, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	}
	svc := c.services[idx]
	return &svc, nil
}

// Search ищет услуги по названию, категории и описанию без учёта регистра
// Пустой запрос возвращает все услуги
func (c *Catalog) Search(ctx context.Context, query string) []domain.Service {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.ListServices(ctx)
	}

	result := make([]domain.Service, 0)
	for _, svc := range c.services {
		if strings.Contains(strings.ToLower(svc.Name), query) ||
			strings.Contains(strings.ToLower(svc.Category), query) ||
			strings.Contains(strings.ToLower(svc.Description), query) {
			result = append(result, svc)
		}
	}
	return result
}
