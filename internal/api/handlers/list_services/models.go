package list_services

import "github.com/m04kA/AppointEase/internal/domain"

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Image           string  `json:"image"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует услугу в HTTP response
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        s.Category,
		Image:           s.Image,
	}
}

// FromDomainServices конвертирует список услуг в HTTP response
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, len(services))}
	for i, s := range services {
		resp.Services[i] = FromDomainService(s)
	}
	return resp
}
