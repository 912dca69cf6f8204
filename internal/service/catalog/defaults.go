package catalog

import "github.com/m04kA/AppointEase/internal/domain"

// DefaultServices услуги салона по умолчанию, если в конфигурации каталог не задан
func DefaultServices() []domain.Service {
	return []domain.Service{
		{
			ID:              "haircut",
			Name:            "Haircut & Styling",
			Description:     "Professional haircut and styling service with our expert stylists.",
			DurationMinutes: 60,
			Price:           45,
			Category:        "Hair",
			Image:           "https://images.pexels.com/photos/3992874/pexels-photo-3992874.jpeg",
		},
		{
			ID:              "coloring",
			Name:            "Hair Coloring",
			Description:     "Full hair coloring service with premium products for vibrant, long-lasting results.",
			DurationMinutes: 120,
			Price:           95,
			Category:        "Hair",
			Image:           "https://images.pexels.com/photos/3993449/pexels-photo-3993449.jpeg",
		},
		{
			ID:              "facial",
			Name:            "Rejuvenating Facial",
			Description:     "Luxurious facial treatment to revitalize your skin and leave you glowing.",
			DurationMinutes: 60,
			Price:           65,
			Category:        "Skin",
			Image:           "https://images.pexels.com/photos/3985329/pexels-photo-3985329.jpeg",
		},
		{
			ID:              "massage",
			Name:            "Therapeutic Massage",
			Description:     "Full-body massage therapy to release tension and provide deep relaxation.",
			DurationMinutes: 90,
			Price:           85,
			Category:        "Body",
			Image:           "https://images.pexels.com/photos/5240621/pexels-photo-5240621.jpeg",
		},
		{
			ID:              "manicure",
			Name:            "Manicure & Nail Art",
			Description:     "Deluxe manicure service with optional nail art and premium polishes.",
			DurationMinutes: 45,
			Price:           35,
			Category:        "Nails",
			Image:           "https://images.pexels.com/photos/4046316/pexels-photo-4046316.jpeg",
		},
		{
			ID:              "pedicure",
			Name:            "Spa Pedicure",
			Description:     "Relaxing spa pedicure with exfoliation, massage, and premium nail care.",
			DurationMinutes: 60,
			Price:           45,
			Category:        "Nails",
			Image:           "https://images.pexels.com/photos/3997989/pexels-photo-3997989.jpeg",
		},
	}
}
