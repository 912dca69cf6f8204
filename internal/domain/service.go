package domain

// Service услуга из каталога. Справочные данные, не меняются после старта
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Category        string
	Image           string
}
