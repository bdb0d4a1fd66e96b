package services

import (
	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"github.com/pratik117-dev/restaurant-site-backend/repository"
)

type DeliveryService struct {
	Repo *repository.DeliveryRepository
}

func NewDeliveryService(repo *repository.DeliveryRepository) *DeliveryService {
	return &DeliveryService{Repo: repo}
}

func (s *DeliveryService) Get() (*entity.DeliveryStatus, error) {
	return s.Repo.GetOrCreate()
}

// Set toggles order taking; the row is created first if this is the
// earliest access.
func (s *DeliveryService) Set(available bool) (*entity.DeliveryStatus, error) {
	if _, err := s.Repo.GetOrCreate(); err != nil {
		return nil, err
	}
	if err := s.Repo.SetAvailable(available); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreate()
}
