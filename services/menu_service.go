package services

import (
	"errors"

	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"github.com/pratik117-dev/restaurant-site-backend/repository"
	"github.com/pratik117-dev/restaurant-site-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const uploadFolder = "uploads"

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// MenuItemIn carries the writable fields; ImageBase64 is optional and
// gets written to the uploads folder when present.
type MenuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageBase64 string          `json:"imageBase64"`
}

func (in *MenuItemIn) validate() error {
	if in.Price.IsNegative() {
		return ErrValidation
	}
	if in.Category == "" {
		in.Category = entity.CategoryVeg
	}
	if !entity.IsValidCategory(in.Category) {
		return ErrValidation
	}
	return nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
	}
	if in.ImageBase64 != "" {
		url, err := utils.SaveBase64Image(in.ImageBase64, uploadFolder)
		if err != nil {
			return nil, ErrValidation
		}
		item.ImageURL = "/" + url
	}

	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	if in.ImageBase64 != "" {
		url, err := utils.SaveBase64Image(in.ImageBase64, uploadFolder)
		if err != nil {
			return nil, ErrValidation
		}
		item.ImageURL = "/" + url
	}

	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
