package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/pratik117-dev/restaurant-site-backend/entity"
	"github.com/pratik117-dev/restaurant-site-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryCharge is the flat fee added to every server-computed total.
var DeliveryCharge = decimal.RequireFromString("50.00")

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, mr *repository.MenuRepository, cr *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: or, MenuRepo: mr, CartRepo: cr}
}

type OrderLineIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderIn struct {
	Items      []OrderLineIn    `json:"items" binding:"required,min=1,dive"`
	TotalPrice *decimal.Decimal `json:"totalPrice"` // trusted verbatim when present
	Phone      string           `json:"phone"`
	Location   string           `json:"location"`
}

// Create places an order. Each line is snapshotted (id, name, unit
// price, quantity) from the live catalog at this moment; later menu
// edits never change what this order shows. Without a client total the
// server charges sum(price x qty) + DeliveryCharge. The caller's cart
// is emptied in the same transaction.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	lines := make([]entity.OrderLine, 0, len(in.Items))
	subtotal := decimal.Zero

	for _, it := range in.Items {
		m, err := s.MenuRepo.FindByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		lines = append(lines, entity.OrderLine{
			MenuItemID: m.ID,
			Name:       m.Name,
			UnitPrice:  m.Price,
			Quantity:   it.Quantity,
		})
		subtotal = subtotal.Add(m.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	total := subtotal.Add(DeliveryCharge)
	if in.TotalPrice != nil {
		total = *in.TotalPrice
	}

	order := &entity.Order{
		UserID:     userID,
		Status:     entity.StatusPending,
		TotalPrice: total,
		Phone:      in.Phone,
		Location:   in.Location,
		Lines:      lines,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.FindForUser(userID)
}

type CheckoutPatchIn struct {
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// CheckoutPatch lets the owner amend contact fields on their own
// order. Someone else's order answers not-found, never forbidden, so
// order ids cannot be probed.
func (s *OrderService) CheckoutPatch(userID, orderID uint, in *CheckoutPatchIn) (*entity.Order, error) {
	if _, err := s.Repo.FindByIDForUser(orderID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(orderID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByIDForUser(orderID, userID)
}

// ListAll is the admin view; cancelled orders stay out of it.
func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.FindAllExceptCancelled()
}

type AdminOrderPatchIn struct {
	Status   *string `json:"status"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// AdminUpdate writes whatever status the admin asked for. Any label is
// reachable from any other; there is no transition check.
func (s *OrderService) AdminUpdate(orderID uint, in *AdminOrderPatchIn) (*entity.Order, error) {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Status != nil {
		status := strings.ToUpper(*in.Status)
		if !entity.IsValidStatus(status) {
			return nil, ErrValidation
		}
		updates["status"] = status
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(orderID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(orderID)
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(orderID)
}

func orDefault(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}

// ExportCSV streams the whole ledger (cancelled included) as a flat
// file. Column order is what the admin FE expects, do not reorder.
func (s *OrderService) ExportCSV(w io.Writer) error {
	orders, err := s.Repo.FindAll()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Order ID", "User Email", "User Name", "Items", "Status",
		"Total Price", "Phone", "Location", "Created At",
	}); err != nil {
		return err
	}

	for _, o := range orders {
		names := make([]string, 0, len(o.Lines))
		for _, l := range o.Lines {
			names = append(names, l.Name)
		}
		if err := cw.Write([]string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.User.Email,
			o.User.Name,
			strings.Join(names, ", "),
			o.Status,
			o.TotalPrice.StringFixed(2),
			orDefault(o.Phone),
			orDefault(o.Location),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
