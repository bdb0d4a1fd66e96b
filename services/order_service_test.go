package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/pratik117-dev/restaurant-site-backend/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotalWithDeliveryCharge(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	user := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)
	cola := seedMenuItem(t, db, "Cola", "5.00", entity.CategoryDrinks)

	order, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{
			{MenuItemID: burger.ID, Quantity: 2},
			{MenuItemID: cola.ID, Quantity: 1},
		},
		Phone:    "0812345678",
		Location: "12 Main St",
	})
	require.NoError(t, err)

	// 2 x 10.00 + 1 x 5.00 + 50.00 delivery
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("75.00")),
		"got total %s", order.TotalPrice)
	assert.Equal(t, entity.StatusPending, order.Status)

	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Burger", order.Lines[0].Name)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 2, order.Lines[0].Quantity)
}

func TestCreateOrderTrustsClientTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	user := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	clientTotal := decimal.RequireFromString("1.00")
	order, err := svc.Create(user.ID, &CreateOrderIn{
		Items:      []OrderLineIn{{MenuItemID: burger.ID, Quantity: 3}},
		TotalPrice: &clientTotal,
	})
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(clientTotal))
}

func TestCreateOrderUnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{MenuItemID: 9999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	user := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	order, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// reprice and rename the live item afterwards
	require.NoError(t, db.Model(&entity.MenuItem{}).
		Where("id = ?", burger.ID).
		Updates(map[string]any{"price": "99.00", "name": "Mega Burger"}).Error)

	orders, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 1)

	line := orders[0].Lines[0]
	assert.Equal(t, "Burger", line.Name, "historical order shows the name as purchased")
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("10.00")),
		"historical order shows the price as purchased, got %s", line.UnitPrice)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("60.00")))
}

func TestCreateOrderClearsCart(t *testing.T) {
	db := newTestDB(t)
	orderSvc := newOrderService(db)
	cartSvc := newCartService(db)

	user := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	require.NoError(t, cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: burger.ID, Quantity: 2}))

	_, err := orderSvc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	items, _, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListForUserIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	ann := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	bob := seedUser(t, db, "bob@x.com", "Bob", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	_, err := svc.Create(ann.ID, &CreateOrderIn{Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 1}}})
	require.NoError(t, err)

	orders, err := svc.ListForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutPatchOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	ann := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	bob := seedUser(t, db, "bob@x.com", "Bob", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	order, err := svc.Create(ann.ID, &CreateOrderIn{Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 1}}})
	require.NoError(t, err)

	phone := "0899999999"
	loc := "34 Side St"
	patched, err := svc.CheckoutPatch(ann.ID, order.ID, &CheckoutPatchIn{Phone: &phone, Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, phone, patched.Phone)
	assert.Equal(t, loc, patched.Location)

	_, err = svc.CheckoutPatch(bob.ID, order.ID, &CheckoutPatchIn{Phone: &phone})
	assert.ErrorIs(t, err, ErrNotFound, "someone else's order reads as not found")
}

func TestAdminListExcludesCancelled(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	ann := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	for _, status := range []string{
		entity.StatusPending, entity.StatusAccepted, entity.StatusCancelled,
		entity.StatusDeliveryOut, entity.StatusDelivered, entity.StatusPaid,
	} {
		o, err := svc.Create(ann.ID, &CreateOrderIn{Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 1}}})
		require.NoError(t, err)
		s := status
		_, err = svc.AdminUpdate(o.ID, &AdminOrderPatchIn{Status: &s})
		require.NoError(t, err)
	}

	orders, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, orders, 5)
	for _, o := range orders {
		assert.NotEqual(t, entity.StatusCancelled, o.Status)
	}
}

func TestAdminUpdateSkipsTransitionChecks(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	ann := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	order, err := svc.Create(ann.ID, &CreateOrderIn{Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 1}}})
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, order.Status)

	// pending straight to delivered, no intermediate states required
	delivered := entity.StatusDelivered
	updated, err := svc.AdminUpdate(order.ID, &AdminOrderPatchIn{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, updated.Status)

	// and straight back again
	pending := entity.StatusPending
	updated, err = svc.AdminUpdate(order.ID, &AdminOrderPatchIn{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, updated.Status)

	// unknown labels are still rejected
	junk := "EXPLODED"
	_, err = svc.AdminUpdate(order.ID, &AdminOrderPatchIn{Status: &junk})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminDeleteOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	ann := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)

	order, err := svc.Create(ann.ID, &CreateOrderIn{Items: []OrderLineIn{{MenuItemID: burger.ID, Quantity: 1}}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(order.ID))

	var orderCount, lineCount int64
	db.Unscoped().Model(&entity.Order{}).Count(&orderCount)
	db.Unscoped().Model(&entity.OrderLine{}).Count(&lineCount)
	assert.Zero(t, orderCount, "hard delete leaves no order row behind")
	assert.Zero(t, lineCount, "hard delete takes the lines with it")

	assert.ErrorIs(t, svc.Delete(order.ID), ErrNotFound)
}

func TestExportCSV(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	ann := seedUser(t, db, "ann@x.com", "Ann", "pw123456", true, false)
	burger := seedMenuItem(t, db, "Burger", "10.00", entity.CategoryChicken)
	cola := seedMenuItem(t, db, "Cola", "5.00", entity.CategoryDrinks)

	order, err := svc.Create(ann.ID, &CreateOrderIn{
		Items: []OrderLineIn{
			{MenuItemID: burger.ID, Quantity: 2},
			{MenuItemID: cola.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// a cancelled order still shows up in the export
	cancelledOrder, err := svc.Create(ann.ID, &CreateOrderIn{
		Items: []OrderLineIn{{MenuItemID: cola.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	cancelled := entity.StatusCancelled
	_, err = svc.AdminUpdate(cancelledOrder.ID, &AdminOrderPatchIn{Status: &cancelled})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Order ID", "User Email", "User Name", "Items", "Status",
		"Total Price", "Phone", "Location", "Created At",
	}, records[0])

	row := records[1]
	assert.Equal(t, "ann@x.com", row[1])
	assert.Equal(t, "Ann", row[2])
	assert.Equal(t, "Burger, Cola", row[3])
	assert.Equal(t, entity.StatusPending, row[4])
	assert.Equal(t, "75.00", row[5])
	assert.Equal(t, "Not provided", row[6], "empty phone falls back")
	assert.Equal(t, "Not provided", row[7], "empty location falls back")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, row[8])

	assert.Equal(t, entity.StatusCancelled, records[2][4])
	_ = order
}
