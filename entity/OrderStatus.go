package entity

const (
	StatusPending     = "PENDING"
	StatusAccepted    = "ACCEPTED"
	StatusCancelled   = "CANCELLED"
	StatusDeliveryOut = "DELIVERYOUT"
	StatusDelivered   = "DELIVERED"
	StatusPaid        = "PAID"
)

// Any label is reachable from any other; admins set statuses freely,
// there is no transition table.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCancelled,
		StatusDeliveryOut, StatusDelivered, StatusPaid:
		return true
	}
	return false
}
