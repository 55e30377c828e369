package orders

// Status values are server-authoritative. The client only displays them and
// requests cancellation; it never transitions an order locally.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func Known(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ProgressPercent drives the order tracking indicator. Delivered is 100,
// cancelled shows no progress.
func ProgressPercent(s Status) int {
	switch s {
	case StatusPending:
		return 25
	case StatusProcessing:
		return 50
	case StatusShipped:
		return 75
	case StatusDelivered:
		return 100
	default:
		return 0
	}
}
