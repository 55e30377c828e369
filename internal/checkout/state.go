package checkout

type State string

const (
	StateLoadingContext            State = "loading-context"
	StateAwaitingPaymentMethod     State = "awaiting-payment-method"
	StateSubmittingPayment         State = "submitting-payment"
	StateAwaitingOrderConfirmation State = "awaiting-order-confirmation"
	StateComplete                  State = "complete"
	StateFailed                    State = "failed"
)
