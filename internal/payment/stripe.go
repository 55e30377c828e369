package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Card holds the details entered on the checkout form. The client does not
// process payments itself; these go straight to the payment provider.
type Card struct {
	Number   string
	ExpMonth int64
	ExpYear  int64
	CVC      string
}

func (c Card) Validate() error {
	if strings.TrimSpace(c.Number) == "" {
		return errors.New("card number is required")
	}
	if c.ExpMonth < 1 || c.ExpMonth > 12 {
		return errors.New("card expiry month must be 1-12")
	}
	if c.ExpYear == 0 {
		return errors.New("card expiry year is required")
	}
	if strings.TrimSpace(c.CVC) == "" {
		return errors.New("card cvc is required")
	}
	return nil
}

type Confirmation struct {
	IntentID string
	Status   string
}

// Confirmer finalizes a payment intent issued by the backend. The real
// implementation talks to Stripe; tests substitute a stub.
type Confirmer interface {
	Confirm(ctx context.Context, intentID string, card Card) (Confirmation, error)
}

// ErrPaymentDeclined means the provider rejected the charge. The checkout
// form stays editable and no order is created.
var ErrPaymentDeclined = errors.New("payment declined")

type StripeConfirmer struct {
	api *client.API
}

func NewStripeConfirmer(apiKey string) *StripeConfirmer {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeConfirmer{api: api}
}

func (s *StripeConfirmer) Confirm(ctx context.Context, intentID string, card Card) (Confirmation, error) {
	if err := card.Validate(); err != nil {
		return Confirmation{}, err
	}

	pm, err := s.api.PaymentMethods.New(&stripe.PaymentMethodParams{
		Params: stripe.Params{Context: ctx},
		Type:   stripe.String("card"),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(card.ExpMonth),
			ExpYear:  stripe.Int64(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
	})
	if err != nil {
		return Confirmation{}, fmt.Errorf("create payment method: %w", err)
	}

	pi, err := s.api.PaymentIntents.Confirm(intentID, &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(pm.ID),
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return Confirmation{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, stripeErr.Msg)
		}
		return Confirmation{}, fmt.Errorf("confirm payment intent: %w", err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return Confirmation{}, fmt.Errorf("%w: intent status %s", ErrPaymentDeclined, pi.Status)
	}

	return Confirmation{IntentID: pi.ID, Status: string(pi.Status)}, nil
}
