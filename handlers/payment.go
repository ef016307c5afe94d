package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"
)

// PremiumFeeCents is the one-time Premium membership fee.
const PremiumFeeCents = 5000

// CreatePaymentIntent asks Stripe for a PaymentIntent covering the
// Premium fee and hands the client secret back. The client confirms the
// payment and then calls PUT /user/premium.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(PremiumFeeCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		h.log.Error("payment intent creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to Create Payment Intent",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
