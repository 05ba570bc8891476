package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
	"storefront/internal/fulfillment"
	"storefront/internal/middleware"
	"storefront/internal/session"
)

type confirmWalletRequest struct {
	PayerName     string `json:"payerName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
}

// Checkout handles the checkout intent. Cash on delivery submits in one
// phase; a wallet payment answers with the confirmation surface and submits
// nothing yet.
func Checkout(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		result, err := sess.RequestCheckout(ctx, client, middleware.BearerToken(c))
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}
		respondCheckoutResult(c, result)
	}
}

// ConfirmWalletPayment attaches the payer details and submits the pending
// draft.
func ConfirmWalletPayment(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/wallet/confirm"
		defer handlePanic(c, route)

		var req confirmWalletRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "payer name and account number are required")
			return
		}

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		result, err := sess.ConfirmWalletPayment(ctx, client, middleware.BearerToken(c), req.PayerName, req.AccountNumber)
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}
		respondCheckoutResult(c, result)
	}
}

// DismissWalletConfirmation discards the pending draft; the cart stays as
// it was and nothing reaches the network.
func DismissWalletConfirmation(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/wallet/dismiss"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		if err := sess.DismissWalletConfirmation(); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"state": checkout.StateIdle})
	}
}

func respondCheckoutResult(c *gin.Context, result *checkout.CheckoutResult) {
	switch {
	case len(result.FieldErrors) > 0:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": result.FieldErrors,
		})
	case result.AwaitingWallet:
		c.JSON(http.StatusOK, gin.H{
			"state":  checkout.StateAwaitingWallet,
			"amount": result.Total,
		})
	default:
		log.Println("[CHECKOUT] [INFO] order placed:", result.OrderID)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"orderId": result.OrderID,
			"total":   result.Total,
		})
	}
}

func respondCheckoutError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, checkout.ErrCheckoutInFlight):
		respondWithError(c, http.StatusConflict, route, err.Error())
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrNoWalletConfirmation),
		errors.Is(err, checkout.ErrWalletDetailsMissing):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	default:
		respondFulfillmentError(c, route, err)
	}
}
