package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
	"storefront/internal/fulfillment"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
)

// GetOrders lists the caller's order history.
func GetOrders(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := sess.ListOrders(ctx, client, middleware.CredentialFromContext(c))
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}
		if orders == nil {
			orders = []models.OrderSummary{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// orderProgress is the rendering of a status on the tracking page. The
// active sequence indexes Order Placed..Delivered; Cancelled is a distinct
// full-width terminal indicator and anything unrecognized degrades to an
// unknown state instead of failing the request.
type orderProgress struct {
	Steps []models.OrderStatus `json:"steps"`
	Index int                  `json:"index"`
	State string               `json:"state"`
}

func progressFor(status models.OrderStatus) orderProgress {
	p := orderProgress{
		Steps: models.ProgressSteps,
		Index: status.ProgressIndex(),
		State: "active",
	}
	switch {
	case status == models.StatusCancelled:
		p.State = "cancelled"
	case !status.Known():
		p.State = "unknown"
	}
	return p
}

// GetOrder returns one order's detail plus its progress rendering.
func GetOrder(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		detail, err := sess.GetOrder(ctx, client, middleware.CredentialFromContext(c), c.Param("id"))
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":    detail,
			"progress": progressFor(detail.Status),
		})
	}
}

// RequestCancelOrder arms a cancellation. Eligibility is checked against the
// order's last fetched status without touching the network.
func RequestCancelOrder(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/cancel"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		prompt, err := sess.RequestCancellation(c.Param("id"))
		if err != nil {
			respondCancellationError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, prompt)
	}
}

// ConfirmCancelOrder issues the armed cancellation and returns the
// refetched order list.
func ConfirmCancelOrder(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/cancel/confirm"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		orders, err := sess.ConfirmCancellation(ctx, client, middleware.CredentialFromContext(c), c.Param("id"))
		if err != nil {
			respondCancellationError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cancelled": c.Param("id"),
			"orders":    orders,
		})
	}
}

func respondCancellationError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, checkout.ErrOrderNotSeen):
		respondWithError(c, http.StatusNotFound, route, err.Error())
	case errors.Is(err, checkout.ErrOrderNotCancellable),
		errors.Is(err, checkout.ErrNoPendingCancellation):
		respondWithError(c, http.StatusConflict, route, err.Error())
	default:
		respondFulfillmentError(c, route, err)
	}
}
