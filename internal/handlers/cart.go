package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/fulfillment"
	"storefront/internal/models"
	"storefront/internal/session"
)

type addCartItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	ImageURL  string  `json:"imageUrl"`
}

// Quantity deliberately has no binding rule: zero and negative requests are
// valid input for the clamp, which keeps the prior quantity.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AddCartItem puts a product into the cart, bounded by the session's stock
// snapshot.
func AddCartItem(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		added := sess.AddItem(models.LineItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			UnitPrice: req.UnitPrice,
			Quantity:  req.Quantity,
			ImageURL:  req.ImageURL,
		})
		if !added {
			respondWithError(c, http.StatusConflict, route, "product is out of stock")
			return
		}

		c.JSON(http.StatusCreated, sess.Cart())
	}
}

// SetCartQuantity applies the requested quantity when it is within stock
// bounds. An out-of-bounds request is not an error: the prior quantity is
// simply kept and the current cart returned, a clamp rather than a surfaced
// validation failure.
func SetCartQuantity(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id/quantity"
		defer handlePanic(c, route)

		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		applied := sess.SetQuantity(c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"applied": applied,
			"cart":    sess.Cart(),
		})
	}
}

// RemoveCartItem deletes a line. Always succeeds.
func RemoveCartItem(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:id"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		sess.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, sess.Cart())
	}
}

// GetCart returns the cart with its running totals.
func GetCart(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, sess.Cart())
	}
}
