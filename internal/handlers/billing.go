package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/fulfillment"
	"storefront/internal/geo"
	"storefront/internal/models"
	"storefront/internal/session"
)

type updateBillingFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type selectCityRequest struct {
	City string `json:"city" binding:"required"`
}

type selectPaymentMethodRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

// UpdateBillingField writes one named billing field. Writing "city" also
// rederives the province; "stateProvince" itself is rejected.
func UpdateBillingField(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /billing/field"
		defer handlePanic(c, route)

		var req updateBillingFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		if err := sess.UpdateBillingField(req.Field, req.Value); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, sess.Billing())
	}
}

// SelectCity sets city and stateProvince atomically from the coverage table.
func SelectCity(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /billing/city"
		defer handlePanic(c, route)

		var req selectCityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		if err := sess.SelectCity(req.City); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, sess.Billing())
	}
}

// SelectPaymentMethod switches between cash on delivery and mobile wallet.
func SelectPaymentMethod(store *session.Store, client fulfillment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /billing/payment-method"
		defer handlePanic(c, route)

		var req selectPaymentMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess, err := resolveSession(c, store, client)
		if err != nil {
			respondFulfillmentError(c, route, err)
			return
		}

		if err := sess.SelectPaymentMethod(req.Method); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"paymentMethod": req.Method})
	}
}

// GetCities returns the deliverable cities grouped by region, for the city
// dropdown.
func GetCities() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, geo.Regions())
	}
}
