package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/fulfillment"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondFulfillmentError maps the fulfillment error taxonomy onto HTTP:
// rejected credentials are 401 (the client should re-authenticate), backend
// rejections surface their message verbatim as 422, everything else is a
// retryable 502.
func respondFulfillmentError(c *gin.Context, route string, err error) {
	if errors.Is(err, fulfillment.ErrUnauthorized) {
		respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
		return
	}
	var rejection *fulfillment.RejectionError
	if errors.As(err, &rejection) {
		respondWithError(c, http.StatusUnprocessableEntity, route, rejection.Message)
		return
	}
	log.Printf("[%s] fulfillment error: %v", route, err)
	respondWithError(c, http.StatusBadGateway, route, "fulfillment service unavailable")
}
