package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"storefront/internal/config"
	"storefront/internal/fulfillment"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/session"
)

func main() {
	config.Load()

	client := fulfillment.NewHTTPClient(config.AppEnv.FulfillmentBaseURL, config.AppEnv.FulfillmentTimeout)
	store := session.NewStore()
	limiter := middleware.NewRateLimiter(config.AppEnv.CheckoutRateLimit)

	log.Println("fulfillment service:", config.AppEnv.FulfillmentBaseURL)

	r := gin.Default()

	r.GET("/cart", handlers.GetCart(store, client))
	r.POST("/cart/items", handlers.AddCartItem(store, client))
	r.PUT("/cart/items/:id/quantity", handlers.SetCartQuantity(store, client))
	r.DELETE("/cart/items/:id", handlers.RemoveCartItem(store, client))

	r.GET("/billing/cities", handlers.GetCities())
	r.PUT("/billing/field", handlers.UpdateBillingField(store, client))
	r.PUT("/billing/city", handlers.SelectCity(store, client))
	r.PUT("/billing/payment-method", handlers.SelectPaymentMethod(store, client))

	r.POST("/checkout", limiter.Limit(), handlers.Checkout(store, client))
	r.POST("/checkout/wallet/confirm", limiter.Limit(), handlers.ConfirmWalletPayment(store, client))
	r.POST("/checkout/wallet/dismiss", handlers.DismissWalletConfirmation(store, client))

	orders := r.Group("/orders")
	orders.Use(middleware.Credential(config.AppEnv.JWTSecret))
	{
		orders.GET("", handlers.GetOrders(store, client))
		orders.GET("/:id", handlers.GetOrder(store, client))
		orders.POST("/:id/cancel", limiter.Limit(), handlers.RequestCancelOrder(store, client))
		orders.POST("/:id/cancel/confirm", limiter.Limit(), handlers.ConfirmCancelOrder(store, client))
	}

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   []string{config.AppEnv.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := http.ListenAndServe(":"+port, corsWrapper.Handler(r)); err != nil {
		log.Fatal(err)
	}
}
