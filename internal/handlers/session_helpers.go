package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
	"storefront/internal/fulfillment"
	"storefront/internal/session"
)

const sessionCookie = "cart_session"

// resolveSession returns the visitor's checkout session, creating one on
// first contact. Creation fetches the catalog stock snapshot exactly once;
// it is never refreshed for the session's lifetime.
func resolveSession(c *gin.Context, store *session.Store, client fulfillment.Client) (*checkout.Session, error) {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if sess, ok := store.Get(id); ok {
			return sess, nil
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	stocks, err := client.FetchCatalogStock(ctx)
	if err != nil {
		return nil, err
	}

	sess := checkout.NewSession(checkout.NewStockSnapshot(stocks))
	id := store.Put(sess)
	c.SetCookie(sessionCookie, id, int(24*time.Hour/time.Second), "/", "", false, true)
	log.Println("[SESSION] [INFO] new checkout session:", id)
	return sess, nil
}
