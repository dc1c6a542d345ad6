package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JacobSsozi/JadeDelight/internal/confirm"
	"github.com/JacobSsozi/JadeDelight/internal/menu"
	"github.com/JacobSsozi/JadeDelight/internal/order"
	"github.com/JacobSsozi/JadeDelight/internal/restaurant"
)

func testEngine(service *order.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/:id", OrderSession(service), func(c *gin.Context) {
		sess := c.MustGet(order.SessionKey).(*order.Session)
		c.JSON(http.StatusOK, gin.H{"id": sess.Form.ID})
	})
	return r
}

func newService() *order.Service {
	return order.NewService(
		menu.NewInMemoryRepository(nil),
		restaurant.DefaultProfile(),
		confirm.NewHTMLRenderer(),
	)
}

func TestOrderSessionResolvesKnownID(t *testing.T) {
	service := newService()
	sess, err := service.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := testEngine(service)
	req := httptest.NewRequest(http.MethodGet, "/orders/"+sess.Form.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderSessionRejectsUnknownID(t *testing.T) {
	r := testEngine(newService())

	req := httptest.NewRequest(http.MethodGet, "/orders/does-not-exist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
