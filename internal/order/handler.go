package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SessionKey is where the session middleware stores the resolved
// session in the gin context.
const SessionKey = "orderSession"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) session(c *gin.Context) *Session {
	return c.MustGet(SessionKey).(*Session)
}

// --------------------------------------------------
// CREATE / READ
// --------------------------------------------------

func (h *Handler) Create(c *gin.Context) {
	sess, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.service.View(sess))
}

func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.View(h.session(c)))
}

// --------------------------------------------------
// INPUT EVENTS
// --------------------------------------------------

func (h *Handler) SetQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	var req struct {
		Quantity string `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := h.session(c)
	if err := h.service.SetQuantity(sess, index, req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.View(sess))
}

func (h *Handler) SelectFulfillment(c *gin.Context) {
	var req struct {
		Kind string `json:"kind"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.session(c)
	h.service.SelectFulfillment(sess, kind)
	c.JSON(http.StatusOK, h.service.View(sess))
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var req CustomerUpdate
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := h.session(c)
	h.service.UpdateCustomer(sess, req)
	c.JSON(http.StatusOK, h.service.View(sess))
}

// --------------------------------------------------
// SUBMISSION
// --------------------------------------------------

func (h *Handler) Submit(c *gin.Context) {
	sess := h.session(c)
	result := h.service.Submit(sess)

	if !result.Outcome.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    result.Outcome.Message(),
			"failures": result.Outcome.Failures,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "submitted",
		"popup_html":       result.PopupHTML,
		"confirmation_url": "/orders/" + sess.Form.ID + "/confirmation",
	})
}

func (h *Handler) Confirmation(c *gin.Context) {
	html, ok := h.service.Confirmation(h.session(c))
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "order not submitted"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
