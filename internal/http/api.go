package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"credential-keeper/internal/domain"
	"credential-keeper/internal/listops"
	"credential-keeper/internal/numeric"
	"credential-keeper/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts service.AccountService
	tokens   *TokenIssuer
	logger   logrus.FieldLogger
}

func NewHandler(accounts service.AccountService, tokens *TokenIssuer, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware(), accessLogMiddleware(h.logger), corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/accounts", h.register)
		api.GET("/accounts/:login", h.getAccount)
		api.PUT("/accounts/:login/password", h.updatePassword)
		api.GET("/accounts/:login/audit", h.auditTrail)
		api.POST("/sessions", h.createSession)
		api.GET("/me", authMiddleware(h.tokens), h.me)
		api.POST("/compare", h.compare)
		api.POST("/combine", h.combine)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

type credentialsRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type pairRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

// AccountResponse is the JSON form of domain.Account.
type AccountResponse struct {
	Login      string    `json:"login"`
	HistoryLen int       `json:"history_len"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AuditEventResponse is the JSON form of domain.AuditEvent.
type AuditEventResponse struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Outcome string    `json:"outcome"`
	At      time.Time `json:"at"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.accounts.Register(c.Request.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, service.ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrLoginRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, accountToResponse(*acc))
}

func (h *Handler) getAccount(c *gin.Context) {
	acc, err := h.accounts.Get(c.Request.Context(), c.Param("login"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accountToResponse(*acc))
}

func (h *Handler) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	login := c.Param("login")
	err := h.accounts.UpdatePassword(c.Request.Context(), login, req.OldPassword, req.NewPassword)
	if errors.Is(err, service.ErrAccountNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"updated": false,
			"reason":  string(service.RotationOutcome(err)),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) auditTrail(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	events, err := h.accounts.AuditTrail(c.Request.Context(), c.Param("login"), limit)
	if errors.Is(err, service.ErrAccountNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]AuditEventResponse, len(events))
	for i := range events {
		resp[i] = auditToResponse(events[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createSession(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.accounts.CheckCredentials(c.Request.Context(), req.Login, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expires, err := h.tokens.Issue(req.Login)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_at": expires.UTC()})
}

func (h *Handler) me(c *gin.Context) {
	acc, err := h.accounts.Get(c.Request.Context(), c.GetString(contextLoginKey))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accountToResponse(*acc))
}

func (h *Handler) compare(c *gin.Context) {
	a, b, ok := bindPair(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": numeric.Compare(a, b)})
}

func (h *Handler) combine(c *gin.Context) {
	a, b, ok := bindPair(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": listops.Combine(a, b)})
}

func bindPair(c *gin.Context) (any, any, bool) {
	var req pairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	a, err := decodeValue(req.A)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid a: " + err.Error()})
		return nil, nil, false
	}
	b, err := decodeValue(req.B)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid b: " + err.Error()})
		return nil, nil, false
	}
	return a, b, true
}

// decodeValue maps JSON onto the runtime types the utilities discriminate on:
// arrays become listops.List, numbers with a fraction or exponent become
// float64 and integer literals become int.
func decodeValue(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return convertJSON(v)
}

func convertJSON(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if strings.ContainsAny(s, ".eE") {
			return x.Float64()
		}
		n, err := x.Int64()
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case []any:
		out := make(listops.List, len(x))
		for i := range x {
			el, err := convertJSON(x[i])
			if err != nil {
				return nil, err
			}
			out[i] = el
		}
		return out, nil
	default:
		return v, nil
	}
}

func accountToResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		Login:      acc.Login,
		HistoryLen: acc.HistoryLen,
		CreatedAt:  acc.CreatedAt,
		UpdatedAt:  acc.UpdatedAt,
	}
}

func auditToResponse(event domain.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		ID:      event.ID,
		Action:  string(event.Action),
		Outcome: string(event.Outcome),
		At:      event.At,
	}
}
