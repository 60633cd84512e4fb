// Package http provides HTTP handlers for stored OAuth credential operations.
// Token material is encrypted before persistence and decrypted only for GET
// responses, which must be served over HTTPS in production.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
	"github.com/calmcp/credvault/internal/credentials/http/dto"
	credentialsUseCase "github.com/calmcp/credvault/internal/credentials/usecase"
	"github.com/calmcp/credvault/internal/httputil"
	customValidation "github.com/calmcp/credvault/internal/validation"
)

// CredentialHandler handles HTTP requests for credential storage operations.
type CredentialHandler struct {
	credentialUseCase credentialsUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler with required dependencies.
func NewCredentialHandler(
	credentialUseCase credentialsUseCase.CredentialUseCase,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// bindParams extracts and validates the provider and user_id URL parameters.
func (h *CredentialHandler) bindParams(c *gin.Context) (provider, userID string, ok bool) {
	provider = c.Param("provider")
	userID = c.Param("user_id")

	err := validation.Errors{
		"provider": validation.Validate(provider, validation.Required, customValidation.Provider),
		"user_id":  validation.Validate(userID, validation.Required, validation.Length(1, 255)),
	}.Filter()
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", "", false
	}

	return provider, userID, true
}

// UpsertHandler stores or replaces the credential for a provider/user pair.
// PUT /v1/credentials/:provider/:user_id
// Returns 200 OK with credential metadata (token material is never echoed back).
func (h *CredentialHandler) UpsertHandler(c *gin.Context) {
	provider, userID, ok := h.bindParams(c)
	if !ok {
		return
	}

	var req dto.UpsertCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid request body: %w", err), h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	credential := &credentialsDomain.Credential{
		Provider:     provider,
		UserID:       userID,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		TokenType:    req.TokenType,
		Scope:        req.Scope,
		ExpiresAt:    req.ExpiresAt,
	}

	stored, err := h.credentialUseCase.Upsert(c.Request.Context(), credential)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCredentialToUpsertResponse(stored))
}

// GetHandler retrieves and decrypts the credential for a provider/user pair.
// GET /v1/credentials/:provider/:user_id
// Returns 200 OK with decrypted token material.
func (h *CredentialHandler) GetHandler(c *gin.Context) {
	provider, userID, ok := h.bindParams(c)
	if !ok {
		return
	}

	credential, err := h.credentialUseCase.Get(c.Request.Context(), provider, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCredentialToGetResponse(credential))
}

// DeleteHandler removes the stored credential for a provider/user pair.
// DELETE /v1/credentials/:provider/:user_id
// Returns 204 No Content on success.
func (h *CredentialHandler) DeleteHandler(c *gin.Context) {
	provider, userID, ok := h.bindParams(c)
	if !ok {
		return
	}

	if err := h.credentialUseCase.Delete(c.Request.Context(), provider, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
