package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "commerce_engine/internal/adapter/http/dto/request"
	response "commerce_engine/internal/adapter/http/dto/response"
	"commerce_engine/internal/usecase"
	"commerce_engine/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errInvalidRequest         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ProposalHandler exposes the proposal lifecycle: draft edits, validation, send,
// and the accept/reject decision.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Create a draft proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload body request.ProposalRequest true "Proposal"
// @Success      201 {object} response.ProposalResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /v1/proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}
	if payload.ResolveLeadID() == "" {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithDetails("lead_id is required").ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProposal(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[proposal][handler] create failed lead_id=%s err=%v", payload.ResolveLeadID(), err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(created))
}

// GetProposal godoc
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.ProposalResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /v1/proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// ListProposals godoc
// @Summary      List proposals of a lead
// @Tags         proposals
// @Produce      json
// @Param        lead_id query string true "Lead ID"
// @Success      200 {array} response.ProposalResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	leadID := strings.TrimSpace(c.Query("lead_id"))
	if leadID == "" {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithDetails("lead_id is required").ToHTTPError())
		return
	}

	items, err := h.usecase.ListByLeadID(c.Request.Context(), leadID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(items))
}

// UpdateProposal godoc
// @Summary      Edit a draft proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Param        payload body request.ProposalRequest true "Proposal"
// @Success      200 {object} response.ProposalResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /v1/proposals/{id} [put]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.UpdateProposal(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[proposal][handler] update failed proposal_id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// DeleteProposal godoc
// @Summary      Delete a draft proposal
// @Tags         proposals
// @Param        id path string true "Proposal ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /v1/proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteProposal(c.Request.Context(), id); err != nil {
		log.Printf("[proposal][handler] delete failed proposal_id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateProposal godoc
// @Summary      Check whether a proposal can be sent
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.ProposalValidationResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /v1/proposals/{id}/validate [post]
func (h *ProposalHandler) ValidateProposal(c *gin.Context) {
	v, err := h.usecase.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposalValidation(v))
}

// SendProposal godoc
// @Summary      Send a draft proposal to its lead
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.ProposalResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /v1/proposals/{id}/send [post]
func (h *ProposalHandler) SendProposal(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[proposal][handler] send start proposal_id=%s", id)

	sent, err := h.usecase.SendProposal(c.Request.Context(), id)
	if err != nil {
		log.Printf("[proposal][handler] send failed proposal_id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[proposal][handler] send success proposal_id=%s", id)
	c.JSON(http.StatusOK, response.FromProposal(sent))
}

// AcceptProposal godoc
// @Summary      Accept a sent proposal and create its order
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.AcceptProposalResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /v1/proposals/{id}/accept [post]
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[proposal][handler] accept start proposal_id=%s", id)

	p, o, err := h.usecase.AcceptProposal(c.Request.Context(), id)
	if err != nil {
		log.Printf("[proposal][handler] accept failed proposal_id=%s err=%v", id, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[proposal][handler] accept success proposal_id=%s order_id=%s", id, o.ID)
	c.JSON(http.StatusOK, response.AcceptProposalResponse{
		Proposal: response.FromProposal(p),
		Order:    response.FromOrder(o),
	})
}

// RejectProposal godoc
// @Summary      Reject a sent proposal
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.ProposalResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /v1/proposals/{id}/reject [post]
func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	p, err := h.usecase.RejectProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func mapProposalError(err error) *pkg.AppError {
	var verr *usecase.ProposalValidationError
	problems := []string(nil)
	if errors.As(err, &verr) {
		problems = verr.Problems
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidLeadID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Proposal cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingLineItems):
		return pkg.NewDomainErrorSimple("MISSING_LINE_ITEMS", "Proposal has no line items", http.StatusUnprocessableEntity).WithDetails(problems...)
	case errors.Is(err, usecase.ErrInvalidTotal):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL", "Proposal total must be greater than zero", http.StatusUnprocessableEntity).WithDetails(problems...)
	case errors.Is(err, usecase.ErrInvalidProposal):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL", "Proposal failed validation", http.StatusUnprocessableEntity).WithDetails(problems...)
	case errors.Is(err, usecase.ErrMissingEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "Lead has no email address", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderCreationFailed):
		return pkg.NewDomainError("ORDER_CREATION_FAILED", "Order could not be created; proposal is still sent", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
