package handlers

import (
	"net/http"

	request "github.com/bushboy/bookingswap-sub016/internal/adapter/http/dto/request"
	response "github.com/bushboy/bookingswap-sub016/internal/adapter/http/dto/response"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	usecase usecase.IAuctionUseCase
}

func NewProposalHandler(uc usecase.IAuctionUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// SubmitProposal godoc
// @Summary  Submit a booking or cash proposal
// @Tags     proposals
// @Accept   json
// @Produce  json
// @Param    X-User-ID  header  string                    true  "Caller id"
// @Param    id         path    string                    true  "Auction id"
// @Param    payload    body    request.ProposalRequest  true  "Proposal"
// @Success  201  {object}  response.ProposalSubmissionResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /auctions/{id}/proposals [post]
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	submission, err := h.usecase.SubmitProposal(c.Request.Context(), payload.ToInput(c.Param("id"), caller))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmission(submission))
}

// ValidateProposal godoc
// @Summary  Dry-run proposal validation
// @Tags     proposals
// @Accept   json
// @Produce  json
// @Param    X-User-ID  header  string                    true  "Caller id"
// @Param    id         path    string                    true  "Auction id"
// @Param    payload    body    request.ProposalRequest  true  "Proposal"
// @Success  200  {object}  response.ValidationResponse
// @Router   /auctions/{id}/proposals/validate [post]
func (h *ProposalHandler) ValidateProposal(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.ValidateProposal(c.Request.Context(), payload.ToInput(c.Param("id"), caller))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromValidation(result))
}
