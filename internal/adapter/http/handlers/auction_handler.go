package handlers

import (
	"net/http"
	"strings"
	"time"

	request "github.com/bushboy/bookingswap-sub016/internal/adapter/http/dto/request"
	response "github.com/bushboy/bookingswap-sub016/internal/adapter/http/dto/response"
	"github.com/bushboy/bookingswap-sub016/internal/domain/timing"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"
	"github.com/bushboy/bookingswap-sub016/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEventDate = pkg.NewDomainErrorSimple("INVALID_EVENT_DATE", request.ErrInvalidEventDate.Error(), http.StatusBadRequest)

// AuctionHandler exposes the auction lifecycle over HTTP.
type AuctionHandler struct {
	usecase usecase.IAuctionUseCase
	now     func() time.Time
}

func NewAuctionHandler(uc usecase.IAuctionUseCase) *AuctionHandler {
	return &AuctionHandler{usecase: uc, now: time.Now}
}

// CreateAuction godoc
// @Summary      Create an auction for a swap
// @Tags         auctions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                          true  "Caller id"
// @Param        payload    body    request.CreateAuctionRequest  true  "Auction"
// @Success      201  {object}  response.AuctionResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /auctions [post]
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	var payload request.CreateAuctionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	auction, err := h.usecase.CreateAuction(c.Request.Context(), payload.ToCommand(caller))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAuction(auction))
}

// GetAuction godoc
// @Summary  Get an auction with its proposals
// @Tags     auctions
// @Produce  json
// @Param    id   path  string  true  "Auction id"
// @Success  200  {object}  response.AuctionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /auctions/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	auction, err := h.usecase.GetAuction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(auction))
}

// GetAuctionBySwapID godoc
// @Summary  Get the auction of a swap
// @Tags     auctions
// @Produce  json
// @Param    swap_id  path  string  true  "Swap id"
// @Success  200  {object}  response.AuctionResponse
// @Router   /auctions/swap/{swap_id} [get]
func (h *AuctionHandler) GetAuctionBySwapID(c *gin.Context) {
	auction, err := h.usecase.GetAuctionBySwapID(c.Request.Context(), c.Param("swap_id"))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(auction))
}

// EndAuction godoc
// @Summary  End an active auction early (owner only)
// @Tags     auctions
// @Produce  json
// @Param    X-User-ID  header  string  true  "Caller id"
// @Param    id         path    string  true  "Auction id"
// @Success  200  {object}  response.AuctionResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /auctions/{id}/end [post]
func (h *AuctionHandler) EndAuction(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	ctx := c.Request.Context()

	current, err := h.usecase.GetAuction(ctx, c.Param("id"))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	if current.OwnerID != caller {
		abortWith(c, mapAuctionError(usecase.ErrNotAuctionOwner))
		return
	}

	auction, err := h.usecase.EndAuction(ctx, current.ID)
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(auction))
}

// CancelAuction godoc
// @Summary  Cancel an active auction (owner only)
// @Tags     auctions
// @Produce  json
// @Param    X-User-ID  header  string  true  "Caller id"
// @Param    id         path    string  true  "Auction id"
// @Success  200  {object}  response.AuctionResponse
// @Router   /auctions/{id}/cancel [post]
func (h *AuctionHandler) CancelAuction(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	auction, err := h.usecase.CancelAuction(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(auction))
}

// SelectWinner godoc
// @Summary  Select the winning proposal of an ended auction (owner only)
// @Tags     auctions
// @Accept   json
// @Produce  json
// @Param    X-User-ID  header  string                        true  "Caller id"
// @Param    id         path    string                        true  "Auction id"
// @Param    payload    body    request.SelectWinnerRequest  true  "Winner"
// @Success  200  {object}  response.AuctionResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /auctions/{id}/winner [post]
func (h *AuctionHandler) SelectWinner(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	var payload request.SelectWinnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	auction, err := h.usecase.SelectWinningProposal(c.Request.Context(), c.Param("id"), strings.TrimSpace(payload.ProposalID), caller)
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(auction))
}

// ConvertToFirstMatch godoc
// @Summary  End the auction now and pick the recommended proposal
// @Tags     auctions
// @Accept   json
// @Produce  json
// @Param    X-User-ID  header  string                               true   "Caller id"
// @Param    id         path    string                               true   "Auction id"
// @Param    payload    body    request.ConvertToFirstMatchRequest  false  "Reason"
// @Success  200  {object}  response.AuctionResponse
// @Router   /auctions/{id}/convert [post]
func (h *AuctionHandler) ConvertToFirstMatch(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		abortWith(c, errMissingCaller)
		return
	}
	var payload request.ConvertToFirstMatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}
	ctx := c.Request.Context()

	current, err := h.usecase.GetAuction(ctx, c.Param("id"))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	if current.OwnerID != caller {
		abortWith(c, mapAuctionError(usecase.ErrNotAuctionOwner))
		return
	}

	auction, err := h.usecase.ConvertToFirstMatch(ctx, current.ID, payload.Reason)
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(auction))
}

// GetRanking godoc
// @Summary  Rank the pending proposals of an auction
// @Tags     auctions
// @Produce  json
// @Param    id   path  string  true  "Auction id"
// @Success  200  {object}  response.RankingResponse
// @Router   /auctions/{id}/ranking [get]
func (h *AuctionHandler) GetRanking(c *gin.Context) {
	result, err := h.usecase.GetRanking(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRanking(result))
}

// GetTiming godoc
// @Summary  Timing advice for an event date
// @Tags     auctions
// @Produce  json
// @Param    event_date  query  string  true  "RFC 3339 event date"
// @Success  200  {object}  response.TimingResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /auctions/timing [get]
func (h *AuctionHandler) GetTiming(c *gin.Context) {
	eventDate, err := request.ParseEventDate(c.Query("event_date"))
	if err != nil {
		abortWith(c, errInvalidEventDate)
		return
	}
	c.JSON(http.StatusOK, response.FromAdvice(timing.Advise(eventDate, h.now().UTC())))
}
