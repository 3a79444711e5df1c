package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/membersbook/backend/pkg/httpcontext"
	feedUC "github.com/membersbook/backend/usecase/feed"
)

type FeedHandler struct {
	baseHandler
	uc *feedUC.UseCase
}

func NewFeedHandler(uc *feedUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Approved deals feed, newest first
// @Tags feed
// @Router /api/v1/feed [get]
func (h *FeedHandler) GetFeed(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deals, err := h.uc.Feed(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, deals)
}

// @Summary Announce a closed deal
// @Tags feed
// @Router /api/v1/deals [post]
func (h *FeedHandler) SubmitDeal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var input feedUC.SubmitInput
	if err := json.Unmarshal(ctx.PostBody(), &input); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deal, err := h.uc.Submit(stdCtx, userID, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, deal)
}
