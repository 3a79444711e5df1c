package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/membersbook/backend/api/transport"
	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/pkg/httpcontext"
	approvalUC "github.com/membersbook/backend/usecase/approval"
)

// ResetFunc rebuilds the database schema. Wired only in development.
type ResetFunc func(ctx context.Context) error

type AdminHandler struct {
	baseHandler
	uc    *approvalUC.UseCase
	reset ResetFunc
}

func NewAdminHandler(uc *approvalUC.UseCase, reset ResetFunc, adapter *httpcontext.Adapter, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		reset:       reset,
	}
}

// @Summary Deal approval queue
// @Tags admin
// @Router /api/v1/admin/deals/pending [get]
func (h *AdminHandler) GetPendingDeals(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deals, err := h.uc.PendingDeals(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, deals)
}

// @Summary User approval queue
// @Tags admin
// @Router /api/v1/admin/users/pending [get]
func (h *AdminHandler) GetPendingUsers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.PendingUsers(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}

// @Summary Approve a pending deal
// @Tags admin
// @Router /api/v1/admin/deals/{id}/approve [post]
func (h *AdminHandler) ApproveDeal(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing deal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ApproveDeal(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Reject and remove a pending deal
// @Tags admin
// @Router /api/v1/admin/deals/{id}/reject [post]
func (h *AdminHandler) RejectDeal(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing deal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RejectDeal(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Approve a pending user with a confirmed classe
// @Tags admin
// @Router /api/v1/admin/users/{id}/approve [post]
func (h *AdminHandler) ApproveUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	var req transport.ApproveUserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Classe == "" {
		h.respondInvalid(ctx, "classe is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ApproveUser(stdCtx, id, domain.Classe(req.Classe)); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Reject a pending user
// @Tags admin
// @Router /api/v1/admin/users/{id}/reject [post]
func (h *AdminHandler) RejectUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RejectUser(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Drop and rebuild the database (development only)
// @Tags admin
// @Router /api/v1/admin/devtools/reset [post]
func (h *AdminHandler) ResetDatabase(ctx *fasthttp.RequestCtx) {
	if h.reset == nil {
		h.respondJSON(ctx, http.StatusForbidden, transport.NewError(string(domain.ErrCodeForbidden), "database reset is disabled in this environment", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.reset(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.logger.Warn("database reset via devtools endpoint")
	h.respondSuccess(ctx, http.StatusOK, nil)
}
