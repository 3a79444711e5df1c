package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/membersbook/backend/pkg/httpcontext"
	memberUC "github.com/membersbook/backend/usecase/member"
)

type MemberHandler struct {
	baseHandler
	uc *memberUC.UseCase
}

func NewMemberHandler(uc *memberUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Member ranking by experience points
// @Tags members
// @Router /api/v1/members [get]
func (h *MemberHandler) GetRanking(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.Ranking(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}

// @Summary Member profile
// @Tags members
// @Router /api/v1/members/{id} [get]
func (h *MemberHandler) GetProfile(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing member id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.Profile(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}
