package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/membersbook/backend/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Feed   *apiHandler.FeedHandler
	Member *apiHandler.MemberHandler
	Admin  *apiHandler.AdminHandler
	Health *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, authMiddleware, adminMiddleware Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public routes: guests can browse the feed and apply for membership.
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/signup", handlers.Auth.Signup)
	r.GET("/api/v1/feed", handlers.Feed.GetFeed)

	// Member routes
	r.GET("/api/v1/auth/session", authMiddleware(handlers.Auth.Session))
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))
	r.POST("/api/v1/deals", authMiddleware(handlers.Feed.SubmitDeal))
	r.GET("/api/v1/members", authMiddleware(handlers.Member.GetRanking))
	r.GET("/api/v1/members/{id}", authMiddleware(handlers.Member.GetProfile))

	// Admin routes
	admin := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return authMiddleware(adminMiddleware(h))
	}
	r.GET("/api/v1/admin/deals/pending", admin(handlers.Admin.GetPendingDeals))
	r.POST("/api/v1/admin/deals/{id}/approve", admin(handlers.Admin.ApproveDeal))
	r.POST("/api/v1/admin/deals/{id}/reject", admin(handlers.Admin.RejectDeal))
	r.GET("/api/v1/admin/users/pending", admin(handlers.Admin.GetPendingUsers))
	r.POST("/api/v1/admin/users/{id}/approve", admin(handlers.Admin.ApproveUser))
	r.POST("/api/v1/admin/users/{id}/reject", admin(handlers.Admin.RejectUser))
	r.POST("/api/v1/admin/devtools/reset", admin(handlers.Admin.ResetDatabase))

	return r
}
