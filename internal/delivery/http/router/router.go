// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"couponhub/internal/delivery/http/middleware"
	"couponhub/internal/delivery/http/router/handler"
	"couponhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AuthHandler         *handler.AuthHandler
	AdminHandler        *handler.AdminHandler
	VerificationHandler *handler.VerificationHandler
	OrganizationHandler *handler.OrganizationHandler
	CampaignHandler     *handler.CampaignHandler
	OutletHandler       *handler.OutletHandler
	CouponHandler       *handler.CouponHandler
	CatalogHandler      *handler.CatalogHandler
	EngagementHandler   *handler.EngagementHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Reads are
// public; writes authenticate, and ownership is decided in the usecase layer.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.params.AuthMiddleware.Authenticate
	requireVendor := r.params.AuthMiddleware.RequireKind(entity.KindVendor)
	requireConsumer := r.params.AuthMiddleware.RequireKind(entity.KindConsumer)
	requireAdmin := r.params.AuthMiddleware.RequireAdmin

	e.GET("/health", handler.HealthCheck)

	// The confirmation link lands here straight from the mail client.
	e.GET("/verify-email", r.params.VerificationHandler.ConfirmEmail)

	api := e.Group("/api")

	accounts := api.Group("/accounts")
	{
		accounts.POST("", r.params.AccountHandler.Register)
		accounts.POST("/send-pin", r.params.AccountHandler.SendPIN)
		accounts.POST("/send-verification-email", r.params.AccountHandler.ResendVerificationEmail, authn, requireVendor)
		accounts.GET("/info", r.params.AccountHandler.GetInfo, authn)
		accounts.PUT("/vendor", r.params.AccountHandler.UpdateVendor, authn, requireVendor)
		accounts.PUT("/consumer", r.params.AccountHandler.UpdateConsumer, authn, requireConsumer)
	}

	token := api.Group("/token")
	{
		token.POST("", r.params.AuthHandler.Login)
		token.POST("/refresh", r.params.AuthHandler.Refresh)
		token.POST("/verify", r.params.AuthHandler.Verify)
	}

	admin := api.Group("/admin", authn, requireAdmin)
	{
		admin.POST("/grant", r.params.AdminHandler.Grant)
		admin.POST("/restrict", r.params.AdminHandler.Restrict)
		admin.POST("/verify", r.params.AdminHandler.VerifyOrganization)
	}

	organizations := api.Group("/organizations")
	{
		organizations.GET("", r.params.OrganizationHandler.List)
		organizations.GET("/:id", r.params.OrganizationHandler.Get)
		organizations.POST("", r.params.OrganizationHandler.Create, authn, requireVendor)
		organizations.PUT("/:id", r.params.OrganizationHandler.Update, authn, requireVendor)
		organizations.DELETE("/:id", r.params.OrganizationHandler.Delete, authn, requireVendor)
	}

	campaigns := api.Group("/campaigns")
	{
		campaigns.GET("", r.params.CampaignHandler.List)
		campaigns.GET("/:id", r.params.CampaignHandler.Get)
		campaigns.GET("/:id/coupons", r.params.CampaignHandler.ListCoupons)
		campaigns.POST("", r.params.CampaignHandler.Create, authn, requireVendor)
		campaigns.PUT("/:id", r.params.CampaignHandler.Update, authn, requireVendor)
		campaigns.DELETE("/:id", r.params.CampaignHandler.Delete, authn, requireVendor)
	}

	outlets := api.Group("/outlets")
	{
		outlets.GET("", r.params.OutletHandler.List)
		outlets.GET("/:id", r.params.OutletHandler.Get)
		outlets.POST("", r.params.OutletHandler.Create, authn, requireVendor)
		outlets.PUT("/:id", r.params.OutletHandler.Update, authn, requireVendor)
		outlets.DELETE("/:id", r.params.OutletHandler.Delete, authn, requireVendor)
	}

	coupons := api.Group("/coupons")
	{
		coupons.GET("", r.params.CouponHandler.List)
		coupons.GET("/:id", r.params.CouponHandler.Get)
		coupons.GET("/:id/qr", r.params.CouponHandler.GenerateQR)
		coupons.POST("", r.params.CouponHandler.Create, authn, requireVendor)
		coupons.PUT("/:id", r.params.CouponHandler.Update, authn, requireVendor)
		coupons.DELETE("/:id", r.params.CouponHandler.Delete, authn, requireVendor)

		coupons.POST("/:id/rate", r.params.EngagementHandler.Rate, authn, requireConsumer)
		coupons.POST("/:id/shortlist", r.params.EngagementHandler.Shortlist, authn, requireConsumer)
		coupons.POST("/:id/redeem", r.params.EngagementHandler.Redeem, authn, requireConsumer)
	}

	api.GET("/types", r.params.CatalogHandler.ListTypes)
	api.GET("/categories", r.params.CatalogHandler.ListCategories)
	api.GET("/interests", r.params.CatalogHandler.ListInterests)
}
