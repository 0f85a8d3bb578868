package main

import (
	"context"
	"log/slog"
	"os"

	"couponhub/config"
	"couponhub/internal/delivery"
	"couponhub/internal/delivery/http"
	"couponhub/internal/delivery/http/middleware"
	"couponhub/internal/delivery/http/router/handler"
	"couponhub/internal/domain/service"
	"couponhub/internal/infra/auth"
	logs "couponhub/internal/infra/log"
	"couponhub/internal/infra/mail"
	"couponhub/internal/infra/persistence/postgres"
	"couponhub/internal/infra/pubsub"
	"couponhub/internal/infra/qrcode"
	"couponhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewConfirmationRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewOrganizationRepository,
			postgres.NewCampaignRepository,
			postgres.NewOutletRepository,
			postgres.NewCouponRepository,
			postgres.NewCatalogRepository,
			postgres.NewEngagementRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewMailer,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAuthService,
			impl.NewAdminService,
			impl.NewOrganizationService,
			impl.NewCampaignService,
			impl.NewOutletService,
			impl.NewCouponService,
			impl.NewCatalogService,
			impl.NewEngagementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewVerificationHandler,
			handler.NewOrganizationHandler,
			handler.NewCampaignHandler,
			handler.NewOutletHandler,
			handler.NewCouponHandler,
			handler.NewCatalogHandler,
			handler.NewEngagementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
