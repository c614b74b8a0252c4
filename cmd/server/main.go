package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ZzzGreay/LanyuERP-BE/config"
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery"
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http"
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/middleware"
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/router/handler"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/auth"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/filestore"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/identity/dingtalk"
	logs "github.com/ZzzGreay/LanyuERP-BE/internal/infra/log"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/persistence/postgres"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/qrcode"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewClientRepository,
			postgres.NewSiteRepository,
			postgres.NewMachineRepository,
			postgres.NewPartRepository,
			postgres.NewWorkLogRepository,
			postgres.NewWorkItemRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			dingtalk.NewClient,
			filestore.NewStore,
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
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewClientService,
			impl.NewSiteService,
			impl.NewMachineService,
			impl.NewPartService,
			impl.NewWorkLogService,
			impl.NewWorkItemService,
			impl.NewAttachmentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewClientHandler,
			handler.NewSiteHandler,
			handler.NewMachineHandler,
			handler.NewPartHandler,
			handler.NewWorkLogHandler,
			handler.NewWorkItemHandler,
			handler.NewAttachmentHandler,
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
