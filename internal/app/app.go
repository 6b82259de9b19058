// Package app wires the store, the use cases and the transports together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/fekuna/crpm-service/config"
	customerhandler "github.com/fekuna/crpm-service/internal/customer/handler"
	customerrepo "github.com/fekuna/crpm-service/internal/customer/repository"
	customeruc "github.com/fekuna/crpm-service/internal/customer/usecase"
	"github.com/fekuna/crpm-service/internal/middleware"
	"github.com/fekuna/crpm-service/internal/pkg/broker"
	"github.com/fekuna/crpm-service/internal/pkg/clock"
	"github.com/fekuna/crpm-service/internal/pkg/database"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	producthandler "github.com/fekuna/crpm-service/internal/product/handler"
	productrepo "github.com/fekuna/crpm-service/internal/product/repository"
	productuc "github.com/fekuna/crpm-service/internal/product/usecase"
	purchasehandler "github.com/fekuna/crpm-service/internal/purchase/handler"
	"github.com/fekuna/crpm-service/internal/purchase/listener"
	purchaserepo "github.com/fekuna/crpm-service/internal/purchase/repository"
	purchaseuc "github.com/fekuna/crpm-service/internal/purchase/usecase"
	reporthandler "github.com/fekuna/crpm-service/internal/report/handler"
	reportrepo "github.com/fekuna/crpm-service/internal/report/repository"
	reportuc "github.com/fekuna/crpm-service/internal/report/usecase"
	"github.com/fekuna/crpm-service/internal/web"
)

const shutdownTimeout = 20 * time.Second

// Options selects which transports Run starts.
type Options struct {
	HTTP  bool
	Kafka bool
}

type App struct {
	cfg    *config.Config
	db     *sqlx.DB
	logger logger.ZapLogger

	services  *web.Services
	purchases purchaseuc.UseCase
}

// New connects to the configured store, creates missing tables and builds
// every layer on top of it.
func New(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (*App, error) {
	db, err := database.Open(ctx, &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SQLitePath:      cfg.Database.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.EnsureSchema(ctx, db, cfg.Database.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("db_name", cfg.Database.DBName),
	)

	clk := clock.NewRealClock()

	customerUC := customeruc.NewCustomerUseCase(customerrepo.NewSQLRepository(db, clk), log)
	productUC := productuc.NewProductUseCase(productrepo.NewSQLRepository(db, clk), log)
	purchaseUC := purchaseuc.NewPurchaseUseCase(purchaserepo.NewSQLRepository(db, clk), log)
	reportUC := reportuc.NewReportUseCase(reportrepo.NewSQLRepository(db), log)

	return &App{
		cfg:    cfg,
		db:     db,
		logger: log,
		services: &web.Services{
			Customers: customerhandler.NewCustomerHandler(customerUC, log),
			Products:  producthandler.NewProductHandler(productUC, log),
			Purchases: purchasehandler.NewPurchaseHandler(purchaseUC, log),
			Reports:   reporthandler.NewReportHandler(reportUC, log),
		},
		purchases: purchaseUC,
	}, nil
}

// GRPCServer returns a server with every CRPM service registered.
func (a *App) GRPCServer() *grpc.Server {
	interceptor := middleware.NewContextInterceptor(a.logger)
	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptor.Unary()))

	customerhandler.RegisterCustomerServiceServer(srv, a.services.Customers)
	producthandler.RegisterProductServiceServer(srv, a.services.Products)
	purchasehandler.RegisterPurchaseServiceServer(srv, a.services.Purchases)
	reporthandler.RegisterReportServiceServer(srv, a.services.Reports)
	return srv
}

func (a *App) HTTPHandler() http.Handler {
	return web.NewRouter(a.services, a.logger)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context, opts Options) error {
	grpcLis, err := net.Listen("tcp", listenAddr(a.cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	grpcServer := a.GRPCServer()

	var httpServer *http.Server
	var httpLis net.Listener
	if opts.HTTP {
		httpLis, err = net.Listen("tcp", listenAddr(a.cfg.Server.HTTPPort))
		if err != nil {
			grpcLis.Close()
			return fmt.Errorf("listen http: %w", err)
		}
		httpServer = &http.Server{
			Handler:           a.HTTPHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting CRPM gRPC server", zap.String("addr", grpcLis.Addr().String()))
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve grpc: %w", err)
		}
		return nil
	})

	if httpServer != nil {
		g.Go(func() error {
			a.logger.Info("Starting CRPM HTTP server", zap.String("addr", httpLis.Addr().String()))
			if err := httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve http: %w", err)
			}
			return nil
		})
	}

	if opts.Kafka && a.cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(&broker.Config{
			Brokers: a.cfg.Kafka.Brokers,
			Topic:   a.cfg.Kafka.Topic,
			GroupID: a.cfg.Kafka.GroupID,
		})
		a.logger.Info("Connected to Kafka Consumer",
			zap.Strings("brokers", a.cfg.Kafka.Brokers),
			zap.String("topic", a.cfg.Kafka.Topic),
		)
		g.Go(func() error {
			listener.NewPurchaseListener(consumer, a.purchases, a.logger).Start(gctx)
			return consumer.Close()
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var err error
		if httpServer != nil {
			err = httpServer.Shutdown(shutdownCtx)
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("Servers stopped")
	return nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
