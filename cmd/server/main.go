package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	grpcctx "github.com/dtroode/gophfeed/internal/api/grpc/context"
	"github.com/dtroode/gophfeed/internal/api/grpc/router"
	grpcServer "github.com/dtroode/gophfeed/internal/api/grpc/server"
	"github.com/dtroode/gophfeed/internal/config"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
	"github.com/dtroode/gophfeed/internal/repository/postgres"
	"github.com/dtroode/gophfeed/internal/server"
	"github.com/dtroode/gophfeed/internal/service"
	storage "github.com/dtroode/gophfeed/internal/storage/minio"
	"github.com/dtroode/gophfeed/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// Headroom for the post body and framing around an attachment.
const messageOverhead = 1 << 20

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.PoolOptions{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	authService := service.NewAuth(userRepo, refreshTokenRepo, logger, tokenManager)
	ctxMgr := grpcctx.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	blobStore, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, storage.Options{
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	reader := service.NewFeedReader(documentRepo, logger)
	writer := service.NewFeedWriter(documentRepo, blobStore, ctxMgr, logger, cfg.Feed.MaxAttachmentBytes)
	eraser := service.NewFeedEraser(documentRepo, blobStore, logger)

	r := router.New(router.Services{
		Auth:   authService,
		Tokens: authService.Tokens(),
		Reader: reader,
		Writer: writer,
		Eraser: eraser,
	}, ctxMgr, logger, maxRecvMsgSize(cfg.Feed.MaxAttachmentBytes))

	srv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// maxRecvMsgSize fits a CreatePost request carrying the largest accepted
// attachment.
func maxRecvMsgSize(maxAttachmentBytes int64) int {
	return int(maxAttachmentBytes) + messageOverhead
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
