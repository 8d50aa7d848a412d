package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	apiProto "github.com/dtroode/gophfeed/api/proto"
	"github.com/dtroode/gophfeed/internal/api/grpc/handler"
	"github.com/dtroode/gophfeed/internal/api/grpc/middleware"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// Services are the application services exposed over gRPC.
type Services struct {
	Auth   handler.AuthService
	Tokens middleware.TokenService
	Reader handler.FeedReader
	Writer handler.FeedWriter
	Eraser handler.FeedEraser
}

// Router represents a gRPC router for feedsync operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services       Services
	contextManager model.ContextManager
	logger         *logger.Logger
	maxRecvMsgSize int
}

// New creates new gRPC Router instance. maxRecvMsgSize bounds incoming
// messages, which carry attachments; zero keeps the gRPC default.
func New(
	services Services,
	contextManager model.ContextManager,
	logger *logger.Logger,
	maxRecvMsgSize int,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		logger:         logger,
		maxRecvMsgSize: maxRecvMsgSize,
	}
}

// authRequired selects the methods that need a bearer token: every Feed
// method except ListPosts.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+apiProto.Feed_ServiceDesc.ServiceName+"/") &&
		c.FullMethod() != apiProto.Feed_ListPosts_FullMethodName
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with recovery, request logging and
// authentication interceptors, and exposes health and reflection services.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			middleware.NewRecovery(r.logger),
			middleware.NewLogging(r.logger),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	}
	if r.maxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(r.maxRecvMsgSize))
	}

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerFeedRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.services.Auth, r.logger)
	apiProto.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerFeedRoutes(server *grpc.Server) {
	feedHandler := handler.NewFeed(r.services.Reader, r.services.Writer, r.services.Eraser, r.contextManager, r.logger)
	apiProto.RegisterFeedServer(server, feedHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus(apiProto.Auth_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(apiProto.Feed_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}
