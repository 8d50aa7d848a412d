package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	apiProto "github.com/dtroode/gophfeed/api/proto"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// AuthService defines user registration and session operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (model.Session, error)
	SignIn(ctx context.Context, email, password string) (model.Session, error)
	Refresh(ctx context.Context, refreshToken string) (model.Session, error)
	SignOut(ctx context.Context, refreshToken string) error
}

var _ apiProto.AuthServer = (*Auth)(nil)

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	apiProto.UnimplementedAuthServer

	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// SignUp registers a user and returns its first session.
func (h *Auth) SignUp(ctx context.Context, req *apiProto.SignUpRequest) (*apiProto.Session, error) {
	h.logger.Debug("Auth handler: processing sign up request", "login", req.GetEmail())

	session, err := h.authService.SignUp(ctx, req.GetEmail(), req.GetPassword(), req.GetDisplayName())
	if err != nil {
		h.logger.Info("Auth handler: sign up failed",
			"login", req.GetEmail(),
			"error", err.Error())
		return nil, handleError(ctx, err)
	}

	return toSession(session), nil
}

// SignIn starts a session for valid credentials.
func (h *Auth) SignIn(ctx context.Context, req *apiProto.SignInRequest) (*apiProto.Session, error) {
	h.logger.Debug("Auth handler: processing sign in request", "login", req.GetEmail())

	session, err := h.authService.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		h.logger.Info("Auth handler: sign in failed",
			"login", req.GetEmail(),
			"error", err.Error())
		return nil, handleError(ctx, err)
	}

	return toSession(session), nil
}

// Refresh rotates the refresh token and returns the restored session.
func (h *Auth) Refresh(ctx context.Context, req *apiProto.RefreshRequest) (*apiProto.Session, error) {
	session, err := h.authService.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		h.logger.Info("Auth handler: refresh failed", "error", err.Error())
		return nil, handleError(ctx, err)
	}

	return toSession(session), nil
}

// SignOut revokes the refresh token.
func (h *Auth) SignOut(ctx context.Context, req *apiProto.SignOutRequest) (*emptypb.Empty, error) {
	if err := h.authService.SignOut(ctx, req.GetRefreshToken()); err != nil {
		h.logger.Info("Auth handler: sign out failed", "error", err.Error())
		return nil, handleError(ctx, err)
	}

	return &emptypb.Empty{}, nil
}

func toSession(s model.Session) *apiProto.Session {
	return &apiProto.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User: &apiProto.Principal{
			Id:          s.Principal.ID,
			DisplayName: s.Principal.DisplayName,
		},
	}
}
