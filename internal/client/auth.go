package client

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	apiProto "github.com/dtroode/gophfeed/api/proto"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// Auth signs the user in and out and restores saved sessions.
type Auth struct {
	rpc    apiProto.AuthClient
	creds  *Credentials
	store  *SessionStore
	server string
	logger *logger.Logger

	mu      sync.Mutex
	session Session
}

// NewAuth creates an Auth bound to the server at address. Tokens issued by
// the server are stored in creds and in store.
func NewAuth(cc grpc.ClientConnInterface, address string, creds *Credentials, store *SessionStore, logger *logger.Logger) *Auth {
	return &Auth{
		rpc:    apiProto.NewAuthClient(cc),
		creds:  creds,
		store:  store,
		server: address,
		logger: logger.With("server", address),
	}
}

// SignUp creates an account and signs it in.
func (a *Auth) SignUp(ctx context.Context, email, password, displayName string) (model.Principal, error) {
	var trailer metadata.MD
	resp, err := a.rpc.SignUp(ctx, &apiProto.SignUpRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}, grpc.Trailer(&trailer))
	if err != nil {
		return model.Principal{}, fromStatus("sign up", err, trailer)
	}
	return a.accept(resp)
}

// SignIn signs in with email and password.
func (a *Auth) SignIn(ctx context.Context, email, password string) (model.Principal, error) {
	var trailer metadata.MD
	resp, err := a.rpc.SignIn(ctx, &apiProto.SignInRequest{Email: email, Password: password}, grpc.Trailer(&trailer))
	if err != nil {
		return model.Principal{}, fromStatus("sign in", err, trailer)
	}
	return a.accept(resp)
}

// SignOut revokes the refresh token on the server and forgets the local
// session. The local session is cleared even when revocation fails.
func (a *Auth) SignOut(ctx context.Context) error {
	a.mu.Lock()
	refreshToken := a.session.RefreshToken
	a.session = Session{}
	a.mu.Unlock()
	a.creds.set("")

	if refreshToken != "" {
		var trailer metadata.MD
		_, err := a.rpc.SignOut(ctx, &apiProto.SignOutRequest{RefreshToken: refreshToken}, grpc.Trailer(&trailer))
		if err != nil {
			a.logger.Warn("Auth client: failed to revoke refresh token", "error", fromStatus("sign out", err, trailer))
		}
	}

	return a.store.Clear()
}

// Restore exchanges the saved refresh token for a new session. It reports
// ok=false when nothing is saved or the server no longer accepts the token.
// Any other failure is returned as an error.
func (a *Auth) Restore(ctx context.Context) (model.Principal, bool, error) {
	saved, ok, err := a.store.Load()
	if err != nil {
		return model.Principal{}, false, err
	}
	if !ok {
		return model.Principal{}, false, nil
	}
	if saved.Server != "" && saved.Server != a.server {
		a.logger.Info("Auth client: saved session belongs to another server", "server", saved.Server)
		return model.Principal{}, false, nil
	}

	var trailer metadata.MD
	resp, err := a.rpc.Refresh(ctx, &apiProto.RefreshRequest{RefreshToken: saved.RefreshToken}, grpc.Trailer(&trailer))
	if err != nil {
		err = fromStatus("restore session", err, trailer)
		if model.KindOf(err) == model.KindAuth {
			a.logger.Info("Auth client: saved session rejected", "error", err)
			if clearErr := a.store.Clear(); clearErr != nil {
				a.logger.Warn("Auth client: failed to clear rejected session", "error", clearErr)
			}
			return model.Principal{}, false, nil
		}
		return model.Principal{}, false, err
	}

	principal, err := a.accept(resp)
	if err != nil {
		return model.Principal{}, false, err
	}
	return principal, true, nil
}

// accept makes resp the current session and saves it.
func (a *Auth) accept(resp *apiProto.Session) (model.Principal, error) {
	session := Session{
		Server:       a.server,
		UserID:       resp.GetUser().GetId(),
		DisplayName:  resp.GetUser().GetDisplayName(),
		AccessToken:  resp.GetAccessToken(),
		RefreshToken: resp.GetRefreshToken(),
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	a.creds.set(session.AccessToken)

	if err := a.store.Save(session); err != nil {
		return model.Principal{}, err
	}
	return model.Principal{ID: session.UserID, DisplayName: session.DisplayName}, nil
}
