package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophfeed/internal/api/grpc/rpc"
	"github.com/dtroode/gophfeed/internal/model"
)

// handleError converts a service error into a gRPC status. The error kind,
// when known, is sent to the client in the response trailer.
func handleError(ctx context.Context, err error) error {
	kind := model.KindOf(err)
	if kind != model.KindUnknown {
		_ = grpc.SetTrailer(ctx, metadata.Pairs(rpc.ErrorKindTrailer, string(kind)))
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "post not found")
	case errors.Is(err, model.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, model.ErrEmailTaken.Error())
	case errors.Is(err, model.ErrLoginRequired):
		return status.Error(codes.Unauthenticated, model.ErrLoginRequired.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMismatch):
		return status.Error(codes.Unauthenticated, "session expired")
	}

	if model.HasKind(err, model.KindNetwork) {
		return status.Error(codes.Unavailable, "storage unavailable")
	}

	switch kind {
	case model.KindValidation:
		return status.Error(codes.InvalidArgument, validationMessage(err))
	case model.KindAuth:
		return status.Error(codes.PermissionDenied, "permission denied")
	case model.KindStoreWrite:
		return status.Error(codes.Internal, "failed to store post")
	case model.KindBlobUpload:
		return status.Error(codes.Internal, "failed to upload attachment")
	case model.KindBlobDelete:
		return status.Error(codes.Internal, "failed to delete attachment")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// validationMessage returns the cause of a validation error without the
// operation prefix.
func validationMessage(err error) string {
	var e *model.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return err.Error()
}
