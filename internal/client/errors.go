package client

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophfeed/internal/api/grpc/rpc"
	"github.com/dtroode/gophfeed/internal/model"
)

// Sentinels the server reports by message.
var remoteSentinels = []error{
	model.ErrNotFound,
	model.ErrLoginRequired,
	model.ErrInvalidCredentials,
	model.ErrEmailTaken,
}

// fromStatus converts a failed call into a classified error. The kind sent in
// the trailer wins over the one derived from the status code.
func fromStatus(op string, err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return model.NewError(model.KindNetwork, op, err)
		}
		return model.NewError(model.KindUnknown, op, err)
	}

	cause := causeOf(st)
	kind := kindOf(st.Code())
	if v := trailer.Get(rpc.ErrorKindTrailer); len(v) > 0 && v[0] != "" {
		kind = model.ErrorKind(v[0])
	}

	if isUnavailable(st.Code()) && kind != model.KindNetwork {
		cause = model.NewError(model.KindNetwork, op, cause)
	}
	return model.NewError(kind, op, cause)
}

func kindOf(code codes.Code) model.ErrorKind {
	switch code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return model.KindAuth
	case codes.InvalidArgument, codes.AlreadyExists:
		return model.KindValidation
	case codes.Unavailable, codes.DeadlineExceeded:
		return model.KindNetwork
	default:
		return model.KindUnknown
	}
}

func isUnavailable(code codes.Code) bool {
	return code == codes.Unavailable || code == codes.DeadlineExceeded
}

func causeOf(st *status.Status) error {
	switch st.Code() {
	case codes.NotFound:
		return model.ErrNotFound
	case codes.AlreadyExists:
		return model.ErrEmailTaken
	case codes.Unauthenticated:
		if st.Message() == "session expired" {
			return model.ErrTokenExpired
		}
	}
	for _, s := range remoteSentinels {
		if st.Message() == s.Error() {
			return s
		}
	}
	return errors.New(st.Message())
}
