package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/dtroode/gophfeed/internal/model"
)

// Field names of post documents.
const (
	fieldBody      = "body"
	fieldCreatedAt = "createdAt"
	fieldUsername  = "username"
	fieldUserID    = "userId"
	fieldPhoto     = "photo"
)

func encodePost(post model.Post) model.Fields {
	fields := model.Fields{
		fieldBody:      post.Body,
		fieldCreatedAt: post.CreatedAt.UTC().Format(time.RFC3339Nano),
		fieldUsername:  post.AuthorDisplayName,
		fieldUserID:    post.AuthorID,
	}
	if post.AttachmentRef != "" {
		fields[fieldPhoto] = post.AttachmentRef
	}
	return fields
}

// decodePost validates a raw post document and converts it to a Post.
func decodePost(doc model.Document) (model.Post, error) {
	if doc.ID == "" {
		return model.Post{}, fmt.Errorf("document has no id")
	}

	body, err := stringField(doc.Fields, fieldBody, true)
	if err != nil {
		return model.Post{}, err
	}
	if err := model.ValidateBody(body); err != nil {
		return model.Post{}, fmt.Errorf("field %q: %w", fieldBody, err)
	}

	authorID, err := stringField(doc.Fields, fieldUserID, true)
	if err != nil {
		return model.Post{}, err
	}

	username, err := stringField(doc.Fields, fieldUsername, false)
	if err != nil {
		return model.Post{}, err
	}
	if username == "" {
		username = model.AnonymousName
	}

	rawCreatedAt, err := stringField(doc.Fields, fieldCreatedAt, true)
	if err != nil {
		return model.Post{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rawCreatedAt)
	if err != nil {
		return model.Post{}, fmt.Errorf("field %q: %w", fieldCreatedAt, err)
	}

	photo, err := stringField(doc.Fields, fieldPhoto, false)
	if err != nil {
		return model.Post{}, err
	}

	return model.Post{
		ID:                doc.ID,
		Body:              body,
		AuthorID:          authorID,
		AuthorDisplayName: username,
		CreatedAt:         createdAt,
		AttachmentRef:     photo,
	}, nil
}

// decodePostRef reads only what deleting a post needs: its author and the
// optional photo. The remaining fields are filled when they are well formed.
func decodePostRef(doc model.Document) (model.Post, error) {
	if doc.ID == "" {
		return model.Post{}, fmt.Errorf("document has no id")
	}

	authorID, err := stringField(doc.Fields, fieldUserID, true)
	if err != nil {
		return model.Post{}, err
	}

	photo, err := stringField(doc.Fields, fieldPhoto, false)
	if err != nil {
		return model.Post{}, err
	}

	post := model.Post{ID: doc.ID, AuthorID: authorID, AttachmentRef: photo}
	if body, err := stringField(doc.Fields, fieldBody, false); err == nil {
		post.Body = body
	}
	if username, err := stringField(doc.Fields, fieldUsername, false); err == nil {
		post.AuthorDisplayName = username
	}
	return post, nil
}

func stringField(fields model.Fields, name string, required bool) (string, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("field %q is missing", name)
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q has type %T, want string", name, raw)
	}
	if required && s == "" {
		return "", fmt.Errorf("field %q is empty", name)
	}
	return s, nil
}

// classify wraps err into a pipeline error of the given kind. Transport
// failures keep a KindNetwork error underneath.
func classify(kind model.ErrorKind, op string, err error) error {
	if isNetworkError(err) {
		err = model.NewError(model.KindNetwork, "transport", err)
	}
	return model.NewError(kind, op, err)
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
