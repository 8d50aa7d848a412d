package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/dtroode/gophfeed/internal/model"
)

func renderFeed(w io.Writer, posts []model.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")
		return
	}
	for i, p := range posts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderPost(w, p)
	}
}

func renderPost(w io.Writer, p model.Post) {
	author := p.AuthorDisplayName
	if author == "" {
		author = model.AnonymousName
	}
	fmt.Fprintf(w, "%s, %s [%s]\n", author, humanize.Time(p.CreatedAt), p.ID)
	fmt.Fprintf(w, "  %s\n", p.Body)
	if p.HasAttachment() {
		fmt.Fprintf(w, "  photo: %s\n", p.AttachmentRef)
	}
}

// describe renders one line per error kind.
func describe(err error) string {
	var partial *partialPostError
	if errors.As(err, &partial) {
		return fmt.Sprintf("post %s was published without its image: %s", partial.postID, describe(partial.err))
	}

	switch {
	case errors.Is(err, model.ErrLoginRequired):
		return "login required"
	case errors.Is(err, model.ErrTokenExpired), errors.Is(err, model.ErrTokenRevoked):
		return "session expired, log in again"
	case errors.Is(err, model.ErrNotFound):
		return "post not found"
	}

	switch model.KindOf(err) {
	case model.KindValidation:
		var e *model.Error
		if errors.As(err, &e) && e.Err != nil {
			return e.Err.Error()
		}
		return err.Error()
	case model.KindAuth:
		if errors.Is(err, model.ErrInvalidCredentials) {
			return "wrong email or password"
		}
		return "not allowed"
	case model.KindStoreWrite:
		return "could not save the post"
	case model.KindBlobUpload:
		return "could not upload the image"
	case model.KindBlobDelete:
		return "could not delete the image"
	case model.KindNetwork:
		return "server unavailable, try again later"
	default:
		return err.Error()
	}
}
