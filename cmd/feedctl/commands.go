package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtroode/gophfeed/internal/client"
	"github.com/dtroode/gophfeed/internal/identity"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

type app struct {
	opts   options
	auth   *client.Auth
	feed   *client.Feed
	gate   *identity.Gate
	logger *logger.Logger
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return a.signup(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.gate.RequireIdentity(func(p model.Principal) error {
			fmt.Fprintf(a.stdout, "%s (%s)\n", p.AuthorName(), p.ID)
			return nil
		})
	case "feed":
		return a.showFeed(ctx)
	case "post":
		return a.gate.RequireIdentity(func(model.Principal) error {
			return a.post(ctx, args)
		})
	case "delete":
		return a.gate.RequireIdentity(func(p model.Principal) error {
			return a.delete(ctx, p, args)
		})
	default:
		return model.Errorf(model.KindValidation, "feedctl", "unknown command %q", command)
	}
}

func (a *app) signup(ctx context.Context, args []string) error {
	email, err := single(args, "email")
	if err != nil {
		return err
	}
	password, err := readPassword(a.opts.passwordFile, a.stdin, a.stderr)
	if err != nil {
		return err
	}

	p, err := a.auth.SignUp(ctx, email, password, a.opts.name)
	if err != nil {
		return err
	}
	if err := a.gate.SignIn(p); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Signed up as %s\n", p.AuthorName())
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	email, err := single(args, "email")
	if err != nil {
		return err
	}
	password, err := readPassword(a.opts.passwordFile, a.stdin, a.stderr)
	if err != nil {
		return err
	}

	p, err := a.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.gate.SignIn(p); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Logged in as %s\n", p.AuthorName())
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	if err := a.gate.SignOut(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Logged out")
	return nil
}

func (a *app) showFeed(ctx context.Context) error {
	posts, err := a.feed.ListPosts(ctx)
	if err != nil {
		return err
	}
	renderFeed(a.stdout, posts)
	return nil
}

func (a *app) post(ctx context.Context, args []string) error {
	body := strings.Join(args, " ")
	if body == "" {
		return model.Errorf(model.KindValidation, "post", "post text is required")
	}

	var attachment *model.Attachment
	if a.opts.image != "" {
		f, err := os.Open(a.opts.image)
		if err != nil {
			return model.NewError(model.KindValidation, "post", err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return model.NewError(model.KindValidation, "post", err)
		}
		attachment = &model.Attachment{Reader: f, Size: info.Size()}
	}

	return a.afterChange(ctx, func() error {
		post, err := a.feed.CreatePost(ctx, body, attachment)
		if err != nil && post.ID != "" {
			return &partialPostError{postID: post.ID, err: err}
		}
		return err
	})
}

// partialPostError reports a post whose text was stored while its image
// was not. The feed still changed, so it is rendered before the error.
type partialPostError struct {
	postID string
	err    error
}

func (e *partialPostError) Error() string {
	return fmt.Sprintf("post %s was published without its image: %v", e.postID, e.err)
}

func (e *partialPostError) Unwrap() error {
	return e.err
}

func (a *app) delete(ctx context.Context, requester model.Principal, args []string) error {
	id, err := single(args, "post id")
	if err != nil {
		return err
	}

	posts, err := a.feed.ListPosts(ctx)
	if err != nil {
		return err
	}
	post, ok := findPost(posts, id)
	if !ok {
		return model.NewError(model.KindUnknown, "delete", model.ErrNotFound)
	}

	return a.afterChange(ctx, func() error {
		return a.feed.DeletePost(ctx, post, requester)
	})
}

// afterChange runs change and prints the feed refetched by the timeline.
// A partial change is rendered too and its error returned afterwards.
func (a *app) afterChange(ctx context.Context, change func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timeline := client.NewTimeline(a.feed, a.logger)
	snapshots, unsubscribe := timeline.Subscribe()
	defer unsubscribe()
	go func() { _ = timeline.Run(ctx) }()

	changeErr := change()
	var partial *partialPostError
	if changeErr != nil && !errors.As(changeErr, &partial) {
		return changeErr
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case snap := <-snapshots:
		if snap.Err != nil {
			return errors.Join(changeErr, snap.Err)
		}
		renderFeed(a.stdout, snap.Posts)
		return changeErr
	}
}

func findPost(posts []model.Post, id string) (model.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

func single(args []string, name string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", model.Errorf(model.KindValidation, "feedctl", "expected exactly one %s", name)
	}
	return args[0], nil
}
