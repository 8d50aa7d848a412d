// feedctl is the command line client of the feed server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/dtroode/gophfeed/internal/client"
	"github.com/dtroode/gophfeed/internal/identity"
	"github.com/dtroode/gophfeed/internal/logger"
)

const usage = `Usage: feedctl [flags] <command> [args]

Commands:
  signup <email>        create an account (--name sets the display name)
  login <email>         sign in
  logout                sign out and forget the saved session
  whoami                show the signed-in user
  feed                  show the feed, most recent first
  post <text>           publish a post (--image attaches a picture)
  delete <post-id>      delete one of your posts

Flags:
`

type options struct {
	server       string
	tls          bool
	sessionFile  string
	logLevel     int
	passwordFile string
	name         string
	image        string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", describe(err))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options

	flags := pflag.NewFlagSet("feedctl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.server, "server", "localhost:50051", "feed server address")
	flags.BoolVar(&opts.tls, "tls", false, "connect with TLS")
	flags.StringVar(&opts.sessionFile, "session-file", client.DefaultSessionPath(), "path of the saved session")
	flags.IntVar(&opts.logLevel, "log-level", int(slog.LevelWarn), "log level (-4 debug, 0 info, 4 warn, 8 error)")
	flags.StringVar(&opts.passwordFile, "password-file", "", "read the password from a file instead of prompting")
	flags.StringVar(&opts.name, "name", "", "display name for signup")
	flags.StringVarP(&opts.image, "image", "i", "", "image file to attach to a post")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return options{}, nil, err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return options{}, nil, pflag.ErrHelp
	}
	return opts, flags.Args(), nil
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) error {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := logger.NewWriter(stderr, opts.logLevel)

	creds := &client.Credentials{}
	conn, err := client.Dial(client.DialOptions{Address: opts.server, TLS: opts.tls}, creds, log)
	if err != nil {
		return err
	}
	defer conn.Close()

	auth := client.NewAuth(conn, opts.server, creds, client.NewSessionStore(opts.sessionFile), log)
	gate := identity.NewGate(log)
	if err := gate.Start(ctx, auth.Restore); err != nil {
		return err
	}

	select {
	case <-gate.Ready():
	default:
		fmt.Fprintln(stderr, "Restoring session...")
	}
	if _, err := gate.AwaitReady(ctx); err != nil {
		return err
	}

	a := &app{
		opts:   opts,
		auth:   auth,
		feed:   client.NewFeed(conn, log),
		gate:   gate,
		logger: log,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	return a.dispatch(ctx, rest[0], rest[1:])
}
