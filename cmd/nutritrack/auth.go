package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nutritrack/nutritrack/internal/api"
	"github.com/nutritrack/nutritrack/internal/nav"
)

type loginOptions struct {
	Username string
	Password string
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("login")
	var opts loginOptions
	fs.StringVar(&opts.Username, "username", "", "Account username")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultCommandTimeout)
	defer cancel()

	cmdCtx.App.AuthService.Bootstrap(ctx)

	reader := bufio.NewReader(os.Stdin)
	if opts.Username == "" {
		if err := writef(os.Stderr, "Username: "); err != nil {
			return err
		}
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		opts.Username = strings.TrimSpace(line)
	}
	if opts.Password == "" {
		if err := writef(os.Stderr, "Password: "); err != nil {
			return err
		}
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		opts.Password = strings.TrimSpace(line)
	}
	if opts.Username == "" || opts.Password == "" {
		return errors.New("username and password are required")
	}

	user, err := cmdCtx.App.AuthService.Login(ctx, opts.Username, opts.Password)
	if err != nil {
		return err
	}

	cmdCtx.App.Navigator.Replace(nav.RouteDefault)
	return writef(os.Stdout, "Logged in as %s\n", user.Username)
}

type registerOptions struct {
	Username string
	Password string
	Email    string
	FullName string
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("register")
	var opts registerOptions
	fs.StringVar(&opts.Username, "username", "", "Desired username")
	fs.StringVar(&opts.Password, "password", "", "Account password")
	fs.StringVar(&opts.Email, "email", "", "Contact email")
	fs.StringVar(&opts.FullName, "full-name", "", "Full display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultCommandTimeout)
	defer cancel()

	message, err := cmdCtx.App.AuthService.Register(ctx, api.RegisterInput{
		Username: opts.Username,
		Password: opts.Password,
		Email:    opts.Email,
		FullName: opts.FullName,
	})
	if err != nil {
		return err
	}
	if message == "" {
		message = "account created"
	}
	return writeln(os.Stdout, message)
}

func runLogout(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("logout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cmdCtx.App.AuthService.Logout()
	cmdCtx.App.Navigator.Replace(nav.RouteLogin)
	return writeln(os.Stdout, "Logged out")
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("whoami")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultCommandTimeout)
	defer cancel()

	cmdCtx.App.AuthService.Bootstrap(ctx)
	snap := cmdCtx.App.Store.Snapshot()
	if !snap.IsAuthenticated {
		return writeln(os.Stdout, "Not logged in")
	}
	return renderJSON(os.Stdout, snap.User, *query)
}
