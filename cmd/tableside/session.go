package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"tableside/internal/api"
	"tableside/internal/board"
	"tableside/internal/console"
	"tableside/internal/domain/user"
	"tableside/internal/pkg/config"
	"tableside/internal/poll"
)

// runSession authenticates, resolves the role and hands control to the
// matching dashboard, mirroring the role switch of the original app shell.
func runSession(ctx context.Context, client *api.Client, cfg config.Config, logger *slog.Logger) error {
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	me, err := authenticate(ctx, client, in, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Hello, %s (%s)\n", me.Username, me.Role)

	renderer := console.NewFloorRenderer(0, 0)

	switch me.Role {
	case user.RoleClient:
		registry := board.NewRegistry(board.TableSourceFunc(client.Tables), logger)
		form := board.NewForm(client, registry, time.Local, logger)
		poller := poll.NewScheduler("client-tables", cfg.Poll.ClientInterval, registry.Refresh, logger)
		return console.NewClientDashboard(registry, form, poller, renderer, logger, os.Stdin, out).Run(ctx)

	case user.RoleWaiter:
		registry := board.NewRegistry(board.TableSourceFunc(client.TableStatuses), logger)
		catalog := board.NewCatalog(client, logger)
		zones := board.NewZoneLayout(client, logger)
		session := board.NewSession(client, registry, logger)
		poller := poll.NewScheduler("waiter-board", cfg.Poll.StaffInterval,
			poll.Group(registry.Refresh, catalog.Refresh, zones.Refresh), logger)
		return console.NewWaiterDashboard(registry, catalog, zones, session, poller, renderer, logger, os.Stdin, out).Run(ctx)

	case user.RoleManager:
		registry := board.NewRegistry(board.TableSourceFunc(client.TableStatuses), logger)
		zones := board.NewZoneLayout(client, logger)
		queue := board.NewQueue(client, logger)
		poller := poll.NewScheduler("manager-board", cfg.Poll.StaffInterval,
			poll.Group(registry.Refresh, zones.Refresh, queue.LoadPending), logger)
		return console.NewManagerDashboard(registry, zones, queue, client, poller, renderer, logger, os.Stdin, out).Run(ctx)
	}
	return fmt.Errorf("unknown role %q", me.Role)
}

// authenticate reuses persisted tokens when they still resolve an identity,
// otherwise prompts for login or registration.
func authenticate(ctx context.Context, client *api.Client, in *bufio.Scanner, out *os.File) (user.User, error) {
	if client.LoggedIn() {
		me, err := client.Me(ctx)
		if err == nil {
			return me, nil
		}
		client.Logout()
	}

	for {
		fmt.Fprint(out, "login or register? [login] ")
		if !in.Scan() {
			return user.User{}, fmt.Errorf("input closed")
		}
		choice := strings.TrimSpace(in.Text())

		if choice == "register" {
			registerPrompt(ctx, client, in, out)
			continue
		}

		username := prompt(in, out, "username: ")
		password := prompt(in, out, "password: ")
		if err := client.Login(ctx, username, password); err != nil {
			fmt.Fprintln(out, "login failed:", err)
			continue
		}
		me, err := client.Me(ctx)
		if err != nil {
			client.Logout()
			fmt.Fprintln(out, "could not load profile:", err)
			continue
		}
		return me, nil
	}
}

func registerPrompt(ctx context.Context, client *api.Client, in *bufio.Scanner, out *os.File) {
	req := api.RegisterRequest{
		Username:  prompt(in, out, "username: "),
		Email:     prompt(in, out, "email: "),
		Password1: prompt(in, out, "password: "),
		Password2: prompt(in, out, "repeat password: "),
		Role:      prompt(in, out, "role (manager/waiter/client): "),
	}
	msg, _ := console.Register(ctx, client, req)
	fmt.Fprintln(out, msg)
}

func prompt(in *bufio.Scanner, out *os.File, label string) string {
	fmt.Fprint(out, label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
