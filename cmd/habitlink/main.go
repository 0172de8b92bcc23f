package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"habitlink/internal/api"
	"habitlink/internal/cache"
	"habitlink/internal/cli"
	apperrors "habitlink/internal/errors"
	"habitlink/internal/hostenv"
	"habitlink/internal/i18n"
	"habitlink/internal/logger"
	"habitlink/internal/session"
)

var CLI struct {
	Version    kong.VersionFlag
	APIBase    string `help:"Habit server base URL." env:"HABITLINK_API" default:"http://localhost:3000"`
	ConfigDir  string `help:"Config directory." type:"path" default:"~/.config/habitlink"`
	StartParam string `help:"Deep-link start parameter (e.g. friend_<code>)." env:"HABITLINK_START_PARAM"`
	Locale     string `help:"Override the detected locale (e.g. ru)."`
	Debug      bool   `help:"Verbose logging to stderr."`

	Login  cli.LoginCmd  `cmd:"" help:"Authenticate against the habit server."`
	Logout cli.LogoutCmd `cmd:"" help:"Clear the stored session."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit  struct {
		List     cli.HabitListCmd     `cmd:"" help:"List habits."`
		Add      cli.HabitAddCmd      `cmd:"" help:"Create a habit."`
		Complete cli.HabitCompleteCmd `cmd:"" help:"Record today's completion."`
		Week     cli.HabitWeekCmd     `cmd:"" help:"Show this week's strip for a habit."`
		Stats    cli.HabitStatsCmd    `cmd:"" help:"Show progress stats for a habit."`
	} `cmd:"" help:"Manage habits."`
	Feed    cli.FeedCmd `cmd:"" help:"Show the activity feed."`
	Friends struct {
		List   cli.FriendsListCmd  `cmd:"" help:"List friends."`
		Show   cli.FriendShowCmd   `cmd:"" help:"Show a friend's profile and habits."`
		Remove cli.FriendRemoveCmd `cmd:"" help:"Remove a friend."`
	} `cmd:"" help:"Manage friends."`
	Invite struct {
		Create cli.InviteCreateCmd `cmd:"" help:"Create an invite link."`
		Accept cli.InviteAcceptCmd `cmd:"" help:"Accept an invite code."`
	} `cmd:"" help:"Manage invites."`
	React  cli.ReactCmd `cmd:"" help:"Toggle a reaction on a friend's habit."`
	Notify struct {
		List cli.NotifyListCmd `cmd:"" help:"List notifications."`
		Read cli.NotifyReadCmd `cmd:"" help:"Mark notifications read."`
	} `cmd:"" help:"Manage notifications."`
	Doctor cli.DoctorCmd `cmd:"" help:"Diagnose the local setup."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitlink"),
		kong.Description("Habit tracker with a social layer"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.ConfigDir}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", apperrors.Format(err))
		os.Exit(1)
	}

	bridge := hostenv.FromEnv()
	if CLI.StartParam != "" || CLI.Locale != "" {
		startParam := CLI.StartParam
		if startParam == "" {
			startParam = bridge.StartParam()
		}
		locale := CLI.Locale
		if locale == "" {
			locale = bridge.Locale()
		}
		bridge = hostenv.NewBridge(startParam, locale, bridge.InitData())
	}

	var tokens session.TokenStore = session.NewKeyringTokenStore()
	if !session.KeyringAvailable() {
		logger.Warn("Keyring unavailable, session will not persist")
		tokens = &session.MemoryTokenStore{}
	}

	store := cache.NewStore(cachePath(CLI.ConfigDir))
	if err := store.Init(); err != nil {
		logger.Warn("Offline cache disabled", "error", err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		API:     api.NewClient(CLI.APIBase, tokens),
		Cache:   store,
		Tokens:  tokens,
		Invites: session.NewInviteMarker(),
		Bridge:  bridge,
		Haptics: hostenv.TerminalHaptics{},
		Locale:  i18n.Match(bridge.Locale()),
		Debug:   CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

func cachePath(configDir string) string {
	return filepath.Join(configDir, "cache.db")
}
