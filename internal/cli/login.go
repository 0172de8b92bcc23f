package cli

import (
	"errors"
	"fmt"

	"habitlink/internal/logger"
)

type LoginCmd struct {
	InitData   string `help:"Host init data payload. Defaults to the bridge value." env:"HABITLINK_INIT_DATA"`
	Dev        bool   `help:"Use the development auth endpoint."`
	TelegramID int64  `help:"Dev auth: numeric account id." default:"999001"`
	FirstName  string `help:"Dev auth: first name." default:"Local User"`
	Username   string `help:"Dev auth: username." default:"local_dev"`
}

func (cmd *LoginCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	initData := cmd.InitData
	if initData == "" {
		initData = appCtx.Bridge.InitData()
	}

	switch {
	case initData != "":
		sess, err := appCtx.API.AuthHost(ctx, initData)
		if err != nil {
			return fmt.Errorf("host auth failed: %w", err)
		}
		if err := appCtx.Tokens.SetToken(sess.Token); err != nil {
			return err
		}
		logger.Info("Signed in", "user", sess.UserID)
		fmt.Printf("Signed in as %s\n", displayUser(sess.FirstName, sess.Username))
	case cmd.Dev:
		sess, err := appCtx.API.AuthDev(ctx, cmd.TelegramID, cmd.FirstName, cmd.Username)
		if err != nil {
			return fmt.Errorf("dev auth failed: %w", err)
		}
		if err := appCtx.Tokens.SetToken(sess.Token); err != nil {
			return err
		}
		fmt.Printf("Signed in as %s (dev)\n", displayUser(sess.FirstName, sess.Username))
	default:
		return errors.New("no init data available; run inside the host surface or pass --dev")
	}
	return nil
}

func displayUser(firstName, username string) string {
	if firstName != "" {
		return firstName
	}
	if username != "" {
		return "@" + username
	}
	return "user"
}

type LogoutCmd struct{}

func (cmd *LogoutCmd) Run(appCtx *Context) error {
	if err := appCtx.Tokens.ClearToken(); err != nil {
		return err
	}
	if err := appCtx.Cache.Clear(); err != nil {
		logger.Warn("Failed to clear snapshot cache", "error", err)
	}
	fmt.Println("Signed out.")
	return nil
}
