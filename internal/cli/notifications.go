package cli

import (
	"fmt"
	"time"

	"habitlink/internal/feed"
	"habitlink/internal/logger"
)

type NotifyListCmd struct {
	Unread bool `help:"Show only unread notifications."`
}

func (cmd *NotifyListCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	agg := feed.NewAggregator(appCtx.API, appCtx.Haptics, appCtx.Locale)
	if err := agg.LoadNotifications(ctx); err != nil {
		return err
	}
	if err := appCtx.Cache.SaveNotifications(agg.Notifications()); err != nil {
		logger.Warn("Failed to cache notifications snapshot", "error", err)
	}

	now := time.Now()
	shown := 0
	for _, n := range agg.Notifications() {
		if cmd.Unread && n.Read {
			continue
		}
		shown++
		marker := " "
		if !n.Read {
			marker = "•"
		}
		fmt.Printf("%s %-16s %s  (%s)  [%s]\n",
			marker, n.ActorName, n.Message, agg.NotificationRelativeTime(n, now), n.ID)
	}
	if shown == 0 {
		fmt.Println(appCtx.Locale.T("noNotifications"))
	}
	return nil
}

type NotifyReadCmd struct {
	ID  string `arg:"" optional:"" help:"Notification id."`
	All bool   `help:"Mark every notification read."`
}

func (cmd *NotifyReadCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	agg := feed.NewAggregator(appCtx.API, appCtx.Haptics, appCtx.Locale)
	if err := agg.LoadNotifications(ctx); err != nil {
		return err
	}

	switch {
	case cmd.All:
		if err := agg.MarkAllRead(ctx); err != nil {
			return err
		}
		fmt.Println("All notifications marked read.")
	case cmd.ID != "":
		if err := agg.MarkRead(ctx, cmd.ID); err != nil {
			return err
		}
		fmt.Println("Notification marked read.")
	default:
		return fmt.Errorf("pass a notification id or --all")
	}
	return nil
}
