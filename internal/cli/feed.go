package cli

import (
	"fmt"
	"time"

	"habitlink/internal/feed"
	"habitlink/internal/logger"
)

type FeedCmd struct {
	Filter string `help:"View: all, mine, or friends." enum:"all,mine,friends" default:"all"`
}

func (cmd *FeedCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	agg := feed.NewAggregator(appCtx.API, appCtx.Haptics, appCtx.Locale)
	if err := agg.Load(ctx); err != nil {
		return err
	}
	if err := appCtx.Cache.SaveFeed(agg.Events()); err != nil {
		logger.Warn("Failed to cache feed snapshot", "error", err)
	}

	switch cmd.Filter {
	case "mine":
		agg.SetFilter(feed.FilterMine)
	case "friends":
		agg.SetFilter(feed.FilterFriends)
	}

	sections := agg.Sections()
	if len(sections) == 0 {
		fmt.Println(appCtx.Locale.T("noEvents"))
		return nil
	}

	now := time.Now()
	for _, section := range sections {
		fmt.Printf("── %s ──\n", section.Label)
		for _, ev := range section.Events {
			actor := ev.ActorName
			if ev.OwnEvent {
				actor = appCtx.Locale.T("youLabel")
			}
			fmt.Printf("  %-12s %s  (%s)\n", actor, ev.Message, agg.RelativeTime(ev, now))
			line := ""
			for _, r := range ev.Reactions {
				if r.Count == 0 {
					continue
				}
				mine := ""
				if r.Mine {
					mine = "*"
				}
				line += fmt.Sprintf("  %s %d%s", r.Emoji, r.Count, mine)
			}
			if line != "" {
				fmt.Printf("    %s\n", line)
			}
		}
	}
	return nil
}
