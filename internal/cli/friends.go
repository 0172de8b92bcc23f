package cli

import (
	"context"
	"fmt"
	"sync"

	"habitlink/internal/invite"
	"habitlink/internal/logger"
	"habitlink/internal/models"
)

type FriendsListCmd struct{}

func (cmd *FriendsListCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	friends, err := appCtx.API.Friends(ctx)
	if err != nil {
		return err
	}
	if err := appCtx.Cache.SaveFriends(friends); err != nil {
		logger.Warn("Failed to cache friends snapshot", "error", err)
	}

	if len(friends) == 0 {
		fmt.Println(appCtx.Locale.T("noFriends"))
		return nil
	}
	for _, f := range friends {
		handle := ""
		if f.Username != "" {
			handle = " @" + f.Username
		}
		fmt.Printf("%-24s%s  [%s]\n", f.DisplayName(), handle, f.ID)
	}
	return nil
}

type InviteCreateCmd struct{}

func (cmd *InviteCreateCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	inv, err := appCtx.API.CreateInvite(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Invite code: %s\n", inv.Code)
	fmt.Printf("Share link:  %s\n", inv.InviteURL)
	fmt.Printf("Expires:     %s\n", inv.ExpiresAt)
	return nil
}

type InviteAcceptCmd struct {
	Code string `arg:"" optional:"" help:"Invite code. Defaults to the deep-link start parameter."`
}

func (cmd *InviteAcceptCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	result := appCtx.Resolver().Resolve(ctx, cmd.Code)
	switch result.Outcome {
	case invite.OutcomeNone:
		fmt.Println("No invite code to accept.")
	case invite.OutcomeAccepted:
		fmt.Printf("You are now friends with %s.\n", result.Friend.DisplayName())
	case invite.OutcomeAlreadyHandled, invite.OutcomeBenign, invite.OutcomePending:
		// Idempotent: the invite is resolved one way or another; stay quiet.
	case invite.OutcomeFailed:
		return result.Err
	}
	return nil
}

type FriendRemoveCmd struct {
	ID string `arg:"" help:"Friend id."`
}

func (cmd *FriendRemoveCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	if err := appCtx.API.RemoveFriend(ctx, cmd.ID); err != nil {
		return err
	}
	fmt.Println("Friend removed.")
	return nil
}

type FriendShowCmd struct {
	ID string `arg:"" help:"Friend id."`
}

// Run fetches the friend's profile and habit list concurrently and joins
// both before rendering, then fans out per-habit reaction fetches the same
// way. Any single failure fails the whole join.
func (cmd *FriendShowCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	var (
		wg         sync.WaitGroup
		profile    models.Friend
		habits     []models.Habit
		profileErr error
		habitsErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profileErr = appCtx.API.FriendProfile(ctx, cmd.ID)
	}()
	go func() {
		defer wg.Done()
		habits, habitsErr = appCtx.API.FriendHabits(ctx, cmd.ID)
	}()
	wg.Wait()
	if profileErr != nil {
		return profileErr
	}
	if habitsErr != nil {
		return habitsErr
	}

	reactions, err := fetchHabitReactions(ctx, appCtx, cmd.ID, habits)
	if err != nil {
		return err
	}

	fmt.Printf("%s", profile.DisplayName())
	if profile.Username != "" {
		fmt.Printf("  @%s", profile.Username)
	}
	fmt.Println()
	for _, h := range habits {
		if h.Archived {
			continue
		}
		fmt.Printf("  %s %-24s streak %d (best %d)\n", h.Icon, h.Title, h.CurrentStreak, h.BestStreak)
		line := ""
		for _, r := range reactions[h.ID] {
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
	return nil
}

// fetchHabitReactions fans out one reaction fetch per visible habit and joins
// the results, keyed by habit id.
func fetchHabitReactions(ctx context.Context, appCtx *Context, friendID string, habits []models.Habit) (map[string][]models.ReactionSummary, error) {
	type entry struct {
		habitID   string
		summaries []models.ReactionSummary
		err       error
	}

	var wg sync.WaitGroup
	results := make([]entry, 0, len(habits))
	var mu sync.Mutex
	for _, h := range habits {
		if h.Archived {
			continue
		}
		wg.Add(1)
		go func(habitID string) {
			defer wg.Done()
			summaries, err := appCtx.API.HabitReactions(ctx, friendID, habitID)
			mu.Lock()
			results = append(results, entry{habitID: habitID, summaries: summaries, err: err})
			mu.Unlock()
		}(h.ID)
	}
	wg.Wait()

	out := make(map[string][]models.ReactionSummary, len(results))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		out[r.habitID] = r.summaries
	}
	return out, nil
}

type ReactCmd struct {
	FriendID string `arg:"" help:"Friend id."`
	HabitID  string `arg:"" help:"Habit id."`
	Emoji    string `arg:"" help:"Reaction emoji."`
}

func (cmd *ReactCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	summaries, err := appCtx.API.ToggleHabitReaction(ctx, cmd.FriendID, cmd.HabitID, cmd.Emoji)
	if err != nil {
		return err
	}
	line := ""
	for _, r := range summaries {
		if r.Count == 0 {
			continue
		}
		mine := ""
		if r.Mine {
			mine = "*"
		}
		line += fmt.Sprintf("  %s %d%s", r.Emoji, r.Count, mine)
	}
	if line == "" {
		line = "  (no reactions)"
	}
	fmt.Println(line)
	return nil
}
