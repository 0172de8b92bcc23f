// Package i18n resolves the viewer's locale and renders the handful of
// user-facing phrases the client localizes itself (the server localizes
// everything it generates).
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // default
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// Locale is a matched viewer locale. The zero value behaves as English.
type Locale struct {
	tag language.Tag
	ru  bool
}

// Match resolves a BCP 47 string (or anything loosely like one, e.g. an
// LC_ALL value such as "ru_RU.UTF-8") to a supported locale.
func Match(s string) Locale {
	tag, _ := language.MatchStrings(matcher, normalize(s))
	loc := Locale{tag: tag}
	if base, _ := tag.Base(); base.String() == "ru" {
		loc.ru = true
	}
	return loc
}

func normalize(s string) string {
	// Strip a POSIX charset suffix and swap underscores so LANG values parse.
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '.' || r == '@' {
			break
		}
		if r == '_' {
			r = '-'
		}
		out = append(out, r)
	}
	return string(out)
}

func (l Locale) Tag() language.Tag { return l.tag }

// T returns the phrase for key in this locale, falling back to English and
// then to the key itself.
func (l Locale) T(key string) string {
	if l.ru {
		if s, ok := phrasesRU[key]; ok {
			return s
		}
	}
	if s, ok := phrasesEN[key]; ok {
		return s
	}
	return key
}

var phrasesEN = map[string]string{
	"pullToRefresh":    "Pull to refresh",
	"releaseToRefresh": "Release to refresh",
	"noHabits":         "No habits yet. Press 'a' to add one.",
	"noEvents":         "No activity yet.",
	"noFriends":        "No friends yet. Create an invite to get started.",
	"noNotifications":  "No notifications.",
	"filterAll":        "All",
	"filterMine":       "Mine",
	"filterFriends":    "Friends",
	"youLabel":         "You",
	"completed":        "completed",
	"streak":           "streak",
	"record":           "record",
	"markRead":         "mark read",
	"markAllRead":      "mark all read",
	"acceptingInvite":  "Accepting invite…",
	"bestShort":        "best %d",
	"friendAdded":      "Friend added:",
	"friendRemoved":    "Friend removed:",
	"habitSaved":       "Habit saved",
	"confirmRemove":    "Remove %s from your friends? (y/n)",
	"newHabit":         "New habit",
	"editHabit":        "Edit habit",
	"titleLabel":       "Title",
	"weeklyLabel":      "Times per week (0 = daily)",
	"colorLabel":       "Color",
	"iconLabel":        "Icon",
}

var phrasesRU = map[string]string{
	"pullToRefresh":    "Потяните, чтобы обновить",
	"releaseToRefresh": "Отпустите, чтобы обновить",
	"noHabits":         "Привычек пока нет. Нажмите 'a', чтобы добавить.",
	"noEvents":         "Событий пока нет.",
	"noFriends":        "Друзей пока нет. Создайте приглашение.",
	"noNotifications":  "Уведомлений нет.",
	"filterAll":        "Все",
	"filterMine":       "Мои",
	"filterFriends":    "Друзья",
	"youLabel":         "Вы",
	"completed":        "выполнено",
	"streak":           "серия",
	"record":           "рекорд",
	"markRead":         "прочитано",
	"markAllRead":      "прочитать все",
	"acceptingInvite":  "Принимаем приглашение…",
	"bestShort":        "рекорд %d",
	"friendAdded":      "Друг добавлен:",
	"friendRemoved":    "Друг удалён:",
	"habitSaved":       "Привычка сохранена",
	"confirmRemove":    "Удалить %s из друзей? (y/n)",
	"newHabit":         "Новая привычка",
	"editHabit":        "Изменить привычку",
	"titleLabel":       "Название",
	"weeklyLabel":      "Раз в неделю (0 = ежедневно)",
	"colorLabel":       "Цвет",
	"iconLabel":        "Иконка",
}
