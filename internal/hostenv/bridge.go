package hostenv

import (
	"os"
	"sync"
)

// Bridge carries the launch-time inputs delivered by the host. The start
// parameter is clearable so re-entering the surface does not re-trigger a
// deep link that was already resolved.
type Bridge struct {
	mu         sync.Mutex
	startParam string
	locale     string
	initData   string
}

func NewBridge(startParam, locale, initData string) *Bridge {
	return &Bridge{startParam: startParam, locale: locale, initData: initData}
}

// FromEnv reads the bridge inputs from the process environment, the closest
// terminal analog of the host's launch payload. HABITLINK_LANG overrides the
// POSIX locale.
func FromEnv() *Bridge {
	locale := os.Getenv("HABITLINK_LANG")
	if locale == "" {
		locale = os.Getenv("LC_ALL")
	}
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	return NewBridge(os.Getenv("HABITLINK_START_PARAM"), locale, os.Getenv("HABITLINK_INIT_DATA"))
}

func (b *Bridge) StartParam() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.startParam
}

// ClearStartParam drops the deep-link parameter after it has been resolved.
func (b *Bridge) ClearStartParam() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.startParam = ""
}

func (b *Bridge) Locale() string { return b.locale }

// InitData is the opaque host auth payload consumed by login.
func (b *Bridge) InitData() string { return b.initData }
