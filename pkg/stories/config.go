package stories

import (
	"context"
	"time"
)

// TunableOptions holds the externally-configured values listed in spec.md
// §6 "Tunable configuration". These are backed by a remote option store in
// production (see OptionSource), the same way the teacher's
// getAppConfigCached backs Telegram's app config — the core never talks to
// that transport directly.
type TunableOptions struct {
	StoryViewersExpirationDelay time.Duration
	NeedSynchronizeArchiveAll  bool
	ArchiveAllStories           bool
	StoriesChangelogUserID      OwnerID
	IsPremium                   bool
}

// DefaultTunableOptions matches the defaults named in spec.md §6.
func DefaultTunableOptions() TunableOptions {
	return TunableOptions{
		StoryViewersExpirationDelay: 86400 * time.Second,
	}
}

// OptionSource is how the engine refreshes TunableOptions. Implementations
// typically cache the fetched value and invalidate it after the server
// indicates a change, mirroring getAppConfigCached's hash-based cache.
type OptionSource interface {
	GetTunableOptions(ctx context.Context) (TunableOptions, error)
}

// StaticOptionSource is a fixed-value OptionSource, useful for tests and
// for deployments that don't need live option updates.
type StaticOptionSource struct {
	Options TunableOptions
}

func (s StaticOptionSource) GetTunableOptions(context.Context) (TunableOptions, error) {
	return s.Options, nil
}

// Internal constants (spec.md §6).
const (
	OpenedStoryPollPeriod = 60 * time.Second
	ViewedStoryPollPeriod = 60 * time.Second

	// DefaultLoadedExpiredStories is the initial sweep page size for the
	// expiring-story cleanup (spec.md §4.8).
	DefaultLoadedExpiredStories = 100

	// minInaccessibleReloadInterval throttles reload_story for stories the
	// registry currently considers inaccessible (spec.md §4.1).
	minInaccessibleReloadInterval = 5 * time.Minute

	// Allowed story active periods, in seconds; activePeriodTest1 and
	// activePeriodTest2 (60s/300s) are accepted only in test mode (spec.md
	// §4.7 step 1).
	activePeriod6h    = 6 * 60 * 60
	activePeriod12h   = 12 * 60 * 60
	activePeriod1d    = 86400
	activePeriod2d    = 2 * 86400
	activePeriod3d    = 3 * 86400
	activePeriod7d    = 7 * 86400
	activePeriodTest1 = 60
	activePeriodTest2 = 300
)

// validActivePeriod enforces spec.md §4.7 step 1.
func validActivePeriod(seconds int, testMode bool) (free bool, ok bool) {
	switch seconds {
	case activePeriod1d:
		return true, true
	case activePeriod6h, activePeriod12h, activePeriod2d, activePeriod3d, activePeriod7d:
		return false, true
	case activePeriodTest1, activePeriodTest2:
		if testMode {
			return true, true
		}
		return false, false
	default:
		return false, false
	}
}
