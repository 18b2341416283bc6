package stories

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exsync"
)

// Clock abstracts wall-clock reads so timers (C4) can be tested without
// sleeping. Production code uses realClock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Engine is the process-scoped core described in SPEC_FULL.md §2
// [SUPPLEMENT]: it owns C1-C10 and runs them on a single logical executor,
// the same way the teacher's TelegramClient is the single actor for one
// Telegram login (all mutation of its state happens through
// QueueRemoteEvent-style serialized callbacks, never directly from
// arbitrary goroutines).
type Engine struct {
	log    zerolog.Logger
	deps   Deps
	self   OwnerID
	clock  Clock

	mu sync.RWMutex // guards the maps below; see note on concurrency model

	reg         *registry
	storyByID   map[StoryFullID]*Story
	activeByOwner map[OwnerID]*ActiveStories
	lists       map[StoryListID]*StoryList
	fileSource  map[StoryFullID]FileSourceID
	messageRefs map[StoryFullID]map[string]struct{}
	openStories map[StoryFullID]struct{}

	timers  *timerWheel
	viewers *viewerCache
	batch   *readViewBatcher
	send    *sendPipeline
	pub     *publisher

	optsMu       sync.Mutex
	opts         TunableOptions
	optsFetched  bool

	testMode bool

	closed *exsync.Event

	actions chan func()
	stopped chan struct{}
	wg      sync.WaitGroup
}

// NewEngine constructs the engine and starts its executor goroutine. Call
// Close to stop it.
func NewEngine(deps Deps, self OwnerID, log zerolog.Logger) *Engine {
	e := &Engine{
		log:           log,
		deps:          deps,
		self:          self,
		clock:         realClock{},
		reg:           newRegistry(),
		storyByID:     make(map[StoryFullID]*Story),
		activeByOwner: make(map[OwnerID]*ActiveStories),
		lists: map[StoryListID]*StoryList{
			StoryListMain:    {ID: StoryListMain},
			StoryListArchive: {ID: StoryListArchive},
		},
		fileSource:  make(map[StoryFullID]FileSourceID),
		messageRefs: make(map[StoryFullID]map[string]struct{}),
		openStories: make(map[StoryFullID]struct{}),
		closed:      exsync.NewEvent(),
		actions:     make(chan func(), 256),
		stopped:     make(chan struct{}),
	}
	e.timers = newTimerWheel(e)
	e.viewers = newViewerCache()
	e.batch = newReadViewBatcher(e)
	e.send = newSendPipeline(e)
	e.pub = newPublisher()

	e.wg.Add(1)
	go e.run()
	return e
}

func (e *Engine) run() {
	defer e.wg.Done()
	for {
		select {
		case fn := <-e.actions:
			fn()
		case <-e.stopped:
			// Drain anything already queued so callers blocked in Do don't
			// hang forever, then exit.
			for {
				select {
				case fn := <-e.actions:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Do runs fn on the engine's executor and blocks until it returns. Use from
// entry points (C10) and tests.
func (e *Engine) Do(fn func()) {
	done := make(chan struct{})
	e.actions <- func() {
		fn()
		close(done)
	}
	<-done
}

// Post schedules fn to run on the executor without waiting. Use from
// suspension-point continuations (spec.md §5).
func (e *Engine) Post(fn func()) {
	select {
	case e.actions <- fn:
	case <-e.stopped:
	}
}

// Close sets the global close flag (spec.md §5 "Cancellation") and stops
// the executor. Outstanding suspended callbacks observe closed and return
// without completing external promises.
func (e *Engine) Close() {
	e.closed.Set()
	e.timers.stopAll()
	close(e.stopped)
	e.wg.Wait()
}

// guard wraps an external suspension-point call: it runs fetch off the
// executor (modelling an RPC/DB/binlog/upload round trip), then delivers
// the result back on the executor via Post, where onResult re-validates
// the close flag before touching any state (spec.md §5 "Suspension
// points").
func guard[T any](e *Engine, ctx context.Context, fetch func(context.Context) (T, error), onResult func(T, error)) {
	go func() {
		val, err := fetch(ctx)
		e.Post(func() {
			if e.closed.IsSet() {
				return
			}
			onResult(val, err)
		})
	}()
}

// guardVoid is guard for calls with no result value.
func guardVoid(e *Engine, ctx context.Context, fetch func(context.Context) error, onResult func(error)) {
	guard[struct{}](e, ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fetch(ctx)
	}, func(_ struct{}, err error) {
		onResult(err)
	})
}

func (e *Engine) options(ctx context.Context) TunableOptions {
	e.optsMu.Lock()
	defer e.optsMu.Unlock()
	if !e.optsFetched && e.deps.Options != nil {
		if o, err := e.deps.Options.GetTunableOptions(ctx); err == nil {
			e.opts = o
			e.optsFetched = true
		} else {
			e.log.Err(err).Msg("failed to fetch tunable options, using defaults")
			e.opts = DefaultTunableOptions()
			e.optsFetched = true
		}
	} else if !e.optsFetched {
		e.opts = DefaultTunableOptions()
		e.optsFetched = true
	}
	return e.opts
}

// invalidateOptions forces the next options() call to refetch, mirroring
// the app-config hash invalidation pattern used by the teacher.
func (e *Engine) invalidateOptions() {
	e.optsMu.Lock()
	e.optsFetched = false
	e.optsMu.Unlock()
}

func (e *Engine) now() time.Time { return e.clock.Now() }
