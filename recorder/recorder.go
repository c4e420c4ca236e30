package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/telemetry/core"
	"github.com/hupe1980/telemetry/logging"
	"github.com/hupe1980/telemetry/store"
)

// Options configures a Recorder.
type Options struct {
	// Logger receives lifecycle and store diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
	// Clock stamps event timestamps. Defaults to time.Now.
	Clock func() time.Time
	// NewToken generates session tokens. Defaults to random UUIDs.
	NewToken func() string
	// RestoreSession adopts a session token found in the store at
	// construction, letting a session span process restarts.
	RestoreSession bool
}

// Recorder records named events for one session at a time.
// All methods are safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	store    core.Store
	token    string
	logger   logging.Logger
	clock    func() time.Time
	newToken func() string
}

// New creates a Recorder persisting through s. A nil store falls back to an
// in-memory store.
func New(s core.Store, optFns ...func(o *Options)) *Recorder {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Clock:    time.Now,
		NewToken: uuid.NewString,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if s == nil {
		s = store.NewInMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewToken == nil {
		opts.NewToken = uuid.NewString
	}

	r := &Recorder{store: s, logger: opts.Logger, clock: opts.Clock, newToken: opts.NewToken}
	if opts.RestoreSession {
		r.restore()
	}
	return r
}

func (r *Recorder) restore() {
	token, ok, err := r.get(core.SessionKey)
	if err != nil {
		r.logger.Warn("Session restore failed", "error", err)
		return
	}
	if ok && token != "" {
		r.token = token
		r.logger.Info("Session restored", "session_id", token)
	}
}

// StartSession begins a new session with a fresh token and an empty event
// document, discarding any events of the previous session. Calling it while
// a session is active replaces that session.
func (r *Recorder) StartSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := r.newToken()
	if err := r.put(core.SessionKey, token); err != nil {
		return err
	}
	if err := r.put(core.EventsKey, core.EmptyDocument); err != nil {
		return err
	}
	if r.token != "" {
		r.logger.Info("Session replaced", "previous_session_id", r.token, "session_id", token)
	}
	r.token = token
	r.logger.Info("Session started", "session_id", token)
	return nil
}

// AddEvent records name with the current time and the given properties,
// overwriting any earlier event of the same name. It returns
// core.ErrInvalidState when no session is active.
func (r *Recorder) AddEvent(name string, properties map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.token == "" {
		return fmt.Errorf("%w: start a session before adding event %q", core.ErrInvalidState, name)
	}
	if name == "" {
		return fmt.Errorf("%w: event name must not be empty", core.ErrInvalidEvent)
	}

	coll, err := r.loadCollection()
	if err != nil {
		return err
	}
	coll.Put(name, core.NewEventRecord(r.clock(), properties))

	doc, err := coll.Encode()
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", core.ErrInvalidEvent, name, err)
	}
	if err := r.put(core.EventsKey, doc.String()); err != nil {
		return err
	}
	r.logger.Debug("Event recorded", "session_id", r.token, "event", name, "events", len(coll))
	return nil
}

// EndSession clears the active session. Recorded events stay in the store.
// It returns core.ErrInvalidState when no session is active.
func (r *Recorder) EndSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.token == "" {
		return fmt.Errorf("%w: no session to end", core.ErrInvalidState)
	}
	if err := r.remove(core.SessionKey); err != nil {
		return err
	}
	r.logger.Info("Session ended", "session_id", r.token)
	r.token = ""
	return nil
}

// SessionData returns the serialized event document of the current or most
// recent session, or an empty document if none was ever started. The only
// error is core.ErrIOFailure.
func (r *Recorder) SessionData() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok, err := r.get(core.EventsKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return core.EmptyDocument, nil
	}
	return doc, nil
}

// Snapshot is SessionData as a core.Document.
func (r *Recorder) Snapshot() (core.Document, error) {
	doc, err := r.SessionData()
	return core.Document(doc), err
}

// SessionID returns the active session token.
func (r *Recorder) SessionID() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token, r.token != ""
}

// Active reports whether a session is active.
func (r *Recorder) Active() bool {
	_, ok := r.SessionID()
	return ok
}

// loadCollection reads the event document; caller must hold mu. A missing or
// undecodable document yields an empty collection.
func (r *Recorder) loadCollection() (core.EventCollection, error) {
	doc, ok, err := r.get(core.EventsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return core.EventCollection{}, nil
	}
	coll, err := core.DecodeEventCollection(doc)
	if err != nil {
		r.logger.Warn("Event document unreadable, starting from empty", "session_id", r.token, "error", err)
		return core.EventCollection{}, nil
	}
	return coll, nil
}

// storeCallLogger is implemented by loggers that record store call latency
// (logging.RecorderLogger).
type storeCallLogger interface {
	LogStoreCall(op, key string, dur time.Duration, err error)
}

func (r *Recorder) observe(op, key string, start time.Time, err error) {
	if l, ok := r.logger.(storeCallLogger); ok {
		l.LogStoreCall(op, key, time.Since(start), err)
		return
	}
	if err != nil {
		r.logger.Error("Store call failed", "op", op, "key", key, "error", err)
	}
}

func (r *Recorder) get(key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := r.store.Get(key)
	r.observe("get", key, start, err)
	if err != nil {
		return "", false, ioFailure("get", key, err)
	}
	return v, ok, nil
}

func (r *Recorder) put(key, value string) error {
	start := time.Now()
	err := r.store.Put(key, value)
	r.observe("put", key, start, err)
	if err != nil {
		return ioFailure("put", key, err)
	}
	return nil
}

func (r *Recorder) remove(key string) error {
	start := time.Now()
	err := r.store.Remove(key)
	r.observe("remove", key, start, err)
	if err != nil {
		return ioFailure("remove", key, err)
	}
	return nil
}

func ioFailure(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", core.ErrIOFailure, op, key, err)
}
