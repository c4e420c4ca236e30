// Package telemetry provides the SDK façade over the session recorder and its
// collaborators (store, logging). Most applications interact with this
// package by:
//  1. Creating an SDK via New() with an API key (optionally overriding the
//     default in-memory store and no-op logger)
//  2. Calling Start() to obtain the process-wide recorder
//  3. Driving the session: StartSession, AddEvent, EndSession, SessionData
//
// All defaults are safe for local development and testing; production
// programs typically supply a durable store (see the store sub-packages and
// config.OpenStore) and a structured logger.
package telemetry

import (
	"fmt"
	"strings"

	"github.com/hupe1980/telemetry/core"
	"github.com/hupe1980/telemetry/logging"
	"github.com/hupe1980/telemetry/recorder"
	"github.com/hupe1980/telemetry/store"
)

// Options configures the SDK instance.
type Options struct {
	// APIKey identifies the application. Required.
	APIKey string

	// Store persists the session token and event document (defaults to an
	// in-memory store if not provided).
	Store core.Store

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// RecorderOptions are applied when the recorder is first created.
	RecorderOptions []func(o *recorder.Options)
}

// SDK is the top-level handle exposing the recorder.
type SDK struct {
	opts Options
}

// New validates the options and returns an SDK. It fails with
// core.ErrInvalidConfiguration when the API key is missing.
func New(optFns ...func(o *Options)) (*SDK, error) {
	opts := Options{
		Store:  store.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf(`%w: the property "APIKey" is required`, core.ErrInvalidConfiguration)
	}
	if opts.Store == nil {
		opts.Store = store.NewInMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &SDK{opts: opts}, nil
}

// APIKey returns the validated API key.
func (s *SDK) APIKey() string { return s.opts.APIKey }

// Start returns the process-wide recorder, creating it from this SDK's store
// and logger on first use. Every SDK in the process shares that recorder.
func (s *SDK) Start() *recorder.Recorder {
	return recorder.Default(s.opts.Store, s.recorderOptions()...)
}

// NewRecorder returns a recorder owned by the caller rather than the shared
// process-wide one. Useful for tests and programs that pass handles
// explicitly.
func (s *SDK) NewRecorder() *recorder.Recorder {
	return recorder.New(s.opts.Store, s.recorderOptions()...)
}

func (s *SDK) recorderOptions() []func(o *recorder.Options) {
	optFns := make([]func(o *recorder.Options), 0, len(s.opts.RecorderOptions)+1)
	optFns = append(optFns, func(o *recorder.Options) { o.Logger = s.opts.Logger })
	return append(optFns, s.opts.RecorderOptions...)
}
