package web

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"workout/internal/adapters/email"
	"workout/internal/adapters/http/middleware"
	"workout/internal/adapters/http/perf"
	accountStore "workout/internal/adapters/storage/account"
	noteStore "workout/internal/adapters/storage/note"
	ratingStore "workout/internal/adapters/storage/rating"
	"workout/internal/application/orchestrators"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore accountStore.Store
	NoteStore    noteStore.Store
	RatingStore  ratingStore.Store
}

// Options configures NewMux. Zero values are usable in development.
type Options struct {
	Production  bool
	CSRFKeyHex  string
	StaticDir   string
	RateLimit   int
	SlowRequest time.Duration
	Collector   *perf.Collector
	Mailer      email.Sender
	Recorder    orchestrators.ClassificationRecorder
	Tracer      trace.Tracer
}

// DefaultRateLimit is the per-IP requests per second used when Options.RateLimit is zero.
const DefaultRateLimit = 10

// ErrCSRFKeyRequired is returned when production runs without a CSRF key.
var ErrCSRFKeyRequired = errors.New("WORKOUT_CSRF_KEY is required in production")

// ErrCSRFKeyInvalid is returned when the configured CSRF key is not 32 hex-encoded bytes.
var ErrCSRFKeyInvalid = errors.New("WORKOUT_CSRF_KEY must be 64 hex characters (32 bytes)")

// loadCSRFKey decodes the CSRF secret. Development falls back to a random key per startup.
func loadCSRFKey(keyHex string, production bool) ([]byte, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, ErrCSRFKeyInvalid
		}
		return key, nil
	}
	if production {
		return nil, ErrCSRFKeyRequired
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	slog.Warn("csrf_key_random", "hint", "sessions won't survive restart; set WORKOUT_CSRF_KEY")
	return key, nil
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Welcome emails go through this sender; nil disables them.
var emailSender email.Sender

// Successful classifications are reported here; nil disables recording.
var classificationRecorder orchestrators.ClassificationRecorder

// NewMux wires HTTP handlers for the app.
// PRE: s has every store set
// POST: Returns the handler wrapped in the full middleware chain
func NewMux(s *Stores, opts Options) (http.Handler, error) {
	csrfKey, err := loadCSRFKey(opts.CSRFKeyHex, opts.Production)
	if err != nil {
		return nil, err
	}

	stores = s
	perfCollector = opts.Collector
	emailSender = opts.Mailer
	classificationRecorder = opts.Recorder
	sessions = middleware.NewSessionStore()
	sessions.StartSweeper(middleware.SessionSweepInterval)
	middleware.SecureCookies = opts.Production

	mux := http.NewServeMux()
	if opts.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir))))
	}
	registerRoutes(mux)

	rateLimit := opts.RateLimit
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	limiter := middleware.NewRateLimiter(rateLimit)

	// Request order: Trace -> Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, opts.Production, nil),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(opts.Collector, opts.SlowRequest),
		middleware.Trace(opts.Tracer),
	), nil
}
