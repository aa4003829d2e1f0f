package provider

import (
	"sync"
	"time"

	"dayflow/config"
	"dayflow/internal/blacklist"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type Opener func(url string) (*gorm.DB, error)

// Factory hands out provider clients. Database handles are opened lazily and
// cached per URL, so clients stay cheap to build on every request.
type Factory struct {
	secret       []byte
	sessionTTL   time.Duration
	autoConfirm  bool
	autoMigrate  bool
	passwordCost int
	open         Opener
	revoker      blacklist.Blacklist
	now          func() time.Time

	mu    sync.Mutex
	conns map[string]*gorm.DB
	dials singleflight.Group
}

type FactoryOption func(*Factory)

func WithOpener(open Opener) FactoryOption {
	return func(f *Factory) { f.open = open }
}

func WithRevoker(revoker blacklist.Blacklist) FactoryOption {
	return func(f *Factory) { f.revoker = revoker }
}

func WithSessionTTL(ttl time.Duration) FactoryOption {
	return func(f *Factory) { f.sessionTTL = ttl }
}

func WithAutoConfirm(enabled bool) FactoryOption {
	return func(f *Factory) { f.autoConfirm = enabled }
}

// WithAutoMigrate migrates the schema the first time a URL is opened.
func WithAutoMigrate(enabled bool) FactoryOption {
	return func(f *Factory) { f.autoMigrate = enabled }
}

func WithPasswordCost(cost int) FactoryOption {
	return func(f *Factory) { f.passwordCost = cost }
}

func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) { f.now = now }
}

func NewFactory(secret string, opts ...FactoryOption) *Factory {
	f := &Factory{
		secret:       []byte(secret),
		sessionTTL:   time.Hour,
		autoConfirm:  true,
		passwordCost: bcrypt.DefaultCost,
		open:         config.ConnectDB,
		revoker:      blacklist.NewMemoryBlacklist(),
		now:          time.Now,
		conns:        make(map[string]*gorm.DB),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Client validates apiKey and returns a client bound to url. No connection is
// made until the client touches the database.
func (f *Factory) Client(url string, apiKey string, opts ...ClientOption) (*Client, error) {
	role, err := parseAPIKey(f.secret, apiKey)
	if err != nil {
		return nil, err
	}
	c := &Client{
		factory: f,
		url:     url,
		keyRole: role,
		persist: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (f *Factory) cached(url string) (*gorm.DB, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	db, ok := f.conns[url]
	return db, ok
}

// db returns the handle for url. Concurrent first opens of one URL share a
// single dial; the cache lock is never held while dialing, so other URLs and
// cached handles are not blocked by a slow or unreachable database. Failures
// are not cached.
func (f *Factory) db(url string) (*gorm.DB, error) {
	if db, ok := f.cached(url); ok {
		return db, nil
	}
	v, err, _ := f.dials.Do(url, func() (interface{}, error) {
		if db, ok := f.cached(url); ok {
			return db, nil
		}
		db, err := f.open(url)
		if err != nil {
			return nil, Classify(err)
		}
		if f.autoMigrate {
			if err := config.Migrate(db); err != nil {
				return nil, Classify(err)
			}
		}
		f.mu.Lock()
		f.conns[url] = db
		f.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gorm.DB), nil
}

func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var firstErr error
	for url, db := range f.conns {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		delete(f.conns, url)
	}
	return firstErr
}
