package cookie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cookies (
	name    TEXT PRIMARY KEY,
	value   TEXT NOT NULL,
	expires INTEGER NOT NULL DEFAULT 0,
	path    TEXT NOT NULL DEFAULT '',
	domain  TEXT NOT NULL DEFAULT '',
	secure  INTEGER NOT NULL DEFAULT 0
)`

// Config holds configuration for the cookie store.
type Config struct {
	// Path is the sqlite file. ":memory:" keeps the jar in memory.
	Path string
	// ExpiryDays is the lifetime given to cookies written with Set.
	ExpiryDays int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return Config{
		Path:       filepath.Join(dir, "trendtape", "cookies.db"),
		ExpiryDays: DefaultExpiryDays,
	}
}

// Store is a cookie jar persisted in sqlite. Values are kept
// percent-encoded, as they would sit in the browser.
type Store struct {
	cfg    Config
	db     *sql.DB
	now    func() time.Time
	closed atomic.Bool
}

// Open opens or creates the jar at cfg.Path.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if cfg.ExpiryDays <= 0 {
		cfg.ExpiryDays = DefaultExpiryDays
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create cookie dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open cookie store %s: %w", cfg.Path, err)
	}
	// One connection keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cookie store %s: %w", cfg.Path, err)
	}

	return &Store{cfg: cfg, db: db, now: time.Now}, nil
}

// SetClock replaces the time source used for expiry.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Set writes name=value with the configured lifetime.
func (s *Store) Set(ctx context.Context, name, value string) error {
	return s.Put(ctx, Cookie{
		Name:    name,
		Value:   value,
		Expires: s.now().AddDate(0, 0, s.cfg.ExpiryDays),
	})
}

// Put writes c, replacing any cookie of the same name.
func (s *Store) Put(ctx context.Context, c Cookie) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := ValidateName(c.Name); err != nil {
		return err
	}

	var expires int64
	if !c.Expires.IsZero() {
		expires = c.Expires.Unix()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cookies (name, value, expires, path, domain, secure)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			expires = excluded.expires,
			path = excluded.path,
			domain = excluded.domain,
			secure = excluded.secure`,
		c.Name, Escape(c.Value), expires, c.Path, c.Domain, c.Secure)
	if err != nil {
		return fmt.Errorf("write cookie %s: %w", c.Name, err)
	}
	return nil
}

// Get returns the decoded value of name.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	c, err := s.Cookie(ctx, name)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Cookie returns the cookie called name. Expired cookies are reported as
// ErrNotFound.
func (s *Store) Cookie(ctx context.Context, name string) (Cookie, error) {
	if err := s.check(); err != nil {
		return Cookie{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT name, value, expires, path, domain, secure FROM cookies WHERE name = ?`, name)
	c, err := scanCookie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Cookie{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Cookie{}, fmt.Errorf("read cookie %s: %w", name, err)
	}
	if c.Expired(s.now()) {
		return Cookie{}, fmt.Errorf("%w: %s expired", ErrNotFound, name)
	}
	return c, nil
}

// Delete removes name. Deleting a missing cookie is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.check(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete cookie %s: %w", name, err)
	}
	return nil
}

// List returns the live cookies ordered by name.
func (s *Store) List(ctx context.Context) ([]Cookie, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value, expires, path, domain, secure FROM cookies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cookies: %w", err)
	}
	defer rows.Close()

	now := s.now()
	var out []Cookie
	for rows.Next() {
		c, err := scanCookie(rows)
		if err != nil {
			return nil, fmt.Errorf("list cookies: %w", err)
		}
		if c.Expired(now) {
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cookies: %w", err)
	}
	return out, nil
}

// Header renders the live cookies as document.cookie would read:
// "a=b; c=d" with encoded values.
func (s *Store) Header(ctx context.Context) (string, error) {
	cookies, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + Escape(c.Value)
	}
	return strings.Join(parts, "; "), nil
}

// Purge drops expired cookies and returns how many went.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM cookies WHERE expires != 0 AND expires <= ?`, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purge cookies: %w", err)
	}
	return res.RowsAffected()
}

// Attrs returns the attribute list stored in cookie name. A missing cookie
// yields an empty list.
func (s *Store) Attrs(ctx context.Context, name string) (Attrs, error) {
	v, err := s.Get(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseAttrs(v), nil
}

// GetAttr returns attribute key of cookie name.
func (s *Store) GetAttr(ctx context.Context, name, key string) (string, error) {
	attrs, err := s.Attrs(ctx, name)
	if err != nil {
		return "", err
	}
	v, ok := attrs.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrNotFound, name, key)
	}
	return v, nil
}

// SetAttr sets attribute key of cookie name, keeping the other attributes,
// and renews the cookie's lifetime.
func (s *Store) SetAttr(ctx context.Context, name, key, value string) error {
	attrs, err := s.Attrs(ctx, name)
	if err != nil {
		return err
	}
	return s.Set(ctx, name, attrs.Set(key, value).String())
}

// Close closes the database. Later calls fail with ErrClosed.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

func (s *Store) check() error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCookie(row scanner) (Cookie, error) {
	var (
		c       Cookie
		value   string
		expires int64
	)
	if err := row.Scan(&c.Name, &value, &expires, &c.Path, &c.Domain, &c.Secure); err != nil {
		return Cookie{}, err
	}
	c.Value = Unescape(value)
	if expires != 0 {
		c.Expires = time.Unix(expires, 0)
	}
	return c, nil
}
