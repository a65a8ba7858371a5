package cookie

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "jar", "cookies.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSetGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, StateCookie, "seed=solar power"))

	v, err := s.Get(ctx, StateCookie)
	require.NoError(t, err)
	assert.Equal(t, "seed=solar power", v)

	c, err := s.Cookie(ctx, StateCookie)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, DefaultExpiryDays), c.Expires, time.Minute)

	require.NoError(t, s.Set(ctx, StateCookie, "seed=Mars"))
	v, err = s.Get(ctx, StateCookie)
	require.NoError(t, err)
	assert.Equal(t, "seed=Mars", v, "set replaces")
}

func TestStoreMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsBadNames(t *testing.T) {
	s := openTestStore(t)
	err := s.Set(context.Background(), "bad name", "x")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestStoreExpiry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Date(2011, time.January, 8, 0, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	require.NoError(t, s.Set(ctx, AccountCookie, "account=patrick"))
	require.NoError(t, s.Put(ctx, Cookie{Name: "session", Value: "1"}))

	now = now.AddDate(0, 0, DefaultExpiryDays+1)

	_, err := s.Get(ctx, AccountCookie)
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "1", v, "session cookies do not expire")

	cookies, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)

	purged, err := s.Purge(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)
}

func TestStoreDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, AccountCookie, "account=patrick"))
	require.NoError(t, s.Delete(ctx, AccountCookie))
	_, err := s.Get(ctx, AccountCookie)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Delete(ctx, AccountCookie), "deleting twice is fine")
}

func TestStoreListAndHeader(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, StateCookie, "seed=Mars"))
	require.NoError(t, s.Put(ctx, Cookie{Name: AccountCookie, Value: "account=pat", Path: "/", Secure: true}))

	cookies, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 2)
	assert.Equal(t, AccountCookie, cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, StateCookie, cookies[1].Name)

	header, err := s.Header(ctx)
	require.NoError(t, err)
	assert.Equal(t, "24x7c=account%3Dpat; 24x7cs=seed%3DMars", header)
	assert.Equal(t, map[string]string{
		AccountCookie: "account=pat",
		StateCookie:   "seed=Mars",
	}, ParseHeader(header))
}

func TestStoreAttrs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.GetAttr(ctx, StateCookie, AttrSeed)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetAttr(ctx, StateCookie, AttrSeed, "Mars"))
	require.NoError(t, s.SetAttr(ctx, StateCookie, AttrSelection, "twitter"))
	require.NoError(t, s.SetAttr(ctx, StateCookie, AttrSeed, "Venus"))

	v, err := s.GetAttr(ctx, StateCookie, AttrSeed)
	require.NoError(t, err)
	assert.Equal(t, "Venus", v)

	raw, err := s.Get(ctx, StateCookie)
	require.NoError(t, err)
	assert.Equal(t, "seed=Venus:selection=twitter", raw)

	_, err = s.GetAttr(ctx, StateCookie, AttrAccount)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.db")
	ctx := context.Background()

	s, err := Open(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.SetAttr(ctx, AccountCookie, AttrAccount, "patrick"))
	require.NoError(t, s.Close())

	s, err = Open(Config{Path: path})
	require.NoError(t, err)
	defer s.Close()

	v, err := s.GetAttr(ctx, AccountCookie, AttrAccount)
	require.NoError(t, err)
	assert.Equal(t, "patrick", v)
}

func TestStoreClosed(t *testing.T) {
	s, err := Open(Config{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	ctx := context.Background()
	assert.ErrorIs(t, s.Set(ctx, "a", "b"), ErrClosed)
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}
