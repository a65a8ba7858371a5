package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/zappabad/trendtape/internal/config"
	"github.com/zappabad/trendtape/internal/cookie"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "cookies.db")
	return &cfg
}

func topicTexts(a *App) []string {
	var texts []string
	for _, topic := range a.Feed.Topics() {
		texts = append(texts, topic.Text)
	}
	return texts
}

func TestNewUsesConfiguredTopics(t *testing.T) {
	cfg := testConfig(t)
	cfg.Feed.Topics = []string{"one topic", "another topic"}

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Watcher)
	require.NotNil(t, a.Jar)
	require.Eventually(t, func() bool { return len(a.Feed.Topics()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"one topic", "another topic"}, topicTexts(a))
}

func TestNewLoadsContentFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "topics.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file\n// skipped\n\nsecond line\n"), 0o644))
	cfg.Feed.ContentFile = path

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Watcher)
	require.Eventually(t, func() bool { return len(a.Feed.Topics()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"from file", "second line"}, topicTexts(a))
}

func TestNewMissingContentFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Feed.ContentFile = filepath.Join(t.TempDir(), "missing.txt")

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewSurvivesBrokenJar(t *testing.T) {
	cfg := testConfig(t)
	// A directory where the database file should be cannot be opened.
	cfg.Store.Path = t.TempDir()

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()
	assert.Nil(t, a.Jar)
}

func TestCloseClosesJar(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), nil)
	require.NoError(t, err)
	jar := a.Jar

	a.Close()
	_, err = jar.Get(context.Background(), cookie.StateCookie)
	assert.ErrorIs(t, err, cookie.ErrClosed)
}
