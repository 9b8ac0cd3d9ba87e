package studycast

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/studycast/internal/audio"
	"github.com/oshokin/studycast/internal/client/supabase"
	"github.com/oshokin/studycast/internal/generation"
	"github.com/oshokin/studycast/internal/library"
	"github.com/oshokin/studycast/internal/player"
	mock_store "github.com/oshokin/studycast/internal/store/mocks"
)

const testUserID = "user-1"

var (
	errOffline = errors.New("offline")
	errBoom    = errors.New("boom")
)

// recordingNotifier collects notifications.
type recordingNotifier struct {
	mu    sync.Mutex
	items []Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = append(n.items, notification)
}

func (n *recordingNotifier) titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	titles := make([]string, 0, len(n.items))
	for _, item := range n.items {
		titles = append(titles, item.Title)
	}

	return titles
}

func (n *recordingNotifier) last() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.items) == 0 {
		return Notification{}
	}

	return n.items[len(n.items)-1]
}

// fakeGenerator returns a canned result and records requests.
type fakeGenerator struct {
	mu       sync.Mutex
	requests []generation.Request
	result   *generation.Result
	err      error
}

func (g *fakeGenerator) Generate(_ context.Context, req generation.Request) (*generation.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.requests = append(g.requests, req)

	if g.err != nil {
		return nil, g.err
	}

	result := *g.result
	result.Request = req

	return &result, nil
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.requests)
}

// fakeDownloader serves fixed bytes.
type fakeDownloader struct {
	data  []byte
	calls int
}

func (d *fakeDownloader) DownloadFromURL(_ context.Context, _ string) (*supabase.DownloadResult, error) {
	d.calls++

	return &supabase.DownloadResult{
		Body:        io.NopCloser(bytes.NewReader(d.data)),
		ContentType: "audio/wav",
		TotalBytes:  int64(len(d.data)),
	}, nil
}

// recordingTagProcessor records tag requests.
type recordingTagProcessor struct {
	requests []*WriteTagsRequest
}

func (tp *recordingTagProcessor) WriteTags(_ context.Context, req *WriteTagsRequest) error {
	tp.requests = append(tp.requests, req)

	return nil
}

type testEnv struct {
	service    *ServiceImpl
	store      *mock_store.MockStore
	generator  *fakeGenerator
	notifier   *recordingNotifier
	player     *player.Controller
	downloader *fakeDownloader
	tags       *recordingTagProcessor
}

func newTestEnv(t *testing.T, resolver DuplicateResolver) *testEnv {
	t.Helper()

	catalog, err := library.DefaultCatalog()
	require.NoError(t, err)

	output := audio.NewNullOutput(8000, 0)
	opener := func(context.Context, string) (io.ReadCloser, string, error) { return nil, "", errOffline }
	controller := player.NewController(context.Background(), player.NewSourceFactory(output, opener, time.Hour), nil)

	t.Cleanup(func() {
		_ = controller.Close()
		_ = output.Close()
	})

	env := &testEnv{
		store:      mock_store.NewMockStore(gomock.NewController(t)),
		generator:  &fakeGenerator{result: &generation.Result{ID: "gen-1", Seq: 1}},
		notifier:   &recordingNotifier{},
		player:     controller,
		downloader: &fakeDownloader{},
		tags:       &recordingTagProcessor{},
	}

	svc := NewService(Options{
		UserID: testUserID,
		AppURL: "https://studycast.dev/",
	}, Dependencies{
		Catalog:      catalog,
		Store:        env.store,
		Downloader:   env.downloader,
		Generator:    env.generator,
		Player:       controller,
		Notifier:     env.notifier,
		Resolver:     resolver,
		TagProcessor: env.tags,
	})

	env.service, _ = svc.(*ServiceImpl)

	return env
}

func stringPtr(s string) *string {
	return &s
}
