package supabase

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/machinebox/graphql"

	"github.com/oshokin/studycast/internal/config"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/store"
	http_transport "github.com/oshokin/studycast/internal/transport/http"
	"github.com/oshokin/studycast/internal/utils"
	"github.com/oshokin/studycast/internal/version"
)

// Client defines the interface for interacting with the StudyCast backend.
type Client interface {
	// CreatePodcast inserts a podcast row.
	CreatePodcast(ctx context.Context, podcast *store.Podcast) error
	// DeletePodcast deletes a podcast row by id.
	DeletePodcast(ctx context.Context, id string) error
	// DownloadFromURL downloads content from the specified URL.
	DownloadFromURL(ctx context.Context, rawURL string) (*DownloadResult, error)
	// FindDuplicate returns the id of a podcast with the given key.
	FindDuplicate(ctx context.Context, key store.DuplicateKey) (string, bool, error)
	// GeneratePodcast invokes the generation function.
	GeneratePodcast(ctx context.Context, req *GeneratePodcastRequest) (*GeneratePodcastResponse, error)
	// GetBaseURL returns the project URL.
	GetBaseURL() string
	// GetPodcast returns one podcast by id.
	GetPodcast(ctx context.Context, id string) (*store.Podcast, error)
	// GetProfile returns the profile of a user.
	GetProfile(ctx context.Context, userID string) (*store.Profile, error)
	// ListPodcasts returns the podcasts of a user, newest first.
	ListPodcasts(ctx context.Context, userID string) ([]*store.Podcast, error)
	// SetFavorite changes the favorite flag of a podcast.
	SetFavorite(ctx context.Context, id string, favorite bool) error
	// UpdateProfile changes the given profile fields.
	UpdateProfile(ctx context.Context, userID string, update store.ProfileUpdate) error
}

// ClientImpl implements the Client interface for the hosted backend.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the project URL.
	baseURL string
	// appURL resolves relative audio locations.
	appURL *url.URL
	// httpClient sends authenticated backend requests.
	httpClient *http.Client
	// downloadClient fetches audio without backend credentials.
	downloadClient *http.Client
	// graphQLClient is the GraphQL client for profile queries.
	graphQLClient *graphql.Client
	// podcastsCache caches podcast rows read by id.
	podcastsCache *lru.Cache[string, *store.Podcast]
}

var _ store.Store = (*ClientImpl)(nil)

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.SupabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}

	appURL, err := url.Parse(cfg.AppURL)
	if err != nil {
		return nil, fmt.Errorf("invalid app URL: %w", err)
	}

	userAgentProvider := utils.NewAppUserAgentProvider("studycast", version.Short())
	baseTransport := http_transport.NewUserAgentInjector(
		http_transport.NewLogTransport(http.DefaultTransport, 0),
		userAgentProvider)

	// Credentials are only attached to backend requests, audio may live on other hosts.
	httpClient := &http.Client{
		Transport: http_transport.NewCredentialsInjector(baseTransport, cfg.AnonKey, func() string {
			return cfg.AccessToken
		}),
		Timeout: http_transport.DefaultTimeout,
	}

	downloadClient := &http.Client{Transport: baseTransport}

	graphQLClient := graphql.NewClient(baseURL.JoinPath(graphQLURI).String(), graphql.WithHTTPClient(httpClient))

	podcastsCache, err := lru.New[string, *store.Podcast](podcastsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create podcasts cache: %w", err)
	}

	return &ClientImpl{
		cfg:            cfg,
		baseURL:        baseURL.String(),
		appURL:         appURL,
		httpClient:     httpClient,
		downloadClient: downloadClient,
		graphQLClient:  graphQLClient,
		podcastsCache:  podcastsCache,
	}, nil
}

// GetBaseURL returns the project URL.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// ListPodcasts returns the podcasts of a user, newest first.
func (c *ClientImpl) ListPodcasts(ctx context.Context, userID string) ([]*store.Podcast, error) {
	query := url.Values{}
	query.Set("select", podcastListColumns)
	query.Set("user_id", eq(userID))
	query.Set("order", "created_at.desc")

	result, err := fetchJSON[[]*store.Podcast](c, ctx, restPodcastsURI, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}

	if result.Data == nil {
		return nil, nil
	}

	return *result.Data, nil
}

// GetPodcast returns one podcast by id.
// Uses an LRU cache to avoid repeated reads of the same row.
func (c *ClientImpl) GetPodcast(ctx context.Context, id string) (*store.Podcast, error) {
	if cached, ok := c.podcastsCache.Get(id); ok {
		logger.Debugf(ctx, "Podcast cache hit for ID: %s", id)

		return cached, nil
	}

	query := url.Values{}
	query.Set("select", allColumns)
	query.Set("id", eq(id))
	query.Set("limit", "1")

	result, err := fetchJSON[[]*store.Podcast](c, ctx, restPodcastsURI, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}

	if result.Data == nil || len(*result.Data) == 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrPodcastNotFound, id)
	}

	podcast := (*result.Data)[0]
	c.podcastsCache.Add(id, podcast)

	return podcast, nil
}

// FindDuplicate returns the id of a podcast with the given key.
func (c *ClientImpl) FindDuplicate(ctx context.Context, key store.DuplicateKey) (string, bool, error) {
	query := url.Values{}
	query.Set("select", "id")
	query.Set("user_id", eq(key.UserID))
	query.Set("subject", eq(key.Subject))
	query.Set("topic", eq(key.Topic))
	query.Set("mode", eq(key.Mode))
	query.Set("exam_board", eq(key.ExamBoard))
	query.Set("level", eq(key.Level))
	query.Set("limit", "1")

	result, err := fetchJSON[[]idRow](c, ctx, restPodcastsURI, query)
	if err != nil {
		return "", false, fmt.Errorf("failed to check for duplicates: %w", err)
	}

	if result.Data == nil || len(*result.Data) == 0 {
		return "", false, nil
	}

	return (*result.Data)[0].ID, true, nil
}

// CreatePodcast inserts a podcast row; a missing id or creation time is filled in.
func (c *ClientImpl) CreatePodcast(ctx context.Context, podcast *store.Podcast) error {
	if podcast.ID == "" {
		podcast.ID = uuid.NewString()
	}

	if podcast.CreatedAt.IsZero() {
		podcast.CreatedAt = time.Now().UTC()
	}

	_, err := doJSON[[]*store.Podcast](c, ctx, jsonCall{
		method: http.MethodPost,
		uri:    restPodcastsURI,
		body:   podcast,
		header: http.Header{preferHeader: []string{returnRepresentation}},
	})
	if err != nil {
		return fmt.Errorf("failed to create podcast: %w", err)
	}

	return nil
}

// DeletePodcast deletes a podcast row by id.
func (c *ClientImpl) DeletePodcast(ctx context.Context, id string) error {
	c.podcastsCache.Remove(id)

	query := url.Values{}
	query.Set("id", eq(id))

	result, err := doJSON[[]idRow](c, ctx, jsonCall{
		method: http.MethodDelete,
		uri:    restPodcastsURI,
		query:  query,
		header: http.Header{preferHeader: []string{returnRepresentation}},
	})
	if err != nil {
		return fmt.Errorf("failed to delete podcast: %w", err)
	}

	if result.Data == nil || len(*result.Data) == 0 {
		return fmt.Errorf("%w: %s", store.ErrPodcastNotFound, id)
	}

	return nil
}

// SetFavorite changes the favorite flag of a podcast.
func (c *ClientImpl) SetFavorite(ctx context.Context, id string, favorite bool) error {
	c.podcastsCache.Remove(id)

	query := url.Values{}
	query.Set("id", eq(id))

	result, err := doJSON[[]idRow](c, ctx, jsonCall{
		method: http.MethodPatch,
		uri:    restPodcastsURI,
		query:  query,
		body:   map[string]any{"is_favorite": favorite},
		header: http.Header{preferHeader: []string{returnRepresentation}},
	})
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}

	if result.Data == nil || len(*result.Data) == 0 {
		return fmt.Errorf("%w: %s", store.ErrPodcastNotFound, id)
	}

	return nil
}

// GetProfile returns the profile of a user.
func (c *ClientImpl) GetProfile(ctx context.Context, userID string) (*store.Profile, error) {
	graphqlRequest := graphql.NewRequest(`
		query getProfile($id: UUID!) {
			profilesCollection(filter: { id: { eq: $id } }, first: 1) {
				edges {
					node {
						id
						full_name
						email
						course
						year_group
						subjects
						has_completed_onboarding
						personalized_mode
					}
				}
			}
		}
	`)

	graphqlRequest.Var("id", userID)

	var response profilesQueryResponse
	if err := c.graphQLClient.Run(ctx, graphqlRequest, &response); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	edges := response.ProfilesCollection.Edges
	if len(edges) == 0 || edges[0].Node == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrProfileNotFound, userID)
	}

	return edges[0].Node, nil
}

// UpdateProfile changes the given profile fields.
func (c *ClientImpl) UpdateProfile(ctx context.Context, userID string, update store.ProfileUpdate) error {
	if update.Empty() {
		return store.ErrEmptyProfileUpdate
	}

	query := url.Values{}
	query.Set("id", eq(userID))

	result, err := doJSON[[]idRow](c, ctx, jsonCall{
		method: http.MethodPatch,
		uri:    restProfilesURI,
		query:  query,
		body:   update.Columns(),
		header: http.Header{preferHeader: []string{returnRepresentation}},
	})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.Data == nil || len(*result.Data) == 0 {
		return fmt.Errorf("%w: %s", store.ErrProfileNotFound, userID)
	}

	return nil
}

// GeneratePodcast invokes the generation function.
func (c *ClientImpl) GeneratePodcast(
	ctx context.Context,
	req *GeneratePodcastRequest,
) (*GeneratePodcastResponse, error) {
	result, err := doJSON[GeneratePodcastResponse](c, ctx, jsonCall{
		method: http.MethodPost,
		uri:    generatePodcastURI,
		body:   req,
	})
	if err != nil {
		if errors.Is(err, ErrUnexpectedHTTPStatus) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFunctionFailed, generatePodcastFunction, err)
		}

		return nil, err
	}

	if result.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFunctionResponse, generatePodcastFunction)
	}

	return result.Data, nil
}

// DownloadFromURL downloads content from the specified URL.
// Relative locations are resolved against the web application URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, rawURL string) (*DownloadResult, error) {
	location, err := c.resolveAudioURL(rawURL)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, location, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.downloadClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec,errcheck // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &DownloadResult{
		Body:        response.Body,
		ContentType: response.Header.Get("Content-Type"),
		TotalBytes:  response.ContentLength,
	}, nil
}

func (c *ClientImpl) resolveAudioURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrInvalidAudioURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAudioURL, err)
	}

	if parsed.IsAbs() {
		return parsed.String(), nil
	}

	return c.appURL.ResolveReference(parsed).String(), nil
}

// ParseDurationLabel converts a duration label such as "5m 30s", "330" or "5:30" into seconds.
// Unknown labels yield zero.
func ParseDurationLabel(label string) int {
	label = strings.ReplaceAll(strings.TrimSpace(label), " ", "")
	if label == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(label); err == nil {
		return max(0, seconds)
	}

	if minutes, seconds, ok := strings.Cut(label, ":"); ok {
		m, minutesErr := strconv.Atoi(minutes)
		s, secondsErr := strconv.Atoi(seconds)

		if minutesErr == nil && secondsErr == nil && m >= 0 && s >= 0 {
			return m*60 + s
		}

		return 0
	}

	parsed, err := time.ParseDuration(label)
	if err != nil || parsed < 0 {
		return 0
	}

	return int(parsed / time.Second)
}
