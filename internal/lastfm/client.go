package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shkh/lastfm-go/lastfm"

	"github.com/llehouerou/topplays/internal/artwork"
	"github.com/llehouerou/topplays/internal/history"
)

const (
	// DefaultBaseURL is the Last.fm API endpoint.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"
	userAgent      = "topplays/0.1 (https://github.com/llehouerou/topplays)"

	defaultTimeout    = 30 * time.Second
	defaultRetryDelay = time.Second
	maxRetryDelay     = 15 * time.Second
)

// ErrMissingCredentials is returned when no API key or username is set.
var ErrMissingCredentials = errors.New("last.fm api key and username are required")

// Options configures a Client.
type Options struct {
	APIKey     string
	APISecret  string
	Username   string
	BaseURL    string        // defaults to DefaultBaseURL
	Timeout    time.Duration // per HTTP request
	MaxRetries int           // retries of transient failures
	RetryDelay time.Duration // first backoff delay, doubled on each retry

	HTTPClient *http.Client // overrides Timeout when set
}

// Client reads a user's listening history and track artwork from Last.fm.
type Client struct {
	api        *lastfm.Api
	trackInfo  func(lastfm.P) (lastfm.TrackGetInfo, error)
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	apiKey     string
	username   string
	maxRetries int
	retryDelay time.Duration
}

// Compile-time checks that Client serves the pipeline.
var (
	_ history.PageFetcher = (*Client)(nil)
	_ artwork.Lookup      = (*Client)(nil)
)

// New creates a new Last.fm client.
func New(opts Options) (*Client, error) {
	if opts.APIKey == "" || opts.Username == "" {
		return nil, ErrMissingCredentials
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	retryDelay := opts.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	api := lastfm.New(opts.APIKey, opts.APISecret)
	return &Client{
		api:        api,
		trackInfo:  func(p lastfm.P) (lastfm.TrackGetInfo, error) { return api.Track.GetInfo(p) },
		httpClient: httpClient,
		timeout:    timeout,
		baseURL:    baseURL,
		apiKey:     opts.APIKey,
		username:   opts.Username,
		maxRetries: max(opts.MaxRetries, 0),
		retryDelay: retryDelay,
	}, nil
}

// Username returns the user whose history is read.
func (c *Client) Username() string {
	return c.username
}

// RecentTracks fetches one page of the user's scrobbles within r.
func (c *Client) RecentTracks(ctx context.Context, r history.Range, page int) (history.Page, error) {
	from, to := r.Epochs()

	params := url.Values{}
	params.Set("method", "user.getrecenttracks")
	params.Set("user", c.username)
	params.Set("api_key", c.apiKey)
	params.Set("from", strconv.FormatInt(from, 10))
	params.Set("to", strconv.FormatInt(to, 10))
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(history.PageSize))
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return history.Page{}, fmt.Errorf("get recent tracks: %w", err)
	}

	result, err := parseRecentTracks(body)
	if err != nil {
		return history.Page{}, fmt.Errorf("get recent tracks: %w", err)
	}
	return result, nil
}

// TrackImages fetches the album artwork variants of a track.
//
// lastfm-go takes no context and sets no deadline, so the call runs in its
// own goroutine and is abandoned once ctx ends or the client timeout passes.
func (c *Client) TrackImages(ctx context.Context, id history.TrackIdentity) ([]artwork.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := lastfm.P{
		"artist":      id.Artist,
		"track":       id.Track,
		"autocorrect": 1,
	}

	type infoResult struct {
		info lastfm.TrackGetInfo
		err  error
	}
	done := make(chan infoResult, 1)
	go func() {
		info, err := c.trackInfo(params)
		done <- infoResult{info: info, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get track info: %w", &TransportError{Err: ctx.Err()})
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("get track info: %w", classify(res.err))
		}
		return albumImages(res.info), nil
	}
}

func albumImages(info lastfm.TrackGetInfo) []artwork.Image {
	images := make([]artwork.Image, 0, len(info.Album.Images))
	for _, img := range info.Album.Images {
		images = append(images, artwork.Image{
			Size: artwork.Size(img.Size),
			URL:  strings.TrimSpace(img.Url),
		})
	}
	return images
}

// classify maps lastfm-go errors onto this package's error kinds. The
// library reports 5xx responses as a LastfmError carrying the status code.
func classify(err error) error {
	var apiErr *lastfm.LastfmError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= 500 {
			return &TransportError{StatusCode: apiErr.Code, Err: err}
		}
		return &ServiceError{Code: apiErr.Code, Message: apiErr.Message}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &TransportError{Err: err}
	}
	return err
}

// get performs a GET with exponential backoff on transient failures and
// returns the response body.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, delay); err != nil {
				return nil, &TransportError{Err: err}
			}
			delay = min(delay*2, maxRetryDelay)
		}

		body, err := c.do(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		if !transient(err) || ctx.Err() != nil {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// errorEnvelope is the payload Last.fm sends instead of a result.
type errorEnvelope struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	// Last.fm reports errors in the body, sometimes with a 200 status.
	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Error != 0 {
		return nil, &ServiceError{Code: env.Error, Message: env.Message}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return body, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
