package lastfm

import (
	"context"
	"encoding/xml"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shkh/lastfm-go/lastfm"

	"github.com/llehouerou/topplays/internal/artwork"
	"github.com/llehouerou/topplays/internal/history"
)

var hit = history.TrackIdentity{Track: "Hit", Artist: "Band"}

func newInfoClient(t *testing.T, timeout time.Duration, info func(lastfm.P) (lastfm.TrackGetInfo, error)) *Client {
	t.Helper()
	c, err := New(Options{APIKey: "key", Username: "someone", Timeout: timeout})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.trackInfo = info
	return c
}

// hang blocks until the test ends, like a server that never answers.
func hang(t *testing.T) func(lastfm.P) (lastfm.TrackGetInfo, error) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	return func(lastfm.P) (lastfm.TrackGetInfo, error) {
		<-release
		return lastfm.TrackGetInfo{}, errors.New("released")
	}
}

func TestTrackImages_ClientTimeout(t *testing.T) {
	c := newInfoClient(t, 50*time.Millisecond, hang(t))

	start := time.Now()
	_, err := c.TrackImages(context.Background(), hit)

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("TrackImages returned after %v, want about 50ms", elapsed)
	}
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestTrackImages_ContextCancelled(t *testing.T) {
	c := newInfoClient(t, time.Minute, hang(t))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		_, err := c.TrackImages(ctx, hit)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("TrackImages ignored cancellation")
	}
}

func TestTrackImages_MapsAlbumImages(t *testing.T) {
	var info lastfm.TrackGetInfo
	payload := `<track><name>Hit</name><album>
		<title>Record</title>
		<image size="small">https://img/s.png</image>
		<image size="large"> https://img/l.png </image>
		<image size="extralarge">https://img/xl.png</image>
	</album></track>`
	if err := xml.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	var got lastfm.P
	c := newInfoClient(t, time.Second, func(p lastfm.P) (lastfm.TrackGetInfo, error) {
		got = p
		return info, nil
	})

	images, err := c.TrackImages(context.Background(), hit)
	if err != nil {
		t.Fatalf("TrackImages failed: %v", err)
	}

	want := []artwork.Image{
		{Size: artwork.Size("small"), URL: "https://img/s.png"},
		{Size: artwork.Size("large"), URL: "https://img/l.png"},
		{Size: artwork.SizeExtraLarge, URL: "https://img/xl.png"},
	}
	if len(images) != len(want) {
		t.Fatalf("got %d images, want %d: %+v", len(images), len(want), images)
	}
	for i := range want {
		if images[i] != want[i] {
			t.Errorf("image %d = %+v, want %+v", i, images[i], want[i])
		}
	}
	if got["artist"] != "Band" || got["track"] != "Hit" {
		t.Errorf("params = %v", got)
	}
}

func TestTrackImages_ServiceError(t *testing.T) {
	c := newInfoClient(t, time.Second, func(lastfm.P) (lastfm.TrackGetInfo, error) {
		return lastfm.TrackGetInfo{}, &lastfm.LastfmError{Code: CodeInvalidParameters, Message: "Track not found"}
	})

	_, err := c.TrackImages(context.Background(), hit)

	svcErr, ok := IsServiceError(err)
	if !ok {
		t.Fatalf("expected *ServiceError, got %T (%v)", err, err)
	}
	if svcErr.Message != "Track not found" {
		t.Errorf("Message = %q", svcErr.Message)
	}
}

func TestClassify(t *testing.T) {
	plain := errors.New("other")

	tests := []struct {
		name       string
		err        error
		wantSvc    int // ServiceError code, 0 when not a ServiceError
		wantStatus int // TransportError status, -1 when not a TransportError
	}{
		{"api error", &lastfm.LastfmError{Code: CodeRateLimited, Message: "slow down"}, CodeRateLimited, -1},
		{"server error", &lastfm.LastfmError{Code: 503, Message: "503 Service Unavailable"}, 0, 503},
		{"url error", &url.Error{Op: "Get", URL: "https://x", Err: errors.New("refused")}, 0, 0},
		{"other", plain, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			svcErr, isSvc := IsServiceError(got)
			if tt.wantSvc != 0 {
				if !isSvc || svcErr.Code != tt.wantSvc {
					t.Errorf("classify() = %v, want ServiceError %d", got, tt.wantSvc)
				}
			} else if isSvc {
				t.Errorf("classify() = %v, want no ServiceError", got)
			}

			var tErr *TransportError
			isTransport := errors.As(got, &tErr)
			switch {
			case tt.wantStatus < 0 && isTransport:
				t.Errorf("classify() = %v, want no TransportError", got)
			case tt.wantStatus >= 0 && !isTransport:
				t.Errorf("classify() = %T, want TransportError", got)
			case isTransport && tErr.StatusCode != tt.wantStatus:
				t.Errorf("StatusCode = %d, want %d", tErr.StatusCode, tt.wantStatus)
			}

			if tt.err == plain && got != plain {
				t.Error("unknown errors should pass through")
			}
		})
	}
}
