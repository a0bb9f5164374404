package media

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/evidence"
)

const page = `<html><head>
<title>Plain title</title>
<meta name="description" content="plain description">
<meta property="og:title" content="OG title">
<meta property="og:image" content="/img/cover.png">
<link rel="shortcut icon" href="/favicon.ico">
</head><body>hello</body></html>`

func TestParseHTMLMetadata(t *testing.T) {
	p := &Preview{URL: "https://news.example.com/story/1"}
	parseHTMLMetadata(strings.NewReader(page), p)

	require.Equal(t, "OG title", p.Title)
	require.Equal(t, "plain description", p.Description)
	require.Equal(t, "https://news.example.com/img/cover.png", p.Thumbnail)
	require.Equal(t, "https://news.example.com/favicon.ico", p.Favicon)
}

func TestPreview_MediaSkipsNetwork(t *testing.T) {
	s := NewScraper(time.Minute)
	s.client = &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, fmt.Errorf("network must not be used")
	})}

	p, err := s.Preview(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, evidence.KindYouTube, p.Kind)
	require.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", p.Thumbnail)

	p, err = s.Preview(context.Background(), "https://cdn.example.com/a.JPG")
	require.NoError(t, err)
	require.Equal(t, evidence.KindImage, p.Kind)
	require.Equal(t, "https://cdn.example.com/a.JPG", p.Thumbnail)
}

func TestPreview_GenericCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := NewScraper(time.Minute)
	// httptest listens on loopback, which checkURL refuses; route a public
	// looking host to it instead
	s.client = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		r.URL.Scheme = "http"
		r.URL.Host = strings.TrimPrefix(srv.URL, "http://")
		return http.DefaultTransport.RoundTrip(r)
	})}

	for i := 0; i < 2; i++ {
		p, err := s.Preview(context.Background(), "https://news.example.com/story")
		require.NoError(t, err)
		require.Equal(t, evidence.KindLink, p.Kind)
		require.Equal(t, "OG title", p.Title)
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCheckURL(t *testing.T) {
	for _, bad := range []string{
		"ftp://example.com/x",
		"javascript:alert(1)",
		"http://localhost:8080/admin",
		"http://127.0.0.1/",
		"http://10.0.0.5/",
		"http://169.254.169.254/latest/meta-data",
		"not a url",
	} {
		require.ErrorIs(t, checkURL(bad), ErrUnsupportedURL, bad)
	}
	require.NoError(t, checkURL("https://www.prothomalo.com/bangladesh"))
}

// routeHost sends requests for host to srv and everything else to the
// default transport
func routeHost(host string, srv *httptest.Server) http.RoundTripper {
	return roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Hostname() == host {
			r.URL.Scheme = "http"
			r.URL.Host = strings.TrimPrefix(srv.URL, "http://")
		}
		return http.DefaultTransport.RoundTrip(r)
	})
}

func TestPreview_RedirectIntoNetworkRefused(t *testing.T) {
	var secretHits int32
	secret := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&secretHits, 1)
		_, _ = w.Write([]byte("<title>INTERNAL-ADMIN</title>"))
	}))
	defer secret.Close()

	public := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, secret.URL+"/secret", http.StatusFound)
	}))
	defer public.Close()

	s := NewScraper(time.Minute)
	s.client = newClient(routeHost("go.example.com", public))

	_, err := s.Preview(context.Background(), "https://go.example.com/x")
	require.ErrorIs(t, err, ErrUnsupportedURL)
	require.Zero(t, atomic.LoadInt32(&secretHits))
}

func TestPreview_RedirectToPublicHostFollowed(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer target.Close()

	public := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://news.example.com/story", http.StatusMovedPermanently)
	}))
	defer public.Close()

	s := NewScraper(time.Minute)
	s.client = newClient(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		switch r.URL.Hostname() {
		case "short.example.com":
			return routeHost("short.example.com", public).RoundTrip(r)
		default:
			return routeHost("news.example.com", target).RoundTrip(r)
		}
	}))

	p, err := s.Preview(context.Background(), "https://short.example.com/abc")
	require.NoError(t, err)
	require.Equal(t, "OG title", p.Title)
}

func TestGuardDial(t *testing.T) {
	for _, bad := range []string{
		"127.0.0.1:80",
		"10.1.2.3:443",
		"192.168.0.10:8080",
		"169.254.169.254:80",
		"[::1]:443",
		"0.0.0.0:80",
	} {
		require.ErrorIs(t, guardDial("tcp", bad, nil), ErrUnsupportedURL, bad)
	}
	require.NoError(t, guardDial("tcp", "93.184.216.34:443", nil))
}

func TestFetch_ResolvedLoopbackRefused(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	// fetch skips checkURL, so only the dial guard stands in the way
	err := NewScraper(time.Minute).fetch(context.Background(), &Preview{URL: srv.URL})
	require.ErrorIs(t, err, ErrUnsupportedURL)
	require.Zero(t, atomic.LoadInt32(&hits))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
