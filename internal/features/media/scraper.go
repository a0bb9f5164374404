package media

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/xyz-asif/voiceup/internal/features/evidence"
	"golang.org/x/net/html"
)

const (
	// maxPageBytes caps how much of a page is read when looking for metadata
	maxPageBytes = 1 << 20
	maxRedirects = 5
)

var ErrUnsupportedURL = errors.New("only public http and https links can be previewed")

// Preview describes an evidence link for display
type Preview struct {
	URL         string        `json:"url"`
	Kind        evidence.Kind `json:"kind"`
	VideoID     string        `json:"videoId,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Favicon     string        `json:"favicon,omitempty"`
}

// Scraper builds link previews. Generic pages are fetched once and cached.
type Scraper struct {
	client *http.Client
	cache  *cache.Cache
}

func NewScraper(ttl time.Duration) *Scraper {
	dialer := &net.Dialer{Timeout: 5 * time.Second, Control: guardDial}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &Scraper{
		client: newClient(transport),
		cache:  cache.New(ttl, 2*ttl),
	}
}

// newClient re-checks every redirect target the way the first URL is checked
func newClient(transport http.RoundTripper) *http.Client {
	return &http.Client{
		Timeout:   10 * time.Second,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("too many redirects")
			}
			return checkURL(req.URL.String())
		},
	}
}

// Preview classifies targetURL and, for generic links, scrapes the page
// title, description, thumbnail and favicon. Media links never hit the
// network.
func (s *Scraper) Preview(ctx context.Context, targetURL string) (*Preview, error) {
	targetURL = strings.TrimSpace(targetURL)
	if err := checkURL(targetURL); err != nil {
		return nil, err
	}

	class := evidence.Classify(targetURL)
	p := &Preview{
		URL:       targetURL,
		Kind:      class.Kind,
		VideoID:   class.VideoID,
		Thumbnail: class.Thumbnail,
	}
	switch class.Kind {
	case evidence.KindImage:
		p.Thumbnail = targetURL
		return p, nil
	case evidence.KindYouTube, evidence.KindVideoFile:
		return p, nil
	}

	if cached, ok := s.cache.Get(targetURL); ok {
		hit := *cached.(*Preview)
		return &hit, nil
	}

	if err := s.fetch(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Set(targetURL, p, cache.DefaultExpiration)

	out := *p
	return &out, nil
}

func (s *Scraper) fetch(ctx context.Context, p *Preview) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; VoiceUpBot/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// non-2xx pages still get a bare preview
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}
	parseHTMLMetadata(io.LimitReader(resp.Body, maxPageBytes), p)
	return nil
}

// parseHTMLMetadata fills p from the page's title, meta and link tags.
// Open Graph values win over plain ones.
func parseHTMLMetadata(body io.Reader, p *Preview) {
	doc, err := html.Parse(body)
	if err != nil {
		return
	}

	var ogTitle, ogDescription string
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && p.Title == "" {
					p.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				name := getAttr(n, "name")
				property := getAttr(n, "property")
				content := strings.TrimSpace(getAttr(n, "content"))

				switch {
				case property == "og:title":
					ogTitle = content
				case property == "og:description":
					ogDescription = content
				case name == "description" && p.Description == "":
					p.Description = content
				case property == "og:image":
					p.Thumbnail = resolveURL(p.URL, content)
				case name == "twitter:image" && p.Thumbnail == "":
					p.Thumbnail = resolveURL(p.URL, content)
				}
			case "link":
				rel := getAttr(n, "rel")
				href := getAttr(n, "href")
				if strings.Contains(rel, "icon") && href != "" && p.Favicon == "" {
					p.Favicon = resolveURL(p.URL, href)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)

	if ogTitle != "" {
		p.Title = ogTitle
	}
	if ogDescription != "" {
		p.Description = ogDescription
	}
}

// checkURL accepts absolute http(s) URLs whose host is not localhost or an
// internal address literal
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return ErrUnsupportedURL
	}
	host := strings.ToLower(u.Hostname())
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return ErrUnsupportedURL
	}
	if ip := net.ParseIP(host); ip != nil && internalIP(ip) {
		return ErrUnsupportedURL
	}
	return nil
}

// guardDial runs after name resolution, so hosts whose DNS points inside the
// network are refused as well
func guardDial(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil || internalIP(ip) {
		return ErrUnsupportedURL
	}
	return nil
}

func internalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}

// resolveURL resolves relative URLs against the base URL
func resolveURL(baseURLStr, relativeURL string) string {
	if relativeURL == "" {
		return ""
	}
	baseURL, err := url.Parse(baseURLStr)
	if err != nil {
		return relativeURL
	}
	relURL, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	return baseURL.ResolveReference(relURL).String()
}

func getAttr(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
