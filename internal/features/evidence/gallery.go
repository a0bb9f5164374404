package evidence

import "regexp"

// View selects how much of the evidence a rendering shows
type View string

const (
	ViewCard   View = "card"
	ViewDetail View = "detail"
)

// CardLinkLimit is how many generic links a card view lists
const CardLinkLimit = 2

// Media is one carousel entry
type Media struct {
	Kind      Kind   `json:"kind"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Inline    bool   `json:"inline,omitempty"`
	// Index is the position in evidenceBase64 for inline images, or in
	// evidenceLinks for URL media
	Index int `json:"index"`
}

// Gallery is the display-ready view of a report's evidence
type Gallery struct {
	Media       []Media  `json:"media"`
	Links       []string `json:"links"`
	HiddenLinks int      `json:"hiddenLinks,omitempty"`
}

// BuildGallery merges inline images with URL media into one carousel
// sequence: inline images first, then URL images, then URL videos. Generic
// links are listed separately and truncated for the card view.
func BuildGallery(images, links []string, view View) Gallery {
	g := Gallery{
		Media: make([]Media, 0, len(images)+len(links)),
		Links: []string{},
	}

	for i, img := range images {
		g.Media = append(g.Media, Media{Kind: KindImage, Src: img, Inline: true, Index: i})
	}

	var videos []Media
	for i, link := range links {
		c := Classify(link)
		switch {
		case !c.IsMedia():
			g.Links = append(g.Links, link)
		case c.IsVideo():
			videos = append(videos, Media{Kind: c.Kind, Src: link, Thumbnail: c.Thumbnail, Index: i})
		default:
			g.Media = append(g.Media, Media{Kind: KindImage, Src: link, Index: i})
		}
	}
	g.Media = append(g.Media, videos...)

	if view == ViewCard && len(g.Links) > CardLinkLimit {
		g.HiddenLinks = len(g.Links) - CardLinkLimit
		g.Links = g.Links[:CardLinkLimit]
	}
	return g
}

var linkRegex = regexp.MustCompile(`https?://[^\s<]+`)

// Segment is a run of free text, either plain or a URL
type Segment struct {
	Text string `json:"text"`
	URL  bool   `json:"url,omitempty"`
}

// Linkify splits text into alternating plain and URL segments. Concatenating
// the segment texts yields the input.
func Linkify(text string) []Segment {
	segments := []Segment{}
	last := 0
	for _, loc := range linkRegex.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], URL: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}
