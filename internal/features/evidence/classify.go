package evidence

import (
	"fmt"
	"regexp"
)

// Kind is the display category of a piece of evidence
type Kind string

const (
	KindImage     Kind = "image"
	KindYouTube   Kind = "video-youtube"
	KindVideoFile Kind = "video-file"
	KindLink      Kind = "generic-link"
)

const youtubeThumbnailURL = "https://img.youtube.com/vi/%s/hqdefault.jpg"

var (
	youtubeRegex = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)
	imageRegex   = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg|bmp)(\?.*)?$`)
	videoRegex   = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)(\?.*)?$`)
)

// Classification is the result of classifying one evidence URL
type Classification struct {
	URL       string `json:"url"`
	Kind      Kind   `json:"kind"`
	VideoID   string `json:"videoId,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// IsMedia reports whether the item belongs in the carousel
func (c Classification) IsMedia() bool {
	return c.Kind != KindLink
}

// IsVideo reports whether the item is a YouTube or file video
func (c Classification) IsVideo() bool {
	return c.Kind == KindYouTube || c.Kind == KindVideoFile
}

// Classify assigns a URL to exactly one Kind. It never touches the network.
func Classify(url string) Classification {
	if m := youtubeRegex.FindStringSubmatch(url); m != nil {
		return Classification{
			URL:       url,
			Kind:      KindYouTube,
			VideoID:   m[1],
			Thumbnail: YouTubeThumbnail(m[1]),
		}
	}
	if imageRegex.MatchString(url) {
		return Classification{URL: url, Kind: KindImage}
	}
	if videoRegex.MatchString(url) {
		return Classification{URL: url, Kind: KindVideoFile}
	}
	return Classification{URL: url, Kind: KindLink}
}

// YouTubeThumbnail builds the thumbnail URL for a video id
func YouTubeThumbnail(id string) string {
	return fmt.Sprintf(youtubeThumbnailURL, id)
}

// Partition holds links split into disjoint buckets, each in input order
type Partition struct {
	Images  []Classification `json:"images"`
	YouTube []Classification `json:"youtube"`
	Videos  []Classification `json:"videos"`
	Links   []Classification `json:"links"`
}

// PartitionLinks classifies every link and buckets it by kind
func PartitionLinks(links []string) Partition {
	p := Partition{
		Images:  []Classification{},
		YouTube: []Classification{},
		Videos:  []Classification{},
		Links:   []Classification{},
	}
	for _, link := range links {
		c := Classify(link)
		switch c.Kind {
		case KindImage:
			p.Images = append(p.Images, c)
		case KindYouTube:
			p.YouTube = append(p.YouTube, c)
		case KindVideoFile:
			p.Videos = append(p.Videos, c)
		default:
			p.Links = append(p.Links, c)
		}
	}
	return p
}
