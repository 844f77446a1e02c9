package fetch

import (
	"net/url"
	"strings"
)

// Platform is a known learning-resource host.
type Platform string

const (
	PlatformYouTube      Platform = "youtube"
	PlatformUdemy        Platform = "udemy"
	PlatformCoursera     Platform = "coursera"
	PlatformPluralsight  Platform = "pluralsight"
	PlatformUdacity      Platform = "udacity"
	PlatformFreeCodeCamp Platform = "freecodecamp"
	PlatformOther        Platform = "other"
)

var platformHosts = []struct {
	suffix   string
	platform Platform
}{
	{"youtube.com", PlatformYouTube},
	{"youtu.be", PlatformYouTube},
	{"udemy.com", PlatformUdemy},
	{"coursera.org", PlatformCoursera},
	{"pluralsight.com", PlatformPluralsight},
	{"udacity.com", PlatformUdacity},
	{"freecodecamp.org", PlatformFreeCodeCamp},
}

// DetectPlatform identifies the learning platform hosting a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformOther
	}

	host := strings.ToLower(parsed.Hostname())
	for _, h := range platformHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.platform
		}
	}
	return PlatformOther
}

// PaidPlatform reports whether the platform sells most of its courses.
func PaidPlatform(p Platform) bool {
	switch p {
	case PlatformUdemy, PlatformCoursera, PlatformPluralsight, PlatformUdacity:
		return true
	default:
		return false
	}
}
