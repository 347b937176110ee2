// Package media rewrites third-party share links into embeddable forms.
// Pure string transformations; unrecognized input passes through untouched.
package media

import (
	"net/url"
	"strings"
)

// NormalizeYouTube turns watch/shorts/youtu.be/embed links into the
// canonical embed URL.
func NormalizeYouTube(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	var id string

	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.Trim(strings.TrimPrefix(u.Path, "/shorts/"), "/")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.Trim(strings.TrimPrefix(u.Path, "/embed/"), "/")
		}
	}

	if id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}

// NormalizeDrive converts Google Drive share links into a direct-view URL.
func NormalizeDrive(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.Contains(strings.ToLower(u.Host), "drive.google.com") {
		return raw
	}

	var id string
	if strings.HasPrefix(u.Path, "/file/d/") {
		rest := strings.TrimPrefix(u.Path, "/file/d/")
		if i := strings.Index(rest, "/"); i >= 0 {
			rest = rest[:i]
		}
		id = rest
	} else if v := u.Query().Get("id"); v != "" {
		id = v
	}

	if id == "" {
		return raw
	}
	return "https://drive.google.com/uc?export=view&id=" + id
}

// NormalizeTikTok strips tracking query params from TikTok video links.
func NormalizeTikTok(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.Contains(strings.ToLower(u.Host), "tiktok.com") {
		return raw
	}

	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "/")
}

// NormalizeVideoURL applies the host-appropriate rewrite. Empty stays empty.
func NormalizeVideoURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "youtu"):
		return NormalizeYouTube(raw)
	case strings.Contains(host, "drive.google"):
		return NormalizeDrive(raw)
	case strings.Contains(host, "tiktok"):
		return NormalizeTikTok(raw)
	}
	return raw
}
