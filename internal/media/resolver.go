// Package media classifies raw video references (an uploaded file or a
// URL) into embeddable media references. Classification never fails: every
// shape of input maps to a defined MediaReference, with an empty Embed
// signalling "nothing renderable".
package media

import (
	"regexp"
	"strings"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	vimeoEmbedBase   = "https://player.vimeo.com/video/"
	driveEmbedBase   = "https://drive.google.com/file/d/"
)

// YouTube video ids are exactly 11 characters.
const youtubeIDLength = 11

var (
	// Tolerant match across the known YouTube URL shapes: watch?v=ID,
	// youtu.be/ID, embed/ID, v/ID, u/x/ID and &v=ID.
	youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?/]*)`)

	vimeoIDPattern = regexp.MustCompile(`vimeo\.com/(\d+)`)

	drivePathPattern  = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	driveQueryPattern = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
)

// Classify resolves an exercise's raw video fields into a MediaReference.
// An embedded file always wins over a URL. Unparseable YouTube and Vimeo
// URLs degrade to an empty Embed; an unparseable Drive URL and any
// unrecognized host fall back to the URL unchanged.
func Classify(fileData, rawURL string) domain.MediaReference {
	if fileData != "" {
		return domain.MediaReference{Kind: domain.MediaFile, Embed: fileData}
	}
	if rawURL == "" {
		return domain.MediaReference{Kind: domain.MediaNone}
	}

	switch {
	case strings.Contains(rawURL, "youtube.com") || strings.Contains(rawURL, "youtu.be"):
		ref := domain.MediaReference{Kind: domain.MediaYouTube, Raw: rawURL}
		if id := youtubeID(rawURL); id != "" {
			ref.Embed = youtubeEmbedBase + id
		}
		return ref

	case strings.Contains(rawURL, "vimeo.com"):
		ref := domain.MediaReference{Kind: domain.MediaVimeo, Raw: rawURL}
		if m := vimeoIDPattern.FindStringSubmatch(rawURL); m != nil {
			ref.Embed = vimeoEmbedBase + m[1]
		}
		return ref

	case strings.Contains(rawURL, "drive.google.com"):
		ref := domain.MediaReference{Kind: domain.MediaDrive, Raw: rawURL}
		if id := driveFileID(rawURL); id != "" {
			ref.Embed = driveEmbedBase + id + "/preview"
		} else {
			// No recognizable file id: keep the original URL as-is.
			ref.Embed = rawURL
		}
		return ref

	default:
		// Anything else is treated as a generic iframe source.
		return domain.MediaReference{Kind: domain.MediaRawLink, Raw: rawURL, Embed: rawURL}
	}
}

// FromExercise classifies the video fields of an exercise.
func FromExercise(ex domain.Exercise) domain.MediaReference {
	return Classify(ex.VideoFile, ex.VideoURL)
}

func youtubeID(rawURL string) string {
	m := youtubeIDPattern.FindStringSubmatch(rawURL)
	if m == nil || len(m[1]) != youtubeIDLength {
		return ""
	}
	return m[1]
}

func driveFileID(rawURL string) string {
	if m := drivePathPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	if m := driveQueryPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}
