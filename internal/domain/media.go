package domain

// MediaKind tags the variant of a resolved media reference.
type MediaKind string

const (
	MediaNone    MediaKind = "none"
	MediaFile    MediaKind = "file"
	MediaYouTube MediaKind = "youtube"
	MediaVimeo   MediaKind = "vimeo"
	MediaDrive   MediaKind = "drive"
	MediaRawLink MediaKind = "raw-link"
)

// MediaReference is the resolved, embeddable form of an exercise's video
// fields. It is produced once by the media resolver and consumed
// exhaustively by the document generator, so presence checks on the raw
// fields happen in exactly one place.
//
//   - MediaFile: Embed holds the inline data URI itself.
//   - URL kinds: Raw holds the original URL, Embed the canonical embed URL.
//     An empty Embed means the reference could not be resolved and no media
//     block must be rendered.
//   - MediaNone: nothing to render.
type MediaReference struct {
	Kind  MediaKind
	Raw   string
	Embed string
}

// HasMedia reports whether the reference carries anything renderable.
func (m MediaReference) HasMedia() bool {
	return m.Kind != MediaNone && m.Embed != ""
}
