package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

func TestClassifyYouTube(t *testing.T) {
	// All recognized URL shapes carrying an 11-character id resolve to
	// the canonical embed URL.
	urls := map[string]string{
		"watch":   "https://www.youtube.com/watch?v=abc12345678",
		"short":   "https://youtu.be/abc12345678",
		"embed":   "https://www.youtube.com/embed/abc12345678",
		"v-path":  "https://www.youtube.com/v/abc12345678",
		"with-ts": "https://www.youtube.com/watch?v=abc12345678&t=42s",
	}
	for name, url := range urls {
		t.Run(name, func(t *testing.T) {
			ref := Classify("", url)
			assert.Equal(t, domain.MediaYouTube, ref.Kind)
			assert.Equal(t, "https://www.youtube.com/embed/abc12345678", ref.Embed)
			assert.Equal(t, url, ref.Raw)
		})
	}
}

func TestClassifyYouTubeNoID(t *testing.T) {
	ref := Classify("", "https://www.youtube.com/watch?v=short")
	assert.Equal(t, domain.MediaYouTube, ref.Kind)
	assert.Empty(t, ref.Embed, "unparseable id must degrade to no embed")
	assert.False(t, ref.HasMedia())
}

func TestClassifyVimeo(t *testing.T) {
	ref := Classify("", "https://vimeo.com/123456")
	assert.Equal(t, domain.MediaVimeo, ref.Kind)
	assert.Equal(t, "https://player.vimeo.com/video/123456", ref.Embed)

	noID := Classify("", "https://vimeo.com/about")
	assert.Equal(t, domain.MediaVimeo, noID.Kind)
	assert.Empty(t, noID.Embed)
}

func TestClassifyDrive(t *testing.T) {
	t.Run("path form", func(t *testing.T) {
		ref := Classify("", "https://drive.google.com/file/d/FILEID123/view")
		assert.Equal(t, domain.MediaDrive, ref.Kind)
		assert.Equal(t, "https://drive.google.com/file/d/FILEID123/preview", ref.Embed)
	})

	t.Run("query form", func(t *testing.T) {
		ref := Classify("", "https://drive.google.com/open?id=FILEID123")
		assert.Equal(t, "https://drive.google.com/file/d/FILEID123/preview", ref.Embed)
	})

	t.Run("no id keeps original url", func(t *testing.T) {
		url := "https://drive.google.com/drive/my-files"
		ref := Classify("", url)
		assert.Equal(t, url, ref.Embed)
	})
}

func TestClassifyRawLink(t *testing.T) {
	url := "https://example.com/video.mp4"
	ref := Classify("", url)
	assert.Equal(t, domain.MediaRawLink, ref.Kind)
	assert.Equal(t, url, ref.Embed)
}

func TestClassifyFileWinsOverURL(t *testing.T) {
	ref := Classify("data:video/mp4;base64,AAAA", "https://youtu.be/abc12345678")
	assert.Equal(t, domain.MediaFile, ref.Kind)
	assert.Equal(t, "data:video/mp4;base64,AAAA", ref.Embed)
}

func TestClassifyNone(t *testing.T) {
	ref := Classify("", "")
	assert.Equal(t, domain.MediaNone, ref.Kind)
	assert.False(t, ref.HasMedia())
}
