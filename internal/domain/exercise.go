package domain

// Exercise represents a single exercise definition in the trainer's library.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// VideoURL points at an external demonstration video (YouTube, Vimeo,
	// Google Drive or a plain link). VideoFile holds an inline base64 data
	// URI for a directly uploaded clip. When both are set the embedded
	// file wins.
	VideoURL  string `json:"videoUrl,omitempty"`
	VideoFile string `json:"videoFile,omitempty"`
}
