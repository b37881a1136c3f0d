package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mimeHint string
		want     string
	}{
		{"mime image wins", "photo.bin", "image/png", FileTypeImage},
		{"mime pdf", "doc.bin", "application/pdf", FileTypePDF},
		{"mime video", "clip.bin", "video/mp4", FileTypeVideo},
		{"mime audio", "song.bin", "audio/mpeg", FileTypeAudio},
		{"mime text", "notes.py", "text/plain", FileTypeText},
		{"extension fallback source file", "script.py", "application/octet-stream", FileTypeText},
		{"extension fallback image", "photo.JPG", "", FileTypeImage},
		{"extension fallback pdf", "manual.pdf", "", FileTypePDF},
		{"extension fallback video", "clip.mkv", "", FileTypeVideo},
		{"extension fallback audio", "song.flac", "", FileTypeAudio},
		{"unknown everything", "blob.xyz", "application/x-custom", FileTypeOther},
		{"no extension no mime", "README", "", FileTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.filename, tt.mimeHint))
		})
	}
}

func TestResolveContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"icon.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"manual.pdf", "application/pdf"},
		{"clip.mp4", "video/mp4"},
		{"clip.webm", "video/webm"},
		{"song.mp3", "audio/mpeg"},
		{"song.wav", "audio/wav"},
		{"script.py", "text/plain"},
		{"config.yaml", "text/plain"},
		{"notes.txt", "text/plain"},
		{"archive.zip", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveContentType(tt.filename))
		})
	}
}

func TestInlineDisplayable(t *testing.T) {
	assert.True(t, InlineDisplayable("image/png"))
	assert.True(t, InlineDisplayable("application/pdf"))
	assert.True(t, InlineDisplayable("video/webm"))
	assert.True(t, InlineDisplayable("audio/wav"))
	assert.True(t, InlineDisplayable("text/plain"))
	assert.False(t, InlineDisplayable("application/octet-stream"))
	assert.False(t, InlineDisplayable("application/zip"))
}
