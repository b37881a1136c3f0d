package document

import (
	"path/filepath"
	"strings"
)

var textExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true,
	".html": true, ".css": true, ".json": true, ".xml": true,
	".txt": true, ".md": true, ".sql": true, ".sh": true,
	".bat": true, ".yml": true, ".yaml": true, ".properties": true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".svg": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".ogg": true, ".flac": true,
}

var extensionContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
}

// ClassifyMimeType maps a declared MIME type to a file type class. Anything
// unrecognized, including an empty hint, is OTHER.
func ClassifyMimeType(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return FileTypeImage
	case mimeType == "application/pdf":
		return FileTypePDF
	case strings.HasPrefix(mimeType, "video/"):
		return FileTypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return FileTypeAudio
	case strings.HasPrefix(mimeType, "text/"):
		return FileTypeText
	}
	return FileTypeOther
}

// ClassifyFilename classifies by extension alone, used as a fallback when the
// MIME hint resolves to OTHER.
func ClassifyFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case textExtensions[ext]:
		return FileTypeText
	case imageExtensions[ext]:
		return FileTypeImage
	case ext == ".pdf":
		return FileTypePDF
	case videoExtensions[ext]:
		return FileTypeVideo
	case audioExtensions[ext]:
		return FileTypeAudio
	}
	return FileTypeOther
}

// Classify resolves the file type from the MIME hint first, falling back to
// the extension table. It never fails; the worst case is OTHER.
func Classify(filename, mimeHint string) string {
	fileType := ClassifyMimeType(mimeHint)
	if fileType == FileTypeOther {
		fileType = ClassifyFilename(filename)
	}
	return fileType
}

// ResolveContentType maps a filename to the MIME string used in response
// headers. Source and plain-text extensions resolve to text/plain; anything
// unknown is served as application/octet-stream.
func ResolveContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if contentType, ok := extensionContentTypes[ext]; ok {
		return contentType
	}
	if textExtensions[ext] {
		return "text/plain"
	}
	return "application/octet-stream"
}

// InlineDisplayable reports whether content of the given MIME string should
// be rendered in the browser rather than downloaded.
func InlineDisplayable(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") ||
		contentType == "application/pdf" ||
		strings.HasPrefix(contentType, "video/") ||
		strings.HasPrefix(contentType, "audio/") ||
		strings.HasPrefix(contentType, "text/")
}
