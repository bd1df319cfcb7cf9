package util

const TimeFormat = "2006-01-02 15:04:05"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Upload MIME prefixes.
const (
	MimeVideo = "video/"
	MimeImage = "image/"
	MimePDF   = "application/pdf"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
	MaxUploadSize       = 20 << 20
)
