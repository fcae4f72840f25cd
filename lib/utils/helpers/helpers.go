package helpers

import (
	"mime"
	"mime/multipart"
	"path/filepath"
)

func GetFileContentType(file *multipart.FileHeader) string {
	contentType := file.Header.Get("Content-Type")
	if contentType != "" {
		return contentType
	}
	contentType = mime.TypeByExtension(filepath.Ext(file.Filename))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
