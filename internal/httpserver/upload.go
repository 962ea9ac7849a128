package httpserver

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 << 20 // 5 MB per file

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func saveUpload(c *gin.Context, uploadDir string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("only image files are allowed (jpeg, jpg, png, gif, webp)")
	}
	if file.Size > maxUploadBytes {
		return "", fmt.Errorf("file exceeds the 5MB limit")
	}

	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return name, nil
}

func uploadSingleHandler(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
			return
		}

		name, err := saveUpload(c, uploadDir, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + name, "filename": name})
	}
}

func uploadMultipleHandler(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil || len(form.File["images"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No files uploaded"})
			return
		}

		type uploaded struct {
			URL      string `json:"url"`
			Filename string `json:"filename"`
		}
		files := make([]uploaded, 0, len(form.File["images"]))
		for _, file := range form.File["images"] {
			name, err := saveUpload(c, uploadDir, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			files = append(files, uploaded{URL: "/uploads/" + name, Filename: name})
		}
		c.JSON(http.StatusOK, gin.H{"files": files})
	}
}
