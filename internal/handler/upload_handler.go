package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxUploadBytes = 5 << 20

var imageExtensions = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"gif":  ".gif",
	"webp": ".webp",
}

// UploadImage stores a technology cover image and returns its public URL.
// The file must decode as png, jpeg, gif or webp.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, text(c, "Image file missing.", "Imagem não encontrada no envio."))
		return
	}
	if file.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, text(c, "Image is too large.", "Imagem muito grande."))
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, text(c, "Could not read image.", "Não foi possível ler a imagem."))
		return
	}
	cfg, format, err := image.DecodeConfig(src)
	src.Close()
	ext, known := imageExtensions[format]
	if err != nil || !known {
		respondError(c, http.StatusBadRequest, text(c, "Only image files are allowed.", "Apenas arquivos de imagem são permitidos."))
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		a.respondServiceError(c, fmt.Errorf("create upload dir: %w", err))
		return
	}

	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(a.uploadDir, name)); err != nil {
		a.respondServiceError(c, fmt.Errorf("save upload: %w", err))
		return
	}

	url := path.Join("/", strings.Trim(a.uploadURL, "/"), name)
	c.JSON(http.StatusOK, gin.H{
		"url":    url,
		"width":  cfg.Width,
		"height": cfg.Height,
		"format": format,
	})
}
