package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/s3"
	"github.com/windoze95/receitas-api/internal/util"
	"go.uber.org/zap"
)

// ImageHandler handles image upload requests.
type ImageHandler struct {
	Uploader s3.ImageUploader
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(uploader s3.ImageUploader) *ImageHandler {
	return &ImageHandler{Uploader: uploader}
}

// UploadImage handles POST /imagens. The type is sniffed from the content,
// not taken from the file name.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
		return
	}

	file, header, err := c.Request.FormFile("imagem")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Arquivo de imagem obrigatório"})
		return
	}
	defer file.Close()

	if header.Size > s3.MaxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Imagem excede o tamanho máximo de 10MB"})
		return
	}

	imgBytes, err := io.ReadAll(io.LimitReader(file, s3.MaxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao ler a imagem"})
		return
	}
	if len(imgBytes) > s3.MaxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Imagem excede o tamanho máximo de 10MB"})
		return
	}

	contentType := http.DetectContentType(imgBytes)
	if _, ok := s3.ImageExtension(contentType); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Tipo de imagem não suportado. Use jpg, png ou webp"})
		return
	}

	imageURL, err := h.Uploader.UploadUserImage(c.Request.Context(), userID, contentType, imgBytes)
	if err != nil {
		logger.FromContext(c).Error("failed to upload image to S3", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao enviar a imagem"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "url": imageURL})
}
