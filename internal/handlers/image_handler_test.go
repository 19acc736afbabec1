package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/testutil"
)

type fakeUploader struct {
	gotUserID      uint
	gotContentType string
	err            error
}

func (f *fakeUploader) UploadUserImage(ctx context.Context, userID uint, contentType string, data []byte) (string, error) {
	f.gotUserID = userID
	f.gotContentType = contentType
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.s3.amazonaws.com/receitas_usuario/1/x.png", nil
}

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, "foto.png")
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest("POST", "/imagens", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newImageRouter(uploader *fakeUploader) *gin.Engine {
	r := gin.New()
	r.Use(setUser(testutil.TestUser()))
	r.POST("/imagens", NewImageHandler(uploader).UploadImage)
	return r
}

func TestUploadImage_Success(t *testing.T) {
	uploader := &fakeUploader{}
	r := newImageRouter(uploader)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "imagem", pngHeader))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if uploader.gotContentType != "image/png" || uploader.gotUserID != 1 {
		t.Errorf("uploader got (%q, %d)", uploader.gotContentType, uploader.gotUserID)
	}
	if url := decodeBody(t, w)["url"]; url == "" {
		t.Error("missing url")
	}
}

func TestUploadImage_Rejections(t *testing.T) {
	r := newImageRouter(&fakeUploader{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "arquivo", pngHeader))
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong field status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "imagem", []byte("just some text")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("text upload status = %d, want 400", w.Code)
	}
}

func TestUploadImage_UploadFailure(t *testing.T) {
	r := newImageRouter(&fakeUploader{err: errors.New("s3 down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "imagem", pngHeader))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
