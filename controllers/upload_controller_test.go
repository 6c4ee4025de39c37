package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratapadwait/pratapliving/dto"
)

type fakeUploader struct {
	calls int
	fail  bool
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (dto.UploadResult, error) {
	f.calls++
	if f.fail {
		return dto.UploadResult{}, fmt.Errorf("host unreachable")
	}
	id := fmt.Sprintf("img-%d", f.calls)
	return dto.UploadResult{
		URL:      "https://cdn.example.com/" + folder + "/" + id + ".jpg",
		FileID:   id,
		FilePath: "/" + folder + "/" + id,
	}, nil
}

func uploadRouter(up *fakeUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctl := NewUploadController(up, nil)
	router.POST("/api/images/upload", ctl.Upload)
	router.POST("/api/images/multi-upload", ctl.MultiUpload)
	return router
}

type formFile struct {
	field       string
	contentType string
	body        []byte
}

func multipartBody(t *testing.T, files []formFile, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="f%d.jpg"`, f.field, i))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.body)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadReturnsHostResult(t *testing.T) {
	up := &fakeUploader{}
	router := uploadRouter(up)

	body, contentType := multipartBody(t,
		[]formFile{{"file", "image/jpeg", []byte("jpeg bytes")}},
		map[string]string{"folder": "villas"})
	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result dto.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "https://cdn.example.com/villas/img-1.jpg", result.URL)
	assert.Equal(t, "img-1", result.FileID)
	assert.Equal(t, "/villas/img-1", result.FilePath)
}

func TestUploadRejectsNonImage(t *testing.T) {
	up := &fakeUploader{}
	router := uploadRouter(up)

	body, contentType := multipartBody(t,
		[]formFile{{"file", "application/pdf", []byte("%PDF-")}}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, up.calls, "rejected files must not reach the host")
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	up := &fakeUploader{}
	router := uploadRouter(up)

	big := bytes.Repeat([]byte("x"), 10<<20+1)
	body, contentType := multipartBody(t,
		[]formFile{{"file", "image/jpeg", big}}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, up.calls)
}

func TestUploadWithoutFile(t *testing.T) {
	router := uploadRouter(&fakeUploader{})

	body, contentType := multipartBody(t, nil, map[string]string{"folder": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHostFailure(t *testing.T) {
	router := uploadRouter(&fakeUploader{fail: true})

	body, contentType := multipartBody(t,
		[]formFile{{"file", "image/png", []byte("png bytes")}}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMultiUploadReportsPartialCounts(t *testing.T) {
	up := &fakeUploader{}
	router := uploadRouter(up)

	body, contentType := multipartBody(t, []formFile{
		{"files", "image/jpeg", []byte("a")},
		{"files", "application/pdf", []byte("b")},
		{"files", "image/png", []byte("c")},
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/images/multi-upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result dto.BatchUploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.URLs, 2)
	assert.Equal(t, "2 of 3 uploaded", result.Message)
}

func TestMultiUploadWithoutFiles(t *testing.T) {
	router := uploadRouter(&fakeUploader{})

	body, contentType := multipartBody(t, nil, map[string]string{"folder": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/images/multi-upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
