package builders

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratapadwait/pratapliving/dto"
)

type fakeUploader struct {
	calls   int
	failOn  map[int]bool // 1-based call numbers that error
	lastDir string
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (dto.UploadResult, error) {
	f.calls++
	f.lastDir = folder
	if f.failOn[f.calls] {
		return dto.UploadResult{}, fmt.Errorf("upload %d failed", f.calls)
	}
	id := fmt.Sprintf("img-%d", f.calls)
	return dto.UploadResult{
		URL:      "https://cdn.example.com/" + id + ".jpg",
		FileID:   id,
		FilePath: "/" + id,
	}, nil
}

// buildForm assembles a real multipart form so the returned FileHeaders
// behave like gin's.
func buildForm(t *testing.T, contentTypes []string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, ct := range contentTypes {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="f%d"`, i))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func TestAddRejectsBlanksDuplicatesAndOverflow(t *testing.T) {
	b := NewGalleryBuilder(3)

	accepted, rejected := b.Add("/a.jpg", "", "/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg")
	assert.Equal(t, 3, accepted)
	assert.Equal(t, 3, rejected)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg", "/c.jpg"}, b.URLs())
}

func TestCapAtTwenty(t *testing.T) {
	b := NewGalleryBuilder(0) // falls back to the default cap

	var urls []string
	for i := 0; i < 25; i++ {
		urls = append(urls, fmt.Sprintf("/g-%d.jpg", i))
	}
	accepted, rejected := b.Add(urls...)
	assert.Equal(t, 20, accepted)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, 20, b.Len())
}

func TestPromoteToMain(t *testing.T) {
	b := NewGalleryBuilder(10)
	b.Add("/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg")

	require.NoError(t, b.PromoteToMain(2))
	assert.Equal(t, []string{"/c.jpg", "/a.jpg", "/b.jpg", "/d.jpg"}, b.URLs())

	// Already first: nothing moves.
	require.NoError(t, b.PromoteToMain(0))
	assert.Equal(t, []string{"/c.jpg", "/a.jpg", "/b.jpg", "/d.jpg"}, b.URLs())
}

func TestReorderOutOfRange(t *testing.T) {
	b := NewGalleryBuilder(10)
	b.Add("/a.jpg", "/b.jpg")

	assert.Error(t, b.Reorder(0, 2))
	assert.Error(t, b.Reorder(-1, 0))
	assert.Error(t, b.Remove(5))
}

func TestRemoveHeadPromotesNext(t *testing.T) {
	b := NewGalleryBuilder(10)
	b.Add("/a.jpg", "/b.jpg", "/c.jpg")

	require.NoError(t, b.Remove(0))
	main, images := b.Build()
	assert.Equal(t, "/b.jpg", main)
	assert.Equal(t, []string{"/c.jpg"}, images)
}

func TestBuildEmpty(t *testing.T) {
	main, images := NewGalleryBuilder(5).Build()
	assert.Equal(t, "", main)
	assert.Nil(t, images)
}

func TestAddFilesRejectsNonImagesWithoutUploading(t *testing.T) {
	up := &fakeUploader{}
	files := buildForm(t, []string{"image/jpeg", "application/pdf", "image/png"})

	b := NewGalleryBuilder(10)
	report := b.AddFiles(context.Background(), up, files, "properties")

	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 2, up.calls, "the rejected file must not reach the uploader")
	assert.Equal(t, "properties", up.lastDir)
	assert.Equal(t, "2 of 3 uploaded", report.Summary())
}

func TestAddFilesContinuesPastFailures(t *testing.T) {
	up := &fakeUploader{failOn: map[int]bool{2: true}}
	files := buildForm(t, []string{"image/jpeg", "image/jpeg", "image/jpeg"})

	b := NewGalleryBuilder(10)
	report := b.AddFiles(context.Background(), up, files, "properties")

	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.URLs, 2)
	assert.Equal(t, 2, b.Len())
}

func TestAddFilesHonorsCap(t *testing.T) {
	up := &fakeUploader{}
	files := buildForm(t, []string{"image/jpeg", "image/jpeg", "image/jpeg"})

	b := NewGalleryBuilder(2)
	report := b.AddFiles(context.Background(), up, files, "properties")

	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 2, up.calls, "files past the cap must not be uploaded")
}
