package builders

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/pratapadwait/pratapliving/constants"
	"github.com/pratapadwait/pratapliving/services"
)

// GalleryBuilder assembles the ordered image list for a property before
// submission. Position 0 is the main image purely by position; no
// separate flag exists. On Build, element 0 maps to the property's
// imageUrl and the rest to images.
type GalleryBuilder struct {
	maxImages int
	urls      []string
}

// NewGalleryBuilder creates a builder capped at maxImages entries;
// values below 1 fall back to the default cap.
func NewGalleryBuilder(maxImages int) *GalleryBuilder {
	if maxImages < 1 {
		maxImages = constants.MaxGalleryImages
	}
	return &GalleryBuilder{maxImages: maxImages}
}

// UploadReport accounts for one batch. Partial success is the common
// case with many small files, so failures are counted, not fatal.
type UploadReport struct {
	URLs     []string
	Accepted int
	Failed   int
	Rejected int
}

// Summary renders the report for the operator, e.g. "3 of 5 uploaded".
func (r UploadReport) Summary() string {
	total := r.Accepted + r.Failed + r.Rejected
	return fmt.Sprintf("%d of %d uploaded", r.Accepted, total)
}

// Add appends URLs in order. Blanks, duplicates and anything past the
// cap are rejected; everything else is accepted. Returns both counts.
func (b *GalleryBuilder) Add(urls ...string) (accepted, rejected int) {
	for _, u := range urls {
		if u == "" || b.contains(u) || len(b.urls) >= b.maxImages {
			rejected++
			continue
		}
		b.urls = append(b.urls, u)
		accepted++
	}
	return accepted, rejected
}

// AddFiles uploads a batch through the image host, one file at a time in
// submission order, and appends each returned URL. Non-image MIME types
// and oversized files are rejected without an upload attempt; a failed
// upload never blocks the files after it.
func (b *GalleryBuilder) AddFiles(ctx context.Context, up services.ImageUploader, files []*multipart.FileHeader, folder string) UploadReport {
	var report UploadReport
	for _, fh := range files {
		if len(b.urls) >= b.maxImages {
			report.Rejected++
			continue
		}
		if !services.IsImageContentType(fh.Header.Get("Content-Type")) {
			report.Rejected++
			continue
		}
		if fh.Size > constants.MaxUploadBytes {
			report.Rejected++
			continue
		}

		src, err := fh.Open()
		if err != nil {
			report.Failed++
			continue
		}
		result, err := up.Upload(ctx, src, folder)
		src.Close()
		if err != nil {
			report.Failed++
			continue
		}

		if accepted, _ := b.Add(result.URL); accepted == 1 {
			report.Accepted++
			report.URLs = append(report.URLs, result.URL)
		} else {
			report.Rejected++
		}
	}
	return report
}

// Reorder moves the entry at from to position to, shifting the entries
// between them.
func (b *GalleryBuilder) Reorder(from, to int) error {
	if from < 0 || from >= len(b.urls) || to < 0 || to >= len(b.urls) {
		return fmt.Errorf("reorder out of range: %d -> %d with %d images", from, to, len(b.urls))
	}
	if from == to {
		return nil
	}
	moved := b.urls[from]
	b.urls = append(b.urls[:from], b.urls[from+1:]...)
	b.urls = append(b.urls[:to], append([]string{moved}, b.urls[to:]...)...)
	return nil
}

// PromoteToMain moves the entry at index to position 0, shifting the
// others down by one. No-op when it is already first.
func (b *GalleryBuilder) PromoteToMain(index int) error {
	return b.Reorder(index, 0)
}

// Remove deletes the entry at index. Removing position 0 implicitly
// makes whatever is now first the main image.
func (b *GalleryBuilder) Remove(index int) error {
	if index < 0 || index >= len(b.urls) {
		return fmt.Errorf("remove out of range: %d with %d images", index, len(b.urls))
	}
	b.urls = append(b.urls[:index], b.urls[index+1:]...)
	return nil
}

// Len reports the current number of images.
func (b *GalleryBuilder) Len() int {
	return len(b.urls)
}

// URLs returns a copy of the current order.
func (b *GalleryBuilder) URLs() []string {
	out := make([]string, len(b.urls))
	copy(out, b.urls)
	return out
}

// Build splits the list into the submission shape: the main image and
// the secondary images.
func (b *GalleryBuilder) Build() (imageURL string, images []string) {
	if len(b.urls) == 0 {
		return "", nil
	}
	images = make([]string, len(b.urls)-1)
	copy(images, b.urls[1:])
	return b.urls[0], images
}

func (b *GalleryBuilder) contains(url string) bool {
	for _, u := range b.urls {
		if u == url {
			return true
		}
	}
	return false
}
