package controllers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

type formFile struct {
	field       string
	filename    string
	contentType string
}

func multipartContext(t *testing.T, files []formFile) *gin.Context {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.filename))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("payload")); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPut, "/admin/update-product/1", &body)
	ctx.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return ctx
}

func TestCollectTemplateFilesRequiresBothForNewTemplates(t *testing.T) {
	t.Run("no files at all", func(t *testing.T) {
		ctx := multipartContext(t, nil)
		_, msg := collectTemplateFiles(ctx, []templateInput{{Name: "T"}})
		if msg == "" {
			t.Fatal("expected a validation message for a new template without files")
		}
	})

	t.Run("thumbnail without svg", func(t *testing.T) {
		ctx := multipartContext(t, []formFile{
			{"customizationTemplates[0][thumbnail]", "thumb.png", "image/png"},
		})
		_, msg := collectTemplateFiles(ctx, []templateInput{{Name: "T"}})
		if msg != "Template 0 requires an SVG file" {
			t.Errorf("msg = %q", msg)
		}
	})

	t.Run("wrong svg content type", func(t *testing.T) {
		ctx := multipartContext(t, []formFile{
			{"customizationTemplates[0][thumbnail]", "thumb.png", "image/png"},
			{"customizationTemplates[0][svg]", "art.svg", "text/plain"},
		})
		_, msg := collectTemplateFiles(ctx, []templateInput{{Name: "T"}})
		if msg != "Template 0 requires an SVG file" {
			t.Errorf("msg = %q", msg)
		}
	})

	t.Run("both files present", func(t *testing.T) {
		ctx := multipartContext(t, []formFile{
			{"customizationTemplates[0][thumbnail]", "thumb.png", "image/png"},
			{"customizationTemplates[0][svg]", "art.svg", "image/svg+xml"},
		})
		files, msg := collectTemplateFiles(ctx, []templateInput{{Name: "T"}})
		if msg != "" {
			t.Fatalf("msg = %q", msg)
		}
		if files[0].thumbnail == nil || files[0].svg == nil {
			t.Error("both parts should be collected")
		}
	})
}

func TestCollectTemplateFilesOptionalForExistingTemplates(t *testing.T) {
	t.Run("no files keeps stored assets", func(t *testing.T) {
		ctx := multipartContext(t, nil)
		files, msg := collectTemplateFiles(ctx, []templateInput{{Id: 3, Name: "T"}})
		if msg != "" {
			t.Fatalf("msg = %q", msg)
		}
		if files[0].thumbnail != nil || files[0].svg != nil {
			t.Error("no parts expected when none were sent")
		}
	})

	t.Run("replacement files are picked up", func(t *testing.T) {
		ctx := multipartContext(t, []formFile{
			{"customizationTemplates[0][thumbnail]", "thumb.webp", "image/webp"},
			{"customizationTemplates[0][svg]", "art.svg", "image/svg+xml"},
		})
		files, msg := collectTemplateFiles(ctx, []templateInput{{Id: 3, Name: "T"}})
		if msg != "" {
			t.Fatalf("msg = %q", msg)
		}
		if files[0].thumbnail == nil || files[0].svg == nil {
			t.Error("replacement parts should be collected")
		}
	})

	t.Run("bad replacement type still rejected", func(t *testing.T) {
		ctx := multipartContext(t, []formFile{
			{"customizationTemplates[0][thumbnail]", "thumb.gif", "image/gif"},
		})
		_, msg := collectTemplateFiles(ctx, []templateInput{{Id: 3, Name: "T"}})
		if msg != "Template 0 requires a JPEG, PNG or WebP thumbnail" {
			t.Errorf("msg = %q", msg)
		}
	})
}
