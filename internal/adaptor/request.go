package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/pkg/utils"
)

const (
	maxBodySize   = 1 << 20  // JSON bodies
	maxUploadSize = 12 << 20 // multipart incl. files; per-image limits live in storage
)

var errBadForm = errors.New("invalid form")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return err
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return fmt.Errorf("%w: %v", errBadForm, err)
	}
	return nil
}

// formValue returns nil when the field was not sent at all.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func formString(r *http.Request, key string) string {
	if v := formValue(r, key); v != nil {
		return *v
	}
	return ""
}

// formJSON decodes a JSON-encoded form field. It reports false when absent.
func formJSON(r *http.Request, key string, dst any) (bool, error) {
	v := formValue(r, key)
	if v == nil || strings.TrimSpace(*v) == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(*v), dst); err != nil {
		return true, fmt.Errorf("%w: %s must be valid JSON", errBadForm, key)
	}
	return true, nil
}

// formFile reads an optional uploaded file into memory.
func formFile(r *http.Request, key string) (*request.FileUpload, error) {
	file, header, err := r.FormFile(key)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadForm, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &request.FileUpload{Filename: header.Filename, Data: data}, nil
}

func pageFromQuery(q url.Values) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:  utils.ParseInt(q.Get("page"), 1),
		Limit: utils.ParseInt(q.Get("limit"), 0),
	}
}
