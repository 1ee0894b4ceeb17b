// ripple/routes/router.go
package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"ripple/ripple/types"
	"ripple/ripple/utils/apierr"
)

// 1MB per image, same cap for every upload endpoint.
const maxImageBytes = 1 << 20

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.BadRequest("Invalid request body!")
	}
	return nil
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// formImage pulls the "image" part out of a multipart form and enforces the
// type and size limits.
func formImage(r *http.Request) (types.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxImageBytes * 2); err != nil {
		return types.ImageUpload{}, apierr.BadRequest("Invalid multipart form!")
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return types.ImageUpload{}, apierr.BadRequest("No File Uploaded!")
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		return types.ImageUpload{}, apierr.BadRequest("Image must be at most 1MB!")
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return types.ImageUpload{}, apierr.BadRequest("Unsupported file type!")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return types.ImageUpload{}, apierr.BadRequest("Failed to read uploaded file!")
	}
	if len(data) > maxImageBytes {
		return types.ImageUpload{}, apierr.BadRequest("Image must be at most 1MB!")
	}
	return types.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
