// ripple/types/media.go
package types

// ImageUpload carries a multipart image through the controllers to the
// media store.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
