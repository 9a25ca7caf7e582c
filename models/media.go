package models

// PresignRequest asks the provider for a direct-upload URL.
type PresignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// PresignResponse carries the upload target and the public URL the file
// will be served from once uploaded.
type PresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}
