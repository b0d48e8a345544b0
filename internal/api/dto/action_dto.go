package dto

// BatchDeleteRequest payload.
type BatchDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// UploadResponse reports a stored file and the URL it is served from.
type UploadResponse struct {
	Bucket    string `json:"bucket,omitempty"`
	ObjectKey string `json:"object_key,omitempty"`
	URL       string `json:"url"`
}
