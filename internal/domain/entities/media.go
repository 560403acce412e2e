package entities

// UploadMediaInput carries a direct upload of an inline media payload
type UploadMediaInput struct {
	Data     string `json:"data" binding:"required"`
	Category string `json:"category"`
	Prefix   string `json:"prefix"`
}
