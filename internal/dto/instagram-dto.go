package dto

type InstagramPublishResult struct {
	MediaID     string `json:"media_id"`
	ContainerID string `json:"container_id"`
	ImageURL    string `json:"image_url"`
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
