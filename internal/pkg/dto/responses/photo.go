package responses

type UploadPhoto struct {
	URL      string `json:"url"`
	ETag     string `json:"etag"`
	HasPhoto bool   `json:"hasPhoto"`
}
