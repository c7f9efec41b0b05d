package entities

import "io"

type Image struct {
	URL      string
	PublicID string
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
