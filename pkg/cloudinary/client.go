package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New reads CLOUDINARY_URL from the given value so credentials stay inside
// the config struct instead of ambient environment lookups.
func New(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromURL(cloudinaryURL)
}
