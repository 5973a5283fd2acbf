package cloudinary

import (
	"context"
	"io"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadImage(
	ctx context.Context,
	folder string,
	filename string,
	r io.Reader,
) (string, string, error) {
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     filename,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	return res.SecureURL, res.PublicID, nil
}
