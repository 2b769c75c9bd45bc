package config

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary returns nil without error when no cloud name is configured.
func ConnectCloudinary(cfg CloudinaryConfig) (*cloudinary.Cloudinary, error) {
	if cfg.CloudName == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return cld, nil
}
