package config

import (
	"fmt"
	"os"
	"strings"
)

type S3Config struct {
	BucketName string
	Region     string
	Prefix     string
}

func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("BUCKET_NAME must be set")
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set")
	}

	prefix := strings.Trim(getEnvOrDefault("BUCKET_PREFIX", "audio"), "/")

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
		Prefix:     prefix,
	}, nil
}
