package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"github.com/riyadominic123/ai-call/domain"
)

type s3ArtifactStore struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3ArtifactStore(s3Svc *s3.S3, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.ArtifactStorePort {
	return &s3ArtifactStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3ArtifactStore) Save(ctx context.Context, name string, content []byte) error {
	itemPath := s.getS3ItemPath(name)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(itemPath),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(domain.AudioContentType(name)),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    itemPath,
		})
		return err
	}

	s.logger.DebugWithFields("Successfully uploaded object to S3", map[string]interface{}{
		"bucket": s.s3Config.BucketName,
		"key":    itemPath,
	})
	return nil
}

func (s *s3ArtifactStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.s3Svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(s.getS3ItemPath(name)),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, domain.ErrArtifactNotFound
		}
		s.logger.ErrorWithFields(err, "Failed to download object from S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"name":   name,
		})
		return nil, err
	}
	return out.Body, nil
}

func (s *s3ArtifactStore) Delete(ctx context.Context, name string) error {
	_, err := s.s3Svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(s.getS3ItemPath(name)),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to delete object from S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"name":   name,
		})
	}
	return err
}

func (s *s3ArtifactStore) List(ctx context.Context) ([]domain.ArtifactInfo, error) {
	prefix := s.s3Config.Prefix + "/"
	artifacts := make([]domain.ArtifactInfo, 0)
	err := s.s3Svc.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.s3Config.BucketName),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, object := range page.Contents {
			name := strings.TrimPrefix(aws.StringValue(object.Key), prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			artifacts = append(artifacts, domain.ArtifactInfo{
				Name:       name,
				ModifiedAt: aws.TimeValue(object.LastModified),
			})
		}
		return true
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to list objects in S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"prefix": prefix,
		})
		return nil, err
	}
	return artifacts, nil
}

func (s *s3ArtifactStore) getS3ItemPath(name string) string {
	return fmt.Sprintf("%s/%s", s.s3Config.Prefix, path.Base(name))
}

func isS3NotFound(err error) bool {
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		return awsErr.Code() == s3.ErrCodeNoSuchKey || awsErr.Code() == "NotFound"
	}
	return false
}
