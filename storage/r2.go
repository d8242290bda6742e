package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rolemap/api-go/config"
)

// R2Storage stores uploads in a Cloudflare R2 bucket through the S3 API.
type R2Storage struct {
	Client *s3.Client
	Config *config.R2Config
}

func NewR2Storage(cfg *config.R2Config) *R2Storage {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Storage{Client: client, Config: cfg}
}

func (r *R2Storage) Save(key string, contentType string, reader io.Reader) error {
	_, err := r.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(r.Config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	return err
}

func (r *R2Storage) Delete(key string) error {
	_, err := r.Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(r.Config.BucketName),
		Key:    aws.String(key),
	})
	return err
}

func (r *R2Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", r.Config.PublicURL, key)
}
