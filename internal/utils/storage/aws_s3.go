package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"food-donation-backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

type (
	AwsS3 interface {
		UploadFile(filename string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading aws config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

// DetectContentType sniffs the payload and checks it against allowedTypes.
// An empty allow list accepts anything.
func DetectContentType(r io.ReadSeeker, allowedTypes ...string) (*mimetype.MIME, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if len(allowedTypes) == 0 {
		return mtype, nil
	}
	for _, allowed := range allowedTypes {
		if mtype.Is(allowed) {
			return mtype, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
}

func (a *awsS3) UploadFile(filename string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mtype, err := DetectContentType(src, allowedTypes...)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%s%s", folder, filename, mtype.Extension())
	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          src,
		ContentType:   aws.String(mtype.String()),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
