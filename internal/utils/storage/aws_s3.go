package storage

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/utils"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

const uploadTimeout = 30 * time.Second

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client   *s3.Client
		bucket   string
		region   string
		endpoint string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	endpoint := strings.TrimRight(utils.GetConfig("AWS_S3_ENDPOINT"), "/")

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Errorf("error loading aws config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &awsS3{
		client:   client,
		bucket:   utils.GetConfig("AWS_S3_BUCKET"),
		region:   region,
		endpoint: endpoint,
	}
}

// DetectContentType sniffs the upload and checks it against allowTypes (any type when empty).
func DetectContentType(file io.Reader, allowTypes ...string) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if len(allowTypes) == 0 {
		return mtype.String(), nil
	}
	for _, allowed := range allowTypes {
		if mtype.Is(allowed) {
			return allowed, nil
		}
	}
	return "", domain.ErrInvalidImageType
}

func (a *awsS3) put(objectKey string, fileHeader *multipart.FileHeader, allowTypes ...string) error {
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	contentType, err := DetectContentType(file, allowTypes...)
	if err != nil {
		return err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          file,
		ContentLength: aws.Int64(fileHeader.Size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImageUploadFailed, err)
	}
	return nil
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	objectKey := path.Join(folder, fileName+strings.ToLower(path.Ext(file.Filename)))
	if err := a.put(objectKey, file, allowTypes...); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowTypes ...string) (string, error) {
	if err := a.put(objectKey, file, allowTypes...); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) baseURL() string {
	if a.endpoint != "" {
		return fmt.Sprintf("%s/%s/", a.endpoint, a.bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.baseURL() + objectKey
}

// GetObjectKeyFromLink returns "" for links that do not point into this bucket.
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	base := a.baseURL()
	if !strings.HasPrefix(link, base) {
		return ""
	}
	return strings.TrimPrefix(link, base)
}

// UploadImage stores an image under folder and returns its public link.
func UploadImage(s3 AwsS3, file *multipart.FileHeader, folder string) (string, error) {
	key, err := s3.UploadFile(uuid.NewString(), file, folder, AllowImage...)
	if err != nil {
		return "", err
	}
	return s3.GetPublicLinkKey(key), nil
}

// RemoveImage deletes the object behind link when it lives in our bucket. Failures are only logged.
func RemoveImage(s3 AwsS3, link string) {
	key := s3.GetObjectKeyFromLink(link)
	if key == "" {
		return
	}
	if err := s3.DeleteFile(key); err != nil {
		log.Warnf("failed to delete object %s: %v", key, err)
	}
}
