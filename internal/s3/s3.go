package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/windoze95/receitas-api/internal/config"
)

// MaxImageBytes is the largest image accepted for upload.
const MaxImageBytes = 10 << 20

// imageExtensions maps the accepted content types to file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageExtension returns the extension for an accepted image content type.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := imageExtensions[contentType]
	return ext, ok
}

// ImageUploader stores user-submitted recipe images.
type ImageUploader interface {
	UploadUserImage(ctx context.Context, userID uint, contentType string, data []byte) (string, error)
}

// Store uploads images to the configured bucket.
type Store struct {
	cfg *config.Config
}

// NewStore creates a new Store.
func NewStore(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// newS3Client creates a new S3 client from the app config.
// When AWS access key and secret are provided, static credentials are used;
// otherwise the default credential chain applies (IAM role, instance
// profile, etc.).
func newS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.EnvVars.AWSRegion),
	}

	if cfg.EnvVars.AWSAccessKeyID != "" && cfg.EnvVars.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.EnvVars.AWSAccessKeyID,
			cfg.EnvVars.AWSSecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// UploadUserImage uploads data under a fresh key for userID and returns the
// object URL.
func (s *Store) UploadUserImage(ctx context.Context, userID uint, contentType string, data []byte) (string, error) {
	ext, ok := ImageExtension(contentType)
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	client, err := newS3Client(ctx, s.cfg)
	if err != nil {
		return "", err
	}

	uploader := manager.NewUploader(client)

	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.EnvVars.S3Bucket),
		Key:         aws.String(GenerateS3Key(userID, ext)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return result.Location, nil
}

// GenerateS3Key generates a unique key for an image uploaded by userID.
func GenerateS3Key(userID uint, ext string) string {
	return fmt.Sprintf("receitas_usuario/%d/%s%s", userID, uuid.NewString(), ext)
}
