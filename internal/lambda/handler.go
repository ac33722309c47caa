package lambda

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Briskwoods/portfolio/internal/commands"
	"github.com/Briskwoods/portfolio/internal/store"
)

// NewHandler returns a Lambda handler function that exports the snippet
// index and uploads it to S3.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		var buf bytes.Buffer
		if err := app.ExportJSON(ctx, &buf, store.AllCategories); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}

		if buf.Len() == 0 {
			return "", fmt.Errorf("export produced no output")
		}

		s3Bucket := app.Config.S3Bucket
		s3ObjectKey := app.Config.S3ObjectKey
		if s3Bucket == "" || s3ObjectKey == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		date := time.Now().Format("2006-Jan-02")
		s3ObjectKey = fmt.Sprintf(s3ObjectKey, date)

		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			return "", fmt.Errorf("failed to load AWS config: %w", err)
		}

		svc := s3.NewFromConfig(cfg)

		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s3Bucket),
			Key:    aws.String(s3ObjectKey),
			Body:   bytes.NewReader(buf.Bytes()),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload snippet index to S3: %w", err)
		}

		return "Lambda executed successfully and snippet index uploaded to S3", nil
	}
}
