package s3client

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutFile — одна загрузка одним запросом PutObject: без multipart,
// без ретраев, без докачек. Возвращает размер отправленного файла.
func (c *Client) PutFile(ctx context.Context, bucket, key, localPath, contentType string) (int64, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("не удалось открыть файл %q: %w", localPath, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить информацию о %q: %w", localPath, err)
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(fi.Size()),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := c.S3.PutObject(ctx, in); err != nil {
		return 0, classify(fmt.Errorf("ошибка загрузки %q -> s3://%s/%s: %w", localPath, bucket, key, err))
	}
	return fi.Size(), nil
}
