package s3client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/wolfsTail/apkup/internal/config"
)

type Client struct {
	S3 *s3.Client
}

// New — клиент на ambient-кредах: стандартная цепочка SDK (переменные
// окружения, shared config, IAM-роль). Явно ключи сюда не передаются никогда.
func New(ctx context.Context, c *config.Config) (*Client, error) {
	region := nonEmpty(c.Region, "us-east-1")

	cfg, err := awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать конфигурацию AWS SDK: %w", err)
	}

	// http/https
	endpoint := c.Endpoint
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			if c.Secure {
				endpoint = "https://" + endpoint
			} else {
				endpoint = "http://" + endpoint
			}
		}
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("ошибка: некорректный endpoint %q: %w", endpoint, err)
		}
	}

	s3c := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.Region = region
		o.UsePathStyle = c.PathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint) // кастомный S3-совместимый endpoint
		}
	})

	return &Client{S3: s3c}, nil
}

func nonEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
