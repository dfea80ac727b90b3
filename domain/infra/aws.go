package infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// ローカルのエミュレータ向けにはダミーの認証情報を使う
func loadAWSConfig(ctx context.Context, local bool) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if local {
		opts = append(opts,
			config.WithRegion("dummy"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
