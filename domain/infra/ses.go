package infra

//go:generate mockgen -source=ses.go -destination=mock_ses_test.go -package=infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pyama86/inquiry-relay/config"
	"github.com/pyama86/inquiry-relay/domain/model"
)

const charsetUTF8 = "UTF-8"

type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SES struct {
	client SESAPI
}

func NewSES(ctx context.Context, cfg *config.Config) (*SES, error) {
	local := cfg.SESEndpoint != ""
	awsCfg, err := loadAWSConfig(ctx, local)
	if err != nil {
		return nil, err
	}

	var optFns []func(*ses.Options)
	if local {
		optFns = append(optFns, func(o *ses.Options) {
			o.BaseEndpoint = aws.String(cfg.SESEndpoint)
		})
	}
	return NewSESWithClient(ses.NewFromConfig(awsCfg, optFns...)), nil
}

func NewSESWithClient(client SESAPI) *SES {
	return &SES{client: client}
}

func (s *SES) SendEmail(ctx context.Context, email *model.Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients: %s", email)
	}
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses: email.To,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(email.Subject),
				Charset: aws.String(charsetUTF8),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(email.Body),
					Charset: aws.String(charsetUTF8),
				},
			},
		},
	})
	return err
}
