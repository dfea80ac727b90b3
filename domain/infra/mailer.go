package infra

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pyama86/inquiry-relay/domain/model"
)

type Mailer interface {
	// プレーンテキストのメールを1通送る
	SendEmail(context.Context, *model.Email) error
}

// LogMailer は送信せずにログへ書き出す
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (l *LogMailer) SendEmail(ctx context.Context, email *model.Email) error {
	l.logger.InfoContext(ctx, "Email",
		slog.String("from", email.From),
		slog.String("to", strings.Join(email.To, ",")),
		slog.String("subject", email.Subject),
		slog.String("body", email.Body),
	)
	return nil
}
