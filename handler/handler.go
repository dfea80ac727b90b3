package handler

//go:generate mockgen -source=../domain/infra/datastore.go -destination=mock_datastore_test.go -package=handler
//go:generate mockgen -source=../domain/infra/mailer.go -destination=mock_mailer_test.go -package=handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pyama86/inquiry-relay/config"
	"github.com/pyama86/inquiry-relay/domain/infra"
	"github.com/pyama86/inquiry-relay/domain/model"
	"github.com/pyama86/inquiry-relay/metrics"
	"github.com/slack-go/slack"
)

const (
	stepSaveInquiry      = "save_inquiry"
	stepSendConfirmation = "send_confirmation"
	stepSendNotification = "send_notification"
)

type Handler struct {
	ds         infra.Datastore
	mailer     infra.Mailer
	summarizer infra.Summarizer
	client     infra.SlackAPI
	cfg        *config.Config
	now        func() time.Time
}

// 1件の問い合わせに対する処理の1段階。失敗したら後続は実行しない
type step struct {
	name string
	run  func(context.Context, *model.Inquiry) error
}

// NewHandler は設定に従って各クライアントを生成する
func NewHandler(ctx context.Context, cfg *config.Config) (*Handler, error) {
	ds, err := newDatastore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	mailer, err := newMailer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	h := New(cfg, ds, mailer)

	oa, err := infra.NewOpenAI()
	if err != nil {
		return nil, err
	}
	if oa != nil {
		h.summarizer = oa
	}

	if cfg.SlackEnabled() {
		h.client = slack.New(cfg.SlackBotToken)
	}
	return h, nil
}

func New(cfg *config.Config, ds infra.Datastore, mailer infra.Mailer) *Handler {
	return &Handler{
		ds:     ds,
		mailer: mailer,
		cfg:    cfg,
		now:    time.Now,
	}
}

func newDatastore(ctx context.Context, cfg *config.Config) (infra.Datastore, error) {
	switch cfg.DBDriver {
	case config.DBDriverDynamoDB:
		return infra.NewDynamoDB(ctx, cfg)
	case config.DBDriverSQLite:
		return infra.NewDataBase(cfg.DBPath)
	case config.DBDriverMemory:
		return infra.NewMemoryStore(cfg.MemoryRetention), nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
}

func newMailer(ctx context.Context, cfg *config.Config) (infra.Mailer, error) {
	switch cfg.MailDriver {
	case config.MailDriverSES:
		return infra.NewSES(ctx, cfg)
	case config.MailDriverLog:
		return infra.NewLogMailer(nil), nil
	}
	return nil, fmt.Errorf("unknown MAIL_DRIVER: %s", cfg.MailDriver)
}

func (h *Handler) Close() error {
	if c, ok := h.ds.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Submit は問い合わせを保存し、受付メールと担当者向けの通知メールを順に送る。
// どこかで失敗したらそこで打ち切る。保存済みのレコードは消さない
func (h *Handler) Submit(ctx context.Context, req *SubmitRequest) (*model.Inquiry, error) {
	now := h.now()
	inquiry := &model.Inquiry{
		ID:        model.NewInquiryID(now),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: now,
	}

	for _, s := range h.steps() {
		start := time.Now()
		err := s.run(ctx, inquiry)
		metrics.ObserveStep(s.name, err, time.Since(start))
		if err != nil {
			return inquiry, fmt.Errorf("%s failed: %w", s.name, err)
		}
	}

	h.postInquiry(inquiry)
	return inquiry, nil
}

func (h *Handler) steps() []step {
	return []step{
		{name: stepSaveInquiry, run: h.saveInquiry},
		{name: stepSendConfirmation, run: h.sendConfirmation},
		{name: stepSendNotification, run: h.sendNotification},
	}
}

func (h *Handler) saveInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	return h.ds.SaveInquiry(ctx, inquiry)
}

func (h *Handler) sendConfirmation(ctx context.Context, inquiry *model.Inquiry) error {
	return h.mailer.SendEmail(ctx, confirmationEmail(h.cfg.SenderEmail, inquiry))
}

func (h *Handler) sendNotification(ctx context.Context, inquiry *model.Inquiry) error {
	return h.mailer.SendEmail(ctx, notificationEmail(h.cfg.SenderEmail, h.cfg.BusinessEmail, inquiry, h.summarize(ctx, inquiry)))
}

// 要約は付加情報なので失敗しても通知は送る
func (h *Handler) summarize(ctx context.Context, inquiry *model.Inquiry) string {
	if h.summarizer == nil {
		return ""
	}
	summary, err := h.summarizer.SummarizeInquiry(ctx, inquiry)
	if err != nil {
		slog.Warn("SummarizeInquiry failed", slog.Any("err", err), slog.String("inquiry_id", inquiry.ID))
		return ""
	}
	return summary
}

// Slack への投稿は失敗してもログに残すだけ
func (h *Handler) postInquiry(inquiry *model.Inquiry) {
	if h.client == nil {
		return
	}
	if _, _, err := h.client.PostMessage(
		h.cfg.SlackChannel,
		slack.MsgOptionText(notificationSubject(inquiry), false),
		slack.MsgOptionBlocks(inquiryBlocks(inquiry)...),
	); err != nil {
		slog.Error("Failed to post inquiry to slack", slog.Any("err", err), slog.String("inquiry_id", inquiry.ID))
	}
}
