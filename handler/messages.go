package handler

import (
	"fmt"

	"github.com/pyama86/inquiry-relay/domain/model"
	"github.com/slack-go/slack"
)

const confirmationSubject = "TravelEase - We received your inquiry!"

// 問い合わせた本人への受付メール
func confirmationEmail(from string, inquiry *model.Inquiry) *model.Email {
	return &model.Email{
		From:    from,
		To:      []string{inquiry.Email},
		Subject: confirmationSubject,
		Body: fmt.Sprintf("Hi %s,\n\nThank you for contacting TravelEase! Your inquiry ID is %s.\n\nWe'll get back to you soon.\n\nBest regards,\nTravelEase Team",
			inquiry.Name,
			inquiry.ID,
		),
	}
}

func notificationSubject(inquiry *model.Inquiry) string {
	return fmt.Sprintf("New Inquiry: %s", inquiry.ID)
}

// 担当者向けの通知メール。summary が空なら要約は付けない
func notificationEmail(from, to string, inquiry *model.Inquiry, summary string) *model.Email {
	body := fmt.Sprintf("New inquiry received!\n\nID: %s\nName: %s\nEmail: %s\nMessage: %s",
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Message,
	)
	if summary != "" {
		body += "\n\nSummary:\n" + summary
	}
	return &model.Email{
		From:    from,
		To:      []string{to},
		Subject: notificationSubject(inquiry),
		Body:    body,
	}
}

func inquiryBlocks(inquiry *model.Inquiry) []slack.Block {
	return []slack.Block{
		// ヘッダー
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", "📩 New inquiry", false, false),
		),
		slack.NewSectionBlock(
			nil,
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*🆔 ID:*\n%s", inquiry.ID), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*📅 Received:*\n%s", inquiry.Timestamp()), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*👤 Name:*\n%s", inquiry.Name), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*✉️ Email:*\n%s", inquiry.Email), false, false),
			},
			nil,
		),
		slack.NewDividerBlock(),
		// 問い合わせ内容
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*📝 Message:*\n>>> %s", inquiry.Message), false, false), // ボックス化
			nil, nil,
		),
	}
}
