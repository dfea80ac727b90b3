package infra

//go:generate mockgen -source=slack.go -destination=../../handler/mock_slack_test.go -package=handler

import "github.com/slack-go/slack"

type SlackAPI interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
