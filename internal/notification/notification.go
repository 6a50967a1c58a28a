/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/jerry-enebeli/savings/config"
	"github.com/jerry-enebeli/savings/internal/request"
)

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

func slackPayload(project string, err error, at time.Time) slackMessage {
	return slackMessage{Blocks: []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: fmt.Sprintf("Scenario run failed in %s 🐞", project), Emoji: true},
		},
		{
			Type:   "section",
			Fields: []slackText{{Type: "mrkdwn", Text: fmt.Sprintf("*Error:*\n%v", err)}},
		},
		{
			Type:   "section",
			Fields: []slackText{{Type: "mrkdwn", Text: fmt.Sprintf("*Time:*\n%v", at.Format(time.RFC822))}},
		},
	}}
}

// SlackNotification posts err to the Slack webhook at url, retrying with
// exponential backoff up to maxRetries times.
func SlackNotification(ctx context.Context, url, project string, err error, maxRetries uint64) error {
	payload := slackPayload(project, err, time.Now())

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	return backoff.Retry(func() error {
		_, postErr := request.PostJSON(ctx, url, payload)
		if postErr != nil {
			logrus.WithError(postErr).Warn("slack notification attempt failed")
		}
		return postErr
	}, b)
}

// NotifyError logs systemError and, when a Slack webhook is configured, sends
// it there. It blocks until delivery succeeds or retries run out, since the
// CLI exits right after a failed run.
func NotifyError(ctx context.Context, systemError error) {
	logrus.Error(systemError)

	conf, err := config.Fetch()
	if err != nil {
		logrus.Warn(err)
		return
	}

	if conf.Notification.Slack.WebhookUrl == "" {
		return
	}

	err = SlackNotification(ctx, conf.Notification.Slack.WebhookUrl, conf.ProjectName, systemError, conf.Notification.MaxRetries)
	if err != nil {
		logrus.WithError(err).Error("could not deliver slack notification")
	}
}
