// Package slackbot implements the bot's Slack-facing logic: inbound
// [request verification], slash-command dispatch and reply formatting,
// [Events API] handling, and the welcome message for new members.
//
// [request verification]: https://docs.slack.dev/authentication/verifying-requests-from-slack
// [Events API]: https://docs.slack.dev/apis/events-api
package slackbot
