package slackbot

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/manzil-infinity180/RepoRover/pkg/projects"
)

// Block Kit payload builders. These mirror the text replies in
// commands.go - Slack renders the blocks when present and falls back
// to the plain text body in notifications and older clients.

func markdown(format string, a ...any) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf(format, a...), false, false)
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func linkButton(label, url string) *slack.ButtonBlockElement {
	btn := slack.NewButtonBlockElement("", "", plainText(label))
	btn.URL = url
	return btn
}

func primaryLinkButton(label, url string) *slack.ButtonBlockElement {
	btn := linkButton(label, url)
	btn.Style = slack.StylePrimary
	return btn
}

// quickLinks is the standard org-wide footer of action buttons.
func quickLinks(org projects.Organization) *slack.ActionBlock {
	return slack.NewActionBlock("",
		primaryLinkButton("🌐 Website", org.Website),
		linkButton("📖 Documentation", org.DocsURL),
		linkButton("🔗 GitHub Org", org.GitHubURL),
	)
}

func projectBlocks(userID string, p projects.Project, org projects.Organization) []slack.Block {
	return []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("🎉 Welcome to %s!", org.Name))),
		slack.NewSectionBlock(
			markdown("Hi <@%s>! 🚀 *%s*\n_%s_", userID, p.Name, p.Description),
			nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown("*📖 Documentation*\n<%s|View Docs>", p.DocsURL),
			markdown("*🔗 GitHub Repository*\n<%s|View Code>", p.GitHubURL),
		}, nil),
		slack.NewSectionBlock(
			markdown("🤝 *Getting Help*\nQuestions about this project? Tag: %s",
				projects.FormatMaintainers(p.Maintainers)),
			nil, nil),
		slack.NewActionBlock("",
			primaryLinkButton("📖 View Documentation", p.DocsURL),
			linkButton("🔗 GitHub Repository", p.GitHubURL),
			linkButton("🌐 Website", org.Website),
		),
		slack.NewContextBlock("",
			markdown("🚀 *Happy Coding!* We're excited to have you in our community! 🌟")),
	}
}

func helpBlocks(reg *projects.Registry) []slack.Block {
	org := reg.Org()
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("🤖 %s Bot", org.Name))),
		slack.NewSectionBlock(
			markdown("Your guide to contributing to %s open source projects!", org.Name),
			nil, nil),
		slack.NewDividerBlock(),
	}

	var fields []*slack.TextBlockObject
	for _, c := range commandTable {
		fields = append(fields, markdown("`%s`\n%s", c.name, c.description))
		// Slack allows at most 10 fields per section block.
		if len(fields) == 10 {
			blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
			fields = nil
		}
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	blocks = append(blocks,
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			markdown("👥 *Project Maintainers & Contacts*\nNeed help with a specific project? Tag the right people:"),
			nil, nil))

	for _, p := range reg.Projects() {
		blocks = append(blocks, slack.NewSectionBlock(
			markdown("*%s:* %s", p.Name, projects.FormatMaintainers(p.Maintainers)),
			nil, nil))
	}

	return append(blocks,
		slack.NewDividerBlock(),
		quickLinks(org),
		slack.NewContextBlock("",
			markdown("💡 *Pro Tip:* Start with `/contribute` to get familiar with our main project, then explore specific components!")),
	)
}

func meetingBlocks(userID string, reg *projects.Registry) []slack.Block {
	org := reg.Org()
	return []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("🎯 Interested in Joining the %s Community Meeting?", org.Name))),
		slack.NewSectionBlock(
			markdown("Hi <@%s>! 🌟 *Welcome to our open source community!* We're excited you want to get involved.", userID),
			nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			markdown("*📅 Community Meeting Info*\n<%s|👉 Get an invite by joining our Google Group>\n\n*📝 Agenda & Meeting Notes*\n<%s|View Document>",
				org.JoinURL, org.AgendaURL),
			nil, nil),
		slack.NewDividerBlock(),
		quickLinks(org),
	}
}

func internshipBlocks(userID string, reg *projects.Registry) []slack.Block {
	org := reg.Org()
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("🎯 Interested in Contributing to %s?", org.Name))),
		slack.NewSectionBlock(
			markdown("Hi <@%s>! 🌟 *Welcome to our open source community!* We're excited you want to get involved.", userID),
			nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			markdown("📋 *Available Projects*\nChoose a project that matches your interests and skills:"),
			nil, nil),
	}

	var fields []*slack.TextBlockObject
	for _, p := range reg.Projects() {
		if p.Key == projects.DefaultKey {
			continue
		}
		fields = append(fields, markdown("*%s*\n%s", p.Name, p.Description))
		if len(fields) == 10 {
			blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
			fields = nil
		}
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	return append(blocks,
		quickLinks(org),
		slack.NewSectionBlock(
			markdown("💡 *Next Steps*\n1. Pick a project that interests you\n2. Check out the GitHub repository\n3. Look for \"good first issue\" labels\n4. Join our community discussions\n5. Don't hesitate to ask questions!"),
			nil, nil),
		slack.NewContextBlock("",
			markdown("🚀✨ *Let's build something amazing together!*")),
	)
}

func welcomeBlocks(userID string, reg *projects.Registry) []slack.Block {
	org := reg.Org()
	return []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("🎉 Hey there, welcome to %s!", org.Name))),
		slack.NewSectionBlock(
			markdown("Hi <@%s>! 🌟 *Welcome to our open source community!* We're thrilled to have you here.", userID),
			nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			markdown("🚀 *Getting Started Guide*\n\n📋 *Explore Our Projects*\nUse `/help` to see all commands, or start with `/contribute` for the main project."),
			nil, nil),
		quickLinks(org),
		slack.NewSectionBlock(
			markdown("🤝 *Need Help?*\n*New to open source?* Perfect! We're here to guide you.\n\n*Have questions?* Use `/help` to see all commands and find the right maintainers to tag."),
			nil, nil),
		slack.NewContextBlock("",
			markdown("🚀✨ *Ready to make an impact?* Happy coding! 🧰")),
	}
}
