package slackbot

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/manzil-infinity180/RepoRover/pkg/projects"
)

// maxTextLen bounds every reply's text body. Slack rejects section
// text objects above 3000 characters, so longer bodies are truncated
// with a trailing ellipsis instead of failing the request.
const maxTextLen = 3000

// noInfoText is the reply for project lookups when the registry has
// no matching entry and no default entry either.
const noInfoText = "No information available for this project."

// contributePrefix lets users invoke per-project contribution info as
// a single slash command, e.g. "/contribute-kubeflex".
const contributePrefix = "/contribute-"

type command struct {
	name        string
	description string
	handler     func(reg *projects.Registry, req slack.SlashCommand) slack.Msg
}

// commandTable is the closed set of recognized slash commands, in the
// order they are listed by "/help" and by the unknown-command reply.
// It is populated in init rather than at declaration because helpReply
// (via helpBlocks) reads the table back, which would otherwise be an
// initialization cycle.
var commandTable []command

func init() {
	commandTable = []command{
		{"/help", "List all commands and the maintainers to tag", helpReply},
		{"/contribute", "General contribution guidelines", projectCommand(projects.DefaultKey)},
		{"/kubestellar", "KubeStellar Core project info", projectCommand("kubestellar")},
		{"/kubeflex", "KubeFlex project info", projectCommand("kubeflex")},
		{"/ui", "KubeStellar UI project info", projectCommand("ui")},
		{"/a2a", "App-to-App (A2A) project info", projectCommand("a2a")},
		{"/meeting", "Community meeting schedule and agenda", meetingReply},
		{"/know-about-internship", "Open source contribution and internship guidance", internshipReply},
	}
}

// Dispatch maps a verified slash command to its reply. It never fails:
// unrecognized commands degrade to a help-style reply, and project
// lookups fall back to the registry's default entry.
func Dispatch(reg *projects.Registry, req slack.SlashCommand) slack.Msg {
	name := strings.TrimSpace(req.Command)

	for _, c := range commandTable {
		if c.name == name {
			return c.handler(reg, req)
		}
	}

	if key, ok := strings.CutPrefix(name, contributePrefix); ok && key != "" {
		return projectReply(reg, req, key)
	}

	return unknownCommandReply(name)
}

// projectCommand builds a handler bound to a project key. The first
// word of the command's text argument, if any, overrides the key.
func projectCommand(key string) func(*projects.Registry, slack.SlashCommand) slack.Msg {
	return func(reg *projects.Registry, req slack.SlashCommand) slack.Msg {
		k := key
		if args := strings.Fields(req.Text); len(args) > 0 {
			k = args[0]
		}
		return projectReply(reg, req, k)
	}
}

func projectReply(reg *projects.Registry, req slack.SlashCommand, key string) slack.Msg {
	p, ok := reg.Get(key)
	if !ok {
		return ephemeralReply(noInfoText)
	}

	org := reg.Org()
	text := fmt.Sprintf("*%s*\n_%s_\n\n📖 Documentation: %s\n🔗 GitHub: %s\n👥 Maintainers: %s",
		p.Name, p.Description, p.DocsURL, p.GitHubURL,
		projects.FormatMaintainers(p.Maintainers))

	return slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         Truncate(text, maxTextLen),
		Blocks:       slack.Blocks{BlockSet: projectBlocks(req.UserID, p, org)},
	}
}

func helpReply(reg *projects.Registry, _ slack.SlashCommand) slack.Msg {
	var b strings.Builder
	b.WriteString("🤖 *Available commands*\n")
	for _, c := range commandTable {
		fmt.Fprintf(&b, "• `%s` — %s\n", c.name, c.description)
	}
	b.WriteString("\n👥 *Maintainers:* ")
	b.WriteString(projects.FormatMaintainers(reg.Maintainers()))

	return slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         Truncate(b.String(), maxTextLen),
		Blocks:       slack.Blocks{BlockSet: helpBlocks(reg)},
	}
}

func meetingReply(reg *projects.Registry, req slack.SlashCommand) slack.Msg {
	org := reg.Org()
	text := fmt.Sprintf("📅 *%s Community Meeting*\n"+
		"Get an invite by joining our Google Group: %s\n"+
		"Agenda & meeting notes: %s",
		org.Name, org.JoinURL, org.AgendaURL)

	return slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         Truncate(text, maxTextLen),
		Blocks:       slack.Blocks{BlockSet: meetingBlocks(req.UserID, reg)},
	}
}

func internshipReply(reg *projects.Registry, req slack.SlashCommand) slack.Msg {
	org := reg.Org()
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 *Interested in contributing to %s?*\n\nAvailable projects:\n", org.Name)
	for _, p := range reg.Projects() {
		if p.Key == projects.DefaultKey {
			continue
		}
		fmt.Fprintf(&b, "• *%s* — %s\n", p.Name, p.Description)
	}
	fmt.Fprintf(&b, "\n📖 Documentation: %s\n🔗 GitHub: %s\n"+
		"\n💡 Start with a \"good first issue\" label and don't hesitate to ask questions!",
		org.DocsURL, org.GitHubURL)

	return slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         Truncate(b.String(), maxTextLen),
		Blocks:       slack.Blocks{BlockSet: internshipBlocks(req.UserID, reg)},
	}
}

// unknownCommandReply is the fallback arm of the dispatcher: instead
// of failing the request, it enumerates the recognized command set.
func unknownCommandReply(name string) slack.Msg {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ Unknown command: `%s`\n\nAvailable commands:\n", sanitizeInline(name))
	for _, c := range commandTable {
		fmt.Fprintf(&b, "• `%s` — %s\n", c.name, c.description)
	}
	return ephemeralReply(Truncate(b.String(), maxTextLen))
}

func ephemeralReply(text string) slack.Msg {
	return slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

// Truncate bounds s at max runes, replacing the tail with an ellipsis
// when it overflows.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// sanitizeInline strips control characters from user-supplied text
// before it is echoed back in a reply.
func sanitizeInline(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
