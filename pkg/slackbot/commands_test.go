package slackbot

import (
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/manzil-infinity180/RepoRover/pkg/projects"
)

func testRegistry(t *testing.T) *projects.Registry {
	t.Helper()
	reg, err := projects.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestDispatchAllRecognizedCommands(t *testing.T) {
	reg := testRegistry(t)

	for _, c := range commandTable {
		t.Run(strings.TrimPrefix(c.name, "/"), func(t *testing.T) {
			msg := Dispatch(reg, slack.SlashCommand{Command: c.name, UserID: "U123"})
			if msg.Text == "" {
				t.Errorf("Dispatch(%q) returned empty reply text", c.name)
			}
			if msg.ResponseType != slack.ResponseTypeInChannel &&
				msg.ResponseType != slack.ResponseTypeEphemeral {
				t.Errorf("Dispatch(%q) response type = %q", c.name, msg.ResponseType)
			}
		})
	}
}

func TestDispatchProjectCommand(t *testing.T) {
	reg := testRegistry(t)
	p, ok := reg.Get("kubeflex")
	if !ok || p.Key != "kubeflex" {
		t.Fatal("test registry is missing the kubeflex project")
	}

	msg := Dispatch(reg, slack.SlashCommand{Command: "/kubeflex", UserID: "U123"})
	if !strings.Contains(msg.Text, p.DocsURL) {
		t.Errorf("reply text %q does not contain docs URL %q", msg.Text, p.DocsURL)
	}
	if !strings.Contains(msg.Text, p.GitHubURL) {
		t.Errorf("reply text %q does not contain GitHub URL %q", msg.Text, p.GitHubURL)
	}
	if msg.ResponseType != slack.ResponseTypeInChannel {
		t.Errorf("response type = %q, want %q", msg.ResponseType, slack.ResponseTypeInChannel)
	}
}

func TestDispatchUnknownProjectFallsBack(t *testing.T) {
	reg := testRegistry(t)
	def, ok := reg.Get(projects.DefaultKey)
	if !ok {
		t.Fatal("test registry is missing the default project")
	}

	msg := Dispatch(reg, slack.SlashCommand{Command: "/contribute-doesnotexist", UserID: "U123"})
	if !strings.Contains(msg.Text, def.DocsURL) {
		t.Errorf("reply text %q does not contain default docs URL %q", msg.Text, def.DocsURL)
	}
	if !strings.Contains(msg.Text, def.GitHubURL) {
		t.Errorf("reply text %q does not contain default GitHub URL %q", msg.Text, def.GitHubURL)
	}
}

func TestDispatchArgumentOverridesProject(t *testing.T) {
	reg := testRegistry(t)
	p, ok := reg.Get("ui")
	if !ok || p.Key != "ui" {
		t.Fatal("test registry is missing the ui project")
	}

	msg := Dispatch(reg, slack.SlashCommand{Command: "/contribute", Text: "ui", UserID: "U123"})
	if !strings.Contains(msg.Text, p.GitHubURL) {
		t.Errorf("reply text %q does not contain ui GitHub URL %q", msg.Text, p.GitHubURL)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	reg := testRegistry(t)

	msg := Dispatch(reg, slack.SlashCommand{Command: "/bogus-command", UserID: "U123"})
	if msg.ResponseType != slack.ResponseTypeEphemeral {
		t.Errorf("response type = %q, want %q", msg.ResponseType, slack.ResponseTypeEphemeral)
	}
	for _, c := range commandTable {
		if !strings.Contains(msg.Text, c.name) {
			t.Errorf("unknown-command reply does not list %q", c.name)
		}
	}
}

func TestDispatchStripsControlCharacters(t *testing.T) {
	reg := testRegistry(t)

	msg := Dispatch(reg, slack.SlashCommand{Command: "/bogus\x1b[31m\x00", UserID: "U123"})
	if strings.ContainsAny(msg.Text, "\x1b\x00") {
		t.Errorf("reply text contains control characters: %q", msg.Text)
	}
}

func TestHelpIsDeterministic(t *testing.T) {
	reg := testRegistry(t)
	req := slack.SlashCommand{Command: "/help", UserID: "U123"}

	first := Dispatch(reg, req)
	for range 10 {
		if got := Dispatch(reg, req); got.Text != first.Text {
			t.Fatalf("help reply changed between calls:\n%q\n%q", got.Text, first.Text)
		}
	}
}

func TestHelpListsMaintainers(t *testing.T) {
	reg := testRegistry(t)

	msg := Dispatch(reg, slack.SlashCommand{Command: "/help", UserID: "U123"})
	for _, m := range reg.Maintainers() {
		if !strings.Contains(msg.Text, m) {
			t.Errorf("help reply does not mention maintainer %q", m)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{
			name: "short_enough",
			s:    "hello",
			max:  10,
			want: "hello",
		},
		{
			name: "exact_length",
			s:    "hello",
			max:  5,
			want: "hello",
		},
		{
			name: "truncated",
			s:    "hello world",
			max:  6,
			want: "hello…",
		},
		{
			name: "multibyte_runes",
			s:    "héllô wörld",
			max:  6,
			want: "héllô…",
		},
		{
			name: "zero_max",
			s:    "hello",
			max:  0,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}
