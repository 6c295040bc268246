package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"github.com/urfave/cli/v3"

	"github.com/manzil-infinity180/RepoRover/pkg/projects"
	"github.com/manzil-infinity180/RepoRover/pkg/slackbot"
)

const (
	timeout = 3 * time.Second

	// Slash command and event payloads are small; anything bigger
	// than this is not a legitimate Slack request.
	maxBodySize = 1 << 20 // 1 MiB.

	contentTypeHeader = "Content-Type"
)

type httpServer struct {
	httpPort      int
	signingSecret string

	registry *projects.Registry
	events   *slackbot.EventHandler
}

func newHTTPServer(cmd *cli.Command, reg *projects.Registry) *httpServer {
	botToken := cmd.String("slack-bot-token")
	if botToken == "" {
		log.Warn().Msg("Slack bot token is not configured - welcome messages will fail")
	}

	return &httpServer{
		httpPort:      cmd.Int("http-port"),
		signingSecret: cmd.String("slack-signing-secret"),
		registry:      reg,
		events:        slackbot.NewEventHandler(slackbot.NewGreeter(slack.New(botToken), reg)),
	}
}

// routes wires all the server's endpoints into a request multiplexer.
func (s *httpServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /slack/commands", s.commandsHandler)
	mux.HandleFunc("POST /slack/events", s.eventsHandler)
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /{$}", s.rootHandler)
	return mux
}

// run starts the HTTP server that exposes the Slack webhooks.
// This is blocking, to keep the RepoRover server running.
func (s *httpServer) run() error {
	server := &http.Server{
		Addr:         net.JoinHostPort("", strconv.Itoa(s.httpPort)),
		Handler:      s.routes(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	log.Info().Msgf("HTTP server listening on port %d", s.httpPort)
	err := server.ListenAndServe()
	if err != nil {
		log.Err(err).Send()
		return err
	}

	return nil
}

// commandsHandler checks and processes incoming Slack slash commands.
// Well-formed but unrecognized commands still get an HTTP 200 reply,
// so users always see a helpful response instead of a Slack error.
func (s *httpServer) commandsHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	l := requestLogger(r)
	l.Info().Msg("received slash command request")

	body, ok := readBody(w, r, l)
	if !ok {
		return
	}

	if statusCode := slackbot.VerifyRequest(l, s.signingSecret, r.Header, body); statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
		return
	}

	// Parsing consumes the request body, which was already drained
	// for signature verification, so restore it first.
	r.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		l.Warn().Err(err).Msg("bad request: unparsable slash command form")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if cmd.Command == "" || cmd.UserID == "" {
		l.Warn().Msg("bad request: missing command or user_id field")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	l.Info().Str("command", cmd.Command).Str("user_id", cmd.UserID).
		Str("channel_id", cmd.ChannelID).Msg("dispatching slash command")

	writeJSON(w, l, slackbot.Dispatch(s.registry, cmd))
}

// eventsHandler checks and processes incoming Slack Events API
// callbacks, including the one-time URL verification handshake.
func (s *httpServer) eventsHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	l := requestLogger(r)
	l.Info().Msg("received event request")

	if ct := r.Header.Get(contentTypeHeader); !strings.HasPrefix(ct, "application/json") {
		l.Warn().Str("header", contentTypeHeader).Str("got", ct).
			Str("want", "application/json").Msg("bad request: unexpected header value")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	body, ok := readBody(w, r, l)
	if !ok {
		return
	}

	if statusCode := slackbot.VerifyRequest(l, s.signingSecret, r.Header, body); statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
		return
	}

	respBody, contentType, statusCode := s.events.Handle(l.WithContext(r.Context()), body)
	if contentType != "" {
		w.Header().Set(contentTypeHeader, contentType)
	}
	w.WriteHeader(statusCode)
	if len(respBody) > 0 {
		if _, err := w.Write(respBody); err != nil {
			l.Err(err).Msg("failed to write event response body")
		}
	}
}

// healthHandler reports process liveness. It has no side effects.
func (s *httpServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, requestLogger(r), map[string]string{"status": "healthy"})
}

// rootHandler describes the service and its endpoints.
func (s *httpServer) rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, requestLogger(r), map[string]any{
		"message": "RepoRover Slack bot is running!",
		"endpoints": map[string]string{
			"/slack/commands": "POST - Handle slash commands",
			"/slack/events":   "POST - Handle Slack events",
			"/health":         "GET - Health check",
		},
	})
}

// readBody drains the request body, with a sanity bound on its size.
func readBody(w http.ResponseWriter, r *http.Request, l zerolog.Logger) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		l.Warn().Err(err).Msg("bad request: failed to read body")
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, l zerolog.Logger, v any) {
	w.Header().Set(contentTypeHeader, "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		l.Err(err).Msg("failed to encode JSON response")
	}
}

// requestLogger attaches a correlation ID and request metadata to a
// child logger for the duration of one webhook request.
func requestLogger(r *http.Request) zerolog.Logger {
	return log.With().
		Str("request_id", shortuuid.New()).
		Str("http_method", r.Method).
		Str("url_path", r.URL.EscapedPath()).
		Logger()
}
