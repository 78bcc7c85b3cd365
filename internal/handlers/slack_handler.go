package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
	slackcmd "github.com/diegoclair/shift-roster/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	rosterService contract.RosterService
	signingSecret string
	location      *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// NewSlackHandler builds the /roster slash command handler. Dates without an
// explicit argument are taken in loc.
func NewSlackHandler(rosterService contract.RosterService, signingSecret string, loc *time.Location, logger *slog.Logger) *SlackHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SlackHandler{
		rosterService: rosterService,
		signingSecret: signingSecret,
		location:      loc,
		now:           time.Now,
		logger:        logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.logger.Warn("rejected slack request with bad signature", slog.String("remote", r.RemoteAddr))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.logger.Debug("slash command",
		slog.String("command", string(cmd.Type)),
		slog.String("user_id", s.UserID),
		slog.String("channel_id", s.ChannelID),
	)

	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Best-effort write to response; connection may be closed
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.handleDay(ctx, h.today(), cmd.Location)
	case slackcmd.CmdDay:
		return h.handleDay(ctx, cmd.Date, cmd.Location)
	case slackcmd.CmdStats:
		return h.handleStats(ctx, cmd.Date, cmd.Location)
	case slackcmd.CmdLocations:
		return h.handleLocations(ctx)
	case slackcmd.CmdUse:
		return h.handleUse(ctx, cmd.Location)
	case slackcmd.CmdStaff:
		return h.handleStaff(ctx, cmd.Location)
	case slackcmd.CmdUsage:
		return h.handleUsage(ctx, cmd.Location)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) today() string {
	return h.now().In(h.location).Format(entity.DateLayout)
}

// resolveLocation finds a location by name, or the active one when name is
// empty.
func (h *SlackHandler) resolveLocation(ctx context.Context, name string) (entity.Location, *slack.Msg) {
	var (
		loc entity.Location
		err error
	)
	if name == "" {
		loc, err = h.rosterService.ActiveLocation(ctx)
	} else {
		loc, err = h.rosterService.FindLocationByName(ctx, name)
	}

	switch {
	case err == nil:
		return loc, nil
	case errors.Is(err, domain.ErrNoActiveLocation):
		return loc, h.createErrorResponse("No active location. Use `/roster use <location>` first.")
	case errors.Is(err, domain.ErrLocationNotFound):
		return loc, h.createErrorResponse(fmt.Sprintf("Location not found: %s", name))
	default:
		h.logger.Error("failed to resolve location", slog.Any("error", err))
		return loc, h.createErrorResponse("Error finding location")
	}
}

func (h *SlackHandler) handleDay(ctx context.Context, dateISO, locationName string) *slack.Msg {
	loc, errMsg := h.resolveLocation(ctx, locationName)
	if errMsg != nil {
		return errMsg
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         slackcmd.DayMessage(h.rosterService.GetState(ctx), loc, dateISO),
	}
}

func (h *SlackHandler) handleStats(ctx context.Context, dateISO, locationName string) *slack.Msg {
	loc, errMsg := h.resolveLocation(ctx, locationName)
	if errMsg != nil {
		return errMsg
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.StatsMessage(h.rosterService.GetState(ctx), loc, dateISO),
	}
}

func (h *SlackHandler) handleLocations(ctx context.Context) *slack.Msg {
	state := h.rosterService.GetState(ctx)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.LocationsMessage(state.Locations, state.ActiveLocationID),
	}
}

func (h *SlackHandler) handleUse(ctx context.Context, locationName string) *slack.Msg {
	loc, errMsg := h.resolveLocation(ctx, locationName)
	if errMsg != nil {
		return errMsg
	}

	if err := h.rosterService.SetActiveLocation(ctx, loc.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error setting active location: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Active location is now *%s*", loc.Name),
	}
}

func (h *SlackHandler) handleStaff(ctx context.Context, locationName string) *slack.Msg {
	loc, errMsg := h.resolveLocation(ctx, locationName)
	if errMsg != nil {
		return errMsg
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.StaffMessage(loc, h.rosterService.ListStaff(ctx, loc.ID)),
	}
}

func (h *SlackHandler) handleUsage(ctx context.Context, locationName string) *slack.Msg {
	loc, errMsg := h.resolveLocation(ctx, locationName)
	if errMsg != nil {
		return errMsg
	}

	usage, err := h.rosterService.GetUsageCounts(ctx, loc.ID)
	if err != nil {
		return h.createErrorResponse("Error counting usage")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.UsageMessage(loc, usage),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Best-effort write to response; connection may be closed
	json.NewEncoder(w).Encode(response)
}
