package handlers

import (
	"context"
	"log"

	"github.com/mymmrac/telego"

	"checkin-bot/internal/database"
	telegoapi "checkin-bot/pkg/telegoapi"
)

// Action types for logging user activity
const (
	ActionCommandStart    = "command_start"
	ActionCommandHelp     = "command_help"
	ActionCommandCheckin  = "command_checkin"
	ActionCommandStats    = "command_stats"
	ActionCommandRankMenu = "command_rank_menu"
	ActionCommandRank     = "command_rank"
)

// Command represents a bot command, mapping the command string to its description and handler function.
type Command struct {
	Command     string                                                        // The command string (e.g., "checkin").
	Description string                                                        // Locale key for the command description shown in /help.
	Handler     func(context.Context, telegoapi.BotAPI, telego.Message) error // The function to execute when the command is received.
}

// MessageHandler handles incoming Telegram commands. It resolves the caller's
// scope, invokes the check-in engine and formats localized replies.
type MessageHandler struct {
	service      CheckInService
	actionLogger database.UserActionLogger
	rankLimit    int

	// commands holds the list of available bot commands.
	commands []Command
}

// NewMessageHandler creates and initializes a new MessageHandler instance.
// It sets up dependencies and defines the available bot commands.
func NewMessageHandler(service CheckInService, actionLogger database.UserActionLogger, rankLimit int) *MessageHandler {
	if service == nil {
		log.Fatal("MessageHandler: check-in service dependency is nil")
	}
	if actionLogger == nil {
		actionLogger = database.NoopActionLogger{}
	}
	h := &MessageHandler{
		service:      service,
		actionLogger: actionLogger,
		rankLimit:    rankLimit,
	}
	// Descriptions hold locale keys, localized on demand (e.g. in /help).
	h.commands = []Command{
		{Command: "start", Description: "CmdStartDesc", Handler: h.HandleStart},
		{Command: "help", Description: "CmdHelpDesc", Handler: h.HandleHelp},
		{Command: "checkin", Description: "CmdCheckinDesc", Handler: h.HandleCheckin},
		{Command: "stats", Description: "CmdStatsDesc", Handler: h.HandleStats},
		{Command: "rank", Description: "CmdRankDesc", Handler: h.HandleRankMenu},
		{Command: "ranktotal", Description: "CmdRankTotalDesc", Handler: h.HandleRankTotal},
		{Command: "rankmonth", Description: "CmdRankMonthDesc", Handler: h.HandleRankMonth},
		{Command: "rankdays", Description: "CmdRankDaysDesc", Handler: h.HandleRankDays},
		{Command: "rankmonthdays", Description: "CmdRankMonthDaysDesc", Handler: h.HandleRankMonthDays},
		{Command: "ranktoday", Description: "CmdRankTodayDesc", Handler: h.HandleRankToday},
	}
	return h
}

// GetCommandHandler retrieves the handler function associated with a specific command string (e.g., "checkin").
// It returns nil if the command is not found.
func (h *MessageHandler) GetCommandHandler(command string) func(context.Context, telegoapi.BotAPI, telego.Message) error {
	for _, cmd := range h.commands {
		if cmd.Command == command {
			return cmd.Handler
		}
	}
	return nil
}
