package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"

	"checkin-bot/internal/locales"
	telegoapi "checkin-bot/pkg/telegoapi"
)

// HandleStart handles the /start command.
// It registers the bot commands with Telegram, logs the action, and sends a welcome message.
func (h *MessageHandler) HandleStart(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	if err := h.setupCommands(ctx, bot); err != nil {
		return h.sendError(ctx, bot, message.Chat.ID, fmt.Errorf("failed to set up commands: %w", err))
	}

	localizer := h.getLocalizer(message.From)

	h.recordUserActivity(message.From, ActionCommandStart, map[string]interface{}{
		"chat_id": message.Chat.ID,
	})

	startMsg := locales.GetMessage(localizer, "MsgStart", nil, nil)
	return h.sendSuccess(ctx, bot, message.Chat.ID, startMsg)
}

// HandleHelp handles the /help command.
// It lists every command with its localized description.
func (h *MessageHandler) HandleHelp(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)

	var helpText strings.Builder
	helpText.WriteString(locales.GetMessage(localizer, "MsgHelpHeader", nil, nil) + "\n")
	for _, cmd := range h.commands {
		localizedDesc := locales.GetMessage(localizer, cmd.Description, nil, nil)
		helpText.WriteString(fmt.Sprintf("/%s - %s\n", cmd.Command, localizedDesc))
	}
	helpText.WriteString(locales.GetMessage(localizer, "MsgHelpFooter", nil, nil))

	h.recordUserActivity(message.From, ActionCommandHelp, map[string]interface{}{
		"chat_id": message.Chat.ID,
	})

	return h.sendSuccess(ctx, bot, message.Chat.ID, helpText.String())
}

// setupCommands registers the bot's commands with Telegram.
// It builds the list of commands from the handler's configuration, localizes their descriptions,
// and uses the bot instance to set them.
func (h *MessageHandler) setupCommands(ctx context.Context, bot telegoapi.BotAPI) error {
	if len(h.commands) == 0 {
		return nil // No commands to set is not an error
	}

	// Create a localizer for the default language to translate descriptions
	localizer := locales.NewLocalizer(locales.DefaultLanguage)

	commands := make([]telego.BotCommand, 0, len(h.commands))
	for _, cmd := range h.commands {
		localizedDesc := locales.GetMessage(localizer, cmd.Description, nil, nil)
		commands = append(commands, telego.BotCommand{
			Command:     cmd.Command,
			Description: localizedDesc,
		})
	}

	err := bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	return nil
}
