package handlers

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"checkin-bot/internal/checkin"
	"checkin-bot/internal/locales"
	telegoapi "checkin-bot/pkg/telegoapi"
)

// sendSuccess sends a text reply to the user.
func (h *MessageHandler) sendSuccess(ctx context.Context, bot telegoapi.BotAPI, chatID int64, text string) error {
	_, err := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	if err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
		// Don't return error to user, just log it.
	}
	return nil
}

// sendError sends a generic, localized error message to the user and returns
// the original error so the update loop can report it (e.g. to Sentry).
// Internal failure details never reach the chat.
func (h *MessageHandler) sendError(ctx context.Context, bot telegoapi.BotAPI, chatID int64, originalErr error) error {
	log.Printf("Error for user in chat %d: %v", chatID, originalErr)

	localizer := locales.NewLocalizer(locales.DefaultLanguage)
	errMsg := locales.GetMessage(localizer, "MsgErrorGeneral", nil, nil)

	_, sendErr := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), errMsg))
	if sendErr != nil {
		log.Printf("Error sending generic error message to chat %d: %v", chatID, sendErr)
	}

	return originalErr
}

// getLocalizer determines the best localizer for a given user, falling back
// to the default language when no usable language code is present.
func (h *MessageHandler) getLocalizer(user *telego.User) *i18n.Localizer {
	lang := locales.DefaultLanguage
	if user != nil && user.LanguageCode != "" {
		lang = user.LanguageCode
	}
	return locales.NewLocalizer(lang)
}

// recordUserActivity logs the command invocation. Failures are logged and
// otherwise ignored; activity logging must never affect command handling.
func (h *MessageHandler) recordUserActivity(user *telego.User, action string, details map[string]interface{}) {
	if user == nil {
		return
	}
	if err := h.actionLogger.LogUserAction(user.ID, action, details); err != nil {
		log.Printf("Error logging action %s for user %d (%s): %v", action, user.ID, user.Username, err)
	}
}

// chatContext builds the typed caller context for scope resolution from the
// incoming message. Group chats isolate per group, private chats per user;
// anything else is folded into an opaque context.
func chatContext(message telego.Message) checkin.ChatContext {
	chat := message.Chat
	switch chat.Type {
	case telego.ChatTypeGroup, telego.ChatTypeSupergroup:
		return checkin.GroupContext{ChatID: chat.ID}
	case telego.ChatTypePrivate:
		if message.From != nil {
			return checkin.PrivateContext{UserID: message.From.ID}
		}
		return checkin.PrivateContext{UserID: chat.ID}
	}
	if chat.ID != 0 || chat.Type != "" {
		return checkin.OpaqueContext{Kind: chat.Type, Key: strconv.FormatInt(chat.ID, 10)}
	}
	return nil
}

// scopeOf resolves the isolation key for the message.
func scopeOf(message telego.Message) string {
	return checkin.ResolveScope(chatContext(message))
}

// userIDOf returns the sender's ID as the engine's string key.
func userIDOf(user *telego.User) string {
	return strconv.FormatInt(user.ID, 10)
}

// displayNameOf builds a best-effort human-readable name for the sender.
// Empty when nothing usable is present; the engine then derives a placeholder.
func displayNameOf(user *telego.User) string {
	if user == nil {
		return ""
	}
	name := strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
	if name != "" {
		return name
	}
	return user.Username
}
