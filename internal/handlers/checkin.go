package handlers

import (
	"context"
	"errors"

	"github.com/mymmrac/telego"

	"checkin-bot/internal/checkin"
	"checkin-bot/internal/locales"
	telegoapi "checkin-bot/pkg/telegoapi"
)

// HandleCheckin handles the /checkin command: one successful check-in per
// user per calendar day. A repeat attempt gets a friendly reminder, not an
// error reply.
func (h *MessageHandler) HandleCheckin(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)
	scopeID := scopeOf(message)

	result, err := h.service.CheckIn(ctx, scopeID, userIDOf(message.From), displayNameOf(message.From))
	if err != nil {
		if errors.Is(err, checkin.ErrAlreadyCheckedIn) {
			msg := locales.GetMessage(localizer, "MsgCheckinAlready", nil, nil)
			return h.sendSuccess(ctx, bot, message.Chat.ID, msg)
		}
		return h.sendError(ctx, bot, message.Chat.ID, err)
	}

	h.recordUserActivity(message.From, ActionCommandCheckin, map[string]interface{}{
		"chat_id": message.Chat.ID,
		"scope":   scopeID,
		"streak":  result.ContinuousDays,
		"reward":  result.Reward,
	})

	msg := locales.GetMessage(localizer, "MsgCheckinSuccess", map[string]interface{}{
		"Streak":    result.ContinuousDays,
		"Reward":    result.Reward,
		"TotalDays": result.TotalDays,
	}, nil)
	return h.sendSuccess(ctx, bot, message.Chat.ID, msg)
}

// HandleStats handles the /stats command and shows the caller's own record.
func (h *MessageHandler) HandleStats(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)
	scopeID := scopeOf(message)

	rec, ok := h.service.Stats(scopeID, userIDOf(message.From))
	if !ok {
		msg := locales.GetMessage(localizer, "MsgStatsEmpty", nil, nil)
		return h.sendSuccess(ctx, bot, message.Chat.ID, msg)
	}

	h.recordUserActivity(message.From, ActionCommandStats, map[string]interface{}{
		"chat_id": message.Chat.ID,
		"scope":   scopeID,
	})

	msg := locales.GetMessage(localizer, "MsgStats", map[string]interface{}{
		"DisplayName":  rec.DisplayName,
		"Streak":       rec.ContinuousDays,
		"TotalDays":    rec.TotalDays,
		"MonthDays":    rec.MonthDays,
		"TotalRewards": rec.TotalRewards,
		"MonthRewards": rec.MonthRewards,
	}, nil)
	return h.sendSuccess(ctx, bot, message.Chat.ID, msg)
}
