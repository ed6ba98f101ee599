package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"

	"checkin-bot/internal/checkin"
	"checkin-bot/internal/locales"
	telegoapi "checkin-bot/pkg/telegoapi"
)

// HandleRankMenu handles the /rank command and lists the five leaderboards.
func (h *MessageHandler) HandleRankMenu(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)

	h.recordUserActivity(message.From, ActionCommandRankMenu, map[string]interface{}{
		"chat_id": message.Chat.ID,
	})

	msg := locales.GetMessage(localizer, "MsgRankMenu", nil, nil)
	return h.sendSuccess(ctx, bot, message.Chat.ID, msg)
}

// HandleRankTotal handles /ranktotal: all-time reward points.
func (h *MessageHandler) HandleRankTotal(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	return h.sendRank(ctx, bot, message, checkin.MetricTotalRewards, "MsgRankTotalTitle", nil)
}

// HandleRankMonth handles /rankmonth: this month's reward points.
func (h *MessageHandler) HandleRankMonth(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	return h.sendRank(ctx, bot, message, checkin.MetricMonthRewards, "MsgRankMonthTitle", nil)
}

// HandleRankDays handles /rankdays: all-time check-in days.
func (h *MessageHandler) HandleRankDays(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	return h.sendRank(ctx, bot, message, checkin.MetricTotalDays, "MsgRankDaysTitle", nil)
}

// HandleRankMonthDays handles /rankmonthdays: this month's check-in days.
func (h *MessageHandler) HandleRankMonthDays(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	return h.sendRank(ctx, bot, message, checkin.MetricMonthDays, "MsgRankMonthDaysTitle", nil)
}

// HandleRankToday handles /ranktoday: streak lengths among users who already
// checked in today.
func (h *MessageHandler) HandleRankToday(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	filter := checkin.CheckedInOn(h.service.Today())
	return h.sendRank(ctx, bot, message, checkin.MetricContinuousDays, "MsgRankTodayTitle", filter)
}

// sendRank builds and sends one leaderboard reply.
func (h *MessageHandler) sendRank(ctx context.Context, bot telegoapi.BotAPI, message telego.Message, metric checkin.Metric, titleKey string, filter checkin.Filter) error {
	localizer := h.getLocalizer(message.From)
	scopeID := scopeOf(message)
	title := locales.GetMessage(localizer, titleKey, nil, nil)

	entries := h.service.TopN(scopeID, metric, h.rankLimit, filter)

	h.recordUserActivity(message.From, ActionCommandRank, map[string]interface{}{
		"chat_id": message.Chat.ID,
		"scope":   scopeID,
		"metric":  string(metric),
		"entries": len(entries),
	})

	if len(entries) == 0 {
		msg := locales.GetMessage(localizer, "MsgRankEmpty", map[string]interface{}{
			"Title": title,
		}, nil)
		return h.sendSuccess(ctx, bot, message.Chat.ID, msg)
	}

	var text strings.Builder
	text.WriteString(locales.GetMessage(localizer, "MsgRankHeader", map[string]interface{}{
		"Title": title,
		"Count": len(entries),
	}, nil))
	for i, entry := range entries {
		text.WriteString(fmt.Sprintf("\n%d. %s — %d", i+1, entry.Record.DisplayName, entry.Record.Value(metric)))
	}
	return h.sendSuccess(ctx, bot, message.Chat.ID, text.String())
}
