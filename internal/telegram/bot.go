// Package telegram is a thin chat front-end over the plan generator: a
// free-text message describes how the user wants to eat this week, and the
// bot answers with the plan and its shopping list.
package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"fine-ill-eat/internal/config"
	"fine-ill-eat/internal/metrics"
	"fine-ill-eat/internal/plan"
	"fine-ill-eat/internal/prefs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// generateTimeout bounds a full four-stage generation from chat.
const generateTimeout = 5 * time.Minute

// Bot wraps the Telegram API around the plan generator.
type Bot struct {
	api          *tgbotapi.BotAPI
	generator    *plan.Generator
	metricsStore *metrics.Store
	cfg          *config.Config
}

// NewBot initializes the Telegram bot and registers the webhook.
func NewBot(cfg *config.Config, generator *plan.Generator, metricsStore *metrics.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("telegram: authorized on account %s", api.Self.UserName)

	wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook: %w", err)
	}
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("telegram: webhook set: %s", resp.Description)

	return &Bot{api: api, generator: generator, metricsStore: metricsStore, cfg: cfg}, nil
}

// RegisterHandlers registers the webhook handler on the given mux.
func (b *Bot) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/webhook", b.handleWebhook)
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("telegram: error parsing update: %v", err)
		return
	}
	if update.Message == nil {
		return
	}

	if b.cfg.TelegramAllowUserID != 0 && update.Message.From.ID != b.cfg.TelegramAllowUserID {
		log.Printf("telegram: unauthorized access attempt from user %d (@%s)",
			update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	switch {
	case text == "/metrics":
		b.handleMetricsCommand(msg.Chat.ID)
	case text == "/start" || text == "/help":
		b.reply(msg.Chat.ID, "Tell me how you want to eat this week (allergies, conditions, cravings, how often you cook) and I'll plan all 21 meals with a shopping list.")
	case text != "":
		b.handlePlanRequest(msg.Chat.ID, text)
	}
}

// handlePlanRequest treats the whole message as free-form planning notes.
func (b *Bot) handlePlanRequest(chatID int64, text string) {
	b.reply(chatID, "🍳 Planning your week, this can take a minute...")

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	p := prefs.Preferences{AdditionalNotes: text}
	res, err := b.generator.Generate(ctx, &p, nil)
	if err != nil {
		log.Printf("telegram: plan generation failed: %v", err)
		b.reply(chatID, "❌ Could not build a plan, please try again.")
		return
	}

	planMsg, listMsg := formatResultMarkdown(res)
	b.replyMarkdown(chatID, planMsg)
	b.replyMarkdown(chatID, listMsg)
}

func (b *Bot) handleMetricsCommand(chatID int64) {
	if b.metricsStore == nil {
		b.reply(chatID, "Metrics are not enabled.")
		return
	}
	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.reply(chatID, "❌ Error fetching metrics.")
		return
	}

	health := metrics.GetSysHealth("data")

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")
	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d execs)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution))
	}
	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDiskSize))

	b.replyMarkdown(chatID, sb.String())
}

// formatResultMarkdown renders the plan and the shopping list as two
// messages; together they would exceed Telegram's message size limit.
func formatResultMarkdown(res *plan.Result) (string, string) {
	var sb strings.Builder
	sb.WriteString("🍽 *Your Week*\n")
	if !res.UsedAgentPath {
		sb.WriteString("_(catalog plan)_\n")
	}
	for _, day := range res.Plan.Days {
		sb.WriteString(fmt.Sprintf("\n*%s*\n", day.Day))
		sb.WriteString(fmt.Sprintf("• Breakfast: %s\n", day.Breakfast.Name))
		sb.WriteString(fmt.Sprintf("• Lunch: %s\n", day.Lunch.Name))
		sb.WriteString(fmt.Sprintf("• Dinner: %s\n", day.Dinner.Name))
	}
	if res.CookSchedule != "" {
		sb.WriteString(fmt.Sprintf("\n👨‍🍳 %s\n", res.CookSchedule))
	}

	var list strings.Builder
	list.WriteString("🛒 *Shopping List*\n")
	lastCategory := ""
	for _, item := range res.ShoppingList {
		if item.Category != lastCategory {
			list.WriteString(fmt.Sprintf("\n*%s*\n", item.Category))
			lastCategory = item.Category
		}
		list.WriteString(fmt.Sprintf("• %s (%s)\n", item.Name, item.Quantity))
	}
	return sb.String(), list.String()
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("telegram: failed to send message: %v", err)
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram: failed to send message: %v", err)
	}
}
