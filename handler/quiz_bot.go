package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/go-telegram/ui/keyboard/inline"
	"github.com/rs/zerolog/log"

	"ConflictBot/model"
	"ConflictBot/quiz"
)

const (
	answerPrefix     = "answer:"
	answeredCallback = "answered"
	retakeCallback   = "retake"
	stylesCallback   = "styles"
)

// QuizBotHandler routes Telegram updates into the quiz flow and renders
// the flow's outcomes back as messages and inline keyboards. All session
// mutation happens inside the flow before any outbound call is made.
type QuizBotHandler struct {
	flow    *quiz.Flow
	bank    *quiz.Bank
	archive ResultArchive // nil disables history
}

// ResultArchive mirrors repo.ResultArchive so the handler package does
// not depend on the storage backend.
type ResultArchive interface {
	SaveResult(ctx context.Context, record model.StyleRecord) error
	ListResults(ctx context.Context, userID int64) ([]model.StyleRecord, error)
}

func NewQuizBotHandler(flow *quiz.Flow, bank *quiz.Bank, archive ResultArchive) *QuizBotHandler {
	return &QuizBotHandler{
		flow:    flow,
		bank:    bank,
		archive: archive,
	}
}

// Register attaches the callback-query handlers. Commands arrive through
// Handler, set as the bot's default handler.
func (h *QuizBotHandler) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, answerPrefix, bot.MatchTypePrefix, h.AnswerCallback)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, answeredCallback, bot.MatchTypeExact, h.AnsweredNoop)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, retakeCallback, bot.MatchTypeExact, h.RetakeCallback)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, stylesCallback, bot.MatchTypeExact, h.StylesCallback)
}

// Handler handles command messages. It is the bot's default handler.
func (h *QuizBotHandler) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	switch command(update.Message.Text) {
	case "/start":
		h.sendText(ctx, b, chatID, welcomeText)
	case "/help":
		h.sendText(ctx, b, chatID, helpText)
	case "/info":
		h.sendText(ctx, b, chatID, infoText)
	case "/test":
		h.startAssessment(ctx, b, chatID, userID)
	case "/styles":
		h.sendStylesMenu(ctx, b, chatID)
	case "/reset":
		if h.flow.Reset(userID) {
			log.Info().Int64("user_id", userID).Msg("session reset")
			h.sendText(ctx, b, chatID, "Your test has been reset. Use /test to start over.")
		} else {
			h.sendText(ctx, b, chatID, "Nothing to reset. Use /test to start the assessment.")
		}
	case "/history":
		h.sendHistory(ctx, b, chatID, userID)
	default:
		h.sendText(ctx, b, chatID, "I didn't understand that command. Use /start or /help.")
	}
}

func (h *QuizBotHandler) startAssessment(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	q := h.flow.Start(userID)
	log.Info().Int64("user_id", userID).Msg("assessment started")
	h.sendQuestion(ctx, b, chatID, q)
}

// AnswerCallback handles an answer button tap. The callback data carries
// the category code and the index of the question the keyboard was
// rendered for, so duplicate or delayed taps are recognized and dropped
// without touching the session.
func (h *QuizBotHandler) AnswerCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	userID := cb.From.ID
	chatID := userID
	if cb.Message.Message != nil {
		chatID = cb.Message.Message.Chat.ID
	}

	category, questionIndex, err := parseAnswerData(cb.Data)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Str("data", cb.Data).Msg("malformed answer callback")
		h.answerCallback(ctx, b, cb.ID, "", false)
		return
	}

	adv, err := h.flow.Apply(userID, category, questionIndex)
	switch {
	case errors.Is(err, model.ErrNoActiveSession):
		h.answerCallback(ctx, b, cb.ID, "Please start a new test with /test.", true)
		return
	case errors.Is(err, model.ErrInvalidCategory):
		log.Warn().Int64("user_id", userID).Str("data", cb.Data).Msg("dropping answer with invalid category")
		h.answerCallback(ctx, b, cb.ID, "", false)
		return
	case errors.Is(err, model.ErrUndetermined):
		log.Error().Int64("user_id", userID).Msg("completed session had no answers")
		h.answerCallback(ctx, b, cb.ID, "", false)
		h.sendText(ctx, b, chatID, "Something went wrong with your test. Please start over with /test.")
		return
	case err != nil:
		log.Error().Err(err).Int64("user_id", userID).Msg("error applying answer")
		h.answerCallback(ctx, b, cb.ID, "", false)
		return
	}

	if adv.Stale {
		h.answerCallback(ctx, b, cb.ID, "Already answered.", false)
		return
	}

	h.answerCallback(ctx, b, cb.ID, "", false)

	if cb.Message.Message != nil {
		h.markAnswered(ctx, b, cb.Message.Message, questionIndex, category)
	}

	if adv.Completed {
		log.Info().Int64("user_id", userID).Str("category", string(adv.Result.Category)).Msg("assessment completed")
		h.sendResult(ctx, b, chatID, adv.Result)
		h.archiveResult(userID, adv.Result)
		return
	}

	h.sendQuestion(ctx, b, chatID, *adv.Next)
}

// AnsweredNoop acknowledges taps on already-answered keyboards.
func (h *QuizBotHandler) AnsweredNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	h.answerCallback(ctx, b, update.CallbackQuery.ID, "", false)
}

// RetakeCallback restarts the assessment from the result keyboard.
func (h *QuizBotHandler) RetakeCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	h.answerCallback(ctx, b, cb.ID, "", false)
	chatID := cb.From.ID
	if cb.Message.Message != nil {
		chatID = cb.Message.Message.Chat.ID
	}
	h.startAssessment(ctx, b, chatID, cb.From.ID)
}

// StylesCallback opens the styles menu from the result keyboard.
func (h *QuizBotHandler) StylesCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	h.answerCallback(ctx, b, cb.ID, "", false)
	if cb.Message.Message == nil {
		return
	}
	h.sendStylesMenu(ctx, b, cb.Message.Message.Chat.ID)
}

func (h *QuizBotHandler) sendQuestion(ctx context.Context, b *bot.Bot, chatID int64, q model.Question) {
	text := fmt.Sprintf("❓ <b>Question %d/%d</b>\n\n%s", q.ID+1, h.bank.Len(), q.Prompt)
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: answerKeyboard(q),
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending question")
	}
}

// markAnswered replaces the tapped keyboard with a disabled copy that
// shows which option was chosen.
func (h *QuizBotHandler) markAnswered(ctx context.Context, b *bot.Bot, msg *models.Message, questionIndex int, chosen model.Category) {
	q, ok := h.bank.Question(questionIndex)
	if !ok {
		return
	}
	_, err := b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		ReplyMarkup: answeredKeyboard(q, chosen),
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("error disabling answered keyboard")
	}
}

func (h *QuizBotHandler) sendResult(ctx context.Context, b *bot.Bot, chatID int64, result *model.Result) {
	text := fmt.Sprintf("<b>🎉 Your dominant Conflict Resolution Style: %s</b>\n\n%s\n\n",
		result.Category.Name(), result.Category.Description())
	text += "✅ <b>Tips for you:</b>\n"
	text += result.Category.Advice()

	kb := models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "🎯 Take the test again", CallbackData: retakeCallback},
			},
			{
				{Text: "📖 All five styles", CallbackData: stylesCallback},
			},
		},
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending result")
	}
}

// sendStylesMenu shows one button per style plus an overview button.
func (h *QuizBotHandler) sendStylesMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	kb := inline.New(b)
	for _, c := range model.Categories {
		kb = kb.Row().Button(c.Name(), []byte(c), h.onStyleSelect)
	}
	kb = kb.Row().Button("Show all", []byte("all"), h.onStyleSelect)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "<b>Conflict Resolution Styles</b>\n\nPick a style to learn about:",
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending styles menu")
	}
}

func (h *QuizBotHandler) onStyleSelect(ctx context.Context, b *bot.Bot, mes models.MaybeInaccessibleMessage, data []byte) {
	if mes.Message == nil {
		return
	}
	chatID := mes.Message.Chat.ID

	var text string
	if string(data) == "all" {
		text = "<b>Conflict Resolution Styles Overview:</b>\n\n"
		for _, c := range model.Categories {
			text += c.Description() + "\n\n"
		}
	} else {
		c := model.Category(data)
		if !c.Valid() {
			log.Warn().Str("data", string(data)).Msg("unknown style selection")
			return
		}
		text = c.Description() + "\n\n<b>Tips:</b>\n" + c.Advice()
	}
	h.sendText(ctx, b, chatID, text)
}

func (h *QuizBotHandler) sendHistory(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	if h.archive == nil {
		h.sendText(ctx, b, chatID, "Result history is not available on this bot.")
		return
	}

	records, err := h.archive.ListResults(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("error listing archived results")
		h.sendText(ctx, b, chatID, "Error retrieving your history. Please try again later.")
		return
	}
	if len(records) == 0 {
		h.sendText(ctx, b, chatID, "You have no completed tests yet. Use /test to take the assessment.")
		return
	}

	text := "<b>Your past results:</b>\n"
	for _, record := range records {
		text += fmt.Sprintf("- %s — %s\n", record.TakenAt.Format("2006-01-02"), record.Category.Name())
	}
	h.sendText(ctx, b, chatID, text)
}

// archiveResult writes the completed result off the event path; archive
// failures are logged and never surface to the user.
func (h *QuizBotHandler) archiveResult(userID int64, result *model.Result) {
	if h.archive == nil {
		return
	}
	record := model.StyleRecord{
		UserID:   userID,
		Category: result.Category,
		Tallies:  result.Tallies,
		TakenAt:  time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.archive.SaveResult(ctx, record); err != nil {
			log.Error().Err(err).Int64("user_id", userID).Msg("error archiving result")
		}
	}()
}

func (h *QuizBotHandler) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
	}
}

func (h *QuizBotHandler) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string, alert bool) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		log.Error().Err(err).Msg("error answering callback query")
	}
}

// command extracts the command from a message, dropping arguments and
// the @botname suffix used in group chats.
func command(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return cmd
}

// parseAnswerData decodes "answer:<category>:<questionIndex>".
func parseAnswerData(data string) (model.Category, int, error) {
	rest, ok := strings.CutPrefix(data, answerPrefix)
	if !ok {
		return "", 0, fmt.Errorf("missing %q prefix: %q", answerPrefix, data)
	}
	code, indexStr, ok := strings.Cut(rest, ":")
	if !ok {
		return "", 0, fmt.Errorf("missing question index: %q", data)
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		return "", 0, fmt.Errorf("invalid question index %q", indexStr)
	}
	return model.Category(code), index, nil
}

// answerKeyboard renders a question's options, one per row, in a fresh
// shuffled order. Each button carries the category code and the question
// index, never the button position.
func answerKeyboard(q model.Question) models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, opt := range quiz.ShuffleOptions(q.Options) {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         opt.Label,
			CallbackData: fmt.Sprintf("%s%s:%d", answerPrefix, opt.Category, q.ID),
		}})
	}
	return models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// answeredKeyboard is the disabled copy shown after an accepted answer,
// with a check mark on the chosen option.
func answeredKeyboard(q model.Question, chosen model.Category) models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, opt := range q.Options {
		label := opt.Label
		if opt.Category == chosen {
			label = "✅ " + label
		}
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         label,
			CallbackData: answeredCallback,
		}})
	}
	return models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

const welcomeText = "<b>Welcome to the Conflict Resolution Style Test Bot!</b>\n\n" +
	"Answer 15 short scenario questions and find out which of the five conflict-handling styles you lean on most.\n\n" +
	"Use /test to start the assessment.\n" +
	"Use /styles to learn about all conflict styles.\n" +
	"Use /info to read more about this bot."

const helpText = "Commands:\n" +
	"/start – Start interacting with me and see a quick introduction.\n" +
	"/test – Begin the assessment. Restarting discards any test in progress.\n" +
	"/styles – Learn about the five conflict resolution styles.\n" +
	"/reset – Abandon a test in progress.\n" +
	"/history – See your past results.\n" +
	"/info – About this bot.\n" +
	"/help – Show this reminder."

const infoText = "<b>ℹ️ About This Bot</b>\n\n" +
	"This bot helps you identify your dominant <b>Conflict Resolution Style</b> through an interactive assessment.\n\n" +
	"💡 <b>Purpose:</b>\n" +
	"• Raise awareness of different conflict-handling strategies.\n" +
	"• Provide actionable insights on how you approach conflicts.\n" +
	"• Offer guidance on how to use your preferred style effectively.\n\n" +
	"<b>Key Features:</b>\n" +
	"• 15 scenario-based questions\n" +
	"• Clear descriptions of all 5 conflict styles\n" +
	"• Tailored recommendations based on results\n\n" +
	"Use /test to start the assessment or /styles to learn about all styles!"
