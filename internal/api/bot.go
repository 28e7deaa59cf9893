package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	app "pcb-partgraph/internal/application"
	"pcb-partgraph/internal/container"
	"pcb-partgraph/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я нахожу контактные площадки на снимках печатных плат.

📋 Команды:
/detect — найти площадки на фото
/eval — сравнить найденные площадки с разметкой (фото + graph.json)
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

🔍 /detect
1️⃣ Отправьте фото платы
2️⃣ Получите список площадок и фото с подсветкой

📊 /eval
1️⃣ Отправьте фото платы
2️⃣ Отправьте файл graph.json с разметкой
3️⃣ Получите precision / recall / F1 и оверлей

💡 Фото лучше отправлять файлом: сжатие искажает цвета площадок.`

	msgAwaitingBoard     = "📸 Отправьте фото платы."
	msgAwaitingEvalBoard = "📸 Отправьте фото платы, затем файл graph.json."
	msgAwaitingGraph     = "📄 Теперь отправьте файл graph.json с разметкой."
	msgCancelled         = "❌ Операция отменена. Выберите /detect или /eval."
	msgChooseMode        = "Выберите режим: /detect или /eval."
	msgUnknownCommand    = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing        = "⏳ Обрабатываю изображение..."
	msgNoPads            = "Площадки не найдены."
	msgProcessingError   = "⚠️ Не удалось обработать изображение. Попробуйте другое фото."
	msgGraphError        = "⚠️ Не удалось разобрать граф разметки. Проверьте JSON и отправьте файл ещё раз."
	msgNoBoardPhoto      = "📸 Сначала отправьте фото платы."

	maxListedPads = 20
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	sessions   *app.SessionService
	inspection *app.InspectionService
	http       *http.Client
	logger     zerolog.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, logger zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger = logger.With().Str("component", "telegram").Logger()
	logger.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api:        api,
		sessions:   c.SessionService,
		inspection: c.InspectionService,
		http:       http.DefaultClient,
		logger:     logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	session, err := b.sessions.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", msg.From.ID).Msg("get session")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	switch {
	case len(msg.Photo) > 0:
		// Берём файл с максимальным разрешением
		b.handleBoard(ctx, msg, session, msg.Photo[len(msg.Photo)-1].FileID)
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		b.handleBoard(ctx, msg, session, msg.Document.FileID)
	case msg.Document != nil:
		b.handleGraph(ctx, msg, session)
	default:
		b.sendMessage(msg.Chat.ID, hintFor(session.State))
	}
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	var (
		reply string
		err   error
	)
	switch msg.Command() {
	case "start":
		b.inspection.Forget(userID)
		_, err = b.sessions.Cancel(ctx, userID, chatID)
		reply = msgStart
	case "help":
		reply = msgHelp
	case "detect":
		_, err = b.sessions.BeginDetect(ctx, userID, chatID)
		reply = msgAwaitingBoard
	case "eval":
		_, err = b.sessions.BeginEvaluate(ctx, userID, chatID)
		reply = msgAwaitingEvalBoard
	case "cancel":
		b.inspection.Forget(userID)
		_, err = b.sessions.Cancel(ctx, userID, chatID)
		reply = msgCancelled
	default:
		reply = msgUnknownCommand
	}

	if err != nil {
		b.logger.Error().Err(err).Str("command", msg.Command()).Msg("update session")
	}
	b.sendMessage(chatID, reply)
}

// handleBoard принимает фото платы в режиме детекции или оценки
func (b *Bot) handleBoard(ctx context.Context, msg *tgbotapi.Message, session *entity.Session, fileID string) {
	if !session.AwaitsPhoto() {
		b.sendMessage(msg.Chat.ID, hintFor(session.State))
		return
	}

	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.logger.Error().Err(err).Msg("download photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	userID, chatID := msg.From.ID, msg.Chat.ID

	if session.State == entity.StateAwaitingEvalBoard {
		if _, err := b.inspection.AcceptEvalPhoto(ctx, userID, chatID, data); err != nil {
			b.logger.Error().Err(err).Msg("accept eval photo")
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, msgAwaitingGraph)
		return
	}

	if _, err := b.sessions.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		b.logger.Error().Err(err).Msg("update session")
	}
	b.sendMessage(chatID, msgProcessing)

	out, err := b.inspection.ProcessBoardPhoto(ctx, userID, chatID, data)
	if err != nil {
		b.logger.Error().Err(err).Msg("detect pads")
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	b.logger.Info().
		Int64("user_id", userID).
		Int("pads", len(out.Report.Detections)).
		Msg("board processed")

	text := formatDetections(out.Report.Detections)
	if out.Highlighted != nil {
		b.sendPhoto(chatID, out.Highlighted, text)
		return
	}
	b.sendMessage(chatID, text)
}

// handleGraph принимает graph.json в режиме оценки
func (b *Bot) handleGraph(ctx context.Context, msg *tgbotapi.Message, session *entity.Session) {
	if session.State != entity.StateAwaitingGraph {
		b.sendMessage(msg.Chat.ID, hintFor(session.State))
		return
	}

	data, err := b.downloadFile(ctx, msg.Document.FileID)
	if err != nil {
		b.logger.Error().Err(err).Msg("download graph")
		b.sendMessage(msg.Chat.ID, msgGraphError)
		return
	}

	out, err := b.inspection.ProcessGraphDocument(ctx, msg.From.ID, msg.Chat.ID, data)
	switch {
	case errors.Is(err, app.ErrNoBoardPhoto):
		b.sendMessage(msg.Chat.ID, msgNoBoardPhoto)
		return
	case errors.Is(err, entity.ErrParse):
		b.logger.Warn().Err(err).Msg("bad graph document")
		b.sendMessage(msg.Chat.ID, msgGraphError)
		return
	case err != nil:
		b.logger.Error().Err(err).Msg("evaluate board")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.logger.Info().
		Int64("user_id", msg.From.ID).
		Float64("f1", out.Report.Metrics.F1).
		Msg("board evaluated")

	text := formatMetrics(out.Report.Metrics)
	if out.Highlighted == nil {
		b.sendMessage(msg.Chat.ID, text)
		return
	}
	b.sendPhoto(msg.Chat.ID, out.Highlighted, text)
}

func hintFor(state entity.SessionState) string {
	switch state {
	case entity.StateAwaitingBoard:
		return msgAwaitingBoard
	case entity.StateAwaitingEvalBoard:
		return msgAwaitingEvalBoard
	case entity.StateAwaitingGraph:
		return msgAwaitingGraph
	default:
		return msgChooseMode
	}
}

// formatDetections форматирует список найденных площадок
func formatDetections(dets []entity.Detection) string {
	if len(dets) == 0 {
		return msgNoPads
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Найдено площадок: %d\n", len(dets))
	for i, d := range dets {
		if i == maxListedPads {
			fmt.Fprintf(&sb, "… и ещё %d", len(dets)-maxListedPads)
			break
		}
		fmt.Fprintf(&sb, "%d. x=%.1f y=%.1f r=%.1f\n", i+1, d.X, d.Y, d.R)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatMetrics форматирует метрики оценки
func formatMetrics(m entity.Metrics) string {
	return fmt.Sprintf(
		"📊 Площадок в разметке: %d, найдено: %d\nTP: %d  FP: %d  FN: %d\nPrecision: %.3f  Recall: %.3f  F1: %.3f",
		m.GTCount, m.DetectionCount, m.TP, m.FP, m.FN, m.Precision, m.Recall, m.F1,
	)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Msg("send message")
	}
}

// sendPhoto отправляет PNG с подписью
func (b *Bot) sendPhoto(chatID int64, png []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "pads.png", Bytes: png})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error().Err(err).Msg("send photo")
	}
}
