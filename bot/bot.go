package bot

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"food-app/config"
	"food-app/lang"
	"food-app/services"
	"food-app/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of *tgbotapi.BotAPI the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	tg      *tgbotapi.BotAPI
	api     sender
	cfg     *config.Config
	catalog *services.Catalog
	store   *session.Store

	userLang   map[int64]string // "en" or "uz"
	userLangMu sync.RWMutex

	// last screen card per chat, edited in place on every button press
	screenMsg   map[int64]int
	screenMsgMu sync.Mutex
}

func New(cfg *config.Config, catalog *services.Catalog, store *session.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	b := newBot(api, cfg, catalog, store)
	b.tg = api
	return b, nil
}

func newBot(api sender, cfg *config.Config, catalog *services.Catalog, store *session.Store) *Bot {
	return &Bot{
		api:       api,
		cfg:       cfg,
		catalog:   catalog,
		store:     store,
		userLang:  make(map[int64]string),
		screenMsg: make(map[int64]int),
	}
}

func sessionKey(userID int64) string {
	return "tg:" + strconv.FormatInt(userID, 10)
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Show the current screen"},
			{Command: "menu", Description: "Open the menu"},
			{Command: "language", Description: "Change language"},
			{Command: "logout", Description: "Sign out and clear the cart"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

// Start polls for updates and blocks until Stop is called.
func (b *Bot) Start() {
	if err := b.setBotCommands(); err != nil {
		log.Printf("set commands: %v", err)
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.tg.GetUpdatesChan(u)

	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) Stop() {
	if b.tg != nil {
		b.tg.StopReceivingUpdates()
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch strings.TrimSpace(msg.Text) {
	case "/start":
		b.sendScreen(chatID, userID)
	case "/menu":
		b.store.Get(sessionKey(userID)).Dispatch(session.NavigateTo{Screen: session.DefaultMenu()})
		b.sendScreen(chatID, userID)
	case "/logout":
		b.store.Get(sessionKey(userID)).Dispatch(session.Logout{})
		b.sendScreen(chatID, userID)
	case "/language":
		b.handleLanguage(chatID, userID)
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.From == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	data := cq.Data

	if strings.HasPrefix(data, "lang:") {
		b.answer(cq.ID, "")
		code := strings.TrimPrefix(data, "lang:")
		if !lang.Supported(code) {
			return
		}
		b.setLang(userID, code)
		b.send(chatID, lang.T(code, "language_changed"))
		b.sendScreen(chatID, userID)
		return
	}

	action, ok := services.ParseCallback(data, b.catalog)
	if !ok {
		b.answer(cq.ID, "")
		return
	}
	st, notice := b.store.Get(sessionKey(userID)).Dispatch(action)

	l := b.getLang(userID)
	if notice == session.NoticePaymentSuccess {
		b.answerAlert(cq.ID, lang.T(l, "payment_success"))
		b.send(chatID, lang.T(l, "payment_success"))
		b.sendCard(chatID, services.BuildCard(l, st, b.catalog))
		return
	}
	b.answer(cq.ID, "")
	b.editCard(chatID, cq.Message.MessageID, services.BuildCard(l, st, b.catalog))
}

func (b *Bot) handleLanguage(chatID int64, userID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("English", "lang:"+lang.En),
			tgbotapi.NewInlineKeyboardButtonData("O'zbek", "lang:"+lang.Uz),
		),
	)
	msg := tgbotapi.NewMessage(chatID, lang.T(b.getLang(userID), "choose_lang"))
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func (b *Bot) getLang(userID int64) string {
	b.userLangMu.RLock()
	l, ok := b.userLang[userID]
	b.userLangMu.RUnlock()
	if ok {
		return l
	}
	return lang.Normalize(b.cfg.Lang)
}

func (b *Bot) setLang(userID int64, code string) {
	if !lang.Supported(code) {
		return
	}
	b.userLangMu.Lock()
	defer b.userLangMu.Unlock()
	b.userLang[userID] = code
}

// sendScreen posts the user's current screen as a new message.
func (b *Bot) sendScreen(chatID int64, userID int64) {
	st := b.store.Get(sessionKey(userID)).State()
	b.sendCard(chatID, services.BuildCard(b.getLang(userID), st, b.catalog))
}
