package bot

import (
	"log"
	"strings"

	"food-app/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// cardMarkup converts Card.Buttons to a Telegram inline keyboard.
func cardMarkup(c services.Card) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(c.Buttons))
	for _, row := range c.Buttons {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.CallbackData))
		}
		rows = append(rows, btns)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

// sendCard posts c as a new message and makes it the chat's live screen.
// The keyboard of the previous live screen is removed so old buttons cannot be pressed.
func (b *Bot) sendCard(chatID int64, c services.Card) {
	msg := tgbotapi.NewMessage(chatID, c.Text)
	msg.ReplyMarkup = cardMarkup(c)
	sent, err := b.api.Send(msg)
	if err != nil {
		log.Printf("send card chat_id=%d: %v", chatID, err)
		return
	}

	b.screenMsgMu.Lock()
	prev, ok := b.screenMsg[chatID]
	b.screenMsg[chatID] = sent.MessageID
	b.screenMsgMu.Unlock()

	if ok && prev != sent.MessageID {
		empty := tgbotapi.NewEditMessageReplyMarkup(chatID, prev, tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
		if _, err := b.api.Request(empty); err != nil && !ignorableEditError(err) {
			log.Printf("clear keyboard chat_id=%d message_id=%d: %v", chatID, prev, err)
		}
	}
}

// editCard replaces the screen shown in messageID.
// On "message not found" a new message is sent instead; "not modified" is ignored.
func (b *Bot) editCard(chatID int64, messageID int, c services.Card) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, c.Text)
	kb := cardMarkup(c)
	edit.ReplyMarkup = &kb
	_, err := b.api.Send(edit)
	if err == nil {
		b.screenMsgMu.Lock()
		b.screenMsg[chatID] = messageID
		b.screenMsgMu.Unlock()
		return
	}
	errStr := err.Error()
	if strings.Contains(errStr, "not modified") {
		return
	}
	if strings.Contains(errStr, "not found") {
		b.sendCard(chatID, c)
		return
	}
	log.Printf("edit card chat_id=%d message_id=%d: %v", chatID, messageID, err)
}

func ignorableEditError(err error) bool {
	s := err.Error()
	return strings.Contains(s, "not modified") || strings.Contains(s, "not found")
}

// answer acknowledges a callback with an optional short toast.
func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("answer callback: %v", err)
	}
}

func (b *Bot) answerAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("answer callback: %v", err)
	}
}
