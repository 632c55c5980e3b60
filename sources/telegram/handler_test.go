package telegram

import (
	"errors"
	"strings"
	"testing"
	"time"

	"polyglot/sources/languages"
	"polyglot/sources/localization"
	"polyglot/sources/metrics"
	"polyglot/sources/throttler"
	"polyglot/sources/tracing"
	"polyglot/sources/tracker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGate struct{}

func (stubGate) IsEnabled(string) bool { return false }

func (stubGate) IsEnabledDefault(_ string, defaultValue bool) bool { return defaultValue }

type sentMessage struct {
	chatID    int64
	replyToID int
	text      string
}

type deletedMessage struct {
	chatID    int64
	messageID int
}

type fakeMessenger struct {
	notices   []sentMessage
	markdown  []sentMessage
	deletes   []deletedMessage
	deleteErr error
	sendErr   error
	nextID    int
}

func (f *fakeMessenger) Reply(log *tracing.Logger, chatID int64, replyToID int, text string) {
	f.notices = append(f.notices, sentMessage{chatID: chatID, replyToID: replyToID, text: text})
}

func (f *fakeMessenger) ReplyMarkdown(log *tracing.Logger, chatID int64, replyToID int, text string) (int, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.nextID++
	f.markdown = append(f.markdown, sentMessage{chatID: chatID, replyToID: replyToID, text: text})
	return f.nextID, nil
}

func (f *fakeMessenger) Delete(log *tracing.Logger, chatID int64, messageID int) error {
	f.deletes = append(f.deletes, deletedMessage{chatID: chatID, messageID: messageID})
	return f.deleteErr
}

func (f *fakeMessenger) sends() int {
	return len(f.notices) + len(f.markdown)
}

type translateCall struct {
	text string
	code string
}

type fakeTranslator struct {
	result string
	err    error
	calls  []translateCall
}

func (f *fakeTranslator) Translate(log *tracing.Logger, text, targetCode string) (string, error) {
	f.calls = append(f.calls, translateCall{text: text, code: targetCode})
	return f.result, f.err
}

func (f *fakeTranslator) Kind() string { return "fake" }

type fixture struct {
	handler    *TranslationHandler
	messenger  *fakeMessenger
	translator *fakeTranslator
	replies    *tracker.ReplyTracker
	log        *tracing.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := tracing.NewConsoleLogger()
	directory := languages.NewDirectory(&languages.DirectoryConfig{Path: "testdata/does-not-exist.yaml"}, log)

	manager, err := localization.NewLocalizationManager(
		&localization.LocalizationConfig{DefaultLanguage: "en", SupportedLanguages: []string{"en", "ru", "hi"}},
		localization.NewLanguageDetector(log),
		stubGate{},
		log,
	)
	require.NoError(t, err)

	messenger := &fakeMessenger{}
	translatorFake := &fakeTranslator{result: "translated"}
	replies := tracker.NewReplyTracker()

	handler := NewTranslationHandler(
		messenger,
		directory,
		throttler.NewMemoryThrottler(&throttler.ThrottlerConfig{Limit: 2 * time.Second}),
		replies,
		translatorFake,
		manager,
		stubGate{},
		metrics.NewMetricsService(log),
		&HandlerConfig{MaxMessageLength: 5000},
	)

	return &fixture{handler: handler, messenger: messenger, translator: translatorFake, replies: replies, log: log}
}

func message(userID, chatID int64, messageID int, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: messageID,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: chatID, Type: "group"},
		Text:      text,
	}
}

func commandReplyingTo(userID, chatID int64, messageID int, command string, original *tgbotapi.Message) *tgbotapi.Message {
	msg := message(userID, chatID, messageID, command)
	msg.ReplyToMessage = original
	return msg
}

func TestPlainChatIsNeverTouched(t *testing.T) {
	f := newFixture(t)

	f.handler.HandleMessage(f.log, message(1, 10, 100, "hello everyone"))

	assert.Zero(t, f.messenger.sends())
	assert.Empty(t, f.translator.calls)
}

func TestPureMediaMessageIsIgnored(t *testing.T) {
	f := newFixture(t)

	msg := message(1, 10, 100, "")
	f.handler.HandleMessage(f.log, msg)

	assert.Zero(t, f.messenger.sends())
}

func TestUnknownCommandStaysSilent(t *testing.T) {
	f := newFixture(t)

	f.handler.HandleMessage(f.log, message(1, 10, 100, "/weather london"))

	assert.Zero(t, f.messenger.sends())
	assert.Empty(t, f.translator.calls)
}

func TestHelpListsEveryCommand(t *testing.T) {
	f := newFixture(t)

	for _, command := range []string{"/help", "/start"} {
		f.messenger.markdown = nil

		f.handler.HandleMessage(f.log, message(1, 10, 100, command))

		require.Len(t, f.messenger.markdown, 1, "command %s", command)
		sent := f.messenger.markdown[0]
		assert.Equal(t, 100, sent.replyToID)
		assert.Contains(t, sent.text, "/hi - Hindi")
		assert.Contains(t, sent.text, "/or - Odia")
		assert.Contains(t, sent.text, "5000")
	}
	assert.Empty(t, f.translator.calls)
}

func TestNonReplyCommandGetsUsageHint(t *testing.T) {
	f := newFixture(t)

	f.handler.HandleMessage(f.log, message(1, 10, 100, "/hi"))

	require.Len(t, f.messenger.markdown, 1)
	assert.Contains(t, f.messenger.markdown[0].text, "/hi")
	assert.Contains(t, f.messenger.markdown[0].text, "Hindi")
	assert.Empty(t, f.translator.calls)
}

func TestCommandLookupIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/HI", original))

	require.Len(t, f.translator.calls, 1)
	assert.Equal(t, "hi", f.translator.calls[0].code)
}

func TestTranslationRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.translator.result = "नमस्ते"
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	require.Len(t, f.translator.calls, 1)
	assert.Equal(t, "Hello", f.translator.calls[0].text)
	assert.Equal(t, "hi", f.translator.calls[0].code)

	require.Len(t, f.messenger.markdown, 1)
	sent := f.messenger.markdown[0]
	assert.Equal(t, int64(10), sent.chatID)
	assert.Equal(t, 3, sent.replyToID, "translation must reply to the original message")
	assert.Contains(t, sent.text, "नमस्ते")
	assert.Contains(t, sent.text, "Hindi")

	botID, ok := f.replies.TakePrevious(10, 3)
	require.True(t, ok)
	assert.Equal(t, 1, botID)
}

func TestSecondRequestWithinCooldownIsBlocked(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))
	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 101, "/ta", original))

	assert.Len(t, f.translator.calls, 1, "second request must not reach the translator")
	require.Len(t, f.messenger.notices, 1)
	assert.Equal(t, 101, f.messenger.notices[0].replyToID)
	assert.Contains(t, strings.ToLower(f.messenger.notices[0].text), "wait")
}

func TestRequestsFromDifferentUsersAreIndependent(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))
	f.handler.HandleMessage(f.log, commandReplyingTo(5, 10, 101, "/hi", original))

	assert.Len(t, f.translator.calls, 2)
}

func TestRequestsFromDifferentChatsAreIndependent(t *testing.T) {
	f := newFixture(t)

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", message(2, 10, 3, "Hello")))
	f.handler.HandleMessage(f.log, commandReplyingTo(1, 20, 101, "/hi", message(2, 20, 3, "Hello")))

	assert.Len(t, f.translator.calls, 2)
}

func TestReplyWithoutTextContent(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, "")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	require.Len(t, f.messenger.notices, 1)
	assert.Contains(t, f.messenger.notices[0].text, "no text content")
	assert.Empty(t, f.translator.calls)
}

func TestCaptionIsTranslatableContent(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, "")
	original.Caption = "A photo of the harbor"

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	require.Len(t, f.translator.calls, 1)
	assert.Equal(t, "A photo of the harbor", f.translator.calls[0].text)
}

func TestSourceTextOverLimitIsRejected(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, strings.Repeat("x", 5001))

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	require.Len(t, f.messenger.notices, 1)
	assert.Contains(t, f.messenger.notices[0].text, "5000")
	assert.Empty(t, f.translator.calls)
}

func TestNewTranslationDeletesStalePredecessor(t *testing.T) {
	f := newFixture(t)
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))
	// Different user so the cooldown does not interfere.
	f.handler.HandleMessage(f.log, commandReplyingTo(5, 10, 101, "/ta", original))

	require.Len(t, f.messenger.deletes, 1)
	assert.Equal(t, deletedMessage{chatID: 10, messageID: 1}, f.messenger.deletes[0])

	botID, ok := f.replies.TakePrevious(10, 3)
	require.True(t, ok)
	assert.Equal(t, 2, botID, "tracker must hold the latest translation")
}

func TestStaleDeleteFailureDoesNotAbortTranslation(t *testing.T) {
	f := newFixture(t)
	f.messenger.deleteErr = errors.New("message to delete not found")
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))
	f.handler.HandleMessage(f.log, commandReplyingTo(5, 10, 101, "/ta", original))

	assert.Len(t, f.messenger.deletes, 1)
	assert.Len(t, f.translator.calls, 2)
	assert.Len(t, f.messenger.markdown, 2)
}

func TestTranslatorFailureSendsUnavailabilityNotice(t *testing.T) {
	f := newFixture(t)
	f.translator.err = errors.New("upstream exploded")
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	require.Len(t, f.messenger.notices, 1)
	assert.Contains(t, f.messenger.notices[0].text, "unavailable")
	assert.Empty(t, f.messenger.markdown)

	_, ok := f.replies.TakePrevious(10, 3)
	assert.False(t, ok, "tracker must stay unchanged on failure")
}

func TestEmptyTranslationSendsFailureNotice(t *testing.T) {
	f := newFixture(t)
	f.translator.result = ""
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	require.Len(t, f.messenger.notices, 1)
	assert.Contains(t, f.messenger.notices[0].text, "failed")
	_, ok := f.replies.TakePrevious(10, 3)
	assert.False(t, ok)
}

func TestSendFailureNotifiesUserAndLeavesTrackerUnchanged(t *testing.T) {
	f := newFixture(t)
	f.messenger.sendErr = errors.New("blocked by user")
	original := message(2, 10, 3, "Hello")

	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 100, "/hi", original))

	_, ok := f.replies.TakePrevious(10, 3)
	assert.False(t, ok)

	require.Len(t, f.messenger.notices, 1)
	assert.Equal(t, 100, f.messenger.notices[0].replyToID)
	assert.Contains(t, f.messenger.notices[0].text, "unavailable")
}

func TestUsageHintConsumesNoRateLimitSlot(t *testing.T) {
	f := newFixture(t)

	// A non-reply command returns before the throttler runs, so the
	// immediate follow-up translation must still be allowed.
	f.handler.HandleMessage(f.log, message(1, 10, 100, "/hi"))
	f.handler.HandleMessage(f.log, commandReplyingTo(1, 10, 101, "/hi", message(2, 10, 3, "Hello")))

	assert.Len(t, f.translator.calls, 1)
	assert.Empty(t, f.messenger.notices)
}
