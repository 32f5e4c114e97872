package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
	"hi": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_INVALIDARGUMENT = "error.invalidargument"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"

	MESSAGE_APOLOGY_TIMEOUT   = "message.apology.timeout"
	MESSAGE_APOLOGY_TRANSPORT = "message.apology.transport"
	MESSAGE_FEEDBACK_SAVED    = "message.feedback.saved"
)
