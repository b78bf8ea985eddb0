package mailer

// Config holds mail transport configuration.
// PostmarkServerToken and PostmarkAccountToken are optional to support
// development environments where sending is replaced by the DevSender.
// SenderEmail establishes the From identity for all outbound mail;
// RecipientEmail is where form submissions are delivered.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	RecipientEmail       string `env:"RECIPIENT_EMAIL,required"`
}
