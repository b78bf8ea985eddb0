// Package mailer renders validated form submissions into emails and
// dispatches them through a pluggable transport.
//
// The EmailSender interface has two implementations: a Postmark client
// for production and DevSender, which writes each email as an HTML file
// plus JSON metadata to a local directory so development setups need no
// mail credentials.
//
// The Composer bridges the form package and the transport: it renders
// {field} placeholder templates against the processed submission data and
// reads field roles (reply_to_email, reply_to_name, subject) to address
// the message:
//
//	composer := mailer.NewComposer(
//		"team@example.com",
//		"Contact from {name}",
//		"<p>{message}</p><p>— {name} ({email})</p>",
//	)
//	params := composer.Compose(contactForm, result)
//	err := sender.SendEmail(ctx, params)
package mailer
