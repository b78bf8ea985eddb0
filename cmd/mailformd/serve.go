package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailform/pkg/config"
	"github.com/dmitrymomot/mailform/pkg/httpserver"
	"github.com/dmitrymomot/mailform/pkg/logger"
	"github.com/dmitrymomot/mailform/pkg/mailer"
	"github.com/dmitrymomot/mailform/pkg/schema"
	"github.com/dmitrymomot/mailform/pkg/submit"
)

type serverConfig struct {
	Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
	SchemaPath      string        `env:"FORM_SCHEMA" envDefault:"forms.yaml"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	DevMailDir      string        `env:"DEV_MAIL_DIR" envDefault:"./outbox"`
	ErrorMessages   bool          `env:"ERROR_MESSAGES"` // serialize validation errors as display strings
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	var cfg serverConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("schema"); v != "" {
		cfg.SchemaPath = v
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Addr = v
	}

	logOpt := logger.WithProduction("mailformd")
	if cfg.Environment == "development" {
		logOpt = logger.WithDevelopment("mailformd")
	}
	log := logger.New(logOpt)
	logger.SetAsDefault(log)

	def, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		return err
	}
	log.Info("schema loaded", "path", cfg.SchemaPath, "forms", len(def.Forms))

	sender, composers, err := buildMailer(cfg, def)
	if err != nil {
		return err
	}

	opts := []submit.Option{
		submit.WithLogger(log),
		submit.WithMailer(sender, composers),
	}
	if cfg.ErrorMessages {
		opts = append(opts, submit.WithInterpolatedMessages())
	}
	handler := submit.NewHandler(def.Forms, opts...)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, handler.Router())
}

// buildMailer wires the transport and per-form composers. With Postmark
// credentials configured the real client is used; otherwise emails land
// in the development outbox directory.
func buildMailer(cfg serverConfig, def *schema.Definition) (mailer.EmailSender, map[string]*mailer.Composer, error) {
	var mailCfg mailer.Config
	useDev := config.Load(&mailCfg) != nil || mailCfg.PostmarkServerToken == ""

	var sender mailer.EmailSender
	recipient := mailCfg.RecipientEmail
	if useDev {
		sender = mailer.NewDevSender(cfg.DevMailDir)
		if recipient == "" {
			recipient = "dev@localhost.localdomain"
		}
	} else {
		client, err := mailer.NewPostmarkClient(mailCfg)
		if err != nil {
			return nil, nil, err
		}
		sender = client
	}

	composers := make(map[string]*mailer.Composer, len(def.Mail))
	for name, spec := range def.Mail {
		composers[name] = mailer.NewComposer(
			recipient,
			spec.Subject,
			spec.Body,
			mailer.WithTag(spec.Tag),
		)
	}
	return sender, composers, nil
}
