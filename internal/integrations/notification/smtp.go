package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig параметры SMTP сервера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SSL      bool
	Timeout  time.Duration
}

// SMTPSender отправляет письма напрямую через SMTP
type SMTPSender struct {
	client *mail.Client
	from   string
	log    Logger
}

// NewSMTPSender создает отправителя. Соединение устанавливается при каждой отправке.
func NewSMTPSender(cfg SMTPConfig, log Logger) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create smtp client: %v", ErrInternal, err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &SMTPSender{client: client, from: from, log: log}, nil
}

// Send собирает и отправляет письмо
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("%w: invalid sender %q: %v", ErrInvalidMessage, s.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %v", ErrInvalidMessage, msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: smtp send failed: %v", ErrUnavailable, err)
	}

	s.log.Info("Notification mailed to=%s, subject=%q", msg.To, msg.Subject)
	return nil
}
