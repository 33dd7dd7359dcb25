package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	texttemplate "text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/stockops-api/internal/application/auth"
	"github.com/jhoicas/stockops-api/pkg/logger"
)

// Subject asunto del correo de recuperación.
const Subject = "Password Reset Request"

// ErrSMTPRequired sin SMTP_HOST fuera de development.
var ErrSMTPRequired = errors.New("mail: SMTP_HOST es obligatorio fuera de development")

var (
	_ auth.Mailer = (*SMTPMailer)(nil)
	_ auth.Mailer = (*LogMailer)(nil)
)

// Config servidor SMTP y remitente.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// TTL vigencia del código, se muestra en el cuerpo del correo.
	TTL time.Duration
}

// sender abstrae gomail.Dialer para poder probar sin servidor.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer envía el código de recuperación por SMTP.
type SMTPMailer struct {
	cfg    Config
	dialer sender
	log    *logger.Logger
}

// NewSMTPMailer construye el mailer con un gomail.Dialer (STARTTLS si el servidor lo ofrece).
func NewSMTPMailer(cfg Config, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		log:    log.Component("mail"),
	}
}

// Send arma el mensaje (HTML + texto) y lo entrega. El contexto solo se respeta antes de conectar.
func (m *SMTPMailer) Send(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := m.build(email, code)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	m.log.Info().Str("email", email).Msg("correo de recuperación enviado")
	return nil
}

func (m *SMTPMailer) build(email, code string) (*gomail.Message, error) {
	html, text, err := renderBodies(code, m.cfg.TTL)
	if err != nil {
		return nil, err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", Subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)
	return msg, nil
}

// NewMailer SMTPMailer si hay Host. Sin Host solo se acepta LogMailer en development:
// en cualquier otro entorno los códigos terminarían en los logs.
func NewMailer(cfg Config, development bool, log *logger.Logger) (auth.Mailer, error) {
	if cfg.Host != "" {
		return NewSMTPMailer(cfg, log), nil
	}
	if !development {
		return nil, ErrSMTPRequired
	}
	log.Warn().Msg("SMTP_HOST vacío: los códigos de recuperación solo quedan en el log")
	return NewLogMailer(log), nil
}

// LogMailer no envía nada: registra el código en el log. Solo para development.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Component("mail")}
}

func (m *LogMailer) Send(_ context.Context, email, code string) error {
	m.log.Warn().Str("email", email).Str("code", code).Msg("SMTP no configurado, código solo en log")
	return nil
}

type bodyData struct {
	Code    string
	Minutes int
}

func renderBodies(code string, ttl time.Duration) (string, string, error) {
	data := bodyData{Code: code, Minutes: int(ttl / time.Minute)}
	if data.Minutes <= 0 {
		data.Minutes = 10
	}
	var h, t bytes.Buffer
	if err := htmlBody.Execute(&h, data); err != nil {
		return "", "", fmt.Errorf("render html: %w", err)
	}
	if err := textBody.Execute(&t, data); err != nil {
		return "", "", fmt.Errorf("render text: %w", err)
	}
	return h.String(), t.String(), nil
}

var htmlBody = template.Must(template.New("html").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: #667eea; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
  .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
  .otp-box { background: white; border: 2px solid #667eea; border-radius: 8px; padding: 20px; text-align: center; margin: 20px 0; }
  .otp-code { font-size: 32px; font-weight: bold; color: #667eea; letter-spacing: 8px; font-family: 'Courier New', monospace; }
  .warning { background: #fef3c7; border-left: 4px solid #f59e0b; padding: 12px; margin: 20px 0; border-radius: 4px; }
  .footer { text-align: center; margin-top: 20px; color: #6b7280; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Password Reset Request</h1></div>
  <div class="content">
    <p>Hello,</p>
    <p>We received a request to reset your password. Use the code below to complete the process:</p>
    <div class="otp-box">
      <p style="margin: 0; color: #6b7280; font-size: 14px;">Your verification code is:</p>
      <div class="otp-code">{{.Code}}</div>
    </div>
    <div class="warning"><strong>Important:</strong> This code will expire in {{.Minutes}} minutes.</div>
    <p>If you didn't request a password reset, please ignore this email or contact support if you have concerns.</p>
    <div class="footer"><p>This is an automated message, please do not reply to this email.</p></div>
  </div>
</div>
</body>
</html>
`))

var textBody = texttemplate.Must(texttemplate.New("text").Parse(`Password Reset Request

We received a request to reset your password.

Your verification code is: {{.Code}}

This code will expire in {{.Minutes}} minutes.

If you didn't request a password reset, please ignore this email.
`))
