package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"dayflow/config"

	"gopkg.in/gomail.v2"
)

// LeaveNotice describes a decided leave request.
type LeaveNotice struct {
	To       string
	Name     string
	Status   string
	Type     string
	FromDate string
	ToDate   string
	Remarks  string
}

type Notifier interface {
	LeaveDecided(ctx context.Context, notice LeaveNotice) error
}

type Nop struct{}

func (Nop) LeaveDecided(context.Context, LeaveNotice) error { return nil }

type Mailer struct {
	from string
	send func(msgs ...*gomail.Message) error
}

func NewMailer(cfg config.SMTP) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &Mailer{from: cfg.From, send: dialer.DialAndSend}
}

// NewMailerWithSender delivers through an already-open sender.
func NewMailerWithSender(from string, sender gomail.Sender) *Mailer {
	return &Mailer{
		from: from,
		send: func(msgs ...*gomail.Message) error { return gomail.Send(sender, msgs...) },
	}
}

var leaveBody = template.Must(template.New("leave").Parse(
	`<p>Hi {{.Name}},</p>
<p>Your {{.Type}} leave from <b>{{.FromDate}}</b> to <b>{{.ToDate}}</b> has been <b>{{.Status}}</b>.</p>
{{if .Remarks}}<p>Remarks: {{.Remarks}}</p>{{end}}
<p>Dayflow</p>`))

func (m *Mailer) LeaveDecided(_ context.Context, notice LeaveNotice) error {
	if notice.To == "" {
		return nil
	}

	var body bytes.Buffer
	if err := leaveBody.Execute(&body, notice); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", notice.To)
	msg.SetHeader("Subject", fmt.Sprintf("Leave request %s", strings.ToLower(notice.Status)))
	msg.SetBody("text/html", body.String())

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send leave notice to %s: %w", notice.To, err)
	}
	return nil
}
