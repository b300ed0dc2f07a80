package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/clippercuts/booking-api/internal/config"
)

// SMTPSender delivers confirmations over plain SMTP with STARTTLS auth,
// matching the shop's existing mail setup.
type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
	shop string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
		shop: cfg.ShopName,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if deadline, ok := ctx.Deadline(); ok && time.Now().After(deadline) {
		return ctx.Err()
	}

	subject := fmt.Sprintf("Konfirmasi Booking - %s", s.shop)
	body := s.buildBody(msg)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %q <%s>\r\n", s.shop, s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.CustomerEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := s.host + ":" + s.port

	return smtp.SendMail(addr, auth, s.from, []string{msg.CustomerEmail}, []byte(b.String()))
}

func (s *SMTPSender) buildBody(msg Message) string {
	var b strings.Builder

	b.WriteString("<div style=\"font-family: Arial, sans-serif; max-width: 600px;\">")
	fmt.Fprintf(&b, "<h1>Booking Dikonfirmasi!</h1>")
	fmt.Fprintf(&b, "<p>Terima kasih telah memilih %s</p>", s.shop)
	b.WriteString("<h2>Detail Booking:</h2><table>")
	fmt.Fprintf(&b, "<tr><td><strong>Kode:</strong></td><td>%s</td></tr>", msg.Reference)
	fmt.Fprintf(&b, "<tr><td><strong>Nama:</strong></td><td>%s</td></tr>", msg.CustomerName)
	fmt.Fprintf(&b, "<tr><td><strong>Tanggal:</strong></td><td>%s</td></tr>", msg.Date)
	fmt.Fprintf(&b, "<tr><td><strong>Waktu:</strong></td><td>%s</td></tr>", msg.Time)
	fmt.Fprintf(&b, "<tr><td><strong>Layanan:</strong></td><td>%s (%.0f)</td></tr>", msg.ServiceTitle, msg.ServicePrice)
	fmt.Fprintf(&b, "<tr><td><strong>Barber:</strong></td><td>%s</td></tr>", msg.BarberName)
	if msg.Notes != "" {
		fmt.Fprintf(&b, "<tr><td><strong>Catatan:</strong></td><td>%s</td></tr>", msg.Notes)
	}
	b.WriteString("</table>")
	b.WriteString("<p>Jika ada pertanyaan atau perubahan jadwal, silakan hubungi kami.</p>")
	b.WriteString("</div>")

	return b.String()
}
