package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"strconv"

	"bioskop_tiket/config"

	"gopkg.in/gomail.v2"
)

// TicketEmailData feeds the e-ticket confirmation template.
type TicketEmailData struct {
	CustomerName     string
	MovieTitle       string
	Seats            string
	BookingReference string
	VerificationCode string
	TotalAmount      float64
}

var ticketTemplate = template.Must(template.New("eticket").Parse(`
<h2>Pembayaran dikonfirmasi</h2>
<p>Halo {{.CustomerName}}, tiket Anda sudah aktif.</p>
<ul>
  <li>Film: {{.MovieTitle}}</li>
  <li>Kursi: {{.Seats}}</li>
  <li>Referensi: {{.BookingReference}}</li>
  <li>Kode verifikasi: {{.VerificationCode}}</li>
  <li>Total: Rp {{printf "%.0f" .TotalAmount}}</li>
</ul>
<p>Tunjukkan QR code terlampir di pintu masuk.</p>
`))

// SendTicketEmail mails the e-ticket with its QR code attached. It is a best
// effort side channel: when SMTP is not configured or sending fails, the
// confirmation has already happened and we only log.
func SendTicketEmail(to string, data TicketEmailData, qrPayload string) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}
	port, err := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	var htmlBody bytes.Buffer
	if err := ticketTemplate.Execute(&htmlBody, data); err != nil {
		log.Printf("email: render template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "E-Ticket "+data.BookingReference)
	m.SetBody("text/html", htmlBody.String())

	qrBytes, err := GenerateQRCode(qrPayload, 256)
	if err != nil {
		log.Printf("email: generate QR for %s: %v", data.BookingReference, err)
	} else {
		filename := fmt.Sprintf("Tiket_%s.png", data.BookingReference)
		m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(qrBytes))
			return err
		}))
	}

	d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("email: send to %s: %v", to, err)
	}
}
