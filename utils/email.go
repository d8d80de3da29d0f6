package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho template email xác nhận đặt vé
type BookingConfirmationData struct {
	BookingCode   string
	MovieName     string
	Showtime      string
	TheaterName   string
	Seats         string
	TotalAmount   float64
	PaymentMethod string
}

// SendBookingConfirmationEmail gửi email xác nhận đặt vé kèm QR (async)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() { // Async để không delay response
		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt vé #"+data.BookingCode)
		m.SetBody("text/html", body.String())

		// Nhúng QR check-in cho cả đơn
		qrBytes, err := GenerateQRCode(data.BookingCode, 400)
		if err == nil {
			m.Embed("qr_booking.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_booking_code>"},
				"Content-Disposition": {"inline"},
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email xác nhận vé cho %s: %v", to, err)
		}
	}()
}

// SendTopUpReceiptEmail gửi biên nhận nạp tiền, text thuần là đủ
func SendTopUpReceiptEmail(to string, amount, balance float64) {
	go func() {
		e := email.NewEmail()
		e.From = os.Getenv("SMTP_FROM")
		e.To = []string{to}
		e.Subject = "Biên nhận nạp tiền ví CinemaBook"
		e.Text = []byte(fmt.Sprintf(
			"Bạn vừa nạp $%.2f vào ví CinemaBook.\nSố dư hiện tại: $%.2f\n",
			amount, balance,
		))

		addr := os.Getenv("SMTP_HOST") + ":" + os.Getenv("SMTP_PORT")
		auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
		if err := e.Send(addr, auth); err != nil {
			log.Printf("Lỗi gửi biên nhận nạp tiền cho %s: %v", to, err)
		}
	}()
}
