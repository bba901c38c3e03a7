package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"luxurystay-backend/models"
)

// ReservationEmailSender delivers the booking confirmation mail over SMTP.
// With no SMTP configured it logs a mock line instead of failing, so local
// setups work without a mail account.
type ReservationEmailSender struct{}

func NewReservationEmailSender() *ReservationEmailSender {
	return &ReservationEmailSender{}
}

func (ReservationEmailSender) SendReservationConfirmed(res models.Reservation, room models.Room) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	fromName := os.Getenv("MAIL_FROM")
	if fromName == "" {
		fromName = "LuxuryStay Hotel"
	}

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] reservation %d confirmed, to:%s room:%s total:%.2f",
			res.ID, res.GuestEmail, room.RoomNumber, res.TotalPrice)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{res.GuestEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Your LuxuryStay reservation #%d is confirmed", res.ID)
	boundary := "----=_RESERVATION_EMAIL_BOUNDARY"

	checkIn := res.CheckIn.Format("2006-01-02")
	checkOut := res.CheckOut.Format("2006-01-02")

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your reservation is confirmed.\n\n"+
			"Room: %s (%s)\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Guests: %d\n"+
			"Total: $%.2f\n\n"+
			"We look forward to welcoming you.\n",
		res.GuestName, room.RoomNumber, room.Type, checkIn, checkOut, res.NumberOfGuests, res.TotalPrice,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Reservation confirmed</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Reservation confirmed</h2>
    <p>Hi %s,</p>
    <p>Your stay is booked. Here are the details:</p>
    <ul>
      <li>Room: <strong>%s</strong> (%s)</li>
      <li>Check-in: <strong>%s</strong></li>
      <li>Check-out: <strong>%s</strong></li>
      <li>Guests: <strong>%d</strong></li>
      <li>Total: <strong>$%.2f</strong></li>
    </ul>
    <p>We look forward to welcoming you.</p>
  </div>
</div>
</body>
</html>`,
		res.GuestName, room.RoomNumber, room.Type, checkIn, checkOut, res.NumberOfGuests, res.TotalPrice,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", res.GuestEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", res.GuestEmail, err)
		return err
	}

	log.Printf("Confirmation email sent to %s for reservation %d", res.GuestEmail, res.ID)
	return nil
}
