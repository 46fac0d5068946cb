package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const welcomeSubject = "Selamat Datang di INSEKTA - Akun Anda Telah Dibuat"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="padding:32px 0;">
    <tr><td align="center">
      <table width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:12px;overflow:hidden;">
        <tr><td style="background:#0056b3;padding:24px;text-align:center;color:#ffffff;font-size:22px;font-weight:bold;letter-spacing:2px;">INSEKTA</td></tr>
        <tr><td style="padding:32px;color:#1f2937;font-size:14px;line-height:1.6;">
          <p>Halo <strong>{{.Name}}</strong>,</p>
          <p>Akun dashboard Anda telah dibuat oleh administrator. Gunakan kredensial berikut untuk masuk:</p>
          <table cellpadding="8" style="background:#f9fafb;border:1px solid #e5e7eb;border-radius:8px;width:100%;">
            <tr><td style="color:#6b7280;">Email</td><td><strong>{{.Email}}</strong></td></tr>
            <tr><td style="color:#6b7280;">Password sementara</td><td><strong style="font-family:monospace;font-size:16px;">{{.TempPassword}}</strong></td></tr>
          </table>
          <p>Demi keamanan, Anda wajib mengganti password saat login pertama.</p>
          {{if .LoginURL}}<p style="text-align:center;margin:28px 0;"><a href="{{.LoginURL}}" style="background:#ff9900;color:#ffffff;padding:12px 28px;border-radius:8px;text-decoration:none;font-weight:bold;">Masuk ke Dashboard</a></p>{{end}}
        </td></tr>
        <tr><td style="background:#f9fafb;padding:16px;text-align:center;color:#9ca3af;font-size:12px;">&copy; PT Insekta Fokustama. Email ini dikirim otomatis, mohon tidak membalas.</td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

func renderWelcome(mail WelcomeMail) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, mail); err != nil {
		return "", fmt.Errorf("render welcome template: %w", err)
	}
	return buf.String(), nil
}
