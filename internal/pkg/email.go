package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// MembershipHTML 注册成功邮件，告知会员号
func MembershipHTML(name, memberID string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Welcome to the club! Your membership ID is <b style="font-size:18px;">%s</b>.</p><p>Keep it safe - you will need it for every club form, including the Execom Call.</p>`, name, memberID)
}

// InvitationHTML 执委会申请通过后的邀请邮件
func InvitationHTML(name string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Congratulations! Your Execom Call application has been <b>approved</b>.</p><p>The team will reach out with the next steps shortly.</p>`, name)
}
