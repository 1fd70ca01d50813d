package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"
)

var resendHTTPClient = &http.Client{Timeout: 15 * time.Second}

const (
	defaultResendURL = "https://api.resend.com/emails"
	companyName      = "BSG Beelicious Signatures Global"
	companyWebsite   = "experienceBSG.com"
)

// ResendService relays transactional email through the Resend API. Sending
// is strictly best-effort: callers persist first, and a failed send is
// logged and swallowed so it can never fail the request that triggered it.
type ResendService struct {
	apiKey  string
	from    string
	to      string
	sendURL string
}

// NewResendService creates the relay. With no API key the service degrades
// to a no-op and only logs that mail is disabled.
func NewResendService(apiKey, from, to string) *ResendService {
	s := &ResendService{
		apiKey:  strings.TrimSpace(apiKey),
		from:    from,
		to:      to,
		sendURL: defaultResendURL,
	}
	if s.apiKey == "" {
		log.Println("[Resend] API key not configured: contact notifications disabled")
	}
	return s
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ContactNotification carries a sanitized contact-form submission.
type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// NotifyContact dispatches the operator copy and the submitter confirmation.
// The contact message is already durably persisted before this runs.
func (s *ResendService) NotifyContact(n ContactNotification) {
	if s.apiKey == "" {
		return
	}

	operator := resendEmail{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: n.Email,
		Subject: fmt.Sprintf("[Contact – %s] %s", companyWebsite, n.Subject),
		HTML:    operatorEmailHTML(n),
	}
	if err := s.send(operator); err != nil {
		log.Printf("[Resend] operator contact email failed: %v", err)
	}

	confirmation := resendEmail{
		From:    s.from,
		To:      []string{n.Email},
		Subject: fmt.Sprintf("We received your message – %s", companyName),
		HTML:    confirmationEmailHTML(n.Name),
	}
	if err := s.send(confirmation); err != nil {
		log.Printf("[Resend] confirmation contact email failed: %v", err)
	}
}

func (s *ResendService) send(email resendEmail) error {
	body, err := json.Marshal(email)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.sendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := resendHTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	return nil
}

func operatorEmailHTML(n ContactNotification) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form message</h2>")
	fmt.Fprintf(&b, "<p><strong>%s</strong> &lt;%s&gt;</p>", html.EscapeString(n.Name), html.EscapeString(n.Email))
	if n.Phone != "" {
		fmt.Fprintf(&b, "<p>Phone: %s</p>", html.EscapeString(n.Phone))
	}
	fmt.Fprintf(&b, "<p>Subject: %s</p>", html.EscapeString(n.Subject))
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(n.Message), "\n", "<br />"))
	fmt.Fprintf(&b, "<p style=\"color:#999\">Reply directly to this email to respond to %s.</p>", html.EscapeString(n.Name))
	return b.String()
}

func confirmationEmailHTML(name string) string {
	var b strings.Builder
	b.WriteString("<h2>We received your message</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(name))
	fmt.Fprintf(&b, "<p>Thank you for getting in touch with %s. We have received your message and will get back to you as soon as possible.</p>", companyName)
	fmt.Fprintf(&b, "<p>Best regards,<br /><strong>%s</strong></p>", companyName)
	return b.String()
}
