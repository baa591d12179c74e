package booking

import (
	"context"
	"fmt"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/notify"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

const staffSummaryTemplate = `New consultation request for {{.Clinic}}

Name: {{.Request.Name}}
Email: {{.Request.Email}}
Phone: {{.Request.Phone}}
Preferred date: {{or .Request.PreferredDate "N/A"}}
Preferred time: {{or .Request.PreferredTime "N/A"}}
Therapy type: {{.Therapy}}
{{- if .Request.Concerns}}
Concerns: {{.Request.Concerns}}
{{- end}}

Please contact the client within 24 hours to confirm the appointment.
`

// StaffNotifier emails the intake team about new requests.
type StaffNotifier struct {
	sender   notify.EmailSender
	renderer notify.Renderer
	to       string
	clinic   string
	logger   *logging.Logger
}

// NewStaffNotifier returns nil when there is no sender or recipient, which
// disables notifications.
func NewStaffNotifier(sender notify.EmailSender, to, clinic string, logger *logging.Logger) *StaffNotifier {
	if sender == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StaffNotifier{sender: sender, to: to, clinic: clinic, logger: logger}
}

// Summary renders the plain-text body sent to staff.
func (n *StaffNotifier) Summary(req ConsultationRequest) (string, error) {
	therapy, ok := therapyLabel(req.TherapyType)
	if !ok {
		therapy = "N/A"
	}
	return n.renderer.Render("booking_summary", staffSummaryTemplate, map[string]any{
		"Clinic":  n.clinic,
		"Request": req,
		"Therapy": therapy,
	})
}

// Notify sends the staff email.
func (n *StaffNotifier) Notify(ctx context.Context, req ConsultationRequest) error {
	body, err := n.Summary(req)
	if err != nil {
		return fmt.Errorf("booking: render summary: %w", err)
	}
	msg := notify.EmailMessage{
		To:      n.to,
		Subject: fmt.Sprintf("New consultation request: %s", req.Name),
		Body:    body,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("booking: notify staff: %w", err)
	}
	return nil
}
