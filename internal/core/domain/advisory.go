package domain

// AdvisorySeverity tags how an advisory should be presented.
type AdvisorySeverity string

const (
	SeverityWarning  AdvisorySeverity = "warning"
	SeveritySuccess  AdvisorySeverity = "success"
	SeverityTip      AdvisorySeverity = "tip"
	SeverityReminder AdvisorySeverity = "reminder"
)

// Advisory is a single suggestion-engine output message.
type Advisory struct {
	Severity AdvisorySeverity `json:"type"`
	Message  string           `json:"message"`
}
