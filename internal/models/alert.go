// ABOUTME: AlertItem model for rule-fired athlete risk notifications.
// ABOUTME: Alerts are derived, never hand-authored; resolved alerts are retained.
package models

// Severity grades how urgent an alert is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert types fired by the rule engine.
const (
	AlertSleep      = "sleep"
	AlertRecovery   = "recovery"
	AlertVolume     = "volume"
	AlertInactivity = "inactivity"
)

// AlertItem is one fired risk notification for an athlete. An empty
// ResolvedAt means the alert is still active.
type AlertItem struct {
	ID         string   `json:"id"`
	AthleteID  string   `json:"athleteId"`
	Type       string   `json:"type"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	CreatedAt  string   `json:"createdAt"`
	ResolvedAt string   `json:"resolvedAt,omitempty"`
}

// Resolved reports whether the alert has been marked resolved.
func (a *AlertItem) Resolved() bool {
	return a.ResolvedAt != ""
}

// NewAlert creates an unresolved alert for an athlete with a generated ID
// and the current timestamp.
func NewAlert(athleteID, alertType string, severity Severity, message string) *AlertItem {
	return &AlertItem{
		ID:        NewID("alert"),
		AthleteID: athleteID,
		Type:      alertType,
		Severity:  severity,
		Message:   message,
		CreatedAt: NowISO(),
	}
}
