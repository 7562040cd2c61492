package status

// Severity classifies how a widget message is styled.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityDanger
)

var severityNames = map[Severity]string{
	SeverityNone:    "none",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityDanger:  "danger",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "none"
}
