package domain

type RiskLevel string

const (
	RiskHigh     RiskLevel = "High Risk"
	RiskLow      RiskLevel = "Low Risk"
	RiskStandard RiskLevel = "Standard Risk"
)

// AlertKind controls how the risk banner is styled.
type AlertKind string

const (
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
)

type ReportState string

const (
	ReportIdle        ReportState = "idle"
	ReportResult      ReportState = "result"
	ReportUnavailable ReportState = "unavailable"
)

type Banner struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
}

type KPI struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
	Name  string  `json:"name"`
}

type GaugeThreshold struct {
	Value     float64 `json:"value"`
	Color     string  `json:"color"`
	Width     int     `json:"width"`
	Thickness float64 `json:"thickness"`
}

// Gauge is a renderer-agnostic description of the premium gauge.
type Gauge struct {
	Min       float64        `json:"min"`
	Max       float64        `json:"max"`
	Prefix    string         `json:"prefix"`
	Value     float64        `json:"value"`
	Zone      string         `json:"zone,omitempty"`
	Bands     []GaugeBand    `json:"bands"`
	Threshold GaugeThreshold `json:"threshold"`
}

// Report is everything the result panel needs to render one state.
type Report struct {
	State  ReportState `json:"state"`
	Risk   RiskLevel   `json:"risk,omitempty"`
	Banner Banner      `json:"banner"`
	KPI    *KPI        `json:"kpi,omitempty"`
	Gauge  *Gauge      `json:"gauge,omitempty"`
}
