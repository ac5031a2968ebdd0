package assist

// Task selects which assistant operation a request runs.
type Task string

const (
	TaskSafeChat    Task = "safe-chat"
	TaskStudyHelper Task = "study-helper"
)

// Payload carries the caller-supplied input fields for a task.
// All values are plain strings; required fields depend on the task.
type Payload map[string]string

type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskCaution RiskLevel = "caution"
	RiskDanger  RiskLevel = "danger"
)

type TagType string

const (
	TagPersonalInfo   TagType = "personal-info"
	TagBullying       TagType = "bullying"
	TagRiskyLink      TagType = "risky-link"
	TagStrangerDanger TagType = "stranger-danger"
	TagSafe           TagType = "safe"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeveritySafe   Severity = "safe"
)

// RiskTag is one detected risk category in an analyzed message.
type RiskTag struct {
	Type        TagType  `json:"type"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Highlight marks a literal substring of the analyzed message.
type Highlight struct {
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// SafetyReport is the safe-chat result returned to the client.
type SafetyReport struct {
	RiskLevel    RiskLevel   `json:"riskLevel"`
	Tags         []RiskTag   `json:"tags"`
	Highlights   []Highlight `json:"highlights"`
	SaferRewrite string      `json:"saferRewrite"`
	Explanation  string      `json:"explanation"`
}

// TieredExplanation holds the same topic explained at three levels.
type TieredExplanation struct {
	Beginner     string `json:"beginner"`
	Intermediate string `json:"intermediate"`
	Advanced     string `json:"advanced"`
}

// PracticeQuestion is one multiple-choice question with a 0-based answer index.
type PracticeQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// StudyResource is the study-helper result returned to the client.
type StudyResource struct {
	Topic             string             `json:"topic"`
	Subject           string             `json:"subject"`
	Explanation       TieredExplanation  `json:"explanation"`
	KeyPoints         []string           `json:"keyPoints"`
	PracticeQuestions []PracticeQuestion `json:"practiceQuestions"`
}
