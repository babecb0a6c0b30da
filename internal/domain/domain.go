package domain

// Project is the root aggregate of a document. It owns every collection it
// carries; Progress is derived from task completion and never set directly.
type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate" format:"date-time"`
	EndDate     string      `json:"endDate" format:"date-time"`
	Status      string      `json:"status" enum:"planning,active,completed,on-hold"`
	Progress    int         `json:"progress"`
	Tasks       []Task      `json:"tasks"`
	Resources   []Resource  `json:"resources"`
	Milestones  []Milestone `json:"milestones"`
	Teams       []Team      `json:"teams"`
	Budget      Budget      `json:"budget"`
	Costs       []CostItem  `json:"costs"`
	Risks       []Risk      `json:"risks"`
	CreatedAt   string      `json:"createdAt" format:"date-time"`
	UpdatedAt   string      `json:"updatedAt" format:"date-time"`
}

const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"
)

type Task struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description"`
	StartDate    string       `json:"startDate" format:"date-time"`
	EndDate      string       `json:"endDate" format:"date-time"`
	Duration     int          `json:"duration"`
	Progress     int          `json:"progress" validate:"gte=0,lte=100"`
	Status       string       `json:"status" enum:"not-started,in-progress,completed,delayed" validate:"omitempty,oneof=not-started in-progress completed delayed"`
	Priority     string       `json:"priority" enum:"low,medium,high,urgent" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo   []string     `json:"assignedTo"`
	Dependencies []string     `json:"dependencies"`
	MilestoneID  string       `json:"milestoneId,omitempty"`
	IsMilestone  bool         `json:"isMilestone"`
	Notes        string       `json:"notes"`
	Attachments  []Attachment `json:"attachments"`
	CreatedAt    string       `json:"createdAt" format:"date-time"`
	UpdatedAt    string       `json:"updatedAt" format:"date-time"`
}

const (
	TaskNotStarted = "not-started"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
	TaskDelayed    = "delayed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Resource struct {
	ID           string         `json:"id"`
	Name         string         `json:"name" validate:"required"`
	Type         string         `json:"type" enum:"human,material,equipment" validate:"omitempty,oneof=human material equipment"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Role         string         `json:"role,omitempty"`
	Skills       []string       `json:"skills,omitempty"`
	Cost         float64        `json:"cost"`
	Availability []Availability `json:"availability"`
	Utilization  int            `json:"utilization" validate:"gte=0,lte=100"`
	TeamID       string         `json:"teamId,omitempty"`
	Avatar       string         `json:"avatar,omitempty"`
	CreatedAt    string         `json:"createdAt" format:"date-time"`
	UpdatedAt    string         `json:"updatedAt" format:"date-time"`
}

const (
	ResourceHuman     = "human"
	ResourceMaterial  = "material"
	ResourceEquipment = "equipment"
)

// Availability is a weekly working window for a resource.
type Availability struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Milestone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" format:"date-time"`
	Status      string   `json:"status" enum:"upcoming,reached,missed" validate:"omitempty,oneof=upcoming reached missed"`
	TaskIDs     []string `json:"taskIds"`
	CreatedAt   string   `json:"createdAt" format:"date-time"`
	UpdatedAt   string   `json:"updatedAt" format:"date-time"`
}

const (
	MilestoneUpcoming = "upcoming"
	MilestoneReached  = "reached"
	MilestoneMissed   = "missed"
)

type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	CreatedAt   string   `json:"createdAt" format:"date-time"`
	UpdatedAt   string   `json:"updatedAt" format:"date-time"`
}

// Budget totals are derived from the category list and recomputed atomically
// with every category change; they are never edited independently.
type Budget struct {
	Total      float64          `json:"total"`
	Spent      float64          `json:"spent"`
	Remaining  float64          `json:"remaining"`
	Currency   string           `json:"currency"`
	Categories []BudgetCategory `json:"categories"`
}

type BudgetCategory struct {
	ID      string  `json:"id"`
	Name    string  `json:"name" validate:"required"`
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// CostItem records an expense against a task. Category is an open string so
// documents written with the legacy category labels load and save unchanged;
// new items use the CostPersonnel/CostEquipment/CostOther constants.
type CostItem struct {
	ID        string  `json:"id"`
	TaskID    string  `json:"task_id"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Currency  string  `json:"currency"`
	Date      string  `json:"date" format:"date-time"`
	InvoiceID string  `json:"invoice_id,omitempty"`
	Status    string  `json:"status" enum:"pending,paid" validate:"omitempty,oneof=pending paid"`
	Note      string  `json:"note,omitempty"`
}

const (
	CostPersonnel = "personnel"
	CostEquipment = "equipment"
	CostOther     = "other"

	CostPending = "pending"
	CostPaid    = "paid"
)

type Risk struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Probability string `json:"probability" enum:"low,medium,high" validate:"omitempty,oneof=low medium high"`
	Impact      string `json:"impact" enum:"low,medium,high" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" enum:"identified,mitigated,occurred" validate:"omitempty,oneof=identified mitigated occurred"`
	Mitigation  string `json:"mitigation"`
	Owner       string `json:"owner"`
	CreatedAt   string `json:"createdAt" format:"date-time"`
	UpdatedAt   string `json:"updatedAt" format:"date-time"`
}

const (
	RiskIdentified = "identified"
	RiskMitigated  = "mitigated"
	RiskOccurred   = "occurred"
)

type Attachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt" format:"date-time"`
}
