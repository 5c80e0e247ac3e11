package domain

import "time"

// Project is a tracked program of work owned by an analyst.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID           int64         `json:"id"`
	Code         string        `json:"code"`
	Type         ProjectType   `json:"type"`
	Description  string        `json:"description"`
	Analyst      string        `json:"analyst"`
	Manager      string        `json:"manager"`
	Status       ProjectStatus `json:"status"`
	LastEditedBy string        `json:"last_edited_by"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CSPLOB maps a CSP code to a line of business under a project.
// The (csp_code, lob_type) pair is unique across the store.
type CSPLOB struct {
	ID              int64      `json:"id"`
	ProjectID       int64      `json:"project_id"`
	CSPCode         string     `json:"csp_code"`
	LOBType         LOBType    `json:"lob_type"`
	Description     string     `json:"description"`
	Status          CSPStatus  `json:"status"`
	EffectiveDate   time.Time  `json:"effective_date"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// YLine is an award line-item tracked through pre- and post-award stages.
// The IPA number is its natural key and unique across the store.
type YLine struct {
	ID              int64       `json:"id"`
	ProjectID       int64       `json:"project_id"`
	IPANumber       string      `json:"ipa_number"`
	ProductCode     string      `json:"product_code"`
	Description     string      `json:"description"`
	PreAwardStatus  string      `json:"pre_award_status"`
	PostAwardStatus string      `json:"post_award_status"`
	EstimatedValue  *float64    `json:"estimated_value,omitempty"`
	ActualValue     *float64    `json:"actual_value,omitempty"`
	Status          YLineStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Competitor is a competitive-landscape entry recorded against a project:
// which payor offers which product, and the channels it appears in.
type Competitor struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"project_id"`
	Payor        string    `json:"payor"`
	Product      string    `json:"product"`
	ProductCode  string    `json:"product_code"`
	EI           bool      `json:"ei"`
	CS           bool      `json:"cs"`
	MR           bool      `json:"mr"`
	LastEditedBy string    `json:"last_edited_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ServiceArea records one unit of geographic coverage for a project,
// down to the county level.
type ServiceArea struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"project_id"`
	Region        string    `json:"region"`
	State         string    `json:"state"`
	County        string    `json:"county"`
	ReportInclude bool      `json:"report_include"`
	MaxMileage    *int      `json:"max_mileage,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectStatusEntry is one row of a project's status history. History is
// append-only; entries are read newest first.
type ProjectStatusEntry struct {
	ID         int64         `json:"id"`
	ProjectID  int64         `json:"project_id"`
	Status     ProjectStatus `json:"status"`
	StatusDate time.Time     `json:"status_date"`
	UpdatedBy  string        `json:"updated_by"`
	Comments   string        `json:"comments"`
}

// ProjectNote is a free-text note attached to a project.
type ProjectNote struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	Note       string    `json:"note"`
	ActionItem bool      `json:"action_item"`
	Category   string    `json:"category"`
	AuthoredBy string    `json:"authored_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
