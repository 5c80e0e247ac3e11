package domain

import "time"

// Patch structs list every updatable field explicitly. A nil field is left
// untouched; merging is by named field, never by reflecting over a key set,
// so unknown fields cannot slip through.

type ProjectPatch struct {
	Type         *ProjectType   `json:"type,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Analyst      *string        `json:"analyst,omitempty"`
	Manager      *string        `json:"manager,omitempty"`
	Status       *ProjectStatus `json:"status,omitempty"`
	LastEditedBy *string        `json:"last_edited_by,omitempty"`
}

func (p ProjectPatch) Empty() bool {
	return p.Type == nil && p.Description == nil && p.Analyst == nil &&
		p.Manager == nil && p.Status == nil && p.LastEditedBy == nil
}

type CSPLOBPatch struct {
	CSPCode         *string     `json:"csp_code,omitempty"`
	LOBType         *LOBType    `json:"lob_type,omitempty"`
	Description     *string     `json:"description,omitempty"`
	Status          *CSPStatus  `json:"status,omitempty"`
	EffectiveDate   *time.Time  `json:"effective_date,omitempty"`
	TerminationDate **time.Time `json:"termination_date,omitempty"`
}

func (p CSPLOBPatch) Empty() bool {
	return p.CSPCode == nil && p.LOBType == nil && p.Description == nil &&
		p.Status == nil && p.EffectiveDate == nil && p.TerminationDate == nil
}

type YLinePatch struct {
	ProductCode     *string      `json:"product_code,omitempty"`
	Description     *string      `json:"description,omitempty"`
	PreAwardStatus  *string      `json:"pre_award_status,omitempty"`
	PostAwardStatus *string      `json:"post_award_status,omitempty"`
	EstimatedValue  *float64     `json:"estimated_value,omitempty"`
	ActualValue     *float64     `json:"actual_value,omitempty"`
	Status          *YLineStatus `json:"status,omitempty"`
}

func (p YLinePatch) Empty() bool {
	return p.ProductCode == nil && p.Description == nil && p.PreAwardStatus == nil &&
		p.PostAwardStatus == nil && p.EstimatedValue == nil && p.ActualValue == nil &&
		p.Status == nil
}

type CompetitorPatch struct {
	Payor        *string `json:"payor,omitempty"`
	Product      *string `json:"product,omitempty"`
	ProductCode  *string `json:"product_code,omitempty"`
	EI           *bool   `json:"ei,omitempty"`
	CS           *bool   `json:"cs,omitempty"`
	MR           *bool   `json:"mr,omitempty"`
	LastEditedBy *string `json:"last_edited_by,omitempty"`
}

func (p CompetitorPatch) Empty() bool {
	return p.Payor == nil && p.Product == nil && p.ProductCode == nil &&
		p.EI == nil && p.CS == nil && p.MR == nil && p.LastEditedBy == nil
}

type ServiceAreaPatch struct {
	Region        *string `json:"region,omitempty"`
	State         *string `json:"state,omitempty"`
	County        *string `json:"county,omitempty"`
	ReportInclude *bool   `json:"report_include,omitempty"`
	MaxMileage    *int    `json:"max_mileage,omitempty"`
}

func (p ServiceAreaPatch) Empty() bool {
	return p.Region == nil && p.State == nil && p.County == nil &&
		p.ReportInclude == nil && p.MaxMileage == nil
}

type ProjectNotePatch struct {
	Note       *string `json:"note,omitempty"`
	ActionItem *bool   `json:"action_item,omitempty"`
	Category   *string `json:"category,omitempty"`
}

func (p ProjectNotePatch) Empty() bool {
	return p.Note == nil && p.ActionItem == nil && p.Category == nil
}
