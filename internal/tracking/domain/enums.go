package domain

import "fmt"

type ProjectType string

const (
	ProjectTranslation ProjectType = "translation"
	ProjectReview      ProjectType = "review"
	ProjectQA          ProjectType = "qa"
	ProjectOther       ProjectType = "other"
)

type ProjectStatus string

const (
	ProjectStatusNew       ProjectStatus = "new"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusReview    ProjectStatus = "review"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

type LOBType string

const (
	LOBMedical  LOBType = "medical"
	LOBPharmacy LOBType = "pharmacy"
	LOBDental   LOBType = "dental"
	LOBVision   LOBType = "vision"
	LOBOther    LOBType = "other"
)

type CSPStatus string

const (
	CSPActive   CSPStatus = "active"
	CSPInactive CSPStatus = "inactive"
	CSPPending  CSPStatus = "pending"
)

type YLineStatus string

const (
	YLinePending   YLineStatus = "pending"
	YLineActive    YLineStatus = "active"
	YLineCompleted YLineStatus = "completed"
	YLineCancelled YLineStatus = "cancelled"
)

// Parse helpers reject unrecognized values at the boundary instead of
// letting the database surface a constraint failure later.

func ParseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectTranslation, ProjectReview, ProjectQA, ProjectOther:
		return ProjectType(s), nil
	}
	return "", enumErr("type", s)
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectStatusNew, ProjectStatusActive, ProjectStatusReview, ProjectStatusCompleted, ProjectStatusOnHold:
		return ProjectStatus(s), nil
	}
	return "", enumErr("status", s)
}

func ParseLOBType(s string) (LOBType, error) {
	switch LOBType(s) {
	case LOBMedical, LOBPharmacy, LOBDental, LOBVision, LOBOther:
		return LOBType(s), nil
	}
	return "", enumErr("lob_type", s)
}

func ParseCSPStatus(s string) (CSPStatus, error) {
	switch CSPStatus(s) {
	case CSPActive, CSPInactive, CSPPending:
		return CSPStatus(s), nil
	}
	return "", enumErr("status", s)
}

func ParseYLineStatus(s string) (YLineStatus, error) {
	switch YLineStatus(s) {
	case YLinePending, YLineActive, YLineCompleted, YLineCancelled:
		return YLineStatus(s), nil
	}
	return "", enumErr("status", s)
}

func enumErr(field, value string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Reason:  ReasonInvalidEnum,
		Message: fmt.Sprintf("unrecognized %s %q", field, value),
	}
}
