package models

import "time"

// RequestStatus enumerates the lifecycle states of an activity request.
type RequestStatus string

const (
	// StatusSubmitted is the initial state, awaiting FA review.
	StatusSubmitted RequestStatus = "submitted"
	// StatusFAApproved means the assigned advisor approved and the request
	// awaits the admin's final decision.
	StatusFAApproved RequestStatus = "fa_approved"
	// StatusMoreInfoRequired means the advisor sent the request back to the
	// student for a new proof or clarification.
	StatusMoreInfoRequired RequestStatus = "more_info_required"
	// StatusAdminFinalized is the terminal approved state; the ledger has
	// been credited.
	StatusAdminFinalized RequestStatus = "admin_finalized"
	// StatusRejected is terminal, reachable from FA review or admin finalization.
	StatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transitions are permitted.
func (s RequestStatus) Terminal() bool {
	return s == StatusAdminFinalized || s == StatusRejected
}

// CountsAgainstCap reports whether a request in this status still reserves
// capacity against the category cap. Finalized requests are excluded because
// their points already live in the ledger.
func (s RequestStatus) CountsAgainstCap() bool {
	return s != StatusRejected && s != StatusAdminFinalized
}

// Action enumerates the operations actors may perform on a request.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionRequestInfo     Action = "request-info"
	ActionResubmit        Action = "resubmit"
	ActionFinalizeApprove Action = "finalize-approve"
	ActionFinalizeReject  Action = "finalize-reject"
)

// Transition describes one legal edge of the request lifecycle.
type Transition struct {
	From            RequestStatus
	Actor           Role
	To              RequestStatus
	CommentRequired bool
}

// transitions is the single source of truth for the lifecycle. Preconditions
// live here; identity checks (assigned advisor, owning student) are enforced
// by the workflow service on top of the role listed per edge.
var transitions = map[Action]Transition{
	ActionApprove:         {From: StatusSubmitted, Actor: RoleFA, To: StatusFAApproved},
	ActionReject:          {From: StatusSubmitted, Actor: RoleFA, To: StatusRejected},
	ActionRequestInfo:     {From: StatusSubmitted, Actor: RoleFA, To: StatusMoreInfoRequired, CommentRequired: true},
	ActionResubmit:        {From: StatusMoreInfoRequired, Actor: RoleStudent, To: StatusSubmitted},
	ActionFinalizeApprove: {From: StatusFAApproved, Actor: RoleAdmin, To: StatusAdminFinalized},
	ActionFinalizeReject:  {From: StatusFAApproved, Actor: RoleAdmin, To: StatusRejected},
}

// TransitionFor returns the lifecycle edge for the given action.
func TransitionFor(action Action) (Transition, bool) {
	t, ok := transitions[action]
	return t, ok
}

// ActivityRequest is a student's claim for extracurricular points. The
// assigned advisor is resolved once at submission and never re-routed.
type ActivityRequest struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	StudentID    uint             `gorm:"not null;index" json:"student_id"`
	Student      User             `gorm:"foreignKey:StudentID" json:"student"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Category     string           `gorm:"size:255;not null;index" json:"category"`
	Points       int              `gorm:"not null" json:"points"`
	Proof        string           `gorm:"size:512;not null" json:"proof"`
	AssignedFAID uint             `gorm:"not null;index" json:"assigned_fa_id"`
	AssignedFA   User             `gorm:"foreignKey:AssignedFAID" json:"assigned_fa"`
	Status       RequestStatus    `gorm:"size:32;not null;index" json:"status"`
	Comments     []RequestComment `gorm:"foreignKey:RequestID" json:"comments"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// RequestComment is one entry of the append-only comment trail. Comments are
// never edited or deleted.
type RequestComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  uint      `gorm:"not null;index" json:"request_id"`
	AuthorID   uint      `gorm:"not null" json:"author_id"`
	AuthorName string    `gorm:"size:255;not null" json:"author_name"`
	AuthorRole Role      `gorm:"size:16;not null" json:"author_role"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
