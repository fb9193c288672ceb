package domain

import "time"

// EmailStatus is the lifecycle state of a generated email.
type EmailStatus int

const (
	EmailDraft    EmailStatus = 0
	EmailApproved EmailStatus = 1
)

func (s EmailStatus) String() string {
	switch s {
	case EmailDraft:
		return "draft"
	case EmailApproved:
		return "approved"
	default:
		return "unknown"
	}
}

// Email is an artifact created by the production service for a task.
type Email struct {
	ID              int64       `json:"id"`
	ExternalEmailID string      `json:"externalEmailId"`
	ListID          int64       `json:"listId"`
	OwnerAgent      string      `json:"ownerAgent"`
	TaskID          int64       `json:"taskId"`
	Title           string      `json:"title"`
	Body            string      `json:"body"`
	CampaignName    string      `json:"campaignName"`
	ScheduledAt     time.Time   `json:"scheduledAt"`
	Status          EmailStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Revertible reports whether the email may move back from approved to
// draft. The scheduled send time must be strictly after now.
func (e Email) Revertible(now time.Time) bool {
	return e.Status == EmailApproved && e.ScheduledAt.After(now)
}

// Selection partitions an email set by what can be done with each email.
type Selection struct {
	DraftEmails          []Email `json:"draftEmails"`
	ApprovedEmails       []Email `json:"approvedEmails"`
	FutureApprovedEmails []Email `json:"futureApprovedEmails"`
}

// Partition splits emails into drafts, approved emails and the approved
// emails that are still revertible at now.
func Partition(emails []Email, now time.Time) Selection {
	sel := Selection{
		DraftEmails:          []Email{},
		ApprovedEmails:       []Email{},
		FutureApprovedEmails: []Email{},
	}
	for _, e := range emails {
		switch e.Status {
		case EmailDraft:
			sel.DraftEmails = append(sel.DraftEmails, e)
		case EmailApproved:
			sel.ApprovedEmails = append(sel.ApprovedEmails, e)
			if e.Revertible(now) {
				sel.FutureApprovedEmails = append(sel.FutureApprovedEmails, e)
			}
		}
	}
	return sel
}
