package activity

import (
	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/inquiry"
)

// RecentStatusChanges returns the applications whose review reached a terminal
// status and that the viewer has not dismissed. Drives transient alert banners;
// the underlying applications are untouched.
func RecentStatusChanges(apps []application.Application, dismissed map[common.UUID]struct{}) []application.Application {
	var out []application.Application
	for _, app := range apps {
		if app.Status != application.StatusAccepted && app.Status != application.StatusRejected {
			continue
		}
		if _, ok := dismissed[app.ID]; ok {
			continue
		}
		out = append(out, app)
	}
	return out
}

// PendingInquiries returns undismissed inquiries still awaiting a response.
func PendingInquiries(inqs []inquiry.Inquiry, dismissed map[common.UUID]struct{}) []inquiry.Inquiry {
	var out []inquiry.Inquiry
	for _, inq := range inqs {
		if inq.Status != inquiry.StatusPending {
			continue
		}
		if _, ok := dismissed[inq.ID]; ok {
			continue
		}
		out = append(out, inq)
	}
	return out
}
