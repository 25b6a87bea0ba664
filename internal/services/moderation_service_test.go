package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"learninghub/internal/models"
)

func TestApproveDeactivatesContent(t *testing.T) {
	db := newTestDB(t)
	contentSvc := NewContentService(db, NewCreditService(db, testPolicy()))
	modSvc := NewModerationService(db)
	user := createUser(t, db, 0)
	content := createContent(t, db, "twitter")

	if _, err := contentSvc.Report(user.ID, content.ID, "spam"); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	var report models.Report
	if err := db.First(&report, "content_id = ?", content.ID).Error; err != nil {
		t.Fatalf("report not created: %v", err)
	}

	if err := modSvc.Approve(report.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	db.First(&report, "id = ?", report.ID)
	if report.Status != models.ReportApproved {
		t.Errorf("status = %q, want approved", report.Status)
	}

	var stored models.Content
	db.First(&stored, "id = ?", content.ID)
	if stored.IsActive {
		t.Error("content still active after approval")
	}

	// The deactivated item drops out of the feed.
	feed, err := contentSvc.Feed(nil)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	for _, item := range feed {
		if item.ID == content.ID {
			t.Error("approved content still in feed")
		}
	}
}

func TestRejectKeepsContentActive(t *testing.T) {
	db := newTestDB(t)
	contentSvc := NewContentService(db, NewCreditService(db, testPolicy()))
	modSvc := NewModerationService(db)
	user := createUser(t, db, 0)
	content := createContent(t, db, "twitter")

	if _, err := contentSvc.Report(user.ID, content.ID, ""); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	var report models.Report
	db.First(&report, "content_id = ?", content.ID)

	if err := modSvc.Reject(report.ID); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	db.First(&report, "id = ?", report.ID)
	if report.Status != models.ReportRejected {
		t.Errorf("status = %q, want rejected", report.Status)
	}

	var stored models.Content
	db.First(&stored, "id = ?", content.ID)
	if !stored.IsActive {
		t.Error("content deactivated by rejection")
	}
}

func TestTerminalReportCannotBeReprocessed(t *testing.T) {
	db := newTestDB(t)
	contentSvc := NewContentService(db, NewCreditService(db, testPolicy()))
	modSvc := NewModerationService(db)
	user := createUser(t, db, 0)
	content := createContent(t, db, "twitter")

	if _, err := contentSvc.Report(user.ID, content.ID, "spam"); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	var report models.Report
	db.First(&report, "content_id = ?", content.ID)

	if err := modSvc.Reject(report.ID); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if err := modSvc.Approve(report.ID); !errors.Is(err, ErrReportProcessed) {
		t.Fatalf("Approve after Reject = %v, want ErrReportProcessed", err)
	}
	if err := modSvc.Reject(report.ID); !errors.Is(err, ErrReportProcessed) {
		t.Fatalf("second Reject = %v, want ErrReportProcessed", err)
	}

	// The losing transition left no side effect.
	var stored models.Content
	db.First(&stored, "id = ?", content.ID)
	if !stored.IsActive {
		t.Error("content deactivated by a rejected re-approval")
	}
}

func TestModerateUnknownReport(t *testing.T) {
	db := newTestDB(t)
	modSvc := NewModerationService(db)

	if err := modSvc.Approve(uuid.New()); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("Approve = %v, want ErrReportNotFound", err)
	}
	if err := modSvc.Reject(uuid.New()); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("Reject = %v, want ErrReportNotFound", err)
	}
}

func TestListReportsIncludesRelations(t *testing.T) {
	db := newTestDB(t)
	contentSvc := NewContentService(db, NewCreditService(db, testPolicy()))
	modSvc := NewModerationService(db)
	user := createUser(t, db, 0)
	content := createContent(t, db, "twitter")

	if _, err := contentSvc.Report(user.ID, content.ID, "spam"); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	reports, err := modSvc.ListReports()
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports))
	}
	if reports[0].User.Name == "" || reports[0].Content.Title == "" {
		t.Error("reporter and content not preloaded")
	}
}
