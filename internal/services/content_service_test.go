package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"learninghub/internal/models"
)

func TestSaveAwardsOnceAndRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))
	user := createUser(t, db, 50)
	content := createContent(t, db, "twitter")

	credits, err := svc.Save(user.ID, content.ID)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if credits != 51 {
		t.Errorf("credits = %d, want 51", credits)
	}

	if _, err := svc.Save(user.ID, content.ID); !errors.Is(err, ErrAlreadySaved) {
		t.Fatalf("second Save = %v, want ErrAlreadySaved", err)
	}

	// Counter, balance and ledger advanced exactly once.
	var stored models.Content
	if err := db.First(&stored, "id = ?", content.ID).Error; err != nil {
		t.Fatalf("failed to load content: %v", err)
	}
	if stored.Saves != 1 {
		t.Errorf("saves counter = %d, want 1", stored.Saves)
	}
	if got := userBalance(t, db, user.ID); got != 51 {
		t.Errorf("balance = %d, want 51", got)
	}
	if got := ledgerCount(t, db, user.ID); got != 1 {
		t.Errorf("ledger rows = %d, want 1", got)
	}
}

func TestShareIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))
	user := createUser(t, db, 50)
	content := createContent(t, db, "reddit")

	for i := 0; i < 2; i++ {
		if _, err := svc.Share(user.ID, content.ID); err != nil {
			t.Fatalf("Share %d failed: %v", i+1, err)
		}
	}

	var stored models.Content
	db.First(&stored, "id = ?", content.ID)
	if stored.Shares != 2 {
		t.Errorf("shares counter = %d, want 2", stored.Shares)
	}
	if got := userBalance(t, db, user.ID); got != 56 {
		t.Errorf("balance = %d, want 56", got)
	}
}

func TestReportRewardDependsOnReason(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))
	withReason := createUser(t, db, 0)
	noReason := createUser(t, db, 0)
	content := createContent(t, db, "twitter")

	if _, err := svc.Report(withReason.ID, content.ID, "spam"); err != nil {
		t.Fatalf("Report with reason failed: %v", err)
	}
	if _, err := svc.Report(noReason.ID, content.ID, ""); err != nil {
		t.Fatalf("Report without reason failed: %v", err)
	}

	var withTx, withoutTx models.CreditTransaction
	if err := db.First(&withTx, "user_id = ?", withReason.ID).Error; err != nil {
		t.Fatalf("missing ledger row: %v", err)
	}
	if err := db.First(&withoutTx, "user_id = ?", noReason.ID).Error; err != nil {
		t.Fatalf("missing ledger row: %v", err)
	}
	if withTx.Amount != 2 {
		t.Errorf("reasoned report amount = %d, want 2", withTx.Amount)
	}
	if withoutTx.Amount != 1 {
		t.Errorf("unreasoned report amount = %d, want 1", withoutTx.Amount)
	}

	var stored models.Content
	db.First(&stored, "id = ?", content.ID)
	if stored.Reports != 2 {
		t.Errorf("reports counter = %d, want 2", stored.Reports)
	}
}

func TestReportDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))
	user := createUser(t, db, 0)
	content := createContent(t, db, "twitter")

	if _, err := svc.Report(user.ID, content.ID, "spam"); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if _, err := svc.Report(user.ID, content.ID, "again"); !errors.Is(err, ErrAlreadyReported) {
		t.Fatalf("second Report = %v, want ErrAlreadyReported", err)
	}
	if got := ledgerCount(t, db, user.ID); got != 1 {
		t.Errorf("ledger rows = %d, want 1", got)
	}
}

func TestEngagementWithUnknownContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))
	user := createUser(t, db, 0)

	if _, err := svc.Save(user.ID, uuid.New()); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("Save = %v, want ErrContentNotFound", err)
	}
	if _, err := svc.Share(user.ID, uuid.New()); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("Share = %v, want ErrContentNotFound", err)
	}
	if _, err := svc.Report(user.ID, uuid.New(), "x"); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("Report = %v, want ErrContentNotFound", err)
	}
}

func TestFeedFiltersSourcesAndInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))

	twitter := createContent(t, db, "twitter")
	createContent(t, db, "reddit")
	inactive := createContent(t, db, "twitter")
	db.Model(&models.Content{}).Where("id = ?", inactive.ID).UpdateColumn("is_active", false)

	feed, err := svc.Feed([]string{"twitter"})
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != twitter.ID {
		t.Errorf("feed = %d items, want just the active twitter item", len(feed))
	}

	all, err := svc.Feed(nil)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered feed = %d items, want 2", len(all))
	}
}

func TestFeedOrdersByDateDescending(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))

	old := createContent(t, db, "twitter")
	db.Model(&models.Content{}).Where("id = ?", old.ID).
		UpdateColumn("date", time.Now().Add(-48*time.Hour))
	fresh := createContent(t, db, "twitter")

	feed, err := svc.Feed(nil)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(feed) != 2 || feed[0].ID != fresh.ID {
		t.Errorf("feed order wrong, newest item should come first")
	}
}

func TestSavedReturnsRelationContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewCreditService(db, testPolicy()))
	user := createUser(t, db, 50)
	first := createContent(t, db, "twitter")
	second := createContent(t, db, "reddit")

	if _, err := svc.Save(user.ID, first.ID); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := svc.Save(user.ID, second.ID); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved, err := svc.Saved(user.ID)
	if err != nil {
		t.Fatalf("Saved failed: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved = %d items, want 2", len(saved))
	}
	if saved[0].ID != second.ID {
		t.Errorf("saved order wrong, most recent relation should come first")
	}
}
