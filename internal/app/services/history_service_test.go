package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aymanebt/tptrack/internal/app/models"
)

type fakeHistorySource struct {
	items []models.HistoryItem
	err   error
}

func (f *fakeHistorySource) ListHistoryByInstructor(ctx context.Context, instructorID int64) ([]models.HistoryItem, error) {
	return f.items, f.err
}

func historyItem(id int64, kind models.HistoryKind, date string) models.HistoryItem {
	ts, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic(err)
	}
	return models.HistoryItem{ID: id, Kind: kind, Date: ts}
}

func TestGetInstructorHistoryMergesNewestFirst(t *testing.T) {
	svc := &HistoryService{
		assignments: &fakeHistorySource{items: []models.HistoryItem{
			historyItem(1, models.HistoryAssignment, "2024-03-12T10:00:00Z"),
			historyItem(2, models.HistoryAssignment, "2024-03-01T10:00:00Z"),
		}},
		announcements: &fakeHistorySource{items: []models.HistoryItem{
			historyItem(3, models.HistoryAnnouncement, "2024-03-20T08:00:00Z"),
			historyItem(4, models.HistoryAnnouncement, "2024-03-05T08:00:00Z"),
		}},
	}

	items, err := svc.GetInstructorHistory(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetInstructorHistory returned error: %v", err)
	}

	wantIDs := []int64{3, 1, 4, 2}
	if len(items) != len(wantIDs) {
		t.Fatalf("got %d items, want %d", len(items), len(wantIDs))
	}
	for i, want := range wantIDs {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, want)
		}
	}
}

func TestGetInstructorHistoryTiesKeepAssignmentsFirst(t *testing.T) {
	sameDate := "2024-03-10T09:00:00Z"
	svc := &HistoryService{
		assignments: &fakeHistorySource{items: []models.HistoryItem{
			historyItem(1, models.HistoryAssignment, sameDate),
		}},
		announcements: &fakeHistorySource{items: []models.HistoryItem{
			historyItem(2, models.HistoryAnnouncement, sameDate),
		}},
	}

	items, err := svc.GetInstructorHistory(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetInstructorHistory returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Kind != models.HistoryAssignment || items[1].Kind != models.HistoryAnnouncement {
		t.Errorf("tie order = [%s, %s], want [TP, Annonce]", items[0].Kind, items[1].Kind)
	}
}

func TestGetInstructorHistoryEmptyFeeds(t *testing.T) {
	svc := &HistoryService{
		assignments:   &fakeHistorySource{},
		announcements: &fakeHistorySource{},
	}

	items, err := svc.GetInstructorHistory(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetInstructorHistory returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want none", len(items))
	}
}

func TestGetInstructorHistorySourceError(t *testing.T) {
	wantErr := errors.New("db down")
	svc := &HistoryService{
		assignments:   &fakeHistorySource{err: wantErr},
		announcements: &fakeHistorySource{},
	}

	if _, err := svc.GetInstructorHistory(context.Background(), 7); !errors.Is(err, wantErr) {
		t.Errorf("GetInstructorHistory error = %v, want %v", err, wantErr)
	}
}
