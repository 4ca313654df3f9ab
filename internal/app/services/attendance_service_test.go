package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/db"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
)

type fakeSessionResolver struct {
	sessionID int64
	err       error
	calls     int
}

func (f *fakeSessionResolver) ResolveOrCreate(ctx context.Context, instructorID, groupID, moduleID int64, date time.Time) (int64, error) {
	f.calls++
	return f.sessionID, f.err
}

type upsertCall struct {
	sessionID int64
	studentID int64
	status    models.PresenceStatus
}

type fakePresenceWriter struct {
	calls   []upsertCall
	failAt  int // 1-based call index that fails; 0 never fails
	failErr error
}

func (f *fakePresenceWriter) UpsertTx(ctx context.Context, tx pgx.Tx, sessionID, studentID int64, status models.PresenceStatus) error {
	f.calls = append(f.calls, upsertCall{sessionID: sessionID, studentID: studentID, status: status})
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return f.failErr
	}
	return nil
}

// passthroughTx runs fn directly; the writer fakes ignore the tx handle.
func passthroughTx(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

func newTestAttendanceService(resolver *fakeSessionResolver, writer *fakePresenceWriter) *AttendanceService {
	return &AttendanceService{
		sessions:  resolver,
		presences: writer,
		runTx:     passthroughTx,
	}
}

func TestApplyPresenceBatchEmpty(t *testing.T) {
	resolver := &fakeSessionResolver{sessionID: 42}
	svc := newTestAttendanceService(resolver, &fakePresenceWriter{})

	_, _, err := svc.ApplyPresenceBatch(context.Background(), 1, 2, 3, time.Now(), nil)
	if !errors.Is(err, apperrors.ErrEmptyBatch) {
		t.Fatalf("error = %v, want ErrEmptyBatch", err)
	}
	if resolver.calls != 0 {
		t.Error("session was resolved for an empty batch")
	}
}

func TestApplyPresenceBatchRejectsInvalidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status models.PresenceStatus
	}{
		{"pending is read-only", models.StatusPending},
		{"unknown value", models.PresenceStatus("Late")},
		{"empty value", models.PresenceStatus("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeSessionResolver{sessionID: 42}
			writer := &fakePresenceWriter{}
			svc := newTestAttendanceService(resolver, writer)

			entries := []models.PresenceEntry{
				{StudentID: 10, Status: models.StatusPresent},
				{StudentID: 11, Status: tt.status},
			}
			_, _, err := svc.ApplyPresenceBatch(context.Background(), 1, 2, 3, time.Now(), entries)
			if !errors.Is(err, apperrors.ErrInvalidStatus) {
				t.Fatalf("error = %v, want ErrInvalidStatus", err)
			}
			if resolver.calls != 0 {
				t.Error("session was resolved despite an invalid entry")
			}
			if len(writer.calls) != 0 {
				t.Error("entries were written despite an invalid entry")
			}
		})
	}
}

func TestApplyPresenceBatchWritesAllEntries(t *testing.T) {
	resolver := &fakeSessionResolver{sessionID: 42}
	writer := &fakePresenceWriter{}
	svc := newTestAttendanceService(resolver, writer)

	entries := []models.PresenceEntry{
		{StudentID: 10, Status: models.StatusPresent},
		{StudentID: 11, Status: models.StatusAbsent},
		{StudentID: 12, Status: models.StatusPresent},
	}
	sessionID, applied, err := svc.ApplyPresenceBatch(context.Background(), 1, 2, 3, time.Now(), entries)
	if err != nil {
		t.Fatalf("ApplyPresenceBatch returned error: %v", err)
	}
	if sessionID != 42 {
		t.Errorf("sessionID = %d, want 42", sessionID)
	}
	if applied != len(entries) {
		t.Errorf("applied = %d, want %d", applied, len(entries))
	}
	if resolver.calls != 1 {
		t.Errorf("resolver called %d times, want 1", resolver.calls)
	}
	if len(writer.calls) != len(entries) {
		t.Fatalf("writer called %d times, want %d", len(writer.calls), len(entries))
	}
	for i, e := range entries {
		call := writer.calls[i]
		if call.sessionID != 42 || call.studentID != e.StudentID || call.status != e.Status {
			t.Errorf("call[%d] = %+v, want session 42, student %d, status %s", i, call, e.StudentID, e.Status)
		}
	}
}

func TestApplyPresenceBatchStopsOnWriteError(t *testing.T) {
	wantErr := errors.New("constraint violation")
	resolver := &fakeSessionResolver{sessionID: 42}
	writer := &fakePresenceWriter{failAt: 2, failErr: wantErr}
	svc := newTestAttendanceService(resolver, writer)

	entries := []models.PresenceEntry{
		{StudentID: 10, Status: models.StatusPresent},
		{StudentID: 11, Status: models.StatusAbsent},
		{StudentID: 12, Status: models.StatusPresent},
	}
	_, _, err := svc.ApplyPresenceBatch(context.Background(), 1, 2, 3, time.Now(), entries)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
	if len(writer.calls) != 2 {
		t.Errorf("writer called %d times after failure, want 2", len(writer.calls))
	}
}

func TestApplyPresenceBatchResolverError(t *testing.T) {
	wantErr := errors.New("session lookup failed")
	svc := newTestAttendanceService(&fakeSessionResolver{err: wantErr}, &fakePresenceWriter{})

	entries := []models.PresenceEntry{{StudentID: 10, Status: models.StatusPresent}}
	_, _, err := svc.ApplyPresenceBatch(context.Background(), 1, 2, 3, time.Now(), entries)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
}

func TestMarkPresenceDelegatesToBatch(t *testing.T) {
	resolver := &fakeSessionResolver{sessionID: 99}
	writer := &fakePresenceWriter{}
	svc := newTestAttendanceService(resolver, writer)

	sessionID, err := svc.MarkPresence(context.Background(), 1, 2, 3, 10, models.StatusAbsent, time.Now())
	if err != nil {
		t.Fatalf("MarkPresence returned error: %v", err)
	}
	if sessionID != 99 {
		t.Errorf("sessionID = %d, want 99", sessionID)
	}
	if len(writer.calls) != 1 {
		t.Fatalf("writer called %d times, want 1", len(writer.calls))
	}
	if writer.calls[0].studentID != 10 || writer.calls[0].status != models.StatusAbsent {
		t.Errorf("call = %+v, want student 10 Absent", writer.calls[0])
	}
}
