package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/repositories"
)

type fakeStatsReader struct {
	stats    []repositories.SessionStatRow
	present  int64
	total    int64
	absences []repositories.AbsenceRow
	err      error
}

func (f *fakeStatsReader) GetSessionStats(ctx context.Context, scope models.Scope) ([]repositories.SessionStatRow, error) {
	return f.stats, f.err
}

func (f *fakeStatsReader) CountPresences(ctx context.Context, scope models.Scope) (int64, int64, error) {
	return f.present, f.total, f.err
}

func (f *fakeStatsReader) GetAbsences(ctx context.Context, scope models.Scope) ([]repositories.AbsenceRow, error) {
	return f.absences, f.err
}

type fakeSessionCounter struct {
	count int64
	err   error
}

func (f *fakeSessionCounter) CountInScope(ctx context.Context, scope models.Scope) (int64, error) {
	return f.count, f.err
}

func day(s string) time.Time {
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestGetSessionStatsComputesRates(t *testing.T) {
	svc := &AnalyticsService{
		stats: &fakeStatsReader{stats: []repositories.SessionStatRow{
			{Date: day("2024-03-10"), Group: "ADIA-G1", Module: "Python", Present: 14, Total: 20},
			{Date: day("2024-03-11"), Group: "IL-G1", Module: "Java", Present: 1, Total: 3},
			{Date: day("2024-03-12"), Group: "IL-G1", Module: "Java", Present: 0, Total: 0},
		}},
	}

	stats, err := svc.GetSessionStats(context.Background(), models.AllInstructors())
	if err != nil {
		t.Fatalf("GetSessionStats returned error: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("got %d rows, want 3", len(stats))
	}

	wantRates := []float64{70, 33.3, 0}
	for i, want := range wantRates {
		if stats[i].Rate != want {
			t.Errorf("stats[%d].Rate = %v, want %v", i, stats[i].Rate, want)
		}
	}
	if stats[0].Date != "2024-03-10" {
		t.Errorf("stats[0].Date = %q, want %q", stats[0].Date, "2024-03-10")
	}
}

func TestGetKPIsZeroSessions(t *testing.T) {
	svc := &AnalyticsService{
		stats:    &fakeStatsReader{present: 0, total: 0},
		sessions: &fakeSessionCounter{count: 0},
	}

	kpis, err := svc.GetKPIs(context.Background(), models.AllInstructors())
	if err != nil {
		t.Fatalf("GetKPIs returned error: %v", err)
	}
	if kpis.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", kpis.TotalSessions)
	}
	if kpis.AvgRate != 0 {
		t.Errorf("AvgRate = %v, want 0 with no presence records", kpis.AvgRate)
	}
}

func TestGetKPIsScopedToInstructor(t *testing.T) {
	svc := &AnalyticsService{
		stats:    &fakeStatsReader{present: 30, total: 40},
		sessions: &fakeSessionCounter{count: 4},
	}

	kpis, err := svc.GetKPIs(context.Background(), models.ForInstructor(7))
	if err != nil {
		t.Fatalf("GetKPIs returned error: %v", err)
	}
	if kpis.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", kpis.TotalSessions)
	}
	if kpis.AvgRate != 75 {
		t.Errorf("AvgRate = %v, want 75", kpis.AvgRate)
	}
}

func TestGetAbsenceReportRanksByCount(t *testing.T) {
	svc := &AnalyticsService{
		stats: &fakeStatsReader{absences: []repositories.AbsenceRow{
			{Name: "Idrissi Salma", CNE: "D130000001", Group: "ADIA-G1", Module: "Python", Date: day("2024-03-12")},
			{Name: "Idrissi Salma", CNE: "D130000001", Group: "ADIA-G1", Module: "Python", Date: day("2024-03-05")},
			{Name: "Idrissi Salma", CNE: "D130000001", Group: "ADIA-G1", Module: "Python", Date: day("2024-03-01")},
			{Name: "Tazi Mehdi", CNE: "D130000002", Group: "ADIA-G1", Module: "Python", Date: day("2024-03-12")},
			{Name: "Tazi Mehdi", CNE: "D130000002", Group: "ADIA-G1", Module: "Statistiques", Date: day("2024-03-10")},
		}},
	}

	report, err := svc.GetAbsenceReport(context.Background(), models.AllInstructors())
	if err != nil {
		t.Fatalf("GetAbsenceReport returned error: %v", err)
	}
	if len(report) != 3 {
		t.Fatalf("got %d records, want 3", len(report))
	}

	if report[0].CNE != "D130000001" || report[0].Count != 3 {
		t.Errorf("report[0] = %s/%d, want D130000001/3", report[0].CNE, report[0].Count)
	}
	// Equal counts keep the source order: Tazi's Python row came before his
	// Statistiques row.
	if report[1].Module != "Python" || report[2].Module != "Statistiques" {
		t.Errorf("tie order = [%s, %s], want [Python, Statistiques]", report[1].Module, report[2].Module)
	}

	wantDates := []string{"2024-03-12", "2024-03-05", "2024-03-01"}
	for i, want := range wantDates {
		if report[0].Dates[i] != want {
			t.Errorf("report[0].Dates[%d] = %q, want %q", i, report[0].Dates[i], want)
		}
	}
}

func TestGetAbsenceReportSeparatesModules(t *testing.T) {
	svc := &AnalyticsService{
		stats: &fakeStatsReader{absences: []repositories.AbsenceRow{
			{Name: "Idrissi Salma", CNE: "D130000001", Group: "ADIA-G1", Module: "Python", Date: day("2024-03-12")},
			{Name: "Idrissi Salma", CNE: "D130000001", Group: "ADIA-G1", Module: "Machine Learning", Date: day("2024-03-12")},
		}},
	}

	report, err := svc.GetAbsenceReport(context.Background(), models.AllInstructors())
	if err != nil {
		t.Fatalf("GetAbsenceReport returned error: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("got %d records, want one per (student, module)", len(report))
	}
}

func TestAnalyticsPropagatesErrors(t *testing.T) {
	wantErr := errors.New("db down")
	svc := &AnalyticsService{
		stats:    &fakeStatsReader{err: wantErr},
		sessions: &fakeSessionCounter{},
	}

	if _, err := svc.GetSessionStats(context.Background(), models.AllInstructors()); !errors.Is(err, wantErr) {
		t.Errorf("GetSessionStats error = %v, want %v", err, wantErr)
	}
	if _, err := svc.GetAbsenceReport(context.Background(), models.AllInstructors()); !errors.Is(err, wantErr) {
		t.Errorf("GetAbsenceReport error = %v, want %v", err, wantErr)
	}
}
