package socket

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadRequest(t *testing.T) {
	payload := `{"action":"MARK_PRESENCE","group_id":2,"module_id":3,"instructor_id":7,"student_id":10,"status":"Present","date":"2024-03-10"}`

	req, err := ReadRequest(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ReadRequest returned error: %v", err)
	}
	if req.Action != ActionMarkPresence {
		t.Errorf("Action = %q, want %q", req.Action, ActionMarkPresence)
	}
	if req.GroupID != 2 || req.ModuleID != 3 || req.InstructorID != 7 || req.StudentID != 10 {
		t.Errorf("ids = %d/%d/%d/%d, want 2/3/7/10", req.GroupID, req.ModuleID, req.InstructorID, req.StudentID)
	}
	if req.Status != "Present" || req.Date != "2024-03-10" {
		t.Errorf("status/date = %q/%q, want Present/2024-03-10", req.Status, req.Date)
	}
}

func TestReadRequestMalformed(t *testing.T) {
	if _, err := ReadRequest(strings.NewReader(`{"action":`)); err == nil {
		t.Error("ReadRequest accepted truncated JSON")
	}
}

func TestWriteResponseRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResponse(&buf, OK(map[string]int64{"session_id": 42})); err != nil {
		t.Fatalf("WriteResponse returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"status":"ok"`) {
		t.Errorf("output missing ok status: %s", out)
	}
	if !strings.Contains(out, `"session_id":42`) {
		t.Errorf("output missing data payload: %s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output is not newline terminated")
	}
}

func TestErrorResponse(t *testing.T) {
	resp := Error("group not found")
	if resp.Status != StatusError {
		t.Errorf("Status = %q, want %q", resp.Status, StatusError)
	}
	if resp.Message != "group not found" {
		t.Errorf("Message = %q, want %q", resp.Message, "group not found")
	}

	var buf bytes.Buffer
	if err := WriteResponse(&buf, resp); err != nil {
		t.Fatalf("WriteResponse returned error: %v", err)
	}
	if strings.Contains(buf.String(), `"data"`) {
		t.Errorf("error response carries a data field: %s", buf.String())
	}
}
