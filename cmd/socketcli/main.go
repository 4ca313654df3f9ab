// Command socketcli is a demo client for the legacy protocol: it lists a
// group's students, then marks the first one present, mirroring the flow
// of the old instructor desktop app.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/aymanebt/tptrack/internal/socket"
)

func main() {
	addr := flag.String("addr", "localhost:5000", "socket server address")
	groupID := flag.Int64("group", 1, "group id")
	moduleID := flag.Int64("module", 1, "module id")
	instructorID := flag.Int64("instructor", 0, "instructor id (required to mark presence)")
	flag.Parse()

	students, err := exchange(*addr, socket.Request{
		Action:  socket.ActionGetStudents,
		GroupID: *groupID,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "GET_STUDENTS failed:", err)
		os.Exit(1)
	}

	raw, _ := json.MarshalIndent(students.Data, "", "  ")
	fmt.Printf("students of group %d:\n%s\n", *groupID, raw)

	if *instructorID == 0 {
		return
	}

	// Mark the first student present for today
	entries, ok := students.Data.([]any)
	if !ok || len(entries) == 0 {
		fmt.Println("no students to mark")
		return
	}
	first, ok := entries[0].(map[string]any)
	if !ok {
		fmt.Fprintln(os.Stderr, "unexpected roster shape")
		os.Exit(1)
	}
	studentID := int64(first["id"].(float64))

	resp, err := exchange(*addr, socket.Request{
		Action:       socket.ActionMarkPresence,
		InstructorID: *instructorID,
		GroupID:      *groupID,
		ModuleID:     *moduleID,
		StudentID:    studentID,
		Status:       "Present",
		Date:         time.Now().Format("2006-01-02"),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "MARK_PRESENCE failed:", err)
		os.Exit(1)
	}

	fmt.Printf("marked student %d present: %s\n", studentID, resp.Status)
}

// exchange opens a connection, sends one request and reads the response
func exchange(addr string, req socket.Request) (*socket.Response, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(10 * time.Second))

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, err
	}

	var resp socket.Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, err
	}
	if resp.Status != socket.StatusOK {
		return &resp, fmt.Errorf("server error: %s", resp.Message)
	}
	return &resp, nil
}
