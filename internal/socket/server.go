package socket

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/services"
	"github.com/aymanebt/tptrack/internal/pkg/helpers"
)

// connTimeout bounds one request/response exchange
const connTimeout = 30 * time.Second

// Server serves the legacy protocol on a TCP listener, one goroutine per
// connection
type Server struct {
	attendance  *services.AttendanceService
	assignments *services.AssignmentService
	users       *services.UserService
	logger      zerolog.Logger

	listener net.Listener
	wg       sync.WaitGroup
}

// NewServer creates a new socket server
func NewServer(svcs *services.Services, logger zerolog.Logger) *Server {
	return &Server{
		attendance:  svcs.AttendanceService,
		assignments: svcs.AssignmentService,
		users:       svcs.UserService,
		logger:      logger,
	}
}

// Listen binds the TCP port and serves until Shutdown closes the listener
func (s *Server) Listen(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.logger.Info().Str("addr", addr).Msg("Socket server listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Warn().Err(err).Msg("Socket accept failed")
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

// Shutdown stops accepting connections and waits for in-flight exchanges
func (s *Server) Shutdown() {
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
}

// handleConn runs one request/response exchange and closes the connection
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(connTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	req, err := ReadRequest(conn)
	if err != nil {
		s.logger.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Malformed socket request")
		_ = WriteResponse(conn, Error("malformed request"))
		return
	}

	resp := s.dispatch(ctx, req)
	if err := WriteResponse(conn, resp); err != nil {
		s.logger.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Socket response write failed")
	}
}

func (s *Server) dispatch(ctx context.Context, req *Request) Response {
	switch req.Action {
	case ActionGetStudents:
		return s.getStudents(ctx, req)
	case ActionMarkPresence:
		return s.markPresence(ctx, req)
	case ActionPostTP:
		return s.postTP(ctx, req)
	case ActionGetMyTPs:
		return s.getMyTPs(ctx, req)
	case ActionSubmitRapport:
		return s.submitRapport(ctx, req)
	default:
		return Error("unknown action: " + req.Action)
	}
}

// studentEntry is the roster projection the legacy clients expect
type studentEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	CNE  string `json:"cne"`
}

func (s *Server) getStudents(ctx context.Context, req *Request) Response {
	if req.GroupID <= 0 {
		return Error("group_id is required")
	}

	students, err := s.users.ListStudentsByGroup(ctx, req.GroupID)
	if err != nil {
		return Error(err.Error())
	}

	entries := make([]studentEntry, 0, len(students))
	for _, st := range students {
		entry := studentEntry{ID: st.UserID, CNE: st.CNE}
		if st.User != nil {
			entry.Name = st.User.FullName()
		}
		entries = append(entries, entry)
	}

	return OK(entries)
}

func (s *Server) markPresence(ctx context.Context, req *Request) Response {
	if req.InstructorID <= 0 || req.GroupID <= 0 || req.ModuleID <= 0 || req.StudentID <= 0 {
		return Error("instructor_id, group_id, module_id and student_id are required")
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := helpers.ParseDate(req.Date)
		if err != nil {
			return Error("invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	sessionID, err := s.attendance.MarkPresence(ctx,
		req.InstructorID, req.GroupID, req.ModuleID, req.StudentID,
		models.PresenceStatus(req.Status), date)
	if err != nil {
		return Error(err.Error())
	}

	return OK(map[string]any{"session_id": sessionID})
}

func (s *Server) postTP(ctx context.Context, req *Request) Response {
	if req.InstructorID <= 0 || req.GroupID <= 0 || req.ModuleID <= 0 || req.Title == "" || req.Deadline == "" {
		return Error("instructor_id, group_id, module_id, title and deadline are required")
	}

	assignment, err := s.assignments.Create(ctx, req.InstructorID, &dto.CreateAssignmentRequest{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		ModuleID:    req.ModuleID,
		GroupID:     req.GroupID,
	}, nil)
	if err != nil {
		return Error(err.Error())
	}

	return OK(map[string]any{"tp_id": assignment.ID})
}

// tpEntry is the assignment projection the legacy clients expect
type tpEntry struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	ModuleID int64  `json:"module_id"`
}

func (s *Server) getMyTPs(ctx context.Context, req *Request) Response {
	if req.StudentID <= 0 {
		return Error("student_id is required")
	}

	assignments, err := s.assignments.ListForStudent(ctx, req.StudentID)
	if err != nil {
		return Error(err.Error())
	}

	entries := make([]tpEntry, 0, len(assignments))
	for _, a := range assignments {
		entries = append(entries, tpEntry{
			ID:       a.ID,
			Title:    a.Title,
			Deadline: a.Deadline.Format(time.RFC3339),
			ModuleID: a.ModuleID,
		})
	}

	return OK(entries)
}

func (s *Server) submitRapport(ctx context.Context, req *Request) Response {
	if req.TPID <= 0 || req.StudentID <= 0 || req.Link == "" {
		return Error("tp_id, student_id and link are required")
	}

	submission, err := s.assignments.SubmitReport(ctx, req.TPID, req.StudentID, req.Link)
	if err != nil {
		return Error(err.Error())
	}

	return OK(map[string]any{"submission_id": submission.ID})
}
