package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

// =========================
// Session notifier
// =========================

type SessionNotifier interface {
	// SessionEnded targets one session; uuid.Nil targets every session of the user.
	SessionEnded(userID, sessionID uuid.UUID, reason string)
}

type sessionNotifier struct {
	emit SSEEmitter
}

func NewSessionNotifier(emit SSEEmitter) SessionNotifier {
	return &sessionNotifier{emit: emit}
}

func (n *sessionNotifier) SessionEnded(userID, sessionID uuid.UUID, reason string) {
	if n == nil || n.emit == nil || userID == uuid.Nil {
		return
	}
	msg := realtime.SSEMessage{
		Channel: realtime.UserChannel(userID),
		Event:   realtime.SSEEventSessionEnded,
		Data:    map[string]any{"reason": reason},
	}
	if sessionID != uuid.Nil {
		msg.SessionID = sessionID.String()
	}
	n.emit.Emit(context.Background(), msg)
}

// =========================
// Directory notifier
// =========================

type DirectoryNotifier interface {
	EmployeeChanged(action string, employeeID uuid.UUID)
	DepartmentChanged(action string, departmentID uuid.UUID)
}

type directoryNotifier struct {
	emit SSEEmitter
}

func NewDirectoryNotifier(emit SSEEmitter) DirectoryNotifier {
	return &directoryNotifier{emit: emit}
}

func (n *directoryNotifier) EmployeeChanged(action string, employeeID uuid.UUID) {
	n.changed("employee", action, employeeID)
}

func (n *directoryNotifier) DepartmentChanged(action string, departmentID uuid.UUID) {
	n.changed("department", action, departmentID)
}

func (n *directoryNotifier) changed(kind, action string, id uuid.UUID) {
	if n == nil || n.emit == nil {
		return
	}
	n.emit.Emit(context.Background(), realtime.SSEMessage{
		Channel: realtime.DirectoryChannel,
		Event:   realtime.SSEEventDirectoryChanged,
		Data:    map[string]any{"kind": kind, "action": action, "id": id.String()},
	})
}
