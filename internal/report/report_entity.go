package report

import (
	"time"

	"github.com/google/uuid"
)

// Row shapes scanned from the aggregate queries.

type StatusCount struct {
	Status string
	Count  int64
}

type DepartmentCount struct {
	Department string
	Count      int64
}

type EmployeeAttendance struct {
	EmployeeID uuid.UUID
	Name       string
	Total      int64
	Present    int64
}

type DepartmentAttendance struct {
	Department string
	Total      int64
	Present    int64
}

type CheckIn struct {
	EmployeeID uuid.UUID
	Name       string
	CheckIn    time.Time
}
