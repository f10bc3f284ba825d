package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	reporterrors "hr-portal/internal/report/errors"
	"hr-portal/internal/shared/percent"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	AttendanceStatsKeyPrefix = "report:attendance_stats:"
	AttendanceStatsTTL       = time.Minute

	rankingSize = 5
)

func GetAttendanceStatsKey(hrID string) string {
	return AttendanceStatsKeyPrefix + hrID
}

type Service interface {
	Counts(ctx context.Context, hrID string) (CountsResponse, error)
	LeaveStatus(ctx context.Context, hrID string) (LeaveStatusResponse, error)
	Departments(ctx context.Context, hrID string) ([]DepartmentCountResponse, error)
	EmployeeAttendance(ctx context.Context, hrID, employeeID string) (EmployeeAttendanceResponse, error)
	AttendanceStats(ctx context.Context, hrID string) (AttendanceStatsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	loc    *time.Location
	logger *zap.Logger
}

// NewService builds the report service. Check-in times are averaged as
// wall-clock times in loc.
func NewService(repo Repository, rdb *redis.Client, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		loc:    loc,
		logger: l,
	}
}

func (s *service) Counts(ctx context.Context, hrID string) (CountsResponse, error) {
	employees, err := s.repo.CountEmployees(ctx, hrID)
	if err != nil {
		s.logger.Error("count employees failed", zap.String("hr_id", hrID), zap.Error(err))
		return CountsResponse{}, err
	}
	departments, err := s.repo.CountDepartments(ctx, hrID)
	if err != nil {
		s.logger.Error("count departments failed", zap.String("hr_id", hrID), zap.Error(err))
		return CountsResponse{}, err
	}
	return CountsResponse{EmployeesCount: employees, DepartmentsCount: departments}, nil
}

func (s *service) LeaveStatus(ctx context.Context, hrID string) (LeaveStatusResponse, error) {
	rows, err := s.repo.LeaveStatusCounts(ctx, hrID)
	if err != nil {
		s.logger.Error("leave status counts failed", zap.String("hr_id", hrID), zap.Error(err))
		return LeaveStatusResponse{}, err
	}

	var resp LeaveStatusResponse
	for _, row := range rows {
		switch row.Status {
		case "Pending":
			resp.Pending = row.Count
		case "Approved":
			resp.Approved = row.Count
		case "Rejected":
			resp.Rejected = row.Count
		}
	}
	return resp, nil
}

func (s *service) Departments(ctx context.Context, hrID string) ([]DepartmentCountResponse, error) {
	rows, err := s.repo.DepartmentCounts(ctx, hrID)
	if err != nil {
		s.logger.Error("department counts failed", zap.String("hr_id", hrID), zap.Error(err))
		return nil, err
	}

	out := make([]DepartmentCountResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, DepartmentCountResponse{Department: row.Department, Count: row.Count})
	}
	return out, nil
}

func (s *service) EmployeeAttendance(ctx context.Context, hrID, employeeID string) (EmployeeAttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeAttendanceResponse{}, reporterrors.ErrInvalidEmployeeID
	}

	row, err := s.repo.EmployeeAttendance(ctx, hrID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeAttendanceResponse{}, reporterrors.ErrEmployeeNotFound
		}
		s.logger.Error("employee attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeAttendanceResponse{}, err
	}

	return EmployeeAttendanceResponse{
		EmployeeID:           row.EmployeeID.String(),
		EmployeeName:         row.Name,
		TotalDays:            row.Total,
		PresentDays:          row.Present,
		AttendancePercentage: percent.Of(row.Present, row.Total),
	}, nil
}

func (s *service) AttendanceStats(ctx context.Context, hrID string) (AttendanceStatsResponse, error) {
	cacheKey := GetAttendanceStatsKey(hrID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp AttendanceStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.buildAttendanceStats(ctx, hrID)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, AttendanceStatsTTL).Err(); err != nil {
					s.logger.Warn("attendance stats cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return AttendanceStatsResponse{}, err
	}

	return v.(AttendanceStatsResponse), nil
}

func (s *service) buildAttendanceStats(ctx context.Context, hrID string) (AttendanceStatsResponse, error) {
	depts, err := s.repo.DepartmentAttendance(ctx, hrID)
	if err != nil {
		s.logger.Error("department attendance failed", zap.String("hr_id", hrID), zap.Error(err))
		return AttendanceStatsResponse{}, err
	}
	checkIns, err := s.repo.CheckIns(ctx, hrID)
	if err != nil {
		s.logger.Error("check in history failed", zap.String("hr_id", hrID), zap.Error(err))
		return AttendanceStatsResponse{}, err
	}
	least, err := s.repo.LeastPresent(ctx, hrID, rankingSize)
	if err != nil {
		s.logger.Error("least present failed", zap.String("hr_id", hrID), zap.Error(err))
		return AttendanceStatsResponse{}, err
	}

	resp := AttendanceStatsResponse{
		Departments: make([]DepartmentAttendanceResponse, 0, len(depts)),
		TopPunctual: s.topPunctual(checkIns),
		LeastActive: make([]PresenceResponse, 0, len(least)),
	}
	for _, d := range depts {
		resp.Departments = append(resp.Departments, DepartmentAttendanceResponse{
			Department:        d.Department,
			AttendancePercent: percent.Of(d.Present, d.Total),
		})
	}
	for _, e := range least {
		resp.LeastActive = append(resp.LeastActive, PresenceResponse{
			EmployeeID:   e.EmployeeID.String(),
			EmployeeName: e.Name,
			Present:      e.Present,
			Total:        e.Total,
		})
	}
	return resp, nil
}

// topPunctual ranks employees by their mean check-in time of day, earliest
// first.
func (s *service) topPunctual(rows []CheckIn) []PunctualEmployeeResponse {
	type acc struct {
		id      uuid.UUID
		name    string
		seconds int64
		n       int64
	}
	byEmployee := map[uuid.UUID]*acc{}
	for _, row := range rows {
		a, ok := byEmployee[row.EmployeeID]
		if !ok {
			a = &acc{id: row.EmployeeID, name: row.Name}
			byEmployee[row.EmployeeID] = a
		}
		t := row.CheckIn.In(s.loc)
		a.seconds += int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
		a.n++
	}

	ranked := make([]*acc, 0, len(byEmployee))
	for _, a := range byEmployee {
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		ai, aj := ranked[i].seconds/ranked[i].n, ranked[j].seconds/ranked[j].n
		if ai != aj {
			return ai < aj
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > rankingSize {
		ranked = ranked[:rankingSize]
	}

	out := make([]PunctualEmployeeResponse, 0, len(ranked))
	for _, a := range ranked {
		avg := a.seconds / a.n
		out = append(out, PunctualEmployeeResponse{
			EmployeeID:     a.id.String(),
			EmployeeName:   a.name,
			AverageCheckIn: fmt.Sprintf("%02d:%02d", avg/3600, (avg%3600)/60),
		})
	}
	return out
}
