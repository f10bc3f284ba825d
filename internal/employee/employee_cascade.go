package employee

import (
	"context"

	"go.uber.org/zap"
)

// CascadeDelete removes an employee together with the tasks, attendances and
// leaves it owns. repo must already be bound to the caller's transaction.
func CascadeDelete(ctx context.Context, repo Repository, employeeID string, logger *zap.Logger) error {
	tasks, err := repo.DeleteTasksByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	attendances, err := repo.DeleteAttendancesByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	leaves, err := repo.DeleteLeavesByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, employeeID); err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("employee cascade delete",
			zap.String("employee_id", employeeID),
			zap.Int64("tasks", tasks),
			zap.Int64("attendances", attendances),
			zap.Int64("leaves", leaves),
		)
	}
	return nil
}
