package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/domain/employee"
	"github.com/registro/attendance-backend-go/internal/pkg/database"
	"github.com/registro/attendance-backend-go/internal/pkg/shiftclock"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) attendance.Ledger {
	return &ledgerRepository{db: db}
}

// RecordCheck implements attendance.Ledger. The event and its lateness
// record either both land or neither does: a lateness failure after the
// event insert would otherwise leave an orphan event that blocks the
// employee's retry for the rest of the shift window.
func (l *ledgerRepository) RecordCheck(ctx context.Context, event attendance.CheckEvent, rec attendance.LatenessRecord) (attendance.CheckEvent, error) {
	err := WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		event, err = l.insertCheck(txCtx, event)
		if err != nil {
			return err
		}
		return l.insertLateness(txCtx, rec)
	})
	if err != nil {
		return attendance.CheckEvent{}, err
	}

	return event, nil
}

func (l *ledgerRepository) insertCheck(ctx context.Context, event attendance.CheckEvent) (attendance.CheckEvent, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO check_ins (employee_id, type, checked_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, event.EmployeeID, int(event.Type), event.CheckedAt).Scan(&event.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.CheckEvent{}, attendance.ErrWriteConflict
		}
		return attendance.CheckEvent{}, fmt.Errorf("failed to insert check event: %w", err)
	}

	return event, nil
}

func (l *ledgerRepository) insertLateness(ctx context.Context, rec attendance.LatenessRecord) error {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO late_minutes (employee_id, type, shift, date, minutes)
		VALUES ($1, $2, $3, $4, $5)
	`

	tag, err := q.Exec(ctx, query, rec.EmployeeID, int(rec.Type), string(rec.Shift), rec.Date, rec.Minutes)
	if err != nil {
		return fmt.Errorf("failed to insert lateness record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrWriteConflict
	}

	return nil
}

// CheckedInIDs implements attendance.Ledger.
func (l *ledgerRepository) CheckedInIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT DISTINCT employee_id
		FROM check_ins
		WHERE type = $1
		  AND checked_at BETWEEN $2 AND $3
	`

	rows, err := q.Query(ctx, query, int(attendance.CheckEntry), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query checked-in employees: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// CheckedInNotOut implements attendance.Ledger.
func (l *ledgerRepository) CheckedInNotOut(ctx context.Context, start, end time.Time) ([]attendance.EmployeeRef, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT DISTINCT e.id, e.name
		FROM employees e
		JOIN check_ins ci_in
		  ON e.id = ci_in.employee_id
		 AND ci_in.type = $1
		 AND ci_in.checked_at BETWEEN $3 AND $4
		LEFT JOIN check_ins ci_out
		  ON e.id = ci_out.employee_id
		 AND ci_out.type = $2
		 AND ci_out.checked_at BETWEEN $3 AND $4
		WHERE ci_out.id IS NULL
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, int(attendance.CheckEntry), int(attendance.CheckExit), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query checked-in-not-out employees: %w", err)
	}
	defer rows.Close()

	return scanEmployeeRefs(rows)
}

// NotCheckedIn implements attendance.Ledger.
func (l *ledgerRepository) NotCheckedIn(ctx context.Context, start, end time.Time) ([]attendance.EmployeeRef, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT e.id, e.name
		FROM employees e
		LEFT JOIN check_ins ci
		  ON e.id = ci.employee_id
		 AND ci.type = $1
		 AND ci.checked_at BETWEEN $3 AND $4
		WHERE e.position <> $2
		  AND e.deleted = FALSE
		  AND ci.employee_id IS NULL
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, int(attendance.CheckEntry), string(employee.RoleOwner), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query not-checked-in employees: %w", err)
	}
	defer rows.Close()

	return scanEmployeeRefs(rows)
}

// FirstOpenerTime implements attendance.Ledger.
func (l *ledgerRepository) FirstOpenerTime(ctx context.Context, start, end time.Time) (time.Time, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ci.checked_at
		FROM check_ins ci
		JOIN employees e ON ci.employee_id = e.id
		WHERE e.position IN ($1, $2)
		  AND ci.type = $3
		  AND ci.checked_at BETWEEN $4 AND $5
		ORDER BY ci.checked_at ASC
		LIMIT 1
	`

	var openedAt time.Time
	err := q.QueryRow(ctx, query,
		string(employee.RoleOwner), string(employee.RoleManager),
		int(attendance.CheckEntry), start, end,
	).Scan(&openedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return time.Time{}, attendance.ErrNoOpener
		}
		return time.Time{}, fmt.Errorf("failed to query first opener time: %w", err)
	}

	return openedAt, nil
}

// LatenessInRange implements attendance.Ledger.
//
// The explicit ORDER BY is load-bearing: the report aggregator consumes the
// rows as consecutive per-day runs.
func (l *ledgerRepository) LatenessInRange(ctx context.Context, start, end time.Time) ([]attendance.LatenessRow, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT e.name, lm.type, lm.shift, lm.date, lm.minutes
		FROM late_minutes lm
		JOIN employees e ON lm.employee_id = e.id
		WHERE lm.date >= $1
		  AND lm.date < $2 + INTERVAL '1 day'
		ORDER BY lm.date ASC, lm.id ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query lateness records: %w", err)
	}
	defer rows.Close()

	var result []attendance.LatenessRow
	for rows.Next() {
		var (
			row       attendance.LatenessRow
			checkType int
			shift     string
		)
		if err := rows.Scan(&row.EmployeeName, &checkType, &shift, &row.Date, &row.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan lateness row: %w", err)
		}
		row.Type = attendance.CheckType(checkType)
		row.Shift = shiftclock.Shift(shift)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, attendance.ErrNoRecords
	}

	return result, nil
}

func scanEmployeeRefs(rows pgx.Rows) ([]attendance.EmployeeRef, error) {
	var refs []attendance.EmployeeRef
	for rows.Next() {
		var ref attendance.EmployeeRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee ref: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}
