package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/port"
)

// ShiftPostgresRepository implementa ShiftRepository usando PostgreSQL.
type ShiftPostgresRepository struct {
	db *sql.DB
}

// NewShiftPostgresRepository cria uma nova instância do repositório
func NewShiftPostgresRepository(db *sql.DB) port.ShiftRepository {
	return &ShiftPostgresRepository{
		db: db,
	}
}

// Create registra a abertura de um turno.
func (r *ShiftPostgresRepository) Create(ctx context.Context, shift *entity.Shift) error {
	query := `
		INSERT INTO turnos (id, funcionario_id, aberto_em, fechado_em)
		VALUES ($1, $2, $3, NULL)
	`

	_, err := r.db.ExecContext(ctx, query, shift.ID, shift.WorkerID, shift.OpenedAt)
	if err != nil {
		return fmt.Errorf("error creating shift: %w", err)
	}
	return nil
}

// FindOpenByWorker devolve o turno aberto do funcionário, ou nil.
func (r *ShiftPostgresRepository) FindOpenByWorker(ctx context.Context, workerID uuid.UUID) (*entity.Shift, error) {
	query := `
		SELECT id, funcionario_id, aberto_em, fechado_em
		FROM turnos
		WHERE funcionario_id = $1 AND fechado_em IS NULL
		ORDER BY aberto_em DESC
		LIMIT 1
	`

	shift := &entity.Shift{}
	var closedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, workerID).Scan(
		&shift.ID,
		&shift.WorkerID,
		&shift.OpenedAt,
		&closedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying open shift: %w", err)
	}

	if closedAt.Valid {
		shift.ClosedAt = &closedAt.Time
	}
	return shift, nil
}

// Close marca o turno como fechado.
func (r *ShiftPostgresRepository) Close(ctx context.Context, shiftID uuid.UUID, closedAt time.Time) error {
	query := `
		UPDATE turnos
		SET fechado_em = $2
		WHERE id = $1 AND fechado_em IS NULL
	`

	res, err := r.db.ExecContext(ctx, query, shiftID, closedAt)
	if err != nil {
		return fmt.Errorf("error closing shift: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking closed shift: %w", err)
	}
	if affected == 0 {
		return entity.ErrNoOpenShift
	}
	return nil
}
