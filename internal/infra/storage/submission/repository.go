package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SorftInn-Web/internal/domain"
	"github.com/m04kA/SorftInn-Web/pkg/psqlbuilder"
)

const table = "booking_submissions"

// columns в порядке scanSubmission; между id и created_at идут вставляемые колонки
var columns = []string{
	"id",
	"reference",
	"backend_id",
	"room_id",
	"check_in",
	"check_out",
	"guest_name",
	"guest_email",
	"guest_phone",
	"outcome",
	"message",
	"created_at",
}

// Repository журнал отправок бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет попытку бронирования
func (r *Repository) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	query, args, err := insertQuery(s)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByReference получает принятую отправку по коду бронирования
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Submission, error) {
	query, args, err := byReferenceQuery(reference)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSubmission(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan submission: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListRecent возвращает последние попытки, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]domain.Submission, error) {
	query, args, err := recentQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan submission: %v", ErrScanRow, err)
		}
		submissions = append(submissions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrScanRow, err)
	}

	return submissions, nil
}

func insertQuery(s *domain.Submission) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns(columns[1:len(columns)-1]...).
		Values(
			s.Reference,
			s.BackendID,
			s.RoomID,
			s.CheckIn,
			s.CheckOut,
			s.GuestName,
			s.GuestEmail,
			s.GuestPhone,
			string(s.Outcome),
			s.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func byReferenceQuery(reference string) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"reference": reference}).
		Limit(1).
		ToSql()
}

func recentQuery(limit uint64) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row scanner) (*domain.Submission, error) {
	var (
		s         domain.Submission
		reference sql.NullString
		backendID sql.NullInt64
		message   sql.NullString
		outcome   string
	)

	err := row.Scan(
		&s.ID,
		&reference,
		&backendID,
		&s.RoomID,
		&s.CheckIn,
		&s.CheckOut,
		&s.GuestName,
		&s.GuestEmail,
		&s.GuestPhone,
		&outcome,
		&message,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Outcome = domain.SubmissionOutcome(outcome)
	if reference.Valid {
		s.Reference = &reference.String
	}
	if backendID.Valid {
		s.BackendID = &backendID.Int64
	}
	if message.Valid {
		s.Message = &message.String
	}

	return &s, nil
}
