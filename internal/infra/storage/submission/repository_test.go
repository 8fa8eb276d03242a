package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SorftInn-Web/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewRepository(db), mock
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestQueries(t *testing.T) {
	t.Run("by reference", func(t *testing.T) {
		query, args, err := byReferenceQuery("SFT-AB12CD")
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, reference, backend_id, room_id, check_in, check_out, guest_name, guest_email, "+
			"guest_phone, outcome, message, created_at FROM booking_submissions WHERE reference = $1 LIMIT 1", query)
		assert.Equal(t, []interface{}{"SFT-AB12CD"}, args)
	})

	t.Run("recent newest first", func(t *testing.T) {
		query, args, err := recentQuery(20)
		require.NoError(t, err)
		assert.Contains(t, query, "FROM booking_submissions ORDER BY created_at DESC, id DESC LIMIT 20")
		assert.Empty(t, args)
	})

	t.Run("insert returns id and created_at", func(t *testing.T) {
		query, args, err := insertQuery(&domain.Submission{RoomID: 7, Outcome: domain.OutcomeAccepted})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO booking_submissions (reference,backend_id,room_id,check_in,check_out,guest_name,"+
			"guest_email,guest_phone,outcome,message) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id, created_at", query)
		assert.Len(t, args, 10)
	})
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)
	ref := "SFT-AB12CD"
	s := &domain.Submission{
		Reference:  &ref,
		RoomID:     7,
		CheckIn:    day(10),
		CheckOut:   day(13),
		GuestName:  "Ada Obi",
		GuestEmail: "ada@example.com",
		GuestPhone: "0800",
		Outcome:    domain.OutcomeAccepted,
	}
	query, _, err := insertQuery(s)
	require.NoError(t, err)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(query).
		WithArgs(ref, nil, int64(7), day(10), day(13), "Ada Obi", "ada@example.com", "0800", "accepted", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), createdAt))

	got, err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, createdAt, got.CreatedAt)
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)
	s := &domain.Submission{RoomID: 7, Outcome: domain.OutcomeNetworkFailure}
	query, _, err := insertQuery(s)
	require.NoError(t, err)

	mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

	_, err = repo.Create(context.Background(), s)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByReference(t *testing.T) {
	repo, mock := newMockRepository(t)
	query, _, err := byReferenceQuery("SFT-AB12CD")
	require.NoError(t, err)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(query).WithArgs("SFT-AB12CD").WillReturnRows(sqlmock.NewRows(columns).AddRow(
		int64(1), "SFT-AB12CD", int64(900), int64(7), day(10), day(13),
		"Ada Obi", "ada@example.com", "0800", "accepted", nil, createdAt,
	))

	got, err := repo.GetByReference(context.Background(), "SFT-AB12CD")
	require.NoError(t, err)
	require.NotNil(t, got.Reference)
	assert.Equal(t, "SFT-AB12CD", *got.Reference)
	require.NotNil(t, got.BackendID)
	assert.Equal(t, int64(900), *got.BackendID)
	assert.Nil(t, got.Message)
	assert.True(t, got.IsAccepted())
	assert.Equal(t, 3, got.Nights())
}

func TestGetByReference_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	query, _, err := byReferenceQuery("SFT-ZZZZZZ")
	require.NoError(t, err)

	mock.ExpectQuery(query).WithArgs("SFT-ZZZZZZ").WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.GetByReference(context.Background(), "SFT-ZZZZZZ")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestListRecent(t *testing.T) {
	repo, mock := newMockRepository(t)
	query, _, err := recentQuery(20)
	require.NoError(t, err)

	mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(columns).
		AddRow(int64(2), nil, nil, int64(8), day(11), day(12),
			"Bola", "bola@example.com", "0801", "rejected", "Room is no longer available.", day(2)).
		AddRow(int64(1), "SFT-AB12CD", nil, int64(7), day(10), day(13),
			"Ada Obi", "ada@example.com", "0800", "accepted", nil, day(1)))

	got, err := repo.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Nil(t, got[0].Reference)
	assert.Nil(t, got[0].BackendID)
	require.NotNil(t, got[0].Message)
	assert.Equal(t, "Room is no longer available.", *got[0].Message)
	assert.Equal(t, domain.OutcomeRejected, got[0].Outcome)

	assert.Equal(t, int64(1), got[1].ID)
	require.NotNil(t, got[1].Reference)
	assert.Equal(t, "SFT-AB12CD", *got[1].Reference)
}

func TestListRecent_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)
	query, _, err := recentQuery(5)
	require.NoError(t, err)

	mock.ExpectQuery(query).WillReturnError(errors.New("db down"))

	_, err = repo.ListRecent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrExecQuery)
}
