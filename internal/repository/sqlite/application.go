package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/morem6161/bcsme/internal/repository"
)

const applicationColumns = `id, name, email, birthdate, address, city, province_state, postal_code,
	phone_other, preferred_contact, membership_category, membership_fee, areas_of_interest,
	publish_in_directory, signature_data, signature_date, payment_status, payment_id, payer_email,
	payment_date, application_status, board_approval_status, board_approval_date, board_notes,
	junior_sponsor1, junior_sponsor2, junior_sponsor1_status, junior_sponsor2_status,
	probationary_guardian, probationary_guardian_status, sponsor_issues, created_at, updated_at`

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.PaymentStatus == "" {
		app.PaymentStatus = domain.PaymentStatusPending
	}
	if app.ApplicationStatus == "" {
		app.ApplicationStatus = domain.ApplicationStatusPending
	}
	if app.BoardStatus == "" {
		app.BoardStatus = domain.BoardStatusPending
	}

	query := `INSERT INTO applications (
		name, email, birthdate, address, city, province_state, postal_code,
		phone_other, preferred_contact, membership_category, membership_fee, areas_of_interest,
		publish_in_directory, signature_data, signature_date, payment_status, application_status,
		board_approval_status, junior_sponsor1, junior_sponsor2, junior_sponsor1_status,
		junior_sponsor2_status, probationary_guardian, probationary_guardian_status, sponsor_issues,
		created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		app.Name, app.Email, app.Birthdate, app.Address, app.City, app.ProvinceState, app.PostalCode,
		app.PhoneOther, app.PreferredContact, app.Category, app.Fee, encodeInterests(app.AreasOfInterest),
		app.PublishInDir, app.SignatureData, app.SignatureDate, app.PaymentStatus, app.ApplicationStatus,
		app.BoardStatus, nullString(app.JuniorSponsor1), nullString(app.JuniorSponsor2),
		sponsorStatusValue(app.JuniorSponsor1Status), sponsorStatusValue(app.JuniorSponsor2Status),
		nullString(app.Guardian), sponsorStatusValue(app.GuardianStatus), nullString(app.SponsorIssues),
		now.Format(timeFormat), now.Format(timeFormat),
	).Scan(&app.ID)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY created_at DESC`
	return r.queryApplications(ctx, query)
}

func (r *applicationRepository) ListPendingReview(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE board_approval_status = ? AND payment_status = ? ORDER BY created_at DESC`
	return r.queryApplications(ctx, query, domain.BoardStatusPending, domain.PaymentStatusCompleted)
}

func (r *applicationRepository) ConfirmPayment(ctx context.Context, id int64, paymentID, payerEmail string, paidAt time.Time) (bool, error) {
	// Conditional on the current payment status so a repeated confirmation
	// never rewrites payment_date.
	query := `UPDATE applications
		SET payment_status = ?, payment_id = ?, payer_email = ?, payment_date = ?,
		    application_status = ?, updated_at = ?
		WHERE id = ? AND payment_status = ?`
	res, err := r.db.ExecContext(ctx, query,
		domain.PaymentStatusCompleted, paymentID, payerEmail, paidAt.UTC().Format(timeFormat),
		domain.ApplicationStatusAwaitingApproval, time.Now().UTC().Format(timeFormat),
		id, domain.PaymentStatusPending,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *applicationRepository) RecordDecision(ctx context.Context, id int64, status domain.BoardStatus, notes string, decidedAt time.Time) (bool, error) {
	// Conditional on a still-pending board status; a decided application is
	// immutable and a concurrent decision loses the race here.
	query := `UPDATE applications
		SET board_approval_status = ?, board_approval_date = ?, board_notes = ?, updated_at = ?
		WHERE id = ? AND board_approval_status = ?`
	res, err := r.db.ExecContext(ctx, query,
		status, decidedAt.UTC().Format(timeFormat), notes, time.Now().UTC().Format(timeFormat),
		id, domain.BoardStatusPending,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *applicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		app                       domain.Application
		birthdate, address        sql.NullString
		city, provinceState       sql.NullString
		postalCode, phoneOther    sql.NullString
		preferredContact          sql.NullString
		interests                 sql.NullString
		signatureData, sigDate    sql.NullString
		paymentID, payerEmail     sql.NullString
		paymentDate, boardDate    sql.NullString
		boardNotes                sql.NullString
		sponsor1, sponsor2        sql.NullString
		sponsor1St, sponsor2St    sql.NullString
		guardian, guardianSt      sql.NullString
		sponsorIssues             sql.NullString
		createdAt, updatedAt      string
	)

	err := row.Scan(
		&app.ID, &app.Name, &app.Email, &birthdate, &address, &city, &provinceState, &postalCode,
		&phoneOther, &preferredContact, &app.Category, &app.Fee, &interests,
		&app.PublishInDir, &signatureData, &sigDate, &app.PaymentStatus, &paymentID, &payerEmail,
		&paymentDate, &app.ApplicationStatus, &app.BoardStatus, &boardDate, &boardNotes,
		&sponsor1, &sponsor2, &sponsor1St, &sponsor2St,
		&guardian, &guardianSt, &sponsorIssues, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	app.Birthdate = birthdate.String
	app.Address = address.String
	app.City = city.String
	app.ProvinceState = provinceState.String
	app.PostalCode = postalCode.String
	app.PhoneOther = phoneOther.String
	app.PreferredContact = preferredContact.String
	if app.AreasOfInterest, err = decodeInterests(interests); err != nil {
		return nil, err
	}
	app.SignatureData = signatureData.String
	app.SignatureDate = sigDate.String
	app.PaymentID = stringPtr(paymentID)
	app.PayerEmail = stringPtr(payerEmail)
	app.BoardNotes = stringPtr(boardNotes)
	app.JuniorSponsor1 = stringPtr(sponsor1)
	app.JuniorSponsor2 = stringPtr(sponsor2)
	app.JuniorSponsor1Status = sponsorStatusPtr(sponsor1St)
	app.JuniorSponsor2Status = sponsorStatusPtr(sponsor2St)
	app.Guardian = stringPtr(guardian)
	app.GuardianStatus = sponsorStatusPtr(guardianSt)
	app.SponsorIssues = stringPtr(sponsorIssues)

	if app.PaymentDate, err = parseNullTime(paymentDate); err != nil {
		return nil, fmt.Errorf("parse payment_date: %w", err)
	}
	if app.BoardDecisionDate, err = parseNullTime(boardDate); err != nil {
		return nil, fmt.Errorf("parse board_approval_date: %w", err)
	}
	if app.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if app.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &app, nil
}

// Interests are stored as a JSON array; free-text entries may contain
// commas, so a delimited string is not safe.
func encodeInterests(interests []string) any {
	if len(interests) == 0 {
		return nil
	}
	b, _ := json.Marshal(interests)
	return string(b)
}

func decodeInterests(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var interests []string
	if err := json.Unmarshal([]byte(s.String), &interests); err != nil {
		return nil, fmt.Errorf("parse areas_of_interest: %w", err)
	}
	return interests, nil
}

func sponsorStatusValue(s *domain.SponsorStatus) any {
	if s == nil {
		return nil
	}
	return string(*s)
}

func sponsorStatusPtr(s sql.NullString) *domain.SponsorStatus {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := domain.SponsorStatus(s.String)
	return &v
}
