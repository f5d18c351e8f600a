package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func strp(s string) *string { return &s }

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestApplicationRepository_FreeTextInterestsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	app := &domain.Application{
		Name:      "Alice Example",
		Email:     "alice@example.com",
		Birthdate: "1990-03-04",
		Category:  domain.CategoryRegular,
		Fee:       50,
		// The "Other" entry is free text and may contain commas.
		AreasOfInterest: []string{"locomotives", "Other: casting, pattern making"},
	}
	require.NoError(t, store.ApplicationRepository.Create(ctx, app))

	got, err := store.ApplicationRepository.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"locomotives", "Other: casting, pattern making"}, got.AreasOfInterest)
}

func TestApplicationLifecycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	pending := domain.SponsorStatusPending
	verified := domain.SponsorStatusVerified
	app := &domain.Application{
		Name:                 "Kid Example",
		Email:                "kid@example.com",
		Birthdate:            "2010-04-02",
		Address:              "1 Steam Lane",
		City:                 "Victoria",
		ProvinceState:        "BC",
		PostalCode:           "V8V 1A1",
		PreferredContact:     "email",
		Category:             domain.CategoryJunior,
		Fee:                  30,
		AreasOfInterest:      []string{"locomotives", "boilers"},
		PublishInDir:         true,
		SignatureData:        "data:image/png;base64,xyz",
		SignatureDate:        "2025-05-01",
		JuniorSponsor1:       strp("Jane Doe"),
		JuniorSponsor2:       strp("Unknown Name"),
		JuniorSponsor1Status: &verified,
		JuniorSponsor2Status: &pending,
		SponsorIssues:        strp(`Sponsor 2 "Unknown Name" not found in member database`),
	}

	require.NoError(t, store.ApplicationRepository.Create(ctx, app))
	assert.NotZero(t, app.ID)

	t.Run("RoundTrip", func(t *testing.T) {
		got, err := store.ApplicationRepository.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, "Kid Example", got.Name)
		assert.Equal(t, domain.CategoryJunior, got.Category)
		assert.Equal(t, 30.0, got.Fee)
		assert.Equal(t, []string{"locomotives", "boilers"}, got.AreasOfInterest)
		assert.True(t, got.PublishInDir)
		assert.Equal(t, "Jane Doe", *got.JuniorSponsor1)
		assert.Equal(t, domain.SponsorStatusVerified, *got.JuniorSponsor1Status)
		assert.Equal(t, domain.SponsorStatusPending, *got.JuniorSponsor2Status)
		assert.NotNil(t, got.SponsorIssues)
		assert.Nil(t, got.Guardian)
		assert.Equal(t, domain.PaymentStatusPending, got.PaymentStatus)
		assert.Equal(t, domain.ApplicationStatusPending, got.ApplicationStatus)
		assert.Equal(t, domain.BoardStatusPending, got.BoardStatus)
		assert.Nil(t, got.PaymentDate)
		assert.Nil(t, got.BoardDecisionDate)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := store.ApplicationRepository.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("UnpaidExcludedFromReviewQueue", func(t *testing.T) {
		apps, err := store.ApplicationRepository.ListPendingReview(ctx)
		require.NoError(t, err)
		assert.Empty(t, apps, "unpaid applications must not surface for board action")

		all, err := store.ApplicationRepository.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("PaymentConfirmationIsIdempotent", func(t *testing.T) {
		paidAt := time.Now()
		ok, err := store.ApplicationRepository.ConfirmPayment(ctx, app.ID, "PAY-123", "parent@example.com", paidAt)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.ApplicationRepository.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, got.PaymentStatus)
		assert.Equal(t, domain.ApplicationStatusAwaitingApproval, got.ApplicationStatus)
		assert.Equal(t, "PAY-123", *got.PaymentID)
		assert.Equal(t, "parent@example.com", *got.PayerEmail)
		require.NotNil(t, got.PaymentDate)
		firstDate := *got.PaymentDate

		ok, err = store.ApplicationRepository.ConfirmPayment(ctx, app.ID, "PAY-456", "other@example.com", time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, ok, "second confirmation must not transition")

		got, err = store.ApplicationRepository.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, "PAY-123", *got.PaymentID)
		assert.True(t, firstDate.Equal(*got.PaymentDate), "payment_date must not move")
	})

	t.Run("PaidApplicationEntersReviewQueue", func(t *testing.T) {
		apps, err := store.ApplicationRepository.ListPendingReview(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, app.ID, apps[0].ID)
	})

	t.Run("DecisionIsTerminal", func(t *testing.T) {
		ok, err := store.ApplicationRepository.RecordDecision(ctx, app.ID, domain.BoardStatusApproved, "looks good", time.Now())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.ApplicationRepository.RecordDecision(ctx, app.ID, domain.BoardStatusRejected, "changed my mind", time.Now())
		require.NoError(t, err)
		assert.False(t, ok, "a decided application is immutable")

		got, err := store.ApplicationRepository.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BoardStatusApproved, got.BoardStatus)
		assert.Equal(t, "looks good", *got.BoardNotes)
		assert.NotNil(t, got.BoardDecisionDate)
	})

	t.Run("DecidedApplicationLeavesReviewQueue", func(t *testing.T) {
		apps, err := store.ApplicationRepository.ListPendingReview(ctx)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}

func TestMemberRepository(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	jane := &domain.Member{Name: "Jane Doe", Email: "jane@example.com", MembershipType: domain.CategoryRegular}
	require.NoError(t, store.MemberRepository.Create(ctx, jane))
	assert.NotZero(t, jane.ID)
	assert.Equal(t, domain.MemberStatusActive, jane.Status)

	inactive := &domain.Member{Name: "Old Timer", Email: "old@example.com", Status: domain.MemberStatusInactive}
	require.NoError(t, store.MemberRepository.Create(ctx, inactive))

	t.Run("FindByNameAndStatus", func(t *testing.T) {
		got, err := store.MemberRepository.FindByNameAndStatus(ctx, "Jane Doe", domain.MemberStatusActive)
		require.NoError(t, err)
		assert.Equal(t, jane.ID, got.ID)

		_, err = store.MemberRepository.FindByNameAndStatus(ctx, "Unknown Name", domain.MemberStatusActive)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)

		// Exact match only; the lookup is case-sensitive.
		_, err = store.MemberRepository.FindByNameAndStatus(ctx, "jane doe", domain.MemberStatusActive)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)

		// Inactive members never verify.
		_, err = store.MemberRepository.FindByNameAndStatus(ctx, "Old Timer", domain.MemberStatusActive)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("ListActive", func(t *testing.T) {
		members, err := store.MemberRepository.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "Jane Doe", members[0].Name)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		dup := &domain.Member{Name: "Jane Clone", Email: "jane@example.com"}
		assert.Error(t, store.MemberRepository.Create(ctx, dup))
	})
}

func TestAdminUserRepository(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	admin := &domain.AdminUser{Username: "admin", PasswordHash: "hash", Email: "secretary@bcsme.org"}
	require.NoError(t, store.AdminUserRepository.Create(ctx, admin))
	assert.Equal(t, "admin", admin.Role)

	got, err := store.AdminUserRepository.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = store.AdminUserRepository.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}
