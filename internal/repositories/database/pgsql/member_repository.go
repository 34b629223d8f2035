package pgsql

import (
	"context"
	"errors"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/famstack/family_account_app/internal/models"
	"github.com/famstack/family_account_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMemberRepository implements the member repository ports using pgxpool.
type PgxMemberRepository struct {
	BaseRepository
}

// NewPgxMemberRepository creates a new PgxMemberRepository.
func NewPgxMemberRepository(db *pgxpool.Pool) *PgxMemberRepository {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

// FindMemberByID retrieves a member by their ID.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `
		SELECT member_id, name, avatar, created_at, last_updated_at
		FROM members
		WHERE member_id = $1;
	`

	var m models.Member
	err := r.Pool.QueryRow(ctx, query, memberID).Scan(
		&m.MemberID, &m.Name, &m.Avatar, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("member not found: " + memberID)
		}
		return nil, apperrors.NewAppError(500, "failed to find member", err)
	}

	domainMember := mapping.ToDomainMember(m)
	return &domainMember, nil
}

// ListMembers retrieves all members, ordered by name.
func (r *PgxMemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	query := `
		SELECT member_id, name, avatar, created_at, last_updated_at
		FROM members
		ORDER BY name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list members", err)
	}
	defer rows.Close()

	var modelMembers []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.MemberID, &m.Name, &m.Avatar, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member", err)
		}
		modelMembers = append(modelMembers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate members", err)
	}
	return mapping.ToDomainMembers(modelMembers), nil
}

// SaveMember persists a new member.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)

	query := `
		INSERT INTO members (member_id, name, avatar, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	if _, err := r.Pool.Exec(ctx, query, m.MemberID, m.Name, m.Avatar, m.CreatedAt, m.LastUpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to save member", err)
	}
	return nil
}

// UpdateMember updates an existing member.
func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)

	query := `
		UPDATE members
		SET name = $1, avatar = $2, last_updated_at = $3
		WHERE member_id = $4;
	`

	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Avatar, m.LastUpdatedAt, m.MemberID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update member", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member not found: " + m.MemberID)
	}
	return nil
}

// DeleteMember removes a member.
func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete member", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member not found: " + memberID)
	}
	return nil
}
