package postgres

import (
	"context"
	"errors"
	"fmt"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InvitationRepo implements ports.InvitationRepository. Each teen holds
// at most one invitation row; re-sending replaces it.
type InvitationRepo struct {
	pool Pool
}

// NewInvitationRepo creates a new InvitationRepo.
func NewInvitationRepo(pool Pool) *InvitationRepo {
	return &InvitationRepo{pool: pool}
}

// GetByTeenID fetches a teen's invitation. Returns nil, nil when absent.
func (r *InvitationRepo) GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.ParentInvitation, error) {
	query := `SELECT id, teen_id, phone_number, invite_code, status, sent_at
		FROM parent_invitations WHERE teen_id = $1`

	inv := &domain.ParentInvitation{}
	err := r.pool.QueryRow(ctx, query, teenID).Scan(
		&inv.ID, &inv.TeenID, &inv.PhoneNumber, &inv.InviteCode, &inv.Status, &inv.SentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation by teen id: %w", err)
	}
	return inv, nil
}

// Upsert inserts the invitation, replacing any previous one for the teen.
func (r *InvitationRepo) Upsert(ctx context.Context, inv *domain.ParentInvitation) error {
	query := `INSERT INTO parent_invitations (id, teen_id, phone_number, invite_code, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (teen_id) DO UPDATE SET
			phone_number = EXCLUDED.phone_number,
			invite_code = EXCLUDED.invite_code,
			status = EXCLUDED.status,
			sent_at = EXCLUDED.sent_at`

	_, err := r.pool.Exec(ctx, query,
		inv.ID, inv.TeenID, inv.PhoneNumber, inv.InviteCode, inv.Status, inv.SentAt,
	)
	if err != nil {
		return fmt.Errorf("upsert invitation: %w", err)
	}
	return nil
}
