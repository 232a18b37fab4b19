package moderation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=publish.go -destination=../mocks/moderation/mock_repository.go -package=mock_moderation

const (
	// StatusForApproval is the status every publish request starts in.
	StatusForApproval = "FOR_APPROVAL"
	// ModVerdictPending marks a publish request not yet reviewed by a human.
	ModVerdictPending = "PENDING"
)

// PublishRequest records one moderation run over a deck. Repeated moderation
// calls for the same deck create separate requests; nothing deduplicates them.
type PublishRequest struct {
	ID          string       `db:"id" json:"id"`
	UserID      string       `db:"user_id" json:"userId"`
	DeckID      string       `db:"deck_id" json:"deckId"`
	RequestedAt time.Time    `db:"requested_at" json:"requestedAt"`
	PublishedAt sql.NullTime `db:"published_at" json:"-"`
	Status      string       `db:"status" json:"status"`
	ModVerdict  string       `db:"mod_verdict" json:"modVerdict"`
	AIVerdict   Verdict      `db:"-" json:"aiVerdict"`
}

// PublishRequestRepository defines persistence for publish requests.
type PublishRequestRepository interface {
	// Create records a new publish request with the AI verdict embedded and
	// returns its id.
	Create(ctx context.Context, userID, deckID string, verdict Verdict) (string, error)
	// FindByDeckID returns the most recent publish request for the deck, or
	// nil when none exists.
	FindByDeckID(ctx context.Context, deckID string) (*PublishRequest, error)
}

// DBPublishRequestRepository implements PublishRequestRepository using MySQL.
type DBPublishRequestRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBPublishRequestRepository creates a new DBPublishRequestRepository.
func NewDBPublishRequestRepository(db *sqlx.DB) *DBPublishRequestRepository {
	return &DBPublishRequestRepository{db: db, now: time.Now}
}

// Create inserts a publish request in FOR_APPROVAL/PENDING state.
func (r *DBPublishRequestRepository) Create(ctx context.Context, userID, deckID string, verdict Verdict) (string, error) {
	verdictJSON, err := json.Marshal(verdict)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(verdict) > %w", err)
	}

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO publish_requests (id, user_id, deck_id, requested_at, status, mod_verdict, ai_verdict)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, userID, deckID, r.now().UTC(), StatusForApproval, ModVerdictPending, verdictJSON); err != nil {
		return "", fmt.Errorf("db.ExecContext(insert publish_request) > %w", err)
	}
	return id, nil
}

// FindByDeckID returns the latest publish request for the deck, or nil.
func (r *DBPublishRequestRepository) FindByDeckID(ctx context.Context, deckID string) (*PublishRequest, error) {
	var row struct {
		PublishRequest
		AIVerdictJSON []byte `db:"ai_verdict"`
	}
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, deck_id, requested_at, published_at, status, mod_verdict, ai_verdict
		FROM publish_requests WHERE deck_id = ? ORDER BY requested_at DESC LIMIT 1`,
		deckID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(publish_request) > %w", err)
	}

	request := row.PublishRequest
	if err := json.Unmarshal(row.AIVerdictJSON, &request.AIVerdict); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(ai_verdict) > %w", err)
	}
	return &request, nil
}
