package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema is the full DDL for the service. The unique key on
// (deck_id, quiz_type) is what makes quiz creation conditional: two concurrent
// requests for the same deck cannot both insert a quiz.
const Schema = `
CREATE TABLE IF NOT EXISTS decks (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	owner_id VARCHAR(64) NOT NULL,
	title VARCHAR(255) NOT NULL,
	made_to_quiz_at DATETIME(3) NULL,
	created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)
);

CREATE TABLE IF NOT EXISTS flashcards (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	deck_id VARCHAR(36) NOT NULL,
	term TEXT NOT NULL,
	definition TEXT NOT NULL,
	created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	KEY idx_flashcards_deck_created (deck_id, created_at),
	CONSTRAINT fk_flashcards_deck FOREIGN KEY (deck_id) REFERENCES decks (id)
);

CREATE TABLE IF NOT EXISTS quizzes (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	deck_id VARCHAR(36) NOT NULL,
	quiz_type VARCHAR(32) NOT NULL,
	created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	UNIQUE KEY uq_quizzes_deck_type (deck_id, quiz_type),
	CONSTRAINT fk_quizzes_deck FOREIGN KEY (deck_id) REFERENCES decks (id)
);

CREATE TABLE IF NOT EXISTS questions (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	quiz_id VARCHAR(36) NOT NULL,
	flashcard_id VARCHAR(36) NOT NULL,
	question TEXT NOT NULL,
	created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	KEY idx_questions_quiz (quiz_id),
	CONSTRAINT fk_questions_quiz FOREIGN KEY (quiz_id) REFERENCES quizzes (id)
);

CREATE TABLE IF NOT EXISTS choices (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	question_id BIGINT NOT NULL,
	text TEXT NOT NULL,
	is_correct TINYINT(1) NOT NULL DEFAULT 0,
	KEY idx_choices_question (question_id),
	CONSTRAINT fk_choices_question FOREIGN KEY (question_id) REFERENCES questions (id)
);

CREATE TABLE IF NOT EXISTS publish_requests (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL,
	deck_id VARCHAR(36) NOT NULL,
	requested_at DATETIME(3) NOT NULL,
	published_at DATETIME(3) NULL,
	status VARCHAR(32) NOT NULL,
	mod_verdict VARCHAR(32) NOT NULL,
	ai_verdict JSON NOT NULL,
	KEY idx_publish_requests_deck (deck_id, requested_at)
);
`

// Migrate applies the schema. The connection must be opened with
// MultiStatements enabled, which Open does.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("db.ExecContext(schema) > %w", err)
	}
	return nil
}
