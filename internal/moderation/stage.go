package moderation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

// stageCards writes the serialized card payload to a temp file before the
// moderation call. The file holds the exact payload sent upstream. The
// returned cleanup must run on every exit path.
func stageCards(dir, deckID string, cards []inference.SourceCard) (string, func(), error) {
	f, err := os.CreateTemp(dir, "moderation-"+deckID+"-*.yml")
	if err != nil {
		return "", nil, fmt.Errorf("os.CreateTemp() > %w", err)
	}
	cleanup := func() {
		_ = os.Remove(f.Name())
	}

	if err := yaml.NewEncoder(f).Encode(cards); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("yaml.Encode(cards) > %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("f.Close() > %w", err)
	}
	return f.Name(), cleanup, nil
}
