package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/majiinB/Deck-AI-API-Service/internal/database"
	"github.com/majiinB/Deck-AI-API-Service/internal/deck"
	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
	"github.com/majiinB/Deck-AI-API-Service/internal/inference/openai"
	"github.com/majiinB/Deck-AI-API-Service/internal/moderation"
	"github.com/majiinB/Deck-AI-API-Service/internal/quiz"
	"github.com/majiinB/Deck-AI-API-Service/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz and moderation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable is required")
			}

			openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, inference.DefaultMaxRetryAttempts)
			defer func() {
				_ = openaiClient.Close()
			}()

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			decks := deck.NewDBRepository(db)
			quizzes := quiz.NewDBRepository(db)
			publishes := moderation.NewDBPublishRequestRepository(db)

			reconciler := quiz.NewReconciler(decks, quizzes, openaiClient)
			moderator := moderation.NewOrchestrator(decks, openaiClient, publishes, cfg.Moderation.StagingDirectory)
			srv := server.NewServer(cfg.Server, reconciler, moderator)

			httpServer := &http.Server{
				Addr:              cfg.Server.Address,
				Handler:           h2c.NewHandler(srv, &http2.Server{}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			color.Green("Starting server on %s", cfg.Server.Address)
			return httpServer.ListenAndServe()
		},
	}
}
