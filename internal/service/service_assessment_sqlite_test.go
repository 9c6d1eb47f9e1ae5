package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kashishbhadauriya/Careersphere/internal/adapter"
	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/store"
	"github.com/kashishbhadauriya/Careersphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteServices wires the real SQLite store and Gemini adapter, the
// latter pointed at a stub answering with status and body.
func newSQLiteServices(t *testing.T, status int, body string) (*Services, *store.Storages, models.User) {
	t.Helper()
	ctx := context.Background()

	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(gemini.Close)

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	analysis, err := adapter.NewGeminiAdapter(config.Adapter{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-2.5-flash",
		GeminiBaseURL: gemini.URL,
	}, logger.Nop())
	require.NoError(t, err)

	user, err := storages.UserRepository.CreateUser(ctx, models.User{
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return NewServices(storages, analysis, config.StructuredConfig{}, logger.Nop()), storages, user
}

func TestSubmit_SQLite_StoresAnalysis(t *testing.T) {
	ctx := context.Background()
	services, storages, user := newSQLiteServices(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"report"}]},"finishReason":"STOP"}]}`)

	got, err := services.AssessmentService.Submit(ctx, user.ID, models.Answers{
		"favorite_subject": " math ",
		"goal":             "engineer",
		"  ":               "dropped",
	})
	require.NoError(t, err)
	assert.Equal(t, "report", got.AIAnalysis)

	stored, err := storages.AssessmentRepository.GetAssessment(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, models.Answers{"favorite_subject": "math", "goal": "engineer"}, stored.Answers)
	assert.Equal(t, "report", stored.AIAnalysis)
}

func TestSubmit_SQLite_UpstreamFailureKeepsPlaceholder(t *testing.T) {
	ctx := context.Background()
	services, storages, user := newSQLiteServices(t, http.StatusInternalServerError, `{"error":{"code":500}}`)

	got, err := services.AssessmentService.Submit(ctx, user.ID, models.Answers{"goal": "engineer"})
	require.ErrorIs(t, err, ErrAnalysisFailed)
	require.NotEmpty(t, got.ID)

	list, err := storages.AssessmentRepository.ListAssessmentsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, got.ID, list[0].ID)
	assert.Equal(t, models.Answers{"goal": "engineer"}, list[0].Answers)
	assert.Empty(t, list[0].AIAnalysis)
}
