package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kashishbhadauriya/Careersphere/internal/adapter"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/mock"
	"github.com/kashishbhadauriya/Careersphere/internal/store"
	"github.com/kashishbhadauriya/Careersphere/internal/validators"
	"github.com/kashishbhadauriya/Careersphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssessmentSvc(t *testing.T, ctrl *gomock.Controller) (AssessmentService, *mock.MockAssessmentRepository, *mock.MockAnalysisAdapter) {
	t.Helper()
	repo := mock.NewMockAssessmentRepository(ctrl)
	analysis := mock.NewMockAnalysisAdapter(ctrl)
	svc := NewAssessmentValidationService().Wrap(NewAssessmentService(repo, analysis, logger.Nop()))
	return svc, repo, analysis
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestAssessmentService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, analysis := newTestAssessmentSvc(t, ctrl)
	ctx := context.Background()

	want := models.Answers{"hobbies": "chess", "goal": ""}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	gomock.InOrder(
		repo.EXPECT().CreateAssessment(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Assessment) (models.Assessment, error) {
				assert.Equal(t, "7", a.UserID)
				assert.Equal(t, want, a.Answers)
				assert.Empty(t, a.AIAnalysis, "placeholder must start with an empty analysis")
				a.ID = "11"
				a.CreatedAt = created
				return a, nil
			},
		),
		analysis.EXPECT().Analyze(ctx, want).Return(models.Analysis{Text: "report"}, nil),
		repo.EXPECT().UpdateAnalysis(ctx, "11", "report").Return(nil),
	)

	got, err := svc.Submit(ctx, "7", models.Answers{" hobbies ": " chess ", "goal": "  ", "": "dropped"})

	require.NoError(t, err)
	assert.Equal(t, "11", got.ID)
	assert.Equal(t, "report", got.AIAnalysis)
	assert.Equal(t, created, got.CreatedAt)
}

func TestAssessmentService_Submit_NoAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAssessmentSvc(t, ctrl)

	for _, answers := range []models.Answers{nil, {}, {"goal": "   "}, {"": "orphan"}} {
		_, err := svc.Submit(context.Background(), "7", answers)
		assert.ErrorIs(t, err, validators.ErrNoAnswers)
	}
}

func TestAssessmentService_Submit_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAssessmentSvc(t, ctrl)

	_, err := svc.Submit(context.Background(), "", models.Answers{"goal": "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAssessmentService_Submit_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAssessmentSvc(t, ctrl)
	dbErr := errors.New("db down")
	repo.EXPECT().CreateAssessment(gomock.Any(), gomock.Any()).Return(models.Assessment{}, dbErr)

	_, err := svc.Submit(context.Background(), "7", models.Answers{"goal": "x"})
	assert.ErrorIs(t, err, ErrAssessmentCreationFailed)
	assert.ErrorIs(t, err, dbErr)
}

func TestAssessmentService_Submit_AnalysisFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, analysis := newTestAssessmentSvc(t, ctrl)
	repo.EXPECT().CreateAssessment(gomock.Any(), gomock.Any()).Return(models.Assessment{ID: "11", UserID: "7"}, nil)
	analysis.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.Analysis{}, adapter.ErrUpstreamStatus)
	// the placeholder keeps its empty analysis
	repo.EXPECT().UpdateAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.Submit(context.Background(), "7", models.Answers{"goal": "x"})
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, adapter.ErrUpstreamStatus)
	assert.Equal(t, "11", got.ID)
	assert.True(t, got.Pending())
}

func TestAssessmentService_Submit_UpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, analysis := newTestAssessmentSvc(t, ctrl)
	repo.EXPECT().CreateAssessment(gomock.Any(), gomock.Any()).Return(models.Assessment{ID: "11"}, nil)
	analysis.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.Analysis{Text: "report"}, nil)
	repo.EXPECT().UpdateAnalysis(gomock.Any(), "11", "report").Return(store.ErrAssessmentNotFound)

	got, err := svc.Submit(context.Background(), "7", models.Answers{"goal": "x"})
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Empty(t, got.AIAnalysis)
}

// ── Get / ListByUser ─────────────────────────────────────────────────────────

func TestAssessmentService_Get(t *testing.T) {
	tests := []struct {
		name    string
		stored  models.Assessment
		repoErr error
		wantErr error
	}{
		{name: "owner", stored: models.Assessment{ID: "11", UserID: "7", AIAnalysis: "report"}},
		{name: "foreign", stored: models.Assessment{ID: "11", UserID: "8"}, wantErr: store.ErrAssessmentNotFound},
		{name: "missing", repoErr: store.ErrAssessmentNotFound, wantErr: store.ErrAssessmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _ := newTestAssessmentSvc(t, ctrl)
			repo.EXPECT().GetAssessment(gomock.Any(), "11").Return(tt.stored, tt.repoErr)

			got, err := svc.Get(context.Background(), "7", "11")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "report", got.AIAnalysis)
		})
	}
}

func TestAssessmentService_Get_EmptyIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAssessmentSvc(t, ctrl)

	_, err := svc.Get(context.Background(), "7", " ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Get(context.Background(), "", "11")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAssessmentService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAssessmentSvc(t, ctrl)
	list := []models.Assessment{{ID: "2"}, {ID: "1"}}
	repo.EXPECT().ListAssessmentsByUser(gomock.Any(), "7").Return(list, nil)

	got, err := svc.ListByUser(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, list, got)

	_, err = svc.ListByUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAssessmentService_ListByUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAssessmentSvc(t, ctrl)
	dbErr := errors.New("db down")
	repo.EXPECT().ListAssessmentsByUser(gomock.Any(), "7").Return(nil, dbErr)

	_, err := svc.ListByUser(context.Background(), "7")
	assert.ErrorIs(t, err, dbErr)
}
