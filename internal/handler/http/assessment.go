package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kashishbhadauriya/Careersphere/internal/app"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/utils"
	"github.com/kashishbhadauriya/Careersphere/internal/validators"
	"github.com/kashishbhadauriya/Careersphere/models"
)

// maxAssessmentBody bounds JSON and form submissions.
const maxAssessmentBody = 1 << 20

// assessmentResponse is returned to clients posting JSON.
type assessmentResponse struct {
	ID       string `json:"id,omitempty"`
	Analysis string `json:"analysis,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) assessmentPage(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.GetClaimsFromContext(r.Context())
	h.render(w, r, pageAssessment, pageData{User: claims, Questions: models.Questionnaire})
}

func (h *Handler) submitAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	asJSON := isJSONRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		log.Err(ErrNoClaimsInContext).Send()
		utils.Redirect(w, r, "/")
		return
	}

	answers, err := parseAnswers(w, r)
	if err != nil {
		log.Err(err).Msg("invalid assessment submission")
		if asJSON {
			utils.WriteJSON(w, assessmentResponse{Error: app.MsgSomethingWentWrong}, http.StatusBadRequest)
			return
		}
		h.render(w, r, pageAssessment, pageData{User: claims, Questions: models.Questionnaire, Error: app.MsgSomethingWentWrong})
		return
	}

	assessment, err := h.services.AssessmentService.Submit(ctx, claims.ID, answers)
	switch {
	case errors.Is(err, validators.ErrNoAnswers):
		log.Info().Str("user_id", claims.ID).Msg("empty assessment submitted")
		if asJSON {
			utils.WriteJSON(w, assessmentResponse{Error: app.MsgAnswerAtLeastOneQuestion}, http.StatusBadRequest)
			return
		}
		h.render(w, r, pageAssessment, pageData{
			User:      claims,
			Questions: models.Questionnaire,
			Answers:   answers,
			Error:     app.MsgAnswerAtLeastOneQuestion,
		})
		return
	case err != nil:
		log.Err(err).Str("user_id", claims.ID).Msg("assessment submission failed")
		if asJSON {
			utils.WriteJSON(w, assessmentResponse{Error: app.MsgAnalysisFailed}, http.StatusInternalServerError)
			return
		}
		h.render(w, r, pageResult, pageData{User: claims, Error: app.MsgAnalysisFailed})
		return
	}

	if asJSON {
		utils.WriteJSON(w, assessmentResponse{ID: assessment.ID, Analysis: assessment.AIAnalysis}, http.StatusOK)
		return
	}
	h.render(w, r, pageResult, pageData{User: claims, Assessment: assessment})
}

// assessmentResult shows a stored assessment. Unknown or foreign ids go
// back to the dashboard.
func (h *Handler) assessmentResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		log.Err(ErrNoClaimsInContext).Send()
		utils.Redirect(w, r, "/")
		return
	}

	id := chi.URLParam(r, "id")
	assessment, err := h.services.AssessmentService.Get(ctx, claims.ID, id)
	if err != nil {
		log.Warn().Err(err).Str("assessment_id", id).Msg("assessment is not available")
		utils.Redirect(w, r, "/dashboard")
		return
	}

	h.render(w, r, pageResult, pageData{User: claims, Assessment: assessment})
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// parseAnswers reads either a JSON object or a form body. A JSON object may
// hold the answers directly or under an "answers" key. For repeated form
// keys the first value wins.
func parseAnswers(w http.ResponseWriter, r *http.Request) (models.Answers, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAssessmentBody)

	if isJSONRequest(r) {
		return decodeJSONAnswers(r.Body)
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	answers := make(models.Answers, len(r.PostForm))
	for key, values := range r.PostForm {
		if strings.TrimSpace(key) == "" || len(values) == 0 {
			continue
		}
		answers[key] = strings.TrimSpace(values[0])
	}
	return answers, nil
}

func decodeJSONAnswers(body io.Reader) (models.Answers, error) {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	// An "answers" object must be the only top-level key.
	if nested, ok := raw["answers"].(map[string]any); ok {
		if len(raw) > 1 {
			return nil, fmt.Errorf("%w: answers object mixed with top-level keys", ErrInvalidRequestBody)
		}
		raw = nested
	}

	answers := make(models.Answers, len(raw))
	for key, value := range raw {
		answers[key] = answerValue(value)
	}
	return answers, nil
}

func answerValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []any:
		if len(value) == 0 {
			return ""
		}
		return answerValue(value[0])
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(b)
	}
}
