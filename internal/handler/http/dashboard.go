package http

import (
	"net/http"

	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/utils"
)

// dashboard lists previous assessments. Store errors degrade to an empty list.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		log.Err(ErrNoClaimsInContext).Send()
		utils.Redirect(w, r, "/")
		return
	}

	assessments, err := h.services.AssessmentService.ListByUser(ctx, claims.ID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.ID).Msg("failed to list assessments")
		assessments = nil
	}

	h.render(w, r, pageDashboard, pageData{User: claims, Assessments: assessments})
}
