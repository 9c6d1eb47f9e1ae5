package http

import (
	"net/http"

	"github.com/kashishbhadauriya/Careersphere/internal/app"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/utils"
	"github.com/kashishbhadauriya/Careersphere/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageLogin, pageData{})
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageSignup, pageData{})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid signup form")
		h.render(w, r, pageSignup, pageData{Error: app.MsgSomethingWentWrong})
		return
	}

	user := models.User{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		CollegeName: r.PostFormValue("college_name"),
		Course:      r.PostFormValue("course"),
		Password:    r.PostFormValue("password"),
	}
	form := authForm{
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		CollegeName: user.CollegeName,
		Course:      user.Course,
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.render(w, r, pageSignup, pageData{Error: messageFromError(err, signupErrorMessages), Form: form})
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.render(w, r, pageSignup, pageData{Error: app.MsgSomethingWentWrong, Form: form})
		return
	}

	h.setTokenCookie(w, token)
	utils.Redirect(w, r, "/dashboard")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		h.render(w, r, pageLogin, pageData{Error: app.MsgSomethingWentWrong})
		return
	}

	user := models.User{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	form := authForm{Email: user.Email}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.render(w, r, pageLogin, pageData{Error: messageFromError(err, loginErrorMessages), Form: form})
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.render(w, r, pageLogin, pageData{Error: app.MsgSomethingWentWrong, Form: form})
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	h.setTokenCookie(w, token)
	utils.Redirect(w, r, "/dashboard")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	utils.Redirect(w, r, "/")
}
