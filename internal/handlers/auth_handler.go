package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jackpyp/massage-shop-web/internal/forms"
	"github.com/jackpyp/massage-shop-web/internal/infra/restapi"
	"github.com/jackpyp/massage-shop-web/internal/session"
	"github.com/jackpyp/massage-shop-web/internal/validators"
)

const genericAuthError = "Something went wrong please try again later"

// AuthAPI is the slice of the platform API the auth pages need.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, sub restapi.RegisterSubmission) error
}

type AuthHandler struct {
	api      AuthAPI
	sessions *session.Manager
}

func NewAuthHandler(api AuthAPI, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions}
}

// --------- Login ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth", gin.H{
		"Error":  c.Query("errorMessage"),
		"Email":  "",
		"Fields": forms.Errors{},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	fieldErrs := forms.Errors{}
	if !validators.IsEmail(email) {
		fieldErrs.Add("email", "Please enter a valid email address")
	}
	if password == "" || len(password) > 20 {
		fieldErrs.Add("password", "Password enter a valid password")
	}

	if fieldErrs.Any() {
		c.HTML(http.StatusUnprocessableEntity, "auth", gin.H{
			"Error":  "",
			"Email":  email,
			"Fields": fieldErrs,
		})
		return
	}

	token, err := h.api.Login(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnprocessableEntity, "auth", gin.H{
			"Error":  genericAuthError,
			"Email":  email,
			"Fields": forms.Errors{},
		})
		return
	}

	if err := h.sessions.Establish(c, token); err != nil {
		c.HTML(http.StatusInternalServerError, "auth", gin.H{
			"Error":  genericAuthError,
			"Email":  email,
			"Fields": forms.Errors{},
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// --------- Register ---------

type registerForm struct {
	Name  string
	Tel   string
	Email string
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register", gin.H{
		"Error":  c.Query("errorMessage"),
		"Form":   registerForm{},
		"Fields": forms.Errors{},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	form := registerForm{
		Name:  c.PostForm("name"),
		Tel:   c.PostForm("tel"),
		Email: c.PostForm("email"),
	}
	password := c.PostForm("password")

	fieldErrs := forms.Errors{}
	if form.Name == "" {
		fieldErrs.Add("name", "Name is required")
	}
	if !validators.IsPhoneNumber(form.Tel) || len(form.Tel) < 10 || len(form.Tel) > 15 {
		fieldErrs.Add("tel", "Phone number must be 10 to 15 digits")
	}
	if !validators.IsEmail(form.Email) {
		fieldErrs.Add("email", "Please enter a valid email address")
	}
	if len(password) < 6 || len(password) > 20 {
		fieldErrs.Add("password", "Password must be 6 to 20 characters")
	}

	if fieldErrs.Any() {
		c.HTML(http.StatusUnprocessableEntity, "register", gin.H{
			"Error":  "",
			"Form":   form,
			"Fields": fieldErrs,
		})
		return
	}

	err := h.api.Register(c.Request.Context(), restapi.RegisterSubmission{
		Name:     form.Name,
		Email:    form.Email,
		Tel:      form.Tel,
		Password: password,
	})
	if err != nil {
		c.HTML(http.StatusUnprocessableEntity, "register", gin.H{
			"Error":  "Something went wrong, please try again later",
			"Form":   form,
			"Fields": forms.Errors{},
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/auth")
}

// --------- Logout ---------

// Logout clears the stored credential and session synchronously, then
// sends the visitor back to the login page. No server-side invalidation
// call is made; the platform token simply stops being used.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Destroy(c)
	c.Redirect(http.StatusSeeOther, "/auth")
}
