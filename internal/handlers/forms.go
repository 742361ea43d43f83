package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/customerror"
	"github.com/Bessima/i2test-auth/internal/forms"
	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const registeredParam = "registered"

type page struct {
	Title    string
	Subtitle string
	Username string
	Error    string
	Success  string
}

type FormsHandler struct {
	client  authapi.AuthClientI
	storage forms.TokenWriterI

	loginTemplate    *template.Template
	registerTemplate *template.Template
}

func NewFormsHandler(client authapi.AuthClientI, storage forms.TokenWriterI) (*FormsHandler, error) {
	loginTemplate, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/login.html")
	if err != nil {
		return nil, err
	}
	registerTemplate, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/register.html")
	if err != nil {
		return nil, err
	}

	return &FormsHandler{
		client:           client,
		storage:          storage,
		loginTemplate:    loginTemplate,
		registerTemplate: registerTemplate,
	}, nil
}

func loginPage() page {
	return page{Title: "Sign in to the platform", Subtitle: "Welcome back! Please enter your details."}
}

func registerPage() page {
	return page{Title: "Create your account", Subtitle: "Join the platform and start exploring."}
}

func (h *FormsHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := loginPage()
	// Сообщение об успешной регистрации переживает переход на страницу входа
	if r.URL.Query().Get(registeredParam) != "" {
		data.Success = forms.MsgRegistrationSucceeded
	}
	h.render(w, h.loginTemplate, http.StatusOK, data)
}

func (h *FormsHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := forms.NewLoginForm(h.client, h.storage)
	defer form.Close()
	form.SetUsername(r.PostFormValue("username"))
	form.SetPassword(r.PostFormValue("password"))

	data := loginPage()
	data.Username = form.Credentials().Username

	_, err := form.Submit(r.Context())
	if err != nil {
		h.render(w, h.loginTemplate, httpCode(err), withError(data, form.Message()))
		return
	}

	data.Success = form.Message()
	h.render(w, h.loginTemplate, http.StatusOK, data)
}

func (h *FormsHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.registerTemplate, http.StatusOK, registerPage())
}

func (h *FormsHandler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := forms.NewRegisterForm(h.client)
	defer form.Close()
	form.SetUsername(r.PostFormValue("username"))
	form.SetPassword(r.PostFormValue("password"))
	form.SetConfirmPassword(r.PostFormValue("confirm"))

	data := registerPage()
	data.Username = form.Input().Username

	if err := form.Submit(r.Context()); err != nil {
		h.render(w, h.registerTemplate, httpCode(err), withError(data, form.Message()))
		return
	}

	http.Redirect(w, r, form.Redirect()+"?"+registeredParam+"=1", http.StatusSeeOther)
}

func (h *FormsHandler) render(w http.ResponseWriter, tmpl *template.Template, status int, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		logger.Log.Error("error rendering page", zap.String("title", data.Title), zap.Error(err))
	}
}

func withError(data page, message string) page {
	data.Error = message
	return data
}

func httpCode(err error) int {
	var customErr customerror.CustomError
	if errors.As(err, &customErr) {
		return customErr.GetHTTPCode()
	}
	if errors.Is(err, forms.ErrSubmissionPending) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
