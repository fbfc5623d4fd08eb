package mockapi

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/gmdesk/console/internal/gm"
)

// endpointLogin authenticates a username/password pair and issues a bearer session
func (service *Service) endpointLogin(writer http.ResponseWriter, request *http.Request) {
	credentials, ok := decodeBody[gm.Credentials](service, writer, request)
	if !ok {
		return
	}

	account, err := service.storage.User(credentials.Username)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if account == nil || bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(credentials.Password)) != nil {
		service.writeError(writer, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := service.storage.CreateSession(account, service.config.SessionTTL)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}

	service.writeJSON(writer, http.StatusOK, gm.AuthResponse{
		Token:    token,
		Username: account.Username,
		Role:     account.Role,
	})
}

// endpointRegister creates a new account
func (service *Service) endpointRegister(writer http.ResponseWriter, request *http.Request) {
	registration, ok := decodeBody[gm.Registration](service, writer, request)
	if !ok {
		return
	}
	if registration.Username == "" || registration.Email == "" || registration.Password == "" {
		service.writeError(writer, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	if existing, err := service.storage.User(registration.Username); err != nil {
		service.writeInternalError(writer, err)
		return
	} else if existing != nil {
		service.writeError(writer, http.StatusBadRequest, "Username already exists")
		return
	}
	if existing, err := service.storage.UserByEmail(registration.Email); err != nil {
		service.writeInternalError(writer, err)
		return
	} else if existing != nil {
		service.writeError(writer, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	account := &User{
		Username:     registration.Username,
		Email:        registration.Email,
		PasswordHash: hash,
		Role:         "USER",
	}
	if err := service.storage.Put(tableUsers, account); err != nil {
		service.writeInternalError(writer, err)
		return
	}

	service.writeJSON(writer, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// endpointValidate reports whether the request's bearer token references a live session
func (service *Service) endpointValidate(writer http.ResponseWriter, request *http.Request) {
	session, err := service.sessionFromRequest(request)
	if err != nil {
		service.writeInternalError(writer, err)
		return
	}
	if session == nil || session.Expired() {
		service.writeJSON(writer, http.StatusUnauthorized, map[string]any{"valid": false})
		return
	}
	service.writeJSON(writer, http.StatusOK, map[string]any{
		"valid":    true,
		"username": session.Username,
	})
}
