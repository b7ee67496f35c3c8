package core

import (
	"encoding/json"
	"log"
	"net/http"
)

type result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Service) SignupHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	if err := s.Register(in.Email, in.Password); err != nil {
		fail(w, err)
		return
	}

	writeResult(w, http.StatusCreated, result{Success: true, Message: "Registration successful."})
}

func (s *Service) LoginHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	if err := s.Authenticate(in.Email, in.Password); err != nil {
		fail(w, err)
		return
	}

	writeResult(w, http.StatusOK, result{Success: true, Message: "Login successful."})
}

// decodeCredentials reads the JSON body. A body that does not decode is
// reported like a missing field.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	var in Credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, ErrMissingField)
		return in, false
	}
	return in, true
}

func fail(w http.ResponseWriter, err error) {
	f := failureFor(err)
	if f.status == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	writeResult(w, f.status, result{Success: false, Message: f.message})
}

func writeResult(w http.ResponseWriter, code int, v result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
