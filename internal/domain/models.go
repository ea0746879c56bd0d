// Package domain contains the wire types of the image-to-text translation service.
package domain

// TranslateRequest is the body of POST /api/translate.
type TranslateRequest struct {
	Text          string `json:"text"`
	Language      string `json:"language"`
	InputLanguage string `json:"input_language,omitempty"`
	Model         string `json:"model,omitempty"`
}

// TranslateResponse is the success body of POST /api/translate.
type TranslateResponse struct {
	InputText        string `json:"input_text,omitempty"`
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language,omitempty"`
}

// ErrorResponse is the body of any non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ExtractResponse is the success body of POST /api/extract.
type ExtractResponse struct {
	ExtractedText    string `json:"extracted_text"`
	TextType         string `json:"text_type"`
	DetectedLanguage string `json:"detected_language"`
}

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
// Name may be a username or an email address.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// MessageResponse is returned by signup and logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ExtractHistoryEntry is one item of GET /api/extract_history.
type ExtractHistoryEntry struct {
	Timestamp     string `json:"timestamp"`
	ImageURL      string `json:"image_url"`
	ExtractedText string `json:"extracted_text"`
	TextType      string `json:"text_type"`
	Language      string `json:"language"`
}

// TranslateHistoryEntry is one item of GET /api/translate_history.
type TranslateHistoryEntry struct {
	Timestamp      string `json:"timestamp"`
	InputText      string `json:"input_text"`
	TranslatedText string `json:"translated_text"`
	InputLanguage  string `json:"input_language"`
	OutputLanguage string `json:"output_language"`
}
