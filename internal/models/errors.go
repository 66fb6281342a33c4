package models

import "net/http"

// ServiceError carries the stable error code and HTTP status for a failed
// operation. Handlers translate it into the error envelope once, at the edge.
type ServiceError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code, message string, statusCode int) *ServiceError {
	return &ServiceError{Code: code, Message: message, StatusCode: statusCode}
}

// Not found (404)
var (
	ErrProjectNotFound        = NewServiceError("PROJECT_NOT_FOUND", "Nie znaleziono projektu", http.StatusNotFound)
	ErrImageNotFound          = NewServiceError("IMAGE_NOT_FOUND", "Nie znaleziono wygenerowanego obrazu", http.StatusNotFound)
	ErrCategoryNotFound       = NewServiceError("CATEGORY_NOT_FOUND", "Nie znaleziono kategorii", http.StatusNotFound)
	ErrMaterialNotFound       = NewServiceError("MATERIAL_NOT_FOUND", "Nie znaleziono materiału", http.StatusNotFound)
	ErrProposalNotFound       = NewServiceError("PROPOSAL_NOT_FOUND", "Nie znaleziono oferty", http.StatusNotFound)
	ErrRevieweeNotFound       = NewServiceError("REVIEWEE_NOT_FOUND", "Nie można ustalić recenzowanego użytkownika", http.StatusNotFound)
	ErrProfileNotFound        = NewServiceError("PROFILE_NOT_FOUND", "Nie znaleziono profilu", http.StatusNotFound)
	ErrPortfolioImageNotFound = NewServiceError("PORTFOLIO_IMAGE_NOT_FOUND", "Nie znaleziono zdjęcia w portfolio", http.StatusNotFound)
)

// Forbidden (403)
var (
	ErrForbidden        = NewServiceError("FORBIDDEN", "Brak uprawnień do wykonania tej operacji", http.StatusForbidden)
	ErrProjectForbidden = NewServiceError("PROJECT_FORBIDDEN", "Brak dostępu do tego projektu", http.StatusForbidden)
	ErrImageForbidden   = NewServiceError("IMAGE_FORBIDDEN", "Obraz należy do innego użytkownika", http.StatusForbidden)
	ErrReviewForbidden  = NewServiceError("REVIEW_FORBIDDEN", "Tylko uczestnicy projektu mogą wystawiać recenzje", http.StatusForbidden)
	ErrProfileForbidden = NewServiceError("PROFILE_FORBIDDEN", "Ten profil nie jest publiczny", http.StatusForbidden)
)

// Conflict (409)
var (
	ErrImageAlreadyUsed      = NewServiceError("IMAGE_ALREADY_USED", "Ten obraz został już wykorzystany w innym projekcie", http.StatusConflict)
	ErrNIPConflict           = NewServiceError("NIP_CONFLICT", "Ten NIP jest już zarejestrowany na inne konto", http.StatusConflict)
	ErrReviewAlreadyExists   = NewServiceError("REVIEW_ALREADY_EXISTS", "Recenzja dla tego projektu już istnieje", http.StatusConflict)
	ErrProposalAlreadyExists = NewServiceError("PROPOSAL_ALREADY_EXISTS", "Oferta dla tego projektu już istnieje", http.StatusConflict)
)

// Invalid state or precondition (400)
var (
	ErrProjectNotOpen          = NewServiceError("PROJECT_NOT_OPEN", "Projekt nie jest otwarty", http.StatusBadRequest)
	ErrInvalidStatusTransition = NewServiceError("INVALID_STATUS_TRANSITION", "Niedozwolona zmiana statusu", http.StatusBadRequest)
	ErrProposalProjectMismatch = NewServiceError("PROPOSAL_PROJECT_MISMATCH", "Oferta nie dotyczy tego projektu", http.StatusBadRequest)
	ErrProjectNotCompleted     = NewServiceError("PROJECT_NOT_COMPLETED", "Można recenzować tylko zakończone projekty", http.StatusBadRequest)
	ErrSpecializationNotFound  = NewServiceError("SPECIALIZATION_NOT_FOUND", "Nie znaleziono specjalizacji", http.StatusBadRequest)
	ErrPortfolioMinimum        = NewServiceError("PORTFOLIO_MINIMUM", "Publiczny profil musi zawierać co najmniej 5 zdjęć", http.StatusBadRequest)
)

// Quota (429)
var ErrQuotaExceeded = NewServiceError("QUOTA_EXCEEDED", "Dzienny limit generowania obrazów został wyczerpany", http.StatusTooManyRequests)

// Infrastructure failures (500)
var (
	ErrProjectCreateFailed  = NewServiceError("PROJECT_CREATE_FAILED", "Nie udało się utworzyć projektu", http.StatusInternalServerError)
	ErrProjectListFailed    = NewServiceError("PROJECT_LIST_FAILED", "Nie udało się pobrać projektów", http.StatusInternalServerError)
	ErrProposalAcceptFailed = NewServiceError("PROPOSAL_ACCEPT_FAILED", "Nie udało się zaakceptować oferty", http.StatusInternalServerError)
	ErrStatusUpdateFailed   = NewServiceError("STATUS_UPDATE_FAILED", "Nie udało się zmienić statusu projektu", http.StatusInternalServerError)
	ErrReviewCreateFailed   = NewServiceError("REVIEW_CREATE_FAILED", "Nie udało się zapisać recenzji", http.StatusInternalServerError)
	ErrProposalCreateFailed = NewServiceError("PROPOSAL_CREATE_FAILED", "Nie udało się złożyć oferty", http.StatusInternalServerError)
	ErrImageRegisterFailed  = NewServiceError("IMAGE_REGISTER_FAILED", "Nie udało się zapisać obrazu", http.StatusInternalServerError)
	ErrNIPCheckError        = NewServiceError("NIP_CHECK_ERROR", "Nie udało się zweryfikować numeru NIP", http.StatusInternalServerError)
	ErrUpsertError          = NewServiceError("UPSERT_ERROR", "Nie udało się zapisać profilu", http.StatusInternalServerError)
	ErrProfileError         = NewServiceError("PROFILE_ERROR", "Nie udało się przetworzyć profilu", http.StatusInternalServerError)
)
