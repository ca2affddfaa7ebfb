package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"courseforge/internal/api/v1/dto"
	"courseforge/internal/curriculum"
	"courseforge/internal/middleware"
	"courseforge/internal/model"
	"courseforge/internal/repository"
	"courseforge/internal/service"
	"courseforge/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course persistence endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/courses", authMw(http.HandlerFunc(h.handleCourses)))
	mux.Handle("/courses/", authMw(http.HandlerFunc(h.getCourse)))
}

func (h *CourseHandler) handleCourses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.saveCourse(w, r)
	case http.MethodGet:
		h.listCourses(w, r)
	default:
		http.NotFound(w, r)
	}
}

// saveCourse persists a generated curriculum together with its originating
// request under the authenticated user's identity.
func (h *CourseHandler) saveCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.MessageErrorDTO{Message: "Unauthorized: User not authenticated"})
		return
	}

	var req dto.CourseSaveDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageErrorDTO{Message: "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageErrorDTO{Message: "Missing required fields"})
		return
	}

	age, err := strconv.Atoi(strings.TrimSpace(string(req.Age)))
	if err != nil || age < curriculum.MinAge || age > curriculum.MaxAge {
		writeJSON(w, http.StatusBadRequest, dto.MessageErrorDTO{Message: "Invalid age"})
		return
	}

	style := strings.ToLower(strings.TrimSpace(req.LearningStyle))
	if style != model.LearningStyleVisual && style != model.LearningStyleTextbook {
		writeJSON(w, http.StatusBadRequest, dto.MessageErrorDTO{Message: "Invalid learningStyle"})
		return
	}

	// The curriculum arrives from the client, not from the parser, so the
	// lesson-shape contract is enforced again here before anything is
	// stored. The request's style wins over whatever the payload claims.
	cur := *req.Curriculum
	if err := curriculum.ValidateCurriculum(&cur, style); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MessageErrorDTO{Message: "Invalid curriculum structure"})
		return
	}
	cur.LearningStyle = style

	// Display fields come from the token claims; empty strings are accepted
	// placeholders when the identity provider supplies nothing.
	var userName, userProfileImage string
	if claims, ok := r.Context().Value(middleware.ClaimsContextKey).(*util.Claims); ok {
		userName = claims.Name
		userProfileImage = claims.Picture
	}

	var priorKnowledge *string
	if trimmed := strings.TrimSpace(req.PriorKnowledge); trimmed != "" {
		priorKnowledge = &trimmed
	}

	course := &model.Course{
		Topic:            req.Topic,
		ReadingLevel:     req.ReadingLevel,
		Age:              age,
		Language:         req.Language,
		PriorKnowledge:   priorKnowledge,
		LearningStyle:    style,
		Curriculum:       cur,
		CreatedBy:        userID,
		UserName:         userName,
		UserProfileImage: userProfileImage,
	}

	saved, err := h.courseService.SaveCourse(r.Context(), course)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to save course")
		writeJSON(w, http.StatusInternalServerError, dto.MessageErrorDTO{Message: "Failed to save course", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, dto.CourseSaveResponseDTO{
		Message:  "Course saved successfully",
		CourseID: saved.CourseID,
		Data:     saved,
	})
}

// getCourse retrieves a single course. A course owned by another user is
// reported exactly like a nonexistent one.
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.MessageErrorDTO{Message: "Unauthorized: User not authenticated"})
		return
	}

	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")
	course, err := h.courseService.GetCourse(r.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, dto.MessageErrorDTO{Message: "Course not found"})
			return
		}
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to retrieve course")
		writeJSON(w, http.StatusInternalServerError, dto.MessageErrorDTO{Message: "Failed to retrieve course"})
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// listCourses returns summaries of the caller's courses, newest first.
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.MessageErrorDTO{Message: "Unauthorized: User not authenticated"})
		return
	}

	courses, err := h.courseService.ListCourses(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		writeJSON(w, http.StatusInternalServerError, dto.MessageErrorDTO{Message: "Failed to list courses"})
		return
	}

	writeJSON(w, http.StatusOK, dto.CourseListResponseDTO{Courses: courses})
}
