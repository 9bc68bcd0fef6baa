package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
	"github.com/noah-isme/teacher-planner-api/pkg/response"
	"github.com/noah-isme/teacher-planner-api/pkg/roster"
)

const maxRosterUpload = 2 << 20

// StudentHandler exposes roster endpoints nested under a class.
type StudentHandler struct {
	service *service.StudentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// Add godoc
// @Summary Add a student to a class
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body dto.AddStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /classes/{id}/students [post]
func (h *StudentHandler) Add(c *gin.Context) {
	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Import godoc
// @Summary Import students
// @Description Accepts {"names": [...]} or a multipart "file" field (.txt, .csv, .xlsx).
// @Tags Students
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body dto.ImportStudentsRequest false "Names payload"
// @Param file formData file false "Roster file"
// @Success 201 {object} response.Envelope
// @Failure 415 {object} response.Envelope
// @Router /classes/{id}/students/import [post]
func (h *StudentHandler) Import(c *gin.Context) {
	var req dto.ImportStudentsRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		names, err := namesFromUpload(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.Names = names
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	students, err := h.service.Import(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, students, map[string]interface{}{"imported": len(students)})
}

func namesFromUpload(c *gin.Context) ([]string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRosterUpload)
	header, err := c.FormFile("file")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required")
	}
	file, err := header.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unreadable file")
	}
	defer file.Close() //nolint:errcheck

	names, err := roster.Parse(header.Filename, file)
	if err != nil {
		if errors.Is(err, roster.ErrUnsupportedFormat) {
			return nil, appErrors.Wrap(err, appErrors.ErrUnsupportedFormat.Code, appErrors.ErrUnsupportedFormat.Status, "unsupported roster file")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid roster file")
	}
	return names, nil
}

// Update godoc
// @Summary Replace a student record
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Param payload body dto.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /classes/{id}/students/{studentId} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Param("studentId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// @Summary Remove a student
// @Tags Students
// @Produce json
// @Param id path string true "Class ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{id}/students/{studentId} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Delete(c.Request.Context(), c.Param("id"), c.Param("studentId")))
}
