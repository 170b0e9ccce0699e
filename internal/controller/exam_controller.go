package controller

import (
	"errors"
	"net/http"

	"github.com/coding-online/certexam/internal/catalog"
	"github.com/coding-online/certexam/internal/dto"
	"github.com/coding-online/certexam/internal/middleware"
	"github.com/coding-online/certexam/internal/model"
	"github.com/coding-online/certexam/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService service.ExamDataService
}

func NewExamController(examService service.ExamDataService) *ExamController {
	return &ExamController{examService: examService}
}

// GetOrganization godoc
// @Summary Get the exam catalog
// @Description Returns the organization with its exam product lines, exams and certificate templates.
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.Organization
// @Router /organization [get]
func (c *ExamController) GetOrganization(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Default())
}

// GetExamQuestions godoc
// @Summary Get a sampled question set for one exam sitting
// @Description Draws the exam's configured number of questions from the pool. Correct answers are stripped.
// @Tags Exams
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown exam"
// @Failure 503 {object} dto.ErrorResponse "Question pool unavailable"
// @Router /exams/{exam_id}/questions [get]
func (c *ExamController) GetExamQuestions(ctx *gin.Context) {
	examID := ctx.Param("exam_id")

	questions, err := c.examService.GetQuestions(ctx.Request.Context(), examID)
	if err != nil {
		respondServiceError(ctx, err, "GetExamQuestions")
		return
	}

	resp := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		if err := copier.Copy(&resp[i], &questions[i]); err != nil {
			log.Error().Err(err).Msg("Copying question to response DTO failed")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing response"})
			return
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitTest godoc
// @Summary Submit answers for grading
// @Description Grades the submitted answers against the exam's question pool and records the result.
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param submission body dto.SubmitTestRequest true "Submitted answers (0-based option indices)"
// @Success 200 {object} dto.TestResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or unknown exam"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /exams/{exam_id}/submissions [post]
// @Security BearerAuth
func (c *ExamController) SubmitTest(ctx *gin.Context) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
		return
	}

	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answers := make([]model.UserAnswer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = model.UserAnswer{QuestionID: a.QuestionID, Answer: a.Answer}
	}

	result, err := c.examService.SubmitTest(ctx.Request.Context(), user.ID, ctx.Param("exam_id"), answers)
	if err != nil {
		respondServiceError(ctx, err, "SubmitTest")
		return
	}
	ctx.JSON(http.StatusOK, toResultResponse(result))
}

// GetTestResult godoc
// @Summary Get one recorded result
// @Description Looks a result up by test id for the authenticated user.
// @Tags Results
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestResultResponse
// @Failure 404 {object} dto.ErrorResponse "No such result for this user"
// @Router /results/{test_id} [get]
// @Security BearerAuth
func (c *ExamController) GetTestResult(ctx *gin.Context) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
		return
	}

	result, err := c.examService.GetTestResult(ctx.Request.Context(), ctx.Param("test_id"), user.ID)
	if err != nil {
		respondServiceError(ctx, err, "GetTestResult")
		return
	}
	ctx.JSON(http.StatusOK, toResultResponse(result))
}

// ListTestResults godoc
// @Summary List the authenticated user's results
// @Tags Results
// @Produce json
// @Success 200 {array} dto.TestResultResponse
// @Router /results [get]
// @Security BearerAuth
func (c *ExamController) ListTestResults(ctx *gin.Context) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
		return
	}

	results, err := c.examService.GetTestResultsForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(ctx, err, "ListTestResults")
		return
	}

	resp := make([]dto.TestResultResponse, len(results))
	for i := range results {
		resp[i] = *toResultResponse(&results[i])
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCertificate godoc
// @Summary Get certificate data for a passing paid-tier result
// @Description Returns the certificate projection, or a "not earned" outcome when the pass policy is not met. Use test_id "sample" for the preview certificate.
// @Tags Certificates
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.CertificateResponse
// @Failure 404 {object} dto.ErrorResponse "Result missing or certificate not earned"
// @Router /certificates/{test_id} [get]
// @Security BearerAuth
func (c *ExamController) GetCertificate(ctx *gin.Context) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
		return
	}

	cert, err := c.examService.GetCertificateData(ctx.Request.Context(), ctx.Param("test_id"), user)
	if err != nil {
		if errors.Is(err, service.ErrNotEarned) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Certificate not earned for this result."})
			return
		}
		respondServiceError(ctx, err, "GetCertificate")
		return
	}

	resp := dto.CertificateResponse{
		CertificateNumber: cert.CertificateNumber,
		CandidateName:     cert.CandidateName,
		FinalScore:        cert.FinalScore,
		Date:              cert.Date,
		TotalQuestions:    cert.TotalQuestions,
	}
	if cert.Organization != nil {
		resp.OrganizationName = cert.Organization.Name
	}
	if cert.Template != nil {
		resp.TemplateTitle = cert.Template.Title
		resp.TemplateBody = cert.Template.Body
	}
	ctx.JSON(http.StatusOK, resp)
}

func toResultResponse(result *model.TestResult) *dto.TestResultResponse {
	var resp dto.TestResultResponse
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Str("test_id", result.TestID).Msg("Copying result to response DTO failed")
	}
	return &resp
}

// respondServiceError maps the service taxonomy onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrInvalidExam):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrDataUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAuth):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
