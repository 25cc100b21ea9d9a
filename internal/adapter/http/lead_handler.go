package http

import (
	"net/http"
	"strconv"
	"strings"

	"lendhub-backend/internal/adapter/middleware"
	"lendhub-backend/internal/usecase/lead"

	"github.com/labstack/echo/v4"
)

type LeadHandler struct{ uc *lead.Usecase }

func NewLeadHandler(uc *lead.Usecase) *LeadHandler { return &LeadHandler{uc: uc} }

type createLeadReq struct {
	FirstName        string   `json:"first_name"        validate:"required,notblank,max=255"`
	LastName         string   `json:"last_name"         validate:"required,notblank,max=255"`
	Email            string   `json:"email"             validate:"required,email,max=255"`
	Phone            string   `json:"phone"             validate:"required,notblank,max=64"`
	LoanAmount       float64  `json:"loan_amount"       validate:"gt=0"`
	LoanPurpose      string   `json:"loan_purpose"`
	EmploymentStatus string   `json:"employment_status" validate:"max=64"`
	MonthlyIncome    *float64 `json:"monthly_income"    validate:"omitempty,gte=0"`
	Source           string   `json:"source"            validate:"max=64"`
	LenderID         string   `json:"lender_id"         validate:"max=36"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required,leadstatus"`
	Notes  string `json:"notes"`
}

type assignReq struct {
	AssignedTo string `json:"assignedTo" validate:"required,notblank,max=64"`
}

type addNoteReq struct {
	Note string `json:"note" validate:"required,notblank"`
}

// CreatePublicLead is the marketing-site intake form; source is always website.
func (h *LeadHandler) CreatePublicLead(c echo.Context) error {
	return h.create(c, false)
}

// CreateLead is the admin import path; the caller may set source.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	return h.create(c, true)
}

func (h *LeadHandler) create(c echo.Context, allowSource bool) error {
	var req createLeadReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if !allowSource {
		req.Source = ""
	}
	l, err := h.uc.CreateLead(c.Request().Context(), lead.CreateLeadInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LeadHandler) ListLeads(c echo.Context) error {
	in := lead.ListLeadsInput{
		Status:   strings.TrimSpace(c.QueryParam("status")),
		LenderID: strings.TrimSpace(c.QueryParam("lenderId")),
	}
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		in.Limit = n
	}
	leads, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetLead(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *LeadHandler) Statistics(c echo.Context) error {
	s, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	l, err := h.uc.UpdateStatus(c.Request().Context(), lead.UpdateStatusInput{
		LeadID: c.Param("id"),
		Status: req.Status,
		Notes:  req.Notes,
		Actor:  middleware.ActorFrom(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LeadHandler) Assign(c echo.Context) error {
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	l, err := h.uc.Assign(c.Request().Context(), lead.AssignInput{
		LeadID:     c.Param("id"),
		AssignedTo: req.AssignedTo,
		Actor:      middleware.ActorFrom(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LeadHandler) AddNote(c echo.Context) error {
	var req addNoteReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	l, err := h.uc.AddNote(c.Request().Context(), lead.AddNoteInput{
		LeadID: c.Param("id"),
		Note:   req.Note,
		Actor:  middleware.ActorFrom(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}
