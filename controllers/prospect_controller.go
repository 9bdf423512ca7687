package controller

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leadtrack/models"
	"leadtrack/utils"
)

const duplicateProspectMessage = "A prospect with this company name already exists"

type ProspectController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewProspectController(db *gorm.DB, logger *logrus.Entry) *ProspectController {
	return &ProspectController{
		DB:     db,
		Logger: logger,
	}
}

// prospectInput carries the writable prospect fields. called_count and
// last_called_at are server-managed and never read from the request body.
type prospectInput struct {
	CompanyName    string  `json:"company_name" validate:"notblank" label:"Company name"`
	ContactPerson  string  `json:"contact_person" validate:"notblank" label:"Contact person"`
	ContactNumber  string  `json:"contact_number" validate:"notblank,phone_ph" label:"Contact number"`
	EmailAddress   string  `json:"email_address" validate:"notblank,email_shape" label:"Email address"`
	Industry       string  `json:"industry" validate:"notblank" label:"Industry"`
	Website        *string `json:"website"`
	CallStatus     string  `json:"call_status" validate:"omitempty,call_status" label:"Call status"`
	ProspectStatus string  `json:"prospect_status" validate:"omitempty,prospect_status" label:"Prospect status"`
	Notes          *string `json:"notes"`
	FollowUpDate   *string `json:"follow_up_date"`
}

// apply copies the normalized input onto the record. Industry is stored
// lowercased; the UI maps it back to its display label.
func (in prospectInput) apply(p *models.Prospect) error {
	p.CompanyName = strings.TrimSpace(in.CompanyName)
	p.ContactPerson = strings.TrimSpace(in.ContactPerson)
	p.ContactNumber = strings.TrimSpace(in.ContactNumber)
	p.EmailAddress = strings.TrimSpace(in.EmailAddress)
	p.Industry = strings.ToLower(strings.TrimSpace(in.Industry))
	p.Website = utils.OptionalText(in.Website)
	p.Notes = utils.OptionalText(in.Notes)

	p.CallStatus = in.CallStatus
	if p.CallStatus == "" {
		p.CallStatus = models.CallStatusNotCalled
	}
	p.ProspectStatus = in.ProspectStatus
	if p.ProspectStatus == "" {
		p.ProspectStatus = models.ProspectStatusProspect
	}

	if d := utils.OptionalText(in.FollowUpDate); d != nil {
		parsed, err := time.Parse("2006-01-02", *d)
		if err != nil {
			return errors.New("Invalid follow-up date")
		}
		p.FollowUpDate = &parsed
	} else {
		p.FollowUpDate = nil
	}

	return nil
}

// GetProspects returns a filtered, paginated prospect list
func (pc *ProspectController) GetProspects(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	search := c.Query("search")
	industry := c.Query("industry")
	callStatus := c.Query("callStatus")
	prospectStatus := c.Query("prospectStatus", c.Query("status"))
	date := c.Query("date")

	query := pc.DB.Model(&models.Prospect{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("company_name ILIKE ? OR contact_person ILIKE ?", pattern, pattern)
	}
	if industry != "" {
		query = query.Where("industry = ?", strings.ToLower(industry))
	}
	if callStatus != "" {
		query = query.Where("call_status = ?", callStatus)
	}
	if prospectStatus != "" {
		query = query.Where("prospect_status = ?", prospectStatus)
	}
	if date != "" {
		query = query.Where("follow_up_date = ?", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var prospects []models.Prospect
	offset := (page - 1) * utils.PageSize
	if err := query.Order("id DESC").Offset(offset).Limit(utils.PageSize).Find(&prospects).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if prospects == nil {
		prospects = []models.Prospect{}
	}

	return c.JSON(utils.PaginatedResponse{
		Data:       prospects,
		Pagination: utils.NewPagination(page, total),
	})
}

// GetProspect returns a single prospect by ID
func (pc *ProspectController) GetProspect(c *fiber.Ctx) error {
	var prospect models.Prospect
	if err := pc.DB.First(&prospect, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Prospect not found")
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(utils.SuccessResponse(prospect))
}

// CreateProspect creates a new prospect. Company names are unique
// case-insensitively: a friendly pre-check produces the 409, and the unique
// index behind it catches whatever races past.
func (pc *ProspectController) CreateProspect(c *fiber.Ctx) error {
	var input prospectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var prospect models.Prospect
	if err := input.apply(&prospect); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	dup, err := pc.hasDuplicateName(prospect.CompanyName, 0)
	if err != nil {
		pc.Logger.WithError(err).Error("Duplicate check failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check for duplicates")
	}
	if dup {
		return utils.ErrorResponse(c, fiber.StatusConflict, duplicateProspectMessage)
	}

	if err := pc.DB.Create(&prospect).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, duplicateProspectMessage)
		}
		pc.Logger.WithError(err).Error("Failed to create prospect")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(prospect))
}

// UpdateProspect replaces every writable field of a prospect. Setting
// call_status to "Called" bumps the stored called_count and stamps
// last_called_at; any other status carries the stored values forward.
func (pc *ProspectController) UpdateProspect(c *fiber.Ctx) error {
	var prospect models.Prospect
	if err := pc.DB.First(&prospect, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Prospect not found")
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var input prospectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := input.apply(&prospect); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	dup, err := pc.hasDuplicateName(prospect.CompanyName, prospect.ID)
	if err != nil {
		pc.Logger.WithError(err).Error("Duplicate check failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check for duplicates")
	}
	if dup {
		return utils.ErrorResponse(c, fiber.StatusConflict, duplicateProspectMessage)
	}

	if prospect.CallStatus == models.CallStatusCalled {
		now := time.Now()
		prospect.CalledCount++
		prospect.LastCalledAt = &now
	}

	if err := pc.DB.Save(&prospect).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusConflict, duplicateProspectMessage)
		}
		pc.Logger.WithError(err).Error("Failed to update prospect")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(utils.SuccessResponse(prospect))
}

// DeleteProspect hard-deletes a prospect
func (pc *ProspectController) DeleteProspect(c *fiber.Ctx) error {
	if err := pc.DB.Delete(&models.Prospect{}, "id = ?", c.Params("id")).Error; err != nil {
		pc.Logger.WithError(err).Error("Failed to delete prospect")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}

// ExportProspects exports all prospects to CSV
func (pc *ProspectController) ExportProspects(c *fiber.Ctx) error {
	var prospects []models.Prospect
	if err := pc.DB.Order("id DESC").Find(&prospects).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=prospects_export_"+time.Now().Format("20060102")+".csv")

	writer := csv.NewWriter(c)
	defer writer.Flush()

	header := []string{"company_name", "contact_person", "contact_number", "email_address", "industry", "website", "call_status", "prospect_status", "called_count", "follow_up_date"}
	if err := writer.Write(header); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate CSV")
	}

	for _, p := range prospects {
		website := ""
		if p.Website != nil {
			website = *p.Website
		}
		followUp := ""
		if p.FollowUpDate != nil {
			followUp = p.FollowUpDate.Format("2006-01-02")
		}
		record := []string{
			p.CompanyName,
			p.ContactPerson,
			p.ContactNumber,
			p.EmailAddress,
			p.Industry,
			website,
			p.CallStatus,
			p.ProspectStatus,
			strconv.Itoa(p.CalledCount),
			followUp,
		}
		if err := writer.Write(record); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate CSV")
		}
	}

	return nil
}

// hasDuplicateName reports whether another prospect already uses the company
// name under case-insensitive comparison. excludeID skips the record being
// updated.
func (pc *ProspectController) hasDuplicateName(name string, excludeID uint) (bool, error) {
	query := pc.DB.Model(&models.Prospect{}).Where("LOWER(company_name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
