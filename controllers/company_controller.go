package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leadtrack/models"
	"leadtrack/utils"
)

type CompanyController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewCompanyController(db *gorm.DB, logger *logrus.Entry) *CompanyController {
	return &CompanyController{
		DB:     db,
		Logger: logger,
	}
}

// companyInput carries the writable company fields. Field order matters: the
// validator reports the first violation, required checks before format checks.
type companyInput struct {
	CompanyName   string  `json:"company_name" validate:"notblank" label:"Company name"`
	ClientName    string  `json:"client_name" validate:"notblank" label:"Client name"`
	ContactNumber string  `json:"contact_number" validate:"notblank,phone_ph" label:"Contact number"`
	EmailAddress  string  `json:"email_address" validate:"notblank,email_shape" label:"Email address"`
	Industry      string  `json:"industry" validate:"notblank" label:"Industry"`
	Remarks       *string `json:"remarks"`
	ToDo          *string `json:"to_do"`
	Status        string  `json:"status" validate:"omitempty,company_status" label:"Status"`
}

// apply copies the normalized input onto the record.
func (in companyInput) apply(company *models.Company) {
	company.CompanyName = strings.TrimSpace(in.CompanyName)
	company.ClientName = strings.TrimSpace(in.ClientName)
	company.ContactNumber = strings.TrimSpace(in.ContactNumber)
	company.EmailAddress = strings.TrimSpace(in.EmailAddress)
	company.Industry = strings.TrimSpace(in.Industry)
	company.Remarks = utils.OptionalText(in.Remarks)
	company.ToDo = utils.OptionalText(in.ToDo)

	company.Status = in.Status
	if company.Status == "" {
		company.Status = models.CompanyStatusActive
	}
}

// GetCompanies returns a filtered, paginated company list
func (cc *CompanyController) GetCompanies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	search := c.Query("search")
	industry := c.Query("industry")
	status := c.Query("status")

	query := cc.DB.Model(&models.Company{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("company_name ILIKE ? OR client_name ILIKE ?", pattern, pattern)
	}
	if industry != "" {
		query = query.Where("industry = ?", industry)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var companies []models.Company
	offset := (page - 1) * utils.PageSize
	if err := query.Order("id DESC").Offset(offset).Limit(utils.PageSize).Find(&companies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if companies == nil {
		companies = []models.Company{}
	}

	return c.JSON(utils.PaginatedResponse{
		Data:       companies,
		Pagination: utils.NewPagination(page, total),
	})
}

// GetCompany returns a single company by ID
func (cc *CompanyController) GetCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := cc.DB.First(&company, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Company not found")
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(utils.SuccessResponse(company))
}

// CreateCompany creates a new company with validation
func (cc *CompanyController) CreateCompany(c *fiber.Ctx) error {
	var input companyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var company models.Company
	input.apply(&company)

	if err := cc.DB.Create(&company).Error; err != nil {
		cc.Logger.WithError(err).Error("Failed to create company")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(company))
}

// UpdateCompany replaces every writable field of a company
func (cc *CompanyController) UpdateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := cc.DB.First(&company, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Company not found")
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var input companyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	input.apply(&company)

	if err := cc.DB.Save(&company).Error; err != nil {
		cc.Logger.WithError(err).Error("Failed to update company")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(utils.SuccessResponse(company))
}

// DeleteCompany hard-deletes a company
func (cc *CompanyController) DeleteCompany(c *fiber.Ctx) error {
	if err := cc.DB.Delete(&models.Company{}, "id = ?", c.Params("id")).Error; err != nil {
		cc.Logger.WithError(err).Error("Failed to delete company")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}
