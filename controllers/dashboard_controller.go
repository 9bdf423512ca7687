package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leadtrack/models"
	"leadtrack/utils"
)

type DashboardController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewDashboardController(db *gorm.DB, logger *logrus.Entry) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: logger,
	}
}

type DashboardStats struct {
	TotalCompanies    int64            `json:"total_companies"`
	TotalProspects    int64            `json:"total_prospects"`
	CompaniesByStatus map[string]int64 `json:"companies_by_status"`
	ProspectsByStatus map[string]int64 `json:"prospects_by_status"`
}

type statusCount struct {
	Status string
	Count  int64
}

// GetDashboardStats returns record counts for the dashboard cards
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	var stats DashboardStats

	if err := dc.DB.Model(&models.Company{}).Count(&stats.TotalCompanies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if err := dc.DB.Model(&models.Prospect{}).Count(&stats.TotalProspects).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var companyCounts []statusCount
	if err := dc.DB.Model(&models.Company{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&companyCounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var prospectCounts []statusCount
	if err := dc.DB.Model(&models.Prospect{}).
		Select("prospect_status AS status, COUNT(*) AS count").
		Group("prospect_status").
		Scan(&prospectCounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	stats.CompaniesByStatus = make(map[string]int64)
	for _, sc := range companyCounts {
		stats.CompaniesByStatus[sc.Status] = sc.Count
	}
	stats.ProspectsByStatus = make(map[string]int64)
	for _, sc := range prospectCounts {
		stats.ProspectsByStatus[sc.Status] = sc.Count
	}

	return c.JSON(utils.SuccessResponse(stats))
}
