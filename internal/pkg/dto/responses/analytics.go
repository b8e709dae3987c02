package responses

import (
	"salon-service/internal/app/models"
)

type Analytics struct {
	Role    string          `json:"role"`
	Days    int             `json:"days"`
	Metrics []models.Metric `json:"metrics"`
}
