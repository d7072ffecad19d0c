package http

import (
	"github.com/jetwave/jetski-booking-backend/internal/catalog"
)

type UnitDTO struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      string `json:"status" binding:"required,oneof=available maintenance"`
}

type DurationClassDTO struct {
	ID              string  `json:"id" binding:"required"`
	Label           string  `json:"label" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	WeekdayPrice    float64 `json:"weekdayPrice" binding:"min=0"`
	WeekendPrice    float64 `json:"weekendPrice" binding:"min=0"`
}

type BlackoutDateDTO struct {
	ID     string `json:"id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

// ReplaceInventoryRequest overwrites whichever collections are present;
// omitted collections are untouched.
type ReplaceInventoryRequest struct {
	Units           []UnitDTO          `json:"jetSkis"`
	DurationClasses []DurationClassDTO `json:"timeSlots"`
	BlackoutDates   []BlackoutDateDTO  `json:"blackoutDates"`
}

type InventoryResponse struct {
	Units           []UnitDTO          `json:"jetSkis"`
	DurationClasses []DurationClassDTO `json:"timeSlots"`
	BlackoutDates   []BlackoutDateDTO  `json:"blackoutDates"`
}

type SettingsDTO struct {
	BusinessName        string `json:"businessName"`
	BusinessPhone       string `json:"businessPhone"`
	BusinessEmail       string `json:"businessEmail"`
	BusinessAddress     string `json:"businessAddress"`
	OperatingHoursStart string `json:"operatingHoursStart"`
	OperatingHoursEnd   string `json:"operatingHoursEnd"`
}

type UpdateSettingsRequest struct {
	BusinessName        *string `json:"businessName"`
	BusinessPhone       *string `json:"businessPhone"`
	BusinessEmail       *string `json:"businessEmail"`
	BusinessAddress     *string `json:"businessAddress"`
	OperatingHoursStart *string `json:"operatingHoursStart"`
	OperatingHoursEnd   *string `json:"operatingHoursEnd"`
}

func newUnitDTO(u *catalog.Unit) UnitDTO {
	return UnitDTO{ID: u.ID, Name: u.Name, Description: u.Description, Image: u.Image, Status: string(u.Status)}
}

func newDurationClassDTO(dc *catalog.DurationClass) DurationClassDTO {
	return DurationClassDTO{
		ID:              dc.ID,
		Label:           dc.Label,
		DurationMinutes: dc.DurationMinutes,
		WeekdayPrice:    dc.WeekdayPrice,
		WeekendPrice:    dc.WeekendPrice,
	}
}

func newBlackoutDateDTO(bd *catalog.BlackoutDate) BlackoutDateDTO {
	return BlackoutDateDTO{ID: bd.ID, Date: bd.Date, Reason: bd.Reason}
}

func NewInventoryResponse(inv *catalog.Inventory) InventoryResponse {
	resp := InventoryResponse{
		Units:           make([]UnitDTO, len(inv.Units)),
		DurationClasses: make([]DurationClassDTO, len(inv.DurationClasses)),
		BlackoutDates:   make([]BlackoutDateDTO, len(inv.BlackoutDates)),
	}
	for i, u := range inv.Units {
		resp.Units[i] = newUnitDTO(u)
	}
	for i, dc := range inv.DurationClasses {
		resp.DurationClasses[i] = newDurationClassDTO(dc)
	}
	for i, bd := range inv.BlackoutDates {
		resp.BlackoutDates[i] = newBlackoutDateDTO(bd)
	}
	return resp
}

func NewSettingsDTO(s *catalog.Settings) SettingsDTO {
	return SettingsDTO{
		BusinessName:        s.BusinessName,
		BusinessPhone:       s.BusinessPhone,
		BusinessEmail:       s.BusinessEmail,
		BusinessAddress:     s.BusinessAddress,
		OperatingHoursStart: s.OperatingHoursStart,
		OperatingHoursEnd:   s.OperatingHoursEnd,
	}
}

func (r *ReplaceInventoryRequest) toServiceRequest() catalog.ReplaceRequest {
	var req catalog.ReplaceRequest
	if r.Units != nil {
		req.Units = make([]*catalog.Unit, len(r.Units))
		for i, u := range r.Units {
			req.Units[i] = &catalog.Unit{
				ID:          u.ID,
				Name:        u.Name,
				Description: u.Description,
				Image:       u.Image,
				Status:      catalog.UnitStatus(u.Status),
			}
		}
	}
	if r.DurationClasses != nil {
		req.DurationClasses = make([]*catalog.DurationClass, len(r.DurationClasses))
		for i, dc := range r.DurationClasses {
			req.DurationClasses[i] = &catalog.DurationClass{
				ID:              dc.ID,
				Label:           dc.Label,
				DurationMinutes: dc.DurationMinutes,
				WeekdayPrice:    dc.WeekdayPrice,
				WeekendPrice:    dc.WeekendPrice,
			}
		}
	}
	if r.BlackoutDates != nil {
		req.BlackoutDates = make([]*catalog.BlackoutDate, len(r.BlackoutDates))
		for i, bd := range r.BlackoutDates {
			req.BlackoutDates[i] = &catalog.BlackoutDate{ID: bd.ID, Date: bd.Date, Reason: bd.Reason}
		}
	}
	return req
}

func (r *UpdateSettingsRequest) toPatch() catalog.SettingsPatch {
	return catalog.SettingsPatch{
		BusinessName:        r.BusinessName,
		BusinessPhone:       r.BusinessPhone,
		BusinessEmail:       r.BusinessEmail,
		BusinessAddress:     r.BusinessAddress,
		OperatingHoursStart: r.OperatingHoursStart,
		OperatingHoursEnd:   r.OperatingHoursEnd,
	}
}
