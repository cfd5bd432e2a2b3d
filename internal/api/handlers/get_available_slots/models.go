package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// DayResponse доступность одного дня
type DayResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	FullyBooked    bool     `json:"fullyBooked"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	From             string         `json:"from"`
	HorizonDays      int            `json:"horizonDays"`
	Slots            []string       `json:"slots"`
	Days             []*DayResponse `json:"days"`
	FullyBookedDates []string       `json:"fullyBookedDates"`
}

// ParseQuery разбирает параметры from (YYYY-MM-DD) и days
func ParseQuery(q url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{}

	if from := q.Get("from"); from != "" {
		date, err := calendar.ParseDate(from)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = &date
	}

	if days := q.Get("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			return nil, fmt.Errorf("days: %w", err)
		}
		req.HorizonDays = n
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	days := make([]*DayResponse, 0, len(resp.View))
	for _, d := range resp.View.Days() {
		days = append(days, fromDomainDay(d))
	}

	return &AvailableSlotsResponse{
		From:             calendar.FormatDate(resp.From),
		HorizonDays:      resp.HorizonDays,
		Slots:            slots,
		Days:             days,
		FullyBookedDates: resp.View.FullyBookedDates(),
	}
}

func fromDomainDay(d domain.DayAvailability) *DayResponse {
	available := make([]string, 0, len(d.AvailableSlots))
	for _, s := range d.AvailableSlots {
		available = append(available, s.String())
	}
	return &DayResponse{
		Date:           calendar.FormatDate(d.Date),
		AvailableSlots: available,
		FullyBooked:    d.FullyBooked,
	}
}
