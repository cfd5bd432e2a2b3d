package submit_booking

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/notification"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

const notificationSubject = "Ваша запись принята"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body>
  <p>Здравствуйте, {{.CustomerName}}!</p>
  <p>Вы записаны на «{{.Title}}» {{.Date}} в {{.Time}} (UTC).</p>
  <p>Специалист: {{.EmployeeName}}.</p>
  {{if .Description}}<p>Комментарий: {{.Description}}</p>{{end}}
  <p>Статус записи: ожидает подтверждения.</p>
</body>
</html>`))

type confirmationData struct {
	CustomerName string
	Title        string
	Date         string
	Time         string
	EmployeeName string
	Description  string
}

// notify отправляет клиенту письмо о записи. Ошибка не отменяет созданную запись.
func (uc *UseCase) notify(ctx context.Context, appointment *domain.Appointment, employee *domain.Employee) error {
	customer, err := uc.directory.GetCustomer(ctx, appointment.CustomerID)
	if err != nil {
		return fmt.Errorf("get customer %s: %w", appointment.CustomerID, err)
	}
	if customer.Email == "" {
		return fmt.Errorf("customer %s has no email", customer.ID)
	}

	html, err := renderConfirmation(appointment, customer, employee)
	if err != nil {
		return err
	}

	return uc.notifier.Send(ctx, &notification.Message{
		To:      customer.Email,
		Subject: notificationSubject,
		HTML:    html,
	})
}

func renderConfirmation(appointment *domain.Appointment, customer *domain.Customer, employee *domain.Employee) (string, error) {
	data := confirmationData{
		CustomerName: customer.Name,
		Title:        appointment.Title,
		Date:         calendar.FormatDate(appointment.DateTime),
		Time:         appointment.Slot().String(),
		EmployeeName: employee.Name,
	}
	if appointment.Description != nil {
		data.Description = *appointment.Description
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}
