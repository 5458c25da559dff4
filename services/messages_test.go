package services

import (
	"testing"
	"time"

	"pawpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleAppointment() *models.Appointment {
	starts := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	return &models.Appointment{
		ID:            uuid.New(),
		Reference:     "APT-20240610-X7K2MQ",
		StartsAt:      starts,
		TotalPrice:    93,
		TotalDuration: 90,
		Rows: []models.AppointmentRow{
			{
				PetName:     "Biscuit",
				ServiceName: "Full Groom",
				TierLabel:   "Large",
				Price:       85,
				Duration:    90,
				Addons: []models.AppointmentRowAddon{
					{Name: "Nail trim", Price: 8},
				},
			},
		},
	}
}

func TestRenderTemplate(t *testing.T) {
	appt := sampleAppointment()
	customer := &models.Customer{Name: "Dana", Phone: "+15550100"}

	msg := RenderTemplate(
		"Hi [CustomerName], [PetName] is booked for [Services] on [Date] at [Time]. Total: [Total].",
		appt, customer)

	assert.Equal(t,
		"Hi Dana, Biscuit is booked for Full Groom on Mon, 10 Jun 2024 at 2:30 PM. Total: 93.00.",
		msg)
}

func TestRenderTemplate_MultiplePetsDeduplicated(t *testing.T) {
	appt := sampleAppointment()
	appt.Rows = append(appt.Rows,
		models.AppointmentRow{PetName: "Biscuit", ServiceName: "Nail Trim"},
		models.AppointmentRow{PetName: "Mochi", ServiceName: "Bath"},
	)
	customer := &models.Customer{Name: "Dana"}

	msg := RenderTemplate("[PetName]: [Services]", appt, customer)

	assert.Equal(t, "Biscuit, Mochi: Full Groom, Nail Trim, Bath", msg)
}

func TestConfirmationMessage(t *testing.T) {
	appt := sampleAppointment()
	customer := &models.Customer{Name: "Dana", Phone: "+15550100"}

	msg := ConfirmationMessage(appt, customer)

	assert.Contains(t, msg, "Hi Dana!")
	assert.Contains(t, msg, "APT-20240610-X7K2MQ")
	assert.Contains(t, msg, "Mon, 10 Jun 2024")
	assert.Contains(t, msg, "Biscuit: Full Groom (Large) + Nail trim")
	assert.Contains(t, msg, "Total: 93.00 (approx. 90 min)")
	assert.NotContains(t, msg, "Repeats:")
}

func TestConfirmationMessage_WithRecurrence(t *testing.T) {
	appt := sampleAppointment()
	appt.RecurrenceRule = "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO"
	customer := &models.Customer{Name: "Dana"}

	msg := ConfirmationMessage(appt, customer)

	assert.Contains(t, msg, "Repeats: Every 2 weeks")
}

func TestWhatsAppDeepLink(t *testing.T) {
	link := WhatsAppDeepLink("+15550100", "Hi Dana! See you soon")

	assert.Equal(t, "https://wa.me/15550100?text=Hi+Dana%21+See+you+soon", link)
}
